package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/internal/model"
)

// AsignacionFiltro filtros opcionales para consultas por rango
type AsignacionFiltro struct {
	PersonaID string
	Estado    model.Estado
}

// AsignacionRepository acceso a datos de asignaciones
// La unicidad (fecha, persona_id) la garantiza la base de datos
type AsignacionRepository interface {
	Create(ctx context.Context, asignacion *model.Asignacion) error
	GetByID(ctx context.Context, id string) (*model.Asignacion, error)
	GetByFechaYPersona(ctx context.Context, fecha time.Time, personaID string) (*model.Asignacion, error)
	ListByFecha(ctx context.Context, fecha time.Time) ([]model.Asignacion, error)
	ListByRango(ctx context.Context, inicio, fin time.Time, filtro *AsignacionFiltro) ([]model.Asignacion, error)
	Update(ctx context.Context, asignacion *model.Asignacion) error
	// UpdatePar actualiza las dos asignaciones en una única transacción:
	// o se aplican ambas o no se aplica ninguna
	UpdatePar(ctx context.Context, a, b *model.Asignacion) error
	Delete(ctx context.Context, id string) error
}

// asignacionRepo implementación GORM de AsignacionRepository
type asignacionRepo struct {
	db *gorm.DB
}

// NewAsignacionRepo crea una instancia de AsignacionRepository
func NewAsignacionRepo(db *gorm.DB) AsignacionRepository {
	return &asignacionRepo{db: db}
}

func (r *asignacionRepo) Create(ctx context.Context, asignacion *model.Asignacion) error {
	return r.db.WithContext(ctx).Create(asignacion).Error
}

func (r *asignacionRepo) GetByID(ctx context.Context, id string) (*model.Asignacion, error) {
	var asignacion model.Asignacion
	err := r.db.WithContext(ctx).
		Preload("Persona").
		Where("asignacion_id = ?", id).
		First(&asignacion).Error
	if err != nil {
		return nil, err
	}
	return &asignacion, nil
}

func (r *asignacionRepo) GetByFechaYPersona(ctx context.Context, fecha time.Time, personaID string) (*model.Asignacion, error) {
	var asignacion model.Asignacion
	err := r.db.WithContext(ctx).
		Where("fecha = ? AND persona_id = ?", fecha, personaID).
		First(&asignacion).Error
	if err != nil {
		return nil, err
	}
	return &asignacion, nil
}

func (r *asignacionRepo) ListByFecha(ctx context.Context, fecha time.Time) ([]model.Asignacion, error) {
	var asignaciones []model.Asignacion
	err := r.db.WithContext(ctx).
		Preload("Persona").
		Where("fecha = ?", fecha).
		Find(&asignaciones).Error
	return asignaciones, err
}

func (r *asignacionRepo) ListByRango(ctx context.Context, inicio, fin time.Time, filtro *AsignacionFiltro) ([]model.Asignacion, error) {
	var asignaciones []model.Asignacion

	db := r.db.WithContext(ctx).
		Preload("Persona").
		Where("fecha >= ? AND fecha <= ?", inicio, fin)

	if filtro != nil {
		if filtro.PersonaID != "" {
			db = db.Where("persona_id = ?", filtro.PersonaID)
		}
		if filtro.Estado != "" {
			db = db.Where("estado = ?", filtro.Estado)
		}
	}

	err := db.Order("fecha ASC").Find(&asignaciones).Error
	return asignaciones, err
}

func (r *asignacionRepo) Update(ctx context.Context, asignacion *model.Asignacion) error {
	return r.db.WithContext(ctx).Save(asignacion).Error
}

// La restricción (fecha, persona_id) es DEFERRABLE, de modo que una permuta
// de dos asignaciones del mismo día no choca con la clave a mitad de
// transacción: se comprueba al confirmar
func (r *asignacionRepo) UpdatePar(ctx context.Context, a, b *model.Asignacion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(a).Error; err != nil {
			return err
		}
		return tx.Save(b).Error
	})
}

func (r *asignacionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("asignacion_id = ?", id).
		Delete(&model.Asignacion{}).Error
}
