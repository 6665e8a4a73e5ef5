package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/internal/model"
)

// PeriodoRepository acceso a datos de períodos
type PeriodoRepository interface {
	Create(ctx context.Context, periodo *model.Periodo) error
	GetByID(ctx context.Context, id string) (*model.Periodo, error)
	List(ctx context.Context) ([]model.Periodo, error)
	Update(ctx context.Context, periodo *model.Periodo) error
}

// periodoRepo implementación GORM de PeriodoRepository
type periodoRepo struct {
	db *gorm.DB
}

// NewPeriodoRepo crea una instancia de PeriodoRepository
func NewPeriodoRepo(db *gorm.DB) PeriodoRepository {
	return &periodoRepo{db: db}
}

func (r *periodoRepo) Create(ctx context.Context, periodo *model.Periodo) error {
	return r.db.WithContext(ctx).Create(periodo).Error
}

func (r *periodoRepo) GetByID(ctx context.Context, id string) (*model.Periodo, error) {
	var periodo model.Periodo
	err := r.db.WithContext(ctx).
		Where("periodo_id = ?", id).
		First(&periodo).Error
	if err != nil {
		return nil, err
	}
	return &periodo, nil
}

func (r *periodoRepo) List(ctx context.Context) ([]model.Periodo, error) {
	var periodos []model.Periodo
	err := r.db.WithContext(ctx).
		Order("fecha_inicio DESC").
		Find(&periodos).Error
	return periodos, err
}

func (r *periodoRepo) Update(ctx context.Context, periodo *model.Periodo) error {
	return r.db.WithContext(ctx).Save(periodo).Error
}
