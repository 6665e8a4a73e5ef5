package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/internal/model"
)

// ReglaRepository acceso a datos de reglas de descanso
type ReglaRepository interface {
	BatchCreate(ctx context.Context, reglas []model.ReglaConfigurable) error
	GetByID(ctx context.Context, id string) (*model.ReglaConfigurable, error)
	List(ctx context.Context) ([]model.ReglaConfigurable, error)
	// ListActivasPorTrigger devuelve las reglas activas del disparador,
	// ordenadas por prioridad ascendente (la primera gana)
	ListActivasPorTrigger(ctx context.Context, trigger model.Estado) ([]model.ReglaConfigurable, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, regla *model.ReglaConfigurable) error
}

// reglaRepo implementación GORM de ReglaRepository
type reglaRepo struct {
	db *gorm.DB
}

// NewReglaRepo crea una instancia de ReglaRepository
func NewReglaRepo(db *gorm.DB) ReglaRepository {
	return &reglaRepo{db: db}
}

func (r *reglaRepo) BatchCreate(ctx context.Context, reglas []model.ReglaConfigurable) error {
	return r.db.WithContext(ctx).Create(&reglas).Error
}

func (r *reglaRepo) GetByID(ctx context.Context, id string) (*model.ReglaConfigurable, error) {
	var regla model.ReglaConfigurable
	err := r.db.WithContext(ctx).
		Where("regla_id = ?", id).
		First(&regla).Error
	if err != nil {
		return nil, err
	}
	return &regla, nil
}

func (r *reglaRepo) List(ctx context.Context) ([]model.ReglaConfigurable, error) {
	var reglas []model.ReglaConfigurable
	err := r.db.WithContext(ctx).
		Order("estado_trigger ASC").
		Order("prioridad ASC").
		Find(&reglas).Error
	return reglas, err
}

func (r *reglaRepo) ListActivasPorTrigger(ctx context.Context, trigger model.Estado) ([]model.ReglaConfigurable, error) {
	var reglas []model.ReglaConfigurable
	err := r.db.WithContext(ctx).
		Where("estado_trigger = ? AND activa = ?", trigger, true).
		Order("prioridad ASC").
		Find(&reglas).Error
	return reglas, err
}

func (r *reglaRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.ReglaConfigurable{}).
		Count(&total).Error
	return total, err
}

func (r *reglaRepo) Update(ctx context.Context, regla *model.ReglaConfigurable) error {
	return r.db.WithContext(ctx).Save(regla).Error
}
