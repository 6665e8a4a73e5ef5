package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/internal/model"
)

// PersonaRepository acceso a datos de personas
type PersonaRepository interface {
	Create(ctx context.Context, persona *model.Persona) error
	GetByID(ctx context.Context, id string) (*model.Persona, error)
	List(ctx context.Context, grupo *model.Grupo, isConductor *bool) ([]model.Persona, error)
	Update(ctx context.Context, persona *model.Persona) error
	Delete(ctx context.Context, id string) error
}

// personaRepo implementación GORM de PersonaRepository
type personaRepo struct {
	db *gorm.DB
}

// NewPersonaRepo crea una instancia de PersonaRepository
func NewPersonaRepo(db *gorm.DB) PersonaRepository {
	return &personaRepo{db: db}
}

func (r *personaRepo) Create(ctx context.Context, persona *model.Persona) error {
	return r.db.WithContext(ctx).Create(persona).Error
}

func (r *personaRepo) GetByID(ctx context.Context, id string) (*model.Persona, error) {
	var persona model.Persona
	err := r.db.WithContext(ctx).
		Where("persona_id = ?", id).
		First(&persona).Error
	if err != nil {
		return nil, err
	}
	return &persona, nil
}

func (r *personaRepo) List(ctx context.Context, grupo *model.Grupo, isConductor *bool) ([]model.Persona, error) {
	var personas []model.Persona

	db := r.db.WithContext(ctx).Model(&model.Persona{})
	if grupo != nil {
		db = db.Where("grupo = ?", *grupo)
	}
	if isConductor != nil {
		db = db.Where("is_conductor = ?", *isConductor)
	}

	err := db.Order("grupo ASC").Order("nombre ASC").Find(&personas).Error
	return personas, err
}

func (r *personaRepo) Update(ctx context.Context, persona *model.Persona) error {
	return r.db.WithContext(ctx).Save(persona).Error
}

func (r *personaRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("persona_id = ?", id).
		Delete(&model.Persona{}).Error
}
