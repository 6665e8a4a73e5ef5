package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
)

var (
	// ErrGrupoAConductor el grupo A es el de especialistas de conducción:
	// todos sus miembros son conductores
	ErrGrupoAConductor = errors.New("las personas del grupo A deben ser conductoras")
)

// PersonaService gestión de la plantilla
type PersonaService interface {
	Create(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.PersonaResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PersonaResponse, error)
	List(ctx context.Context, grupo, conductor string) ([]dto.PersonaResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePersonaRequest) (*dto.PersonaResponse, error)
	Delete(ctx context.Context, id string) error
}

type personaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPersonaService crea una instancia de PersonaService
func NewPersonaService(repo *repository.Repository, logger *zap.Logger) PersonaService {
	return &personaService{repo: repo, logger: logger}
}

func (s *personaService) Create(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.PersonaResponse, error) {
	grupo := model.Grupo(req.Grupo)
	if grupo == model.GrupoA && !req.IsConductor {
		return nil, ErrGrupoAConductor
	}

	persona := &model.Persona{
		Nombre:      req.Nombre,
		Grupo:       grupo,
		IsConductor: req.IsConductor,
	}
	if err := s.repo.Persona.Create(ctx, persona); err != nil {
		s.logger.Error("error al crear persona", zap.Error(err))
		return nil, err
	}
	return toPersonaResponse(persona), nil
}

func (s *personaService) GetByID(ctx context.Context, id string) (*dto.PersonaResponse, error) {
	persona, err := s.repo.Persona.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNoEncontrada
		}
		s.logger.Error("error al consultar persona", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toPersonaResponse(persona), nil
}

func (s *personaService) List(ctx context.Context, grupo, conductor string) ([]dto.PersonaResponse, error) {
	var grupoFiltro *model.Grupo
	if grupo != "" {
		g := model.Grupo(grupo)
		grupoFiltro = &g
	}
	var conductorFiltro *bool
	if conductor != "" {
		v := conductor == "true"
		conductorFiltro = &v
	}

	personas, err := s.repo.Persona.List(ctx, grupoFiltro, conductorFiltro)
	if err != nil {
		s.logger.Error("error al listar personas", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PersonaResponse, 0, len(personas))
	for i := range personas {
		result = append(result, *toPersonaResponse(&personas[i]))
	}
	return result, nil
}

func (s *personaService) Update(ctx context.Context, id string, req *dto.UpdatePersonaRequest) (*dto.PersonaResponse, error) {
	persona, err := s.repo.Persona.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNoEncontrada
		}
		return nil, err
	}

	if req.Nombre != nil {
		persona.Nombre = *req.Nombre
	}
	if req.Grupo != nil {
		persona.Grupo = model.Grupo(*req.Grupo)
	}
	if req.IsConductor != nil {
		persona.IsConductor = *req.IsConductor
	}

	// El invariante grupo A ⇒ conductor se comprueba sobre el estado final
	if persona.Grupo == model.GrupoA && !persona.IsConductor {
		return nil, ErrGrupoAConductor
	}

	if err := s.repo.Persona.Update(ctx, persona); err != nil {
		s.logger.Error("error al actualizar persona", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toPersonaResponse(persona), nil
}

func (s *personaService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Persona.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPersonaNoEncontrada
		}
		return err
	}
	if err := s.repo.Persona.Delete(ctx, id); err != nil {
		s.logger.Error("error al eliminar persona", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toPersonaResponse(p *model.Persona) *dto.PersonaResponse {
	return &dto.PersonaResponse{
		ID:          p.PersonaID,
		Nombre:      p.Nombre,
		Grupo:       string(p.Grupo),
		IsConductor: p.IsConductor,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
