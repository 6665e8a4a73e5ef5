package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
	"github.com/Reimot5/cuadrante-servicios/pkg/fechas"
)

// ── Errores de negocio del módulo de reglas ──

var ErrReglaNoEncontrada = errors.New("regla no encontrada")

// Regla por defecto cuando no hay ninguna configurada activa para el disparador
const (
	descansoDefaultDias = 2
)

var descansoDefaultEstado = model.EstadoBloqueado

// ReglasService reglas de descanso consecutivo
type ReglasService interface {
	// AplicarDescansos propaga los descansos automáticos que impone el estado
	// registrado. Debe invocarse en cada escritura de asignación, también al
	// escribir un rango día a día.
	AplicarDescansos(ctx context.Context, personaID string, fecha time.Time, estado model.Estado) error
	// InicializarDefault siembra las reglas por defecto si la tabla está vacía
	InicializarDefault(ctx context.Context) error
	GetByID(ctx context.Context, id string) (*dto.ReglaResponse, error)
	List(ctx context.Context) ([]dto.ReglaResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateReglaRequest) (*dto.ReglaResponse, error)
}

type reglasService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReglasService crea una instancia de ReglasService
func NewReglasService(repo *repository.Repository, logger *zap.Logger) ReglasService {
	return &reglasService{repo: repo, logger: logger}
}

// ────────────────────── AplicarDescansos ──────────────────────
//
// Solo los estados C y S generan descansos. La regla activa de menor
// prioridad para el disparador decide cuántos días y con qué estado; sin
// regla configurada se aplican 2 días en estado X.
//
// Política de sobrescritura sobre los días objetivo (fecha+1..fecha+n):
//   - sin asignación previa        → se crea con origen auto
//   - asignación previa origen auto → se actualiza estado y nota
//   - asignación previa manual      → se deja intacta, la automatización
//     nunca pisa una entrada manual

func (s *reglasService) AplicarDescansos(ctx context.Context, personaID string, fecha time.Time, estado model.Estado) error {
	if !estado.GeneraDescanso() {
		return nil
	}

	dia := fechas.SinHora(fecha)

	reglas, err := s.repo.Regla.ListActivasPorTrigger(ctx, estado)
	if err != nil {
		s.logger.Error("error al consultar reglas de descanso",
			zap.String("estado", string(estado)), zap.Error(err))
		return err
	}

	diasDescanso := descansoDefaultDias
	estadoDescanso := descansoDefaultEstado
	if len(reglas) > 0 {
		diasDescanso = reglas[0].DiasDescanso
		estadoDescanso = reglas[0].EstadoDescanso
	}

	nota := fmt.Sprintf("Descanso automático después de %s", estado)

	for i := 0; i < diasDescanso; i++ {
		fechaDescanso := fechas.Sumar(dia, 1+i)

		existente, err := s.repo.Asignacion.GetByFechaYPersona(ctx, fechaDescanso, personaID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("error al consultar asignación existente",
				zap.String("fecha", fechas.Formatear(fechaDescanso)), zap.Error(err))
			return err
		}

		switch {
		case existente == nil:
			nueva := &model.Asignacion{
				Fecha:     fechaDescanso,
				PersonaID: personaID,
				Estado:    estadoDescanso,
				Origen:    model.OrigenAuto,
				Nota:      nota,
			}
			if err := s.repo.Asignacion.Create(ctx, nueva); err != nil {
				s.logger.Error("error al crear descanso automático",
					zap.String("fecha", fechas.Formatear(fechaDescanso)), zap.Error(err))
				return err
			}

		case existente.Origen == model.OrigenAuto:
			existente.Estado = estadoDescanso
			existente.Nota = nota
			if err := s.repo.Asignacion.Update(ctx, existente); err != nil {
				s.logger.Error("error al actualizar descanso automático",
					zap.String("fecha", fechas.Formatear(fechaDescanso)), zap.Error(err))
				return err
			}

		default:
			// origen manual: no tocar
		}
	}

	return nil
}

// ────────────────────── InicializarDefault ──────────────────────

func (s *reglasService) InicializarDefault(ctx context.Context) error {
	total, err := s.repo.Regla.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	reglas := []model.ReglaConfigurable{
		{
			EstadoTrigger:  model.EstadoComision,
			DiasDescanso:   2,
			EstadoDescanso: model.EstadoBloqueado,
			Prioridad:      1,
			Activa:         true,
			Descripcion:    "Después de Comisión, 2 días bloqueados",
		},
		{
			EstadoTrigger:  model.EstadoSemana,
			DiasDescanso:   2,
			EstadoDescanso: model.EstadoBloqueado,
			Prioridad:      1,
			Activa:         true,
			Descripcion:    "Después de Semana, 2 días bloqueados",
		},
	}

	if err := s.repo.Regla.BatchCreate(ctx, reglas); err != nil {
		s.logger.Error("error al sembrar reglas por defecto", zap.Error(err))
		return err
	}

	s.logger.Info("reglas de descanso por defecto creadas", zap.Int("total", len(reglas)))
	return nil
}

// ────────────────────── GetByID ──────────────────────

func (s *reglasService) GetByID(ctx context.Context, id string) (*dto.ReglaResponse, error) {
	regla, err := s.repo.Regla.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReglaNoEncontrada
		}
		s.logger.Error("error al consultar regla", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toReglaResponse(regla), nil
}

// ────────────────────── List ──────────────────────

func (s *reglasService) List(ctx context.Context) ([]dto.ReglaResponse, error) {
	reglas, err := s.repo.Regla.List(ctx)
	if err != nil {
		s.logger.Error("error al listar reglas", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ReglaResponse, 0, len(reglas))
	for i := range reglas {
		result = append(result, *s.toReglaResponse(&reglas[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *reglasService) Update(ctx context.Context, id string, req *dto.UpdateReglaRequest) (*dto.ReglaResponse, error) {
	regla, err := s.repo.Regla.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReglaNoEncontrada
		}
		s.logger.Error("error al consultar regla", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.DiasDescanso != nil {
		regla.DiasDescanso = *req.DiasDescanso
	}
	if req.EstadoDescanso != nil {
		regla.EstadoDescanso = model.Estado(*req.EstadoDescanso)
	}
	if req.Prioridad != nil {
		regla.Prioridad = *req.Prioridad
	}
	if req.Activa != nil {
		regla.Activa = *req.Activa
	}
	if req.Descripcion != nil {
		regla.Descripcion = *req.Descripcion
	}

	if err := s.repo.Regla.Update(ctx, regla); err != nil {
		s.logger.Error("error al actualizar regla", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toReglaResponse(regla), nil
}

// ── Métodos auxiliares internos ──

func (s *reglasService) toReglaResponse(regla *model.ReglaConfigurable) *dto.ReglaResponse {
	return &dto.ReglaResponse{
		ID:             regla.ReglaID,
		EstadoTrigger:  string(regla.EstadoTrigger),
		DiasDescanso:   regla.DiasDescanso,
		EstadoDescanso: string(regla.EstadoDescanso),
		Prioridad:      regla.Prioridad,
		Activa:         regla.Activa,
		Descripcion:    regla.Descripcion,
		CreatedAt:      regla.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      regla.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
