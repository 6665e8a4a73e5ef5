package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
	"github.com/Reimot5/cuadrante-servicios/pkg/fechas"
)

// GuardiasPorDia dotación exacta de guardias exigida cada día
const GuardiasPorDia = 4

// ValidadorService validación de restricciones duras del cuadrante
type ValidadorService interface {
	// ValidarDia comprueba las restricciones duras de un día
	ValidarDia(ctx context.Context, fecha time.Time) (*dto.ValidacionDia, error)
	// ValidarRango valida cada día del rango, en orden cronológico
	ValidarRango(ctx context.Context, inicio, fin time.Time) ([]dto.ValidacionDia, error)
}

type validadorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewValidadorService crea una instancia de ValidadorService
func NewValidadorService(repo *repository.Repository, logger *zap.Logger) ValidadorService {
	return &validadorService{repo: repo, logger: logger}
}

// ────────────────────── ValidarDia ──────────────────────
//
// Restricciones duras:
//   - exactamente GuardiasPorDia asignaciones en estado G
//   - al menos una de ellas debe ser conductor
//
// Los errores se acumulan (no se corta en el primero) para que el llamante
// vea todos los problemas del día de una vez. TieneGrupoA se calcula solo
// a título informativo: dejó de ser requisito duro.

func (s *validadorService) ValidarDia(ctx context.Context, fecha time.Time) (*dto.ValidacionDia, error) {
	dia := fechas.SinHora(fecha)

	asignaciones, err := s.repo.Asignacion.ListByFecha(ctx, dia)
	if err != nil {
		s.logger.Error("error al consultar asignaciones del día",
			zap.String("fecha", fechas.Formatear(dia)), zap.Error(err))
		return nil, err
	}

	guardias := 0
	tieneGrupoA := false
	tieneConductor := false

	for i := range asignaciones {
		a := &asignaciones[i]
		if a.Estado != model.EstadoGuardia {
			continue
		}
		guardias++
		if a.Persona != nil {
			if a.Persona.Grupo == model.GrupoA {
				tieneGrupoA = true
			}
			if a.Persona.IsConductor {
				tieneConductor = true
			}
		}
	}

	errores := make([]string, 0, 2)
	if guardias != GuardiasPorDia {
		errores = append(errores, fmt.Sprintf("Se requieren exactamente %d guardias, pero hay %d", GuardiasPorDia, guardias))
	}
	if !tieneConductor {
		errores = append(errores, "Debe haber al menos 1 conductor en guardia")
	}

	return &dto.ValidacionDia{
		Fecha:          fechas.Formatear(dia),
		Valido:         len(errores) == 0,
		Errores:        errores,
		Guardias:       guardias,
		TieneGrupoA:    tieneGrupoA,
		TieneConductor: tieneConductor,
	}, nil
}

// ────────────────────── ValidarRango ──────────────────────

func (s *validadorService) ValidarRango(ctx context.Context, inicio, fin time.Time) ([]dto.ValidacionDia, error) {
	dias := fechas.Rango(inicio, fin)

	validaciones := make([]dto.ValidacionDia, 0, len(dias))
	for _, dia := range dias {
		v, err := s.ValidarDia(ctx, dia)
		if err != nil {
			return nil, err
		}
		validaciones = append(validaciones, *v)
	}

	return validaciones, nil
}
