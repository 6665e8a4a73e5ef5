package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
	"github.com/Reimot5/cuadrante-servicios/pkg/fechas"
)

var (
	ErrPeriodoNoEncontrado  = errors.New("período no encontrado")
	ErrPeriodoYaPublicado   = errors.New("el período ya está publicado")
	ErrRangoPeriodoInvalido = errors.New("la fecha de fin debe ser igual o posterior a la de inicio")
)

// PeriodoService ciclo de vida de los períodos del cuadrante
type PeriodoService interface {
	Create(ctx context.Context, req *dto.CreatePeriodoRequest, username string) (*dto.PeriodoResponse, error)
	List(ctx context.Context) ([]dto.PeriodoResponse, error)
	// Publicar pasa un período de BORRADOR a PUBLICADO. Es irreversible
	Publicar(ctx context.Context, id, username string) (*dto.PeriodoResponse, error)
}

type periodoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPeriodoService crea una instancia de PeriodoService
func NewPeriodoService(repo *repository.Repository, logger *zap.Logger) PeriodoService {
	return &periodoService{repo: repo, logger: logger}
}

func (s *periodoService) Create(ctx context.Context, req *dto.CreatePeriodoRequest, username string) (*dto.PeriodoResponse, error) {
	inicio, err := fechas.Parsear(req.FechaInicio)
	if err != nil {
		return nil, ErrFechaInvalida
	}
	fin, err := fechas.Parsear(req.FechaFin)
	if err != nil {
		return nil, ErrFechaInvalida
	}
	if fin.Before(inicio) {
		return nil, ErrRangoPeriodoInvalido
	}

	periodo := &model.Periodo{
		FechaInicio: inicio,
		FechaFin:    fin,
		Estado:      model.PeriodoBorrador,
		CreatedBy:   username,
	}
	if err := s.repo.Periodo.Create(ctx, periodo); err != nil {
		s.logger.Error("error al crear período", zap.Error(err))
		return nil, err
	}

	s.auditoria(ctx, username, "CREATE_PERIODO", map[string]interface{}{
		"periodo_id":   periodo.PeriodoID,
		"fecha_inicio": req.FechaInicio,
		"fecha_fin":    req.FechaFin,
	})

	return toPeriodoResponse(periodo), nil
}

func (s *periodoService) List(ctx context.Context) ([]dto.PeriodoResponse, error) {
	periodos, err := s.repo.Periodo.List(ctx)
	if err != nil {
		s.logger.Error("error al listar períodos", zap.Error(err))
		return nil, err
	}
	result := make([]dto.PeriodoResponse, 0, len(periodos))
	for i := range periodos {
		result = append(result, *toPeriodoResponse(&periodos[i]))
	}
	return result, nil
}

func (s *periodoService) Publicar(ctx context.Context, id, username string) (*dto.PeriodoResponse, error) {
	periodo, err := s.repo.Periodo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodoNoEncontrado
		}
		return nil, err
	}
	if periodo.Estado == model.PeriodoPublicado {
		return nil, ErrPeriodoYaPublicado
	}

	now := time.Now()
	periodo.Estado = model.PeriodoPublicado
	periodo.PublishedAt = &now
	if err := s.repo.Periodo.Update(ctx, periodo); err != nil {
		s.logger.Error("error al publicar período", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.auditoria(ctx, username, "PUBLICAR_PERIODO", map[string]interface{}{
		"periodo_id": id,
	})

	return toPeriodoResponse(periodo), nil
}

func (s *periodoService) auditoria(ctx context.Context, username, accion string, detalle map[string]interface{}) {
	raw, _ := json.Marshal(detalle)
	if err := s.repo.AuditLog.Create(ctx, &model.AuditLog{
		Usuario: username,
		Accion:  accion,
		Detalle: string(raw),
	}); err != nil {
		s.logger.Error("error al registrar auditoría", zap.String("accion", accion), zap.Error(err))
	}
}

func toPeriodoResponse(p *model.Periodo) *dto.PeriodoResponse {
	resp := &dto.PeriodoResponse{
		ID:          p.PeriodoID,
		FechaInicio: fechas.Formatear(p.FechaInicio),
		FechaFin:    fechas.Formatear(p.FechaFin),
		Estado:      p.Estado,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if p.PublishedAt != nil {
		v := p.PublishedAt.Format("2006-01-02T15:04:05Z")
		resp.PublishedAt = &v
	}
	return resp
}
