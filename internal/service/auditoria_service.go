package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
)

// AuditoriaService consulta del registro de auditoría
type AuditoriaService interface {
	List(ctx context.Context, req *dto.AuditLogListRequest) ([]dto.AuditLogResponse, int64, error)
}

type auditoriaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAuditoriaService crea una instancia de AuditoriaService
func NewAuditoriaService(repo *repository.Repository, logger *zap.Logger) AuditoriaService {
	return &auditoriaService{repo: repo, logger: logger}
}

func (s *auditoriaService) List(ctx context.Context, req *dto.AuditLogListRequest) ([]dto.AuditLogResponse, int64, error) {
	entries, total, err := s.repo.AuditLog.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("error al listar auditoría", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AuditLogResponse, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		result = append(result, dto.AuditLogResponse{
			ID:        e.AuditLogID,
			Usuario:   e.Usuario,
			Accion:    e.Accion,
			Detalle:   e.Detalle,
			CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return result, total, nil
}
