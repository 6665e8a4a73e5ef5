package service

import (
	"go.uber.org/zap"

	"github.com/Reimot5/cuadrante-servicios/internal/repository"
	"github.com/Reimot5/cuadrante-servicios/pkg/jwt"
	"github.com/Reimot5/cuadrante-servicios/pkg/redis"
)

// Service punto de entrada agregado de todos los servicios
type Service struct {
	Auth          AuthService
	Persona       PersonaService
	Asignacion    AsignacionService
	Reglas        ReglasService
	Validador     ValidadorService
	AutoAsignador AutoAsignadorService
	Periodo       PeriodoService
	Auditoria     AuditoriaService
	Export        ExportService
}

// NewService crea el agregado de servicios con sus dependencias cableadas
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	reglas := NewReglasService(repo, logger)
	validador := NewValidadorService(repo, logger)

	return &Service{
		Auth:          NewAuthService(repo, jwtMgr, rdb, logger),
		Persona:       NewPersonaService(repo, logger),
		Asignacion:    NewAsignacionService(repo, reglas, validador, logger),
		Reglas:        reglas,
		Validador:     validador,
		AutoAsignador: NewAutoAsignadorService(repo, logger),
		Periodo:       NewPeriodoService(repo, logger),
		Auditoria:     NewAuditoriaService(repo, logger),
		Export:        NewExportService(repo, logger),
	}
}
