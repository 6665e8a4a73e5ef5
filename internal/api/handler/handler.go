package handler

import "github.com/Reimot5/cuadrante-servicios/internal/service"

// Handler punto de entrada agregado de todos los handlers
type Handler struct {
	Auth       *AuthHandler
	Persona    *PersonaHandler
	Asignacion *AsignacionHandler
	Cuadrante  *CuadranteHandler
	Regla      *ReglaHandler
	Periodo    *PeriodoHandler
	Auditoria  *AuditoriaHandler
	Export     *ExportHandler
}

// NewHandler crea el agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Persona:    NewPersonaHandler(svc.Persona),
		Asignacion: NewAsignacionHandler(svc.Asignacion),
		Cuadrante:  NewCuadranteHandler(svc.Validador, svc.AutoAsignador),
		Regla:      NewReglaHandler(svc.Reglas),
		Periodo:    NewPeriodoHandler(svc.Periodo),
		Auditoria:  NewAuditoriaHandler(svc.Auditoria),
		Export:     NewExportHandler(svc.Export),
	}
}
