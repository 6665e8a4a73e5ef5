package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/service"
	"github.com/Reimot5/cuadrante-servicios/pkg/response"
)

// AsignacionHandler manejador HTTP del cuadrante diario
type AsignacionHandler struct {
	asignacionSvc service.AsignacionService
}

// NewAsignacionHandler crea el AsignacionHandler
func NewAsignacionHandler(asignacionSvc service.AsignacionService) *AsignacionHandler {
	return &AsignacionHandler{asignacionSvc: asignacionSvc}
}

// List consulta del cuadrante con filtros
// GET /api/v1/asignaciones?fecha_inicio=...&fecha_fin=...&persona_id=...&estado=...&grupo=...
func (h *AsignacionHandler) List(c *gin.Context) {
	var req dto.ListAsignacionesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	result, err := h.asignacionSvc.List(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrFechaInvalida) {
			response.BadRequest(c, 13001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Create alta o sobrescritura de asignación para un día
// POST /api/v1/asignaciones
func (h *AsignacionHandler) Create(c *gin.Context) {
	var req dto.CreateAsignacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	username, ok := MustGetUsername(c)
	if !ok {
		return
	}
	rol, ok := MustGetRol(c)
	if !ok {
		return
	}

	result, creada, err := h.asignacionSvc.Create(c.Request.Context(), &req, username, rol)
	if err != nil {
		h.writeAsignacionError(c, err)
		return
	}

	if creada {
		response.Created(c, result)
	} else {
		response.OK(c, result)
	}
}

// CreateRango alta del mismo estado para un rango de días
// POST /api/v1/asignaciones/rango
func (h *AsignacionHandler) CreateRango(c *gin.Context) {
	var req dto.CreateAsignacionRangoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	username, ok := MustGetUsername(c)
	if !ok {
		return
	}
	rol, ok := MustGetRol(c)
	if !ok {
		return
	}

	result, err := h.asignacionSvc.CreateRango(c.Request.Context(), &req, username, rol)
	if err != nil {
		h.writeAsignacionError(c, err)
		return
	}

	response.Created(c, result)
}

// Delete baja de una asignación
// DELETE /api/v1/asignaciones/:id
func (h *AsignacionHandler) Delete(c *gin.Context) {
	username, ok := MustGetUsername(c)
	if !ok {
		return
	}
	rol, ok := MustGetRol(c)
	if !ok {
		return
	}

	if err := h.asignacionSvc.Delete(c.Request.Context(), c.Param("id"), username, rol); err != nil {
		h.writeAsignacionError(c, err)
		return
	}

	response.NoContent(c)
}

// Permutar intercambio de personas entre dos asignaciones
// POST /api/v1/asignaciones/permutar
func (h *AsignacionHandler) Permutar(c *gin.Context) {
	var req dto.PermutaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	username, ok := MustGetUsername(c)
	if !ok {
		return
	}

	result, err := h.asignacionSvc.Permutar(c.Request.Context(), &req, username)
	if err != nil {
		h.writeAsignacionError(c, err)
		return
	}

	response.OK(c, result)
}

// writeAsignacionError traduce los errores de negocio del módulo a HTTP
func (h *AsignacionHandler) writeAsignacionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFechaInvalida):
		response.BadRequest(c, 13001, err.Error())
	case errors.Is(err, service.ErrPersonaNoEncontrada):
		response.NotFound(c, 12002, "persona no encontrada")
	case errors.Is(err, service.ErrAsignacionNoEncontrada):
		response.NotFound(c, 13002, "asignación no encontrada")
	case errors.Is(err, service.ErrEdicionPasadoNoPermitida):
		response.Forbidden(c, 13003, err.Error())
	case errors.Is(err, service.ErrSobrescribirManual):
		response.Forbidden(c, 13004, "no se puede sobrescribir asignación manual")
	default:
		response.InternalError(c)
	}
}
