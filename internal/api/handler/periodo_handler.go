package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/service"
	"github.com/Reimot5/cuadrante-servicios/pkg/response"
)

// PeriodoHandler manejador HTTP de los períodos del cuadrante
type PeriodoHandler struct {
	periodoSvc service.PeriodoService
}

// NewPeriodoHandler crea el PeriodoHandler
func NewPeriodoHandler(periodoSvc service.PeriodoService) *PeriodoHandler {
	return &PeriodoHandler{periodoSvc: periodoSvc}
}

// Create alta de período en borrador
// POST /api/v1/periodos
func (h *PeriodoHandler) Create(c *gin.Context) {
	var req dto.CreatePeriodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	username, ok := MustGetUsername(c)
	if !ok {
		return
	}

	result, err := h.periodoSvc.Create(c.Request.Context(), &req, username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFechaInvalida):
			response.BadRequest(c, 13001, err.Error())
		case errors.Is(err, service.ErrRangoPeriodoInvalido):
			response.BadRequest(c, 15001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// List listado de períodos
// GET /api/v1/periodos
func (h *PeriodoHandler) List(c *gin.Context) {
	result, err := h.periodoSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Publicar publicación de un período en borrador
// POST /api/v1/periodos/:id/publicar
func (h *PeriodoHandler) Publicar(c *gin.Context) {
	username, ok := MustGetUsername(c)
	if !ok {
		return
	}

	result, err := h.periodoSvc.Publicar(c.Request.Context(), c.Param("id"), username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPeriodoNoEncontrado):
			response.NotFound(c, 15002, "período no encontrado")
		case errors.Is(err, service.ErrPeriodoYaPublicado):
			response.BadRequest(c, 15003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
