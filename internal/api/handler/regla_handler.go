package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/service"
	"github.com/Reimot5/cuadrante-servicios/pkg/response"
)

// ReglaHandler manejador HTTP de las reglas de descanso configurables
type ReglaHandler struct {
	reglasSvc service.ReglasService
}

// NewReglaHandler crea el ReglaHandler
func NewReglaHandler(reglasSvc service.ReglasService) *ReglaHandler {
	return &ReglaHandler{reglasSvc: reglasSvc}
}

// List listado de reglas
// GET /api/v1/reglas
func (h *ReglaHandler) List(c *gin.Context) {
	result, err := h.reglasSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Get consulta de regla
// GET /api/v1/reglas/:id
func (h *ReglaHandler) Get(c *gin.Context) {
	result, err := h.reglasSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrReglaNoEncontrada) {
			response.NotFound(c, 14001, "regla no encontrada")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update edición parcial de regla
// PATCH /api/v1/reglas/:id
func (h *ReglaHandler) Update(c *gin.Context) {
	var req dto.UpdateReglaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	result, err := h.reglasSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrReglaNoEncontrada) {
			response.NotFound(c, 14001, "regla no encontrada")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
