package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/service"
	"github.com/Reimot5/cuadrante-servicios/pkg/response"
)

// PersonaHandler manejador HTTP del módulo de plantilla
type PersonaHandler struct {
	personaSvc service.PersonaService
}

// NewPersonaHandler crea el PersonaHandler
func NewPersonaHandler(personaSvc service.PersonaService) *PersonaHandler {
	return &PersonaHandler{personaSvc: personaSvc}
}

// Create alta de persona
// POST /api/v1/personas
func (h *PersonaHandler) Create(c *gin.Context) {
	var req dto.CreatePersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	result, err := h.personaSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrGrupoAConductor) {
			response.BadRequest(c, 12001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Get consulta de persona
// GET /api/v1/personas/:id
func (h *PersonaHandler) Get(c *gin.Context) {
	result, err := h.personaSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPersonaNoEncontrada) {
			response.NotFound(c, 12002, "persona no encontrada")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List listado de plantilla con filtros opcionales
// GET /api/v1/personas?grupo=A&is_conductor=true
func (h *PersonaHandler) List(c *gin.Context) {
	result, err := h.personaSvc.List(c.Request.Context(), c.Query("grupo"), c.Query("is_conductor"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update edición parcial de persona
// PATCH /api/v1/personas/:id
func (h *PersonaHandler) Update(c *gin.Context) {
	var req dto.UpdatePersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	result, err := h.personaSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPersonaNoEncontrada):
			response.NotFound(c, 12002, "persona no encontrada")
		case errors.Is(err, service.ErrGrupoAConductor):
			response.BadRequest(c, 12001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete baja de persona
// DELETE /api/v1/personas/:id
func (h *PersonaHandler) Delete(c *gin.Context) {
	if err := h.personaSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPersonaNoEncontrada) {
			response.NotFound(c, 12002, "persona no encontrada")
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}
