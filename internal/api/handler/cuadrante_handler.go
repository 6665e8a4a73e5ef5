package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/service"
	"github.com/Reimot5/cuadrante-servicios/pkg/fechas"
	"github.com/Reimot5/cuadrante-servicios/pkg/response"
)

// CuadranteHandler manejador HTTP de validación y auto-asignación
type CuadranteHandler struct {
	validadorSvc     service.ValidadorService
	autoAsignadorSvc service.AutoAsignadorService
}

// NewCuadranteHandler crea el CuadranteHandler
func NewCuadranteHandler(validadorSvc service.ValidadorService, autoAsignadorSvc service.AutoAsignadorService) *CuadranteHandler {
	return &CuadranteHandler{validadorSvc: validadorSvc, autoAsignadorSvc: autoAsignadorSvc}
}

// ValidarDia validación de un día concreto
// GET /api/v1/cuadrante/validar/:fecha
func (h *CuadranteHandler) ValidarDia(c *gin.Context) {
	fecha, err := fechas.Parsear(c.Param("fecha"))
	if err != nil {
		response.BadRequest(c, 13001, "fecha inválida, se espera formato YYYY-MM-DD")
		return
	}

	result, err := h.validadorSvc.ValidarDia(c.Request.Context(), fecha)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ValidarRango validación día a día de un rango
// GET /api/v1/cuadrante/validar?fecha_inicio=...&fecha_fin=...
func (h *CuadranteHandler) ValidarRango(c *gin.Context) {
	inicio, err := fechas.Parsear(c.Query("fecha_inicio"))
	if err != nil {
		response.BadRequest(c, 13001, "fecha_inicio inválida, se espera formato YYYY-MM-DD")
		return
	}
	fin, err := fechas.Parsear(c.Query("fecha_fin"))
	if err != nil {
		response.BadRequest(c, 13001, "fecha_fin inválida, se espera formato YYYY-MM-DD")
		return
	}

	result, err := h.validadorSvc.ValidarRango(c.Request.Context(), inicio, fin)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// AutoAsignar pasada de auto-asignación sobre un rango
// POST /api/v1/cuadrante/auto-asignar
// Responde 200 aunque haya días fallidos: el informe detalla cada error
func (h *CuadranteHandler) AutoAsignar(c *gin.Context) {
	var req dto.AutoAsignarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	inicio, err := fechas.Parsear(req.FechaInicio)
	if err != nil {
		response.BadRequest(c, 13001, "fecha_inicio inválida, se espera formato YYYY-MM-DD")
		return
	}
	fin, err := fechas.Parsear(req.FechaFin)
	if err != nil {
		response.BadRequest(c, 13001, "fecha_fin inválida, se espera formato YYYY-MM-DD")
		return
	}

	username, ok := MustGetUsername(c)
	if !ok {
		return
	}

	result, err := h.autoAsignadorSvc.AutoAsignar(c.Request.Context(), inicio, fin, username)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
