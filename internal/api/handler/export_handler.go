package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Reimot5/cuadrante-servicios/internal/service"
	"github.com/Reimot5/cuadrante-servicios/pkg/response"
)

// ExportHandler manejador HTTP del módulo de exportación
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler crea el ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportExcel descarga del cuadrante en Excel
// GET /api/v1/export/cuadrante?fecha_inicio=...&fecha_fin=...
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	inicio := c.Query("fecha_inicio")
	fin := c.Query("fecha_fin")
	if inicio == "" || fin == "" {
		response.BadRequest(c, 10001, "fecha_inicio y fecha_fin son obligatorias")
		return
	}

	buf, filename, err := h.exportSvc.ExportCuadranteExcel(c.Request.Context(), inicio, fin)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ExportICS descarga de las guardias de una persona en iCalendar
// GET /api/v1/export/calendario/:persona_id?fecha_inicio=...&fecha_fin=...
func (h *ExportHandler) ExportICS(c *gin.Context) {
	inicio := c.Query("fecha_inicio")
	fin := c.Query("fecha_fin")
	if inicio == "" || fin == "" {
		response.BadRequest(c, 10001, "fecha_inicio y fecha_fin son obligatorias")
		return
	}

	data, filename, err := h.exportSvc.ExportCalendarioICS(c.Request.Context(), c.Param("persona_id"), inicio, fin)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar", data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFechaInvalida):
		response.BadRequest(c, 13001, err.Error())
	case errors.Is(err, service.ErrPersonaNoEncontrada):
		response.NotFound(c, 12002, "persona no encontrada")
	case errors.Is(err, service.ErrExportSinPersonas):
		response.BadRequest(c, 16001, err.Error())
	default:
		response.InternalError(c)
	}
}
