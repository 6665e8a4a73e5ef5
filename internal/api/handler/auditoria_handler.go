package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/service"
	"github.com/Reimot5/cuadrante-servicios/pkg/response"
)

// AuditoriaHandler manejador HTTP del registro de auditoría
type AuditoriaHandler struct {
	auditoriaSvc service.AuditoriaService
}

// NewAuditoriaHandler crea el AuditoriaHandler
func NewAuditoriaHandler(auditoriaSvc service.AuditoriaService) *AuditoriaHandler {
	return &AuditoriaHandler{auditoriaSvc: auditoriaSvc}
}

// List listado paginado de auditoría, ordenado de más reciente a más antiguo
// GET /api/v1/auditoria?page=1&page_size=20
func (h *AuditoriaHandler) List(c *gin.Context) {
	var req dto.AuditLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	entries, total, err := h.auditoriaSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}
	response.OKPage(c, entries, total, page, req.GetPageSize())
}
