package dto

// AuditLogListRequest paginación del listado de auditoría
type AuditLogListRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// GetPageSize tamaño de página con valores por defecto acotados
func (r *AuditLogListRequest) GetPageSize() int {
	if r.PageSize <= 0 {
		return 20
	}
	if r.PageSize > 100 {
		return 100
	}
	return r.PageSize
}

// GetOffset desplazamiento calculado
func (r *AuditLogListRequest) GetOffset() int {
	page := r.Page
	if page <= 0 {
		page = 1
	}
	return (page - 1) * r.GetPageSize()
}

// AuditLogResponse respuesta de entrada de auditoría
type AuditLogResponse struct {
	ID        string `json:"id"`
	Usuario   string `json:"usuario"`
	Accion    string `json:"accion"`
	Detalle   string `json:"detalle,omitempty"`
	CreatedAt string `json:"created_at"`
}
