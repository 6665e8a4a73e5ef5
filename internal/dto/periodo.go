package dto

// CreatePeriodoRequest alta de un período en borrador
type CreatePeriodoRequest struct {
	FechaInicio string `json:"fecha_inicio" binding:"required"`
	FechaFin    string `json:"fecha_fin" binding:"required"`
}

// PeriodoResponse respuesta de período
type PeriodoResponse struct {
	ID          string  `json:"id"`
	FechaInicio string  `json:"fecha_inicio"`
	FechaFin    string  `json:"fecha_fin"`
	Estado      string  `json:"estado"`
	CreatedBy   string  `json:"created_by,omitempty"`
	PublishedAt *string `json:"published_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
