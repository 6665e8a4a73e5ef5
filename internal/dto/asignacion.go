package dto

// CreateAsignacionRequest alta o sobrescritura de asignación para un día
type CreateAsignacionRequest struct {
	Fecha     string `json:"fecha" binding:"required"` // YYYY-MM-DD
	PersonaID string `json:"persona_id" binding:"required,uuid"`
	Estado    string `json:"estado" binding:"required,oneof=G LIC C PE X S"`
	Nota      string `json:"nota,omitempty" binding:"omitempty,max=500"`
}

// CreateAsignacionRangoRequest alta de un mismo estado para un rango de días
type CreateAsignacionRangoRequest struct {
	FechaInicio string `json:"fecha_inicio" binding:"required"`
	FechaFin    string `json:"fecha_fin" binding:"required"`
	PersonaID   string `json:"persona_id" binding:"required,uuid"`
	Estado      string `json:"estado" binding:"required,oneof=G LIC C PE X S"`
	Nota        string `json:"nota,omitempty" binding:"omitempty,max=500"`
}

// ListAsignacionesRequest filtros de consulta del cuadrante
type ListAsignacionesRequest struct {
	FechaInicio string `form:"fecha_inicio"`
	FechaFin    string `form:"fecha_fin"`
	PersonaID   string `form:"persona_id"`
	Estado      string `form:"estado"`
	Grupo       string `form:"grupo"`
}

// AsignacionResponse respuesta de asignación
type AsignacionResponse struct {
	ID        string           `json:"id"`
	Fecha     string           `json:"fecha"`
	PersonaID string           `json:"persona_id"`
	Estado    string           `json:"estado"`
	Origen    string           `json:"origen"`
	Nota      string           `json:"nota,omitempty"`
	Persona   *PersonaResponse `json:"persona,omitempty"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}

// PermutaRequest intercambio de personas entre dos asignaciones existentes
type PermutaRequest struct {
	Asignacion1ID string `json:"asignacion1_id" binding:"required,uuid"`
	Asignacion2ID string `json:"asignacion2_id" binding:"required,uuid"`
	Nota          string `json:"nota,omitempty" binding:"omitempty,max=500"`
}

// PermutaResponse resultado de la permuta
// La permuta se aplica siempre; las violaciones de validación se devuelven
// como advertencias, nunca revierten el intercambio
type PermutaResponse struct {
	Mensaje      string   `json:"mensaje"`
	Advertencias []string `json:"advertencias,omitempty"`
}
