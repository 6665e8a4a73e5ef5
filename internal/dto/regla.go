package dto

// UpdateReglaRequest edición parcial de una regla de descanso
type UpdateReglaRequest struct {
	DiasDescanso   *int    `json:"dias_descanso,omitempty" binding:"omitempty,min=0,max=30"`
	EstadoDescanso *string `json:"estado_descanso,omitempty" binding:"omitempty,oneof=G LIC C PE X S"`
	Prioridad      *int    `json:"prioridad,omitempty" binding:"omitempty,min=1"`
	Activa         *bool   `json:"activa,omitempty"`
	Descripcion    *string `json:"descripcion,omitempty" binding:"omitempty,max=500"`
}

// ReglaResponse respuesta de regla configurable
type ReglaResponse struct {
	ID             string `json:"id"`
	EstadoTrigger  string `json:"estado_trigger"`
	DiasDescanso   int    `json:"dias_descanso"`
	EstadoDescanso string `json:"estado_descanso"`
	Prioridad      int    `json:"prioridad"`
	Activa         bool   `json:"activa"`
	Descripcion    string `json:"descripcion,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
