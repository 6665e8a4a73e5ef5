package dto

// CreatePersonaRequest alta de persona
type CreatePersonaRequest struct {
	Nombre      string `json:"nombre" binding:"required,max=100"`
	Grupo       string `json:"grupo" binding:"required,oneof=A B"`
	IsConductor bool   `json:"is_conductor"`
}

// UpdatePersonaRequest edición parcial de persona
type UpdatePersonaRequest struct {
	Nombre      *string `json:"nombre,omitempty" binding:"omitempty,max=100"`
	Grupo       *string `json:"grupo,omitempty" binding:"omitempty,oneof=A B"`
	IsConductor *bool   `json:"is_conductor,omitempty"`
}

// PersonaResponse respuesta de persona
type PersonaResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Grupo       string `json:"grupo"`
	IsConductor bool   `json:"is_conductor"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
