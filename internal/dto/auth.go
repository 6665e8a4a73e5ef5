package dto

// LoginRequest credenciales de acceso
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse tokens emitidos tras autenticarse
type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Usuario      UsuarioResponse `json:"usuario"`
}

// RefreshRequest renovación de access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UsuarioResponse respuesta de usuario
type UsuarioResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
}
