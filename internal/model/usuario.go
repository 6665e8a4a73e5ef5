package model

// Roles de acceso
const (
	RolAdmin = "ADMIN"
	RolUser  = "USER"
)

// Usuario tabla de usuarios de acceso — corresponde a usuarios
type Usuario struct {
	UsuarioID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"usuario_id"`
	Username  string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	Password  string `gorm:"type:varchar(255);not null"                     json:"-"`
	Rol       string `gorm:"type:varchar(20);not null;default:'USER'"       json:"rol"`
	BaseModel
}

// TableName nombre de la tabla
func (Usuario) TableName() string { return "usuarios" }
