package model

// Grupo grupo de pertenencia de una persona
type Grupo string

const (
	GrupoA Grupo = "A"
	GrupoB Grupo = "B"
)

// Valido indica si el valor pertenece a la enumeración
func (g Grupo) Valido() bool {
	return g == GrupoA || g == GrupoB
}

// Persona tabla de personas — corresponde a personas
type Persona struct {
	PersonaID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"persona_id"`
	Nombre      string `gorm:"type:varchar(100);not null"                     json:"nombre"`
	Grupo       Grupo  `gorm:"type:varchar(1);not null"                       json:"grupo"`
	IsConductor bool   `gorm:"not null;default:false"                         json:"is_conductor"`
	BaseModel
}

// TableName nombre de la tabla
func (Persona) TableName() string { return "personas" }
