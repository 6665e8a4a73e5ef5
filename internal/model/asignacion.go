package model

import "time"

// Estado estado de servicio de una asignación
type Estado string

const (
	EstadoGuardia   Estado = "G"   // guardia
	EstadoLicencia  Estado = "LIC" // licencia
	EstadoComision  Estado = "C"   // comisión
	EstadoEnfermo   Estado = "PE"  // parte de enfermo
	EstadoBloqueado Estado = "X"   // bloqueado / descanso forzoso
	EstadoSemana    Estado = "S"   // semana de servicio
)

// Valido indica si el valor pertenece a la enumeración
func (e Estado) Valido() bool {
	switch e {
	case EstadoGuardia, EstadoLicencia, EstadoComision, EstadoEnfermo, EstadoBloqueado, EstadoSemana:
		return true
	}
	return false
}

// GeneraDescanso indica si el estado obliga a descansos posteriores
func (e Estado) GeneraDescanso() bool {
	return e == EstadoComision || e == EstadoSemana
}

// Origen procedencia de una asignación
type Origen string

const (
	OrigenManual Origen = "manual" // introducida por una persona
	OrigenAuto   Origen = "auto"   // producida por reglas o auto-asignación
)

// Valido indica si el valor pertenece a la enumeración
func (o Origen) Valido() bool {
	return o == OrigenManual || o == OrigenAuto
}

// Asignacion tabla de asignaciones — corresponde a asignaciones
// Clave natural: como mucho una fila por (fecha, persona_id)
type Asignacion struct {
	AsignacionID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"          json:"asignacion_id"`
	Fecha        time.Time `gorm:"type:date;not null;uniqueIndex:asignaciones_fecha_persona_uq" json:"fecha"`
	PersonaID    string    `gorm:"type:uuid;not null;uniqueIndex:asignaciones_fecha_persona_uq" json:"persona_id"`
	Estado       Estado    `gorm:"type:varchar(3);not null"                                json:"estado"`
	Origen       Origen    `gorm:"type:varchar(10);not null;default:'manual'"              json:"origen"`
	Nota         string    `gorm:"type:varchar(500)"                                       json:"nota,omitempty"`
	BaseModel

	// Relaciones
	Persona *Persona `gorm:"foreignKey:PersonaID;references:PersonaID" json:"persona,omitempty"`
}

// TableName nombre de la tabla
func (Asignacion) TableName() string { return "asignaciones" }
