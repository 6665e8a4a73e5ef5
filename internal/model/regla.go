package model

// ReglaConfigurable tabla de reglas de descanso — corresponde a reglas_configurables
//
// Cada regla asocia un estado disparador (C o S) con el número de días de
// descanso que impone y el estado con que se marcan. Con varias reglas activas
// para el mismo disparador gana la de menor prioridad.
type ReglaConfigurable struct {
	ReglaID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"regla_id"`
	EstadoTrigger  Estado `gorm:"type:varchar(3);not null"                       json:"estado_trigger"`
	DiasDescanso   int    `gorm:"not null"                                       json:"dias_descanso"`
	EstadoDescanso Estado `gorm:"type:varchar(3);not null"                       json:"estado_descanso"`
	Prioridad      int    `gorm:"not null;default:1"                             json:"prioridad"`
	Activa         bool   `gorm:"not null;default:true"                          json:"activa"`
	Descripcion    string `gorm:"type:varchar(500)"                              json:"descripcion,omitempty"`
	BaseModel
}

// TableName nombre de la tabla
func (ReglaConfigurable) TableName() string { return "reglas_configurables" }
