package model

import "time"

// Estados de un período
const (
	PeriodoBorrador  = "BORRADOR"
	PeriodoPublicado = "PUBLICADO"
)

// Periodo tabla de períodos del cuadrante — corresponde a periodos
type Periodo struct {
	PeriodoID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"periodo_id"`
	FechaInicio time.Time  `gorm:"type:date;not null"                             json:"fecha_inicio"`
	FechaFin    time.Time  `gorm:"type:date;not null"                             json:"fecha_fin"`
	Estado      string     `gorm:"type:varchar(20);not null;default:'BORRADOR'"   json:"estado"`
	CreatedBy   string     `gorm:"type:varchar(50)"                               json:"created_by,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	BaseModel
}

// TableName nombre de la tabla
func (Periodo) TableName() string { return "periodos" }
