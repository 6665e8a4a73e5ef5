package model

import "time"

// AuditLog tabla de auditoría — corresponde a audit_logs
// Solo inserciones; nunca se actualiza ni borra desde la aplicación
type AuditLog struct {
	AuditLogID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"audit_log_id"`
	Usuario    string    `gorm:"type:varchar(50);not null"                      json:"usuario"`
	Accion     string    `gorm:"type:varchar(50);not null"                      json:"accion"`
	Detalle    string    `gorm:"type:text"                                      json:"detalle,omitempty"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName nombre de la tabla
func (AuditLog) TableName() string { return "audit_logs" }
