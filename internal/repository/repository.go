package repository

import "gorm.io/gorm"

// Repository punto de entrada agregado de todos los repositorios
type Repository struct {
	Usuario    UsuarioRepository
	Persona    PersonaRepository
	Asignacion AsignacionRepository
	Regla      ReglaRepository
	Periodo    PeriodoRepository
	AuditLog   AuditLogRepository
}

// NewRepository crea el agregado de repositorios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Usuario:    NewUsuarioRepo(db),
		Persona:    NewPersonaRepo(db),
		Asignacion: NewAsignacionRepo(db),
		Regla:      NewReglaRepo(db),
		Periodo:    NewPeriodoRepo(db),
		AuditLog:   NewAuditLogRepo(db),
	}
}
