package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
	"github.com/Reimot5/cuadrante-servicios/pkg/fechas"
)

// ── Mock PersonaRepository ──

type mockPersonaRepo struct {
	personas map[string]*model.Persona
}

func newMockPersonaRepo() *mockPersonaRepo {
	return &mockPersonaRepo{personas: make(map[string]*model.Persona)}
}

func (m *mockPersonaRepo) Create(_ context.Context, persona *model.Persona) error {
	if persona.PersonaID == "" {
		persona.PersonaID = "per-" + persona.Nombre
	}
	m.personas[persona.PersonaID] = persona
	return nil
}

func (m *mockPersonaRepo) GetByID(_ context.Context, id string) (*model.Persona, error) {
	if p, ok := m.personas[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonaRepo) List(_ context.Context, grupo *model.Grupo, isConductor *bool) ([]model.Persona, error) {
	var result []model.Persona
	for _, p := range m.personas {
		if grupo != nil && p.Grupo != *grupo {
			continue
		}
		if isConductor != nil && p.IsConductor != *isConductor {
			continue
		}
		result = append(result, *p)
	}
	// Mismo orden que el repositorio real: grupo y nombre
	sort.Slice(result, func(i, j int) bool {
		if result[i].Grupo != result[j].Grupo {
			return result[i].Grupo < result[j].Grupo
		}
		return result[i].Nombre < result[j].Nombre
	})
	return result, nil
}

func (m *mockPersonaRepo) Update(_ context.Context, persona *model.Persona) error {
	m.personas[persona.PersonaID] = persona
	return nil
}

func (m *mockPersonaRepo) Delete(_ context.Context, id string) error {
	delete(m.personas, id)
	return nil
}

// ── Mock AsignacionRepository ──
//
// Mantiene el mismo invariante que la tabla real: única asignación por
// (fecha, persona). Si personas != nil, los listados y GetByID precargan
// la persona asociada igual que el Preload del repositorio real.

type mockAsignacionRepo struct {
	asignaciones map[string]*model.Asignacion
	porClave     map[string]string // "fecha:persona" → id
	personas     *mockPersonaRepo
	seq          int
}

func newMockAsignacionRepo(personas *mockPersonaRepo) *mockAsignacionRepo {
	return &mockAsignacionRepo{
		asignaciones: make(map[string]*model.Asignacion),
		porClave:     make(map[string]string),
		personas:     personas,
	}
}

func claveAsignacion(fecha time.Time, personaID string) string {
	return fechas.Formatear(fecha) + ":" + personaID
}

func (m *mockAsignacionRepo) Create(_ context.Context, asignacion *model.Asignacion) error {
	clave := claveAsignacion(asignacion.Fecha, asignacion.PersonaID)
	if _, ok := m.porClave[clave]; ok {
		return fmt.Errorf("clave duplicada: %s", clave)
	}
	if asignacion.AsignacionID == "" {
		m.seq++
		asignacion.AsignacionID = fmt.Sprintf("asig-%03d", m.seq)
	}
	m.asignaciones[asignacion.AsignacionID] = asignacion
	m.porClave[clave] = asignacion.AsignacionID
	return nil
}

func (m *mockAsignacionRepo) GetByID(_ context.Context, id string) (*model.Asignacion, error) {
	a, ok := m.asignaciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *a
	m.precargar(&copia)
	return &copia, nil
}

func (m *mockAsignacionRepo) GetByFechaYPersona(_ context.Context, fecha time.Time, personaID string) (*model.Asignacion, error) {
	id, ok := m.porClave[claveAsignacion(fecha, personaID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *m.asignaciones[id]
	m.precargar(&copia)
	return &copia, nil
}

func (m *mockAsignacionRepo) ListByFecha(_ context.Context, fecha time.Time) ([]model.Asignacion, error) {
	dia := fechas.Formatear(fecha)
	var result []model.Asignacion
	for _, a := range m.asignaciones {
		if fechas.Formatear(a.Fecha) != dia {
			continue
		}
		copia := *a
		m.precargar(&copia)
		result = append(result, copia)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PersonaID < result[j].PersonaID
	})
	return result, nil
}

func (m *mockAsignacionRepo) ListByRango(_ context.Context, inicio, fin time.Time, filtro *repository.AsignacionFiltro) ([]model.Asignacion, error) {
	var result []model.Asignacion
	for _, a := range m.asignaciones {
		dia := fechas.SinHora(a.Fecha)
		if dia.Before(fechas.SinHora(inicio)) || dia.After(fechas.SinHora(fin)) {
			continue
		}
		if filtro != nil {
			if filtro.PersonaID != "" && a.PersonaID != filtro.PersonaID {
				continue
			}
			if filtro.Estado != "" && a.Estado != filtro.Estado {
				continue
			}
		}
		copia := *a
		m.precargar(&copia)
		result = append(result, copia)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Fecha.Equal(result[j].Fecha) {
			return result[i].Fecha.Before(result[j].Fecha)
		}
		return result[i].PersonaID < result[j].PersonaID
	})
	return result, nil
}

func (m *mockAsignacionRepo) Update(_ context.Context, asignacion *model.Asignacion) error {
	anterior, ok := m.asignaciones[asignacion.AsignacionID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	clave := claveAsignacion(asignacion.Fecha, asignacion.PersonaID)
	if otro, ok := m.porClave[clave]; ok && otro != asignacion.AsignacionID {
		return fmt.Errorf("clave duplicada: %s", clave)
	}
	delete(m.porClave, claveAsignacion(anterior.Fecha, anterior.PersonaID))
	copia := *asignacion
	copia.Persona = nil
	m.asignaciones[asignacion.AsignacionID] = &copia
	m.porClave[clave] = asignacion.AsignacionID
	return nil
}

// UpdatePar imita la transacción del repositorio real: las dos claves
// nuevas se comprueban contra el resto de la tabla y, si alguna choca,
// no se aplica nada
func (m *mockAsignacionRepo) UpdatePar(_ context.Context, a, b *model.Asignacion) error {
	prevA, okA := m.asignaciones[a.AsignacionID]
	prevB, okB := m.asignaciones[b.AsignacionID]
	if !okA || !okB {
		return gorm.ErrRecordNotFound
	}

	delete(m.porClave, claveAsignacion(prevA.Fecha, prevA.PersonaID))
	delete(m.porClave, claveAsignacion(prevB.Fecha, prevB.PersonaID))

	claveA := claveAsignacion(a.Fecha, a.PersonaID)
	claveB := claveAsignacion(b.Fecha, b.PersonaID)
	_, chocaA := m.porClave[claveA]
	_, chocaB := m.porClave[claveB]
	if chocaA || chocaB || claveA == claveB {
		m.porClave[claveAsignacion(prevA.Fecha, prevA.PersonaID)] = prevA.AsignacionID
		m.porClave[claveAsignacion(prevB.Fecha, prevB.PersonaID)] = prevB.AsignacionID
		return fmt.Errorf("clave duplicada: %s / %s", claveA, claveB)
	}

	copiaA := *a
	copiaA.Persona = nil
	copiaB := *b
	copiaB.Persona = nil
	m.asignaciones[a.AsignacionID] = &copiaA
	m.asignaciones[b.AsignacionID] = &copiaB
	m.porClave[claveA] = a.AsignacionID
	m.porClave[claveB] = b.AsignacionID
	return nil
}

func (m *mockAsignacionRepo) Delete(_ context.Context, id string) error {
	if a, ok := m.asignaciones[id]; ok {
		delete(m.porClave, claveAsignacion(a.Fecha, a.PersonaID))
		delete(m.asignaciones, id)
	}
	return nil
}

func (m *mockAsignacionRepo) precargar(a *model.Asignacion) {
	if m.personas == nil {
		return
	}
	if p, ok := m.personas.personas[a.PersonaID]; ok {
		a.Persona = p
	}
}

// ── Mock ReglaRepository ──

type mockReglaRepo struct {
	reglas map[string]*model.ReglaConfigurable
	seq    int
}

func newMockReglaRepo() *mockReglaRepo {
	return &mockReglaRepo{reglas: make(map[string]*model.ReglaConfigurable)}
}

func (m *mockReglaRepo) BatchCreate(_ context.Context, reglas []model.ReglaConfigurable) error {
	for i := range reglas {
		r := reglas[i]
		if r.ReglaID == "" {
			m.seq++
			r.ReglaID = fmt.Sprintf("regla-%02d", m.seq)
		}
		m.reglas[r.ReglaID] = &r
	}
	return nil
}

func (m *mockReglaRepo) GetByID(_ context.Context, id string) (*model.ReglaConfigurable, error) {
	if r, ok := m.reglas[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReglaRepo) List(_ context.Context) ([]model.ReglaConfigurable, error) {
	var result []model.ReglaConfigurable
	for _, r := range m.reglas {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ReglaID < result[j].ReglaID
	})
	return result, nil
}

func (m *mockReglaRepo) ListActivasPorTrigger(_ context.Context, trigger model.Estado) ([]model.ReglaConfigurable, error) {
	var result []model.ReglaConfigurable
	for _, r := range m.reglas {
		if r.Activa && r.EstadoTrigger == trigger {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Prioridad < result[j].Prioridad
	})
	return result, nil
}

func (m *mockReglaRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.reglas)), nil
}

func (m *mockReglaRepo) Update(_ context.Context, regla *model.ReglaConfigurable) error {
	m.reglas[regla.ReglaID] = regla
	return nil
}

// ── Mock UsuarioRepository ──

type mockUsuarioRepo struct {
	usuarios map[string]*model.Usuario
}

func newMockUsuarioRepo() *mockUsuarioRepo {
	return &mockUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (m *mockUsuarioRepo) Create(_ context.Context, usuario *model.Usuario) error {
	if usuario.UsuarioID == "" {
		usuario.UsuarioID = "usr-" + usuario.Username
	}
	m.usuarios[usuario.UsuarioID] = usuario
	return nil
}

func (m *mockUsuarioRepo) GetByID(_ context.Context, id string) (*model.Usuario, error) {
	if u, ok := m.usuarios[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) GetByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range m.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) Update(_ context.Context, usuario *model.Usuario) error {
	m.usuarios[usuario.UsuarioID] = usuario
	return nil
}

// ── Mock PeriodoRepository ──

type mockPeriodoRepo struct {
	periodos map[string]*model.Periodo
	seq      int
}

func newMockPeriodoRepo() *mockPeriodoRepo {
	return &mockPeriodoRepo{periodos: make(map[string]*model.Periodo)}
}

func (m *mockPeriodoRepo) Create(_ context.Context, periodo *model.Periodo) error {
	if periodo.PeriodoID == "" {
		m.seq++
		periodo.PeriodoID = fmt.Sprintf("periodo-%02d", m.seq)
	}
	m.periodos[periodo.PeriodoID] = periodo
	return nil
}

func (m *mockPeriodoRepo) GetByID(_ context.Context, id string) (*model.Periodo, error) {
	if p, ok := m.periodos[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPeriodoRepo) List(_ context.Context) ([]model.Periodo, error) {
	var result []model.Periodo
	for _, p := range m.periodos {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PeriodoID < result[j].PeriodoID
	})
	return result, nil
}

func (m *mockPeriodoRepo) Update(_ context.Context, periodo *model.Periodo) error {
	m.periodos[periodo.PeriodoID] = periodo
	return nil
}

// ── Mock AuditLogRepository ──

type mockAuditLogRepo struct {
	entries []model.AuditLog
}

func newMockAuditLogRepo() *mockAuditLogRepo {
	return &mockAuditLogRepo{}
}

func (m *mockAuditLogRepo) Create(_ context.Context, entry *model.AuditLog) error {
	if entry.AuditLogID == "" {
		entry.AuditLogID = fmt.Sprintf("audit-%03d", len(m.entries)+1)
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockAuditLogRepo) List(_ context.Context, offset, limit int) ([]model.AuditLog, int64, error) {
	total := int64(len(m.entries))
	// Más recientes primero, como el repositorio real
	inversas := make([]model.AuditLog, len(m.entries))
	for i := range m.entries {
		inversas[len(m.entries)-1-i] = m.entries[i]
	}
	if offset >= len(inversas) {
		return nil, total, nil
	}
	fin := offset + limit
	if fin > len(inversas) {
		fin = len(inversas)
	}
	return inversas[offset:fin], total, nil
}

// ── Agregado de mocks para las pruebas ──

type mockRepos struct {
	usuario    *mockUsuarioRepo
	persona    *mockPersonaRepo
	asignacion *mockAsignacionRepo
	regla      *mockReglaRepo
	periodo    *mockPeriodoRepo
	auditLog   *mockAuditLogRepo
}

func newMockRepos() *mockRepos {
	persona := newMockPersonaRepo()
	return &mockRepos{
		usuario:    newMockUsuarioRepo(),
		persona:    persona,
		asignacion: newMockAsignacionRepo(persona),
		regla:      newMockReglaRepo(),
		periodo:    newMockPeriodoRepo(),
		auditLog:   newMockAuditLogRepo(),
	}
}

func (r *mockRepos) repository() *repository.Repository {
	return &repository.Repository{
		Usuario:    r.usuario,
		Persona:    r.persona,
		Asignacion: r.asignacion,
		Regla:      r.regla,
		Periodo:    r.periodo,
		AuditLog:   r.auditLog,
	}
}
