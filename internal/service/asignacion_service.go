package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
	"github.com/Reimot5/cuadrante-servicios/pkg/fechas"
)

// ── Errores de negocio del módulo de asignaciones ──

var (
	ErrAsignacionNoEncontrada   = errors.New("asignación no encontrada")
	ErrPersonaNoEncontrada      = errors.New("persona no encontrada")
	ErrFechaInvalida            = errors.New("fecha inválida, se espera formato YYYY-MM-DD")
	ErrEdicionPasadoNoPermitida = errors.New("no tiene permisos para editar fechas pasadas")
	ErrSobrescribirManual       = errors.New("no se puede sobrescribir asignación manual")
)

// AsignacionService operaciones sobre el cuadrante diario
type AsignacionService interface {
	List(ctx context.Context, req *dto.ListAsignacionesRequest) ([]dto.AsignacionResponse, error)
	// Create crea o sobrescribe la asignación de (fecha, persona) y propaga
	// los descansos automáticos. Devuelve creada=false si ya existía.
	Create(ctx context.Context, req *dto.CreateAsignacionRequest, username, rol string) (*dto.AsignacionResponse, bool, error)
	// CreateRango escribe el mismo estado para cada día del rango, aplicando
	// las reglas de descanso día a día
	CreateRango(ctx context.Context, req *dto.CreateAsignacionRangoRequest, username, rol string) ([]dto.AsignacionResponse, error)
	Delete(ctx context.Context, id, username, rol string) error
	// Permutar intercambia las personas de dos asignaciones existentes.
	// El intercambio se aplica siempre; las violaciones de validación de los
	// días afectados se devuelven como advertencias
	Permutar(ctx context.Context, req *dto.PermutaRequest, username string) (*dto.PermutaResponse, error)
}

type asignacionService struct {
	repo      *repository.Repository
	reglas    ReglasService
	validador ValidadorService
	logger    *zap.Logger
}

// NewAsignacionService crea una instancia de AsignacionService
func NewAsignacionService(repo *repository.Repository, reglas ReglasService, validador ValidadorService, logger *zap.Logger) AsignacionService {
	return &asignacionService{repo: repo, reglas: reglas, validador: validador, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *asignacionService) List(ctx context.Context, req *dto.ListAsignacionesRequest) ([]dto.AsignacionResponse, error) {
	filtro := &repository.AsignacionFiltro{
		PersonaID: req.PersonaID,
		Estado:    model.Estado(req.Estado),
	}

	// Sin rango explícito se consulta una ventana amplia alrededor de hoy
	inicio := fechas.Sumar(time.Now(), -365)
	fin := fechas.Sumar(time.Now(), 365)

	var err error
	if req.FechaInicio != "" {
		if inicio, err = fechas.Parsear(req.FechaInicio); err != nil {
			return nil, ErrFechaInvalida
		}
	}
	if req.FechaFin != "" {
		if fin, err = fechas.Parsear(req.FechaFin); err != nil {
			return nil, ErrFechaInvalida
		}
	}

	asignaciones, err := s.repo.Asignacion.ListByRango(ctx, inicio, fin, filtro)
	if err != nil {
		s.logger.Error("error al listar asignaciones", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AsignacionResponse, 0, len(asignaciones))
	for i := range asignaciones {
		a := &asignaciones[i]
		// El filtro por grupo se resuelve sobre la persona asociada
		if req.Grupo != "" && (a.Persona == nil || string(a.Persona.Grupo) != req.Grupo) {
			continue
		}
		result = append(result, *toAsignacionResponse(a))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *asignacionService) Create(ctx context.Context, req *dto.CreateAsignacionRequest, username, rol string) (*dto.AsignacionResponse, bool, error) {
	fecha, err := fechas.Parsear(req.Fecha)
	if err != nil {
		return nil, false, ErrFechaInvalida
	}

	if !puedeEditarPasado(fecha, rol) {
		return nil, false, ErrEdicionPasadoNoPermitida
	}

	if _, err := s.repo.Persona.GetByID(ctx, req.PersonaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrPersonaNoEncontrada
		}
		s.logger.Error("error al consultar persona", zap.Error(err))
		return nil, false, err
	}

	estado := model.Estado(req.Estado)

	existente, err := s.repo.Asignacion.GetByFechaYPersona(ctx, fecha, req.PersonaID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("error al consultar asignación existente", zap.Error(err))
		return nil, false, err
	}

	var asignacion *model.Asignacion
	creada := existente == nil

	if existente != nil {
		// Un usuario normal solo puede pisar entradas manuales; las
		// generadas por las reglas las corrige un ADMIN
		if existente.Origen != model.OrigenManual && rol != model.RolAdmin {
			return nil, false, ErrSobrescribirManual
		}
		existente.Estado = estado
		existente.Origen = model.OrigenManual
		existente.Nota = req.Nota
		if err := s.repo.Asignacion.Update(ctx, existente); err != nil {
			s.logger.Error("error al actualizar asignación", zap.Error(err))
			return nil, false, err
		}
		asignacion = existente
	} else {
		asignacion = &model.Asignacion{
			Fecha:     fecha,
			PersonaID: req.PersonaID,
			Estado:    estado,
			Origen:    model.OrigenManual,
			Nota:      req.Nota,
		}
		if err := s.repo.Asignacion.Create(ctx, asignacion); err != nil {
			s.logger.Error("error al crear asignación", zap.Error(err))
			return nil, false, err
		}
	}

	// Reglas de descanso consecutivo: en cada escritura, sin excepción
	if err := s.reglas.AplicarDescansos(ctx, req.PersonaID, fecha, estado); err != nil {
		return nil, false, err
	}

	accion := "CREATE_ASIGNACION"
	if !creada {
		accion = "UPDATE_ASIGNACION"
	}
	s.audit(ctx, username, accion, map[string]interface{}{
		"asignacion_id": asignacion.AsignacionID,
		"fecha":         fechas.Formatear(fecha),
		"persona_id":    req.PersonaID,
		"estado":        req.Estado,
	})

	completa, err := s.repo.Asignacion.GetByID(ctx, asignacion.AsignacionID)
	if err != nil {
		return toAsignacionResponse(asignacion), creada, nil
	}
	return toAsignacionResponse(completa), creada, nil
}

// ────────────────────── CreateRango ──────────────────────

func (s *asignacionService) CreateRango(ctx context.Context, req *dto.CreateAsignacionRangoRequest, username, rol string) ([]dto.AsignacionResponse, error) {
	inicio, err := fechas.Parsear(req.FechaInicio)
	if err != nil {
		return nil, ErrFechaInvalida
	}
	fin, err := fechas.Parsear(req.FechaFin)
	if err != nil {
		return nil, ErrFechaInvalida
	}

	dias := fechas.Rango(inicio, fin)

	// Los permisos se comprueban antes de escribir nada
	for _, dia := range dias {
		if !puedeEditarPasado(dia, rol) {
			return nil, ErrEdicionPasadoNoPermitida
		}
	}

	if _, err := s.repo.Persona.GetByID(ctx, req.PersonaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNoEncontrada
		}
		return nil, err
	}

	estado := model.Estado(req.Estado)
	result := make([]dto.AsignacionResponse, 0, len(dias))

	for _, dia := range dias {
		existente, err := s.repo.Asignacion.GetByFechaYPersona(ctx, dia, req.PersonaID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("error al consultar asignación existente", zap.Error(err))
			return nil, err
		}

		var asignacion *model.Asignacion
		if existente != nil {
			existente.Estado = estado
			existente.Origen = model.OrigenManual
			existente.Nota = req.Nota
			if err := s.repo.Asignacion.Update(ctx, existente); err != nil {
				return nil, err
			}
			asignacion = existente
		} else {
			asignacion = &model.Asignacion{
				Fecha:     dia,
				PersonaID: req.PersonaID,
				Estado:    estado,
				Origen:    model.OrigenManual,
				Nota:      req.Nota,
			}
			if err := s.repo.Asignacion.Create(ctx, asignacion); err != nil {
				return nil, err
			}
		}

		// Las reglas se aplican día a día, igual que en la escritura unitaria
		if err := s.reglas.AplicarDescansos(ctx, req.PersonaID, dia, estado); err != nil {
			return nil, err
		}

		result = append(result, *toAsignacionResponse(asignacion))
	}

	s.audit(ctx, username, "CREATE_ASIGNACION_RANGO", map[string]interface{}{
		"fecha_inicio": req.FechaInicio,
		"fecha_fin":    req.FechaFin,
		"persona_id":   req.PersonaID,
		"estado":       req.Estado,
		"cantidad":     len(result),
	})

	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *asignacionService) Delete(ctx context.Context, id, username, rol string) error {
	asignacion, err := s.repo.Asignacion.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAsignacionNoEncontrada
		}
		s.logger.Error("error al consultar asignación", zap.String("id", id), zap.Error(err))
		return err
	}

	if !puedeEditarPasado(asignacion.Fecha, rol) {
		return ErrEdicionPasadoNoPermitida
	}

	if err := s.repo.Asignacion.Delete(ctx, id); err != nil {
		s.logger.Error("error al eliminar asignación", zap.String("id", id), zap.Error(err))
		return err
	}

	s.audit(ctx, username, "DELETE_ASIGNACION", map[string]interface{}{
		"asignacion_id": id,
	})

	return nil
}

// ────────────────────── Permutar ──────────────────────

func (s *asignacionService) Permutar(ctx context.Context, req *dto.PermutaRequest, username string) (*dto.PermutaResponse, error) {
	asig1, err := s.repo.Asignacion.GetByID(ctx, req.Asignacion1ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAsignacionNoEncontrada
		}
		return nil, err
	}
	asig2, err := s.repo.Asignacion.GetByID(ctx, req.Asignacion2ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAsignacionNoEncontrada
		}
		return nil, err
	}

	nota := req.Nota
	if nota == "" {
		nota = "Permuta realizada"
	}

	// Se intercambian solo las personas; fecha y estado no se mueven
	asig1.PersonaID, asig2.PersonaID = asig2.PersonaID, asig1.PersonaID
	asig1.Persona, asig2.Persona = nil, nil
	asig1.Origen, asig2.Origen = model.OrigenManual, model.OrigenManual
	asig1.Nota, asig2.Nota = nota, nota

	// Las dos escrituras van en una transacción: una permuta a medias
	// dejaría el cuadrante en un estado que nadie pidió
	if err := s.repo.Asignacion.UpdatePar(ctx, asig1, asig2); err != nil {
		s.logger.Error("error al aplicar la permuta", zap.Error(err))
		return nil, err
	}

	// Revalidar los días afectados. Las violaciones no revierten la permuta:
	// se favorece la decisión del operador y se avisa
	advertencias := make([]string, 0)
	for _, fecha := range []time.Time{asig1.Fecha, asig2.Fecha} {
		v, err := s.validador.ValidarDia(ctx, fecha)
		if err != nil {
			s.logger.Error("error al validar día tras la permuta",
				zap.String("fecha", fechas.Formatear(fecha)), zap.Error(err))
			continue
		}
		advertencias = append(advertencias, v.Errores...)
	}

	s.audit(ctx, username, "PERMUTA_ASIGNACIONES", map[string]interface{}{
		"asignacion1_id": req.Asignacion1ID,
		"asignacion2_id": req.Asignacion2ID,
		"nota":           nota,
		"advertencias":   advertencias,
	})

	return &dto.PermutaResponse{
		Mensaje:      "Permuta realizada exitosamente",
		Advertencias: advertencias,
	}, nil
}

// ── Métodos auxiliares internos ──

// puedeEditarPasado las fechas anteriores a hoy solo las edita un ADMIN
func puedeEditarPasado(fecha time.Time, rol string) bool {
	hoy := fechas.SinHora(time.Now())
	return !fechas.SinHora(fecha).Before(hoy) || rol == model.RolAdmin
}

// audit registra la acción en el log de auditoría; un fallo de auditoría
// se anota pero no bloquea la operación ya aplicada
func (s *asignacionService) audit(ctx context.Context, username, accion string, detalle map[string]interface{}) {
	raw, _ := json.Marshal(detalle)
	entry := &model.AuditLog{
		Usuario: username,
		Accion:  accion,
		Detalle: string(raw),
	}
	if err := s.repo.AuditLog.Create(ctx, entry); err != nil {
		s.logger.Error("error al registrar auditoría",
			zap.String("accion", accion), zap.Error(err))
	}
}

func toAsignacionResponse(a *model.Asignacion) *dto.AsignacionResponse {
	resp := &dto.AsignacionResponse{
		ID:        a.AsignacionID,
		Fecha:     fechas.Formatear(a.Fecha),
		PersonaID: a.PersonaID,
		Estado:    string(a.Estado),
		Origen:    string(a.Origen),
		Nota:      a.Nota,
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: a.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if a.Persona != nil {
		resp.Persona = toPersonaResponse(a.Persona)
	}
	return resp
}
