package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
	"github.com/Reimot5/cuadrante-servicios/pkg/fechas"
)

// AutoAsignadorService relleno automático de guardias por rango de fechas
type AutoAsignadorService interface {
	// AutoAsignar completa la dotación de guardias de cada día del rango,
	// equilibrando la carga acumulada y garantizando conductor en guardia.
	// Los fallos son por día: se anotan en el informe y la pasada continúa.
	// La pasada completa queda registrada en auditoría a nombre de username.
	AutoAsignar(ctx context.Context, inicio, fin time.Time, username string) (*dto.ResultadoAutoAsignacion, error)
}

type autoAsignadorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAutoAsignadorService crea una instancia de AutoAsignadorService
func NewAutoAsignadorService(repo *repository.Repository, logger *zap.Logger) AutoAsignadorService {
	return &autoAsignadorService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// AutoAsignar — asignación voraz con balance de carga
// ═══════════════════════════════════════════════════════════
//
// Heurística voraz, no un solver óptimo: no mira días futuros ni
// reconsidera elecciones automáticas anteriores. El contador de guardias
// por persona se siembra con las guardias ya existentes dentro del rango
// (es un contador de balanceo acotado al rango, no un total histórico) y
// se va incrementando con cada guardia creada, por lo que las decisiones
// de días posteriores dependen de las anteriores: el bucle de días es
// secuencial por diseño y no debe paralelizarse.
//
// La cancelación de contexto se comprueba entre días, nunca a mitad de
// uno, para conservar la atomicidad por día de la escritura voraz.

func (s *autoAsignadorService) AutoAsignar(ctx context.Context, inicio, fin time.Time, username string) (*dto.ResultadoAutoAsignacion, error) {
	inicio = fechas.SinHora(inicio)
	fin = fechas.SinHora(fin)

	resultado := &dto.ResultadoAutoAsignacion{
		Errores: make([]dto.ErrorDia, 0),
		Exito:   true,
	}

	// 1. Roster completo
	personas, err := s.repo.Persona.List(ctx, nil, nil)
	if err != nil {
		s.logger.Error("error al cargar personas", zap.Error(err))
		return nil, err
	}

	// 2. Contador de guardias por persona, sembrado con las G existentes en el rango
	contador := make(map[string]int, len(personas))
	for i := range personas {
		contador[personas[i].PersonaID] = 0
	}

	existentes, err := s.repo.Asignacion.ListByRango(ctx, inicio, fin,
		&repository.AsignacionFiltro{Estado: model.EstadoGuardia})
	if err != nil {
		s.logger.Error("error al cargar guardias existentes del rango", zap.Error(err))
		return nil, err
	}
	for i := range existentes {
		if _, ok := contador[existentes[i].PersonaID]; ok {
			contador[existentes[i].PersonaID]++
		}
	}

	// 3. Un día cada vez; el fallo de un día no aborta la pasada
	for _, dia := range fechas.Rango(inicio, fin) {
		if err := ctx.Err(); err != nil {
			return resultado, err
		}

		resultado.DiasProcesados++

		if err := s.asignarGuardiasDia(ctx, dia, personas, contador, resultado); err != nil {
			resultado.Errores = append(resultado.Errores, dto.ErrorDia{
				Fecha:   fechas.Formatear(dia),
				Mensaje: err.Error(),
			})
			resultado.Exito = false
		}
	}

	s.logger.Info("auto-asignación completada",
		zap.String("inicio", fechas.Formatear(inicio)),
		zap.String("fin", fechas.Formatear(fin)),
		zap.Int("dias", resultado.DiasProcesados),
		zap.Int("guardias", resultado.GuardiasAsignadas),
		zap.Int("fallos", len(resultado.Errores)),
	)

	// El informe completo queda en auditoría; un fallo de auditoría se
	// anota pero no invalida la pasada ya aplicada
	detalle, _ := json.Marshal(resultado)
	entry := &model.AuditLog{
		Usuario: username,
		Accion:  "AUTO_ASIGNAR_GUARDIAS",
		Detalle: string(detalle),
	}
	if err := s.repo.AuditLog.Create(ctx, entry); err != nil {
		s.logger.Error("error al registrar auditoría de la auto-asignación", zap.Error(err))
	}

	return resultado, nil
}

// asignarGuardiasDia completa la dotación de un día concreto
func (s *autoAsignadorService) asignarGuardiasDia(
	ctx context.Context,
	dia time.Time,
	personas []model.Persona,
	contador map[string]int,
	resultado *dto.ResultadoAutoAsignacion,
) error {
	asignaciones, err := s.repo.Asignacion.ListByFecha(ctx, dia)
	if err != nil {
		return fmt.Errorf("error al consultar asignaciones del día: %w", err)
	}

	// Ocupadas: cualquier estado cuenta; guardias: solo estado G
	ocupadas := make(map[string]bool, len(asignaciones))
	guardiasExistentes := make([]model.Asignacion, 0, len(asignaciones))
	for i := range asignaciones {
		ocupadas[asignaciones[i].PersonaID] = true
		if asignaciones[i].Estado == model.EstadoGuardia {
			guardiasExistentes = append(guardiasExistentes, asignaciones[i])
		}
	}

	necesarias := GuardiasPorDia - len(guardiasExistentes)
	if necesarias <= 0 {
		// El día ya está completo: no es un fallo
		return nil
	}

	disponibles := make([]model.Persona, 0, len(personas))
	for i := range personas {
		if !ocupadas[personas[i].PersonaID] {
			disponibles = append(disponibles, personas[i])
		}
	}

	if len(disponibles) < necesarias {
		return fmt.Errorf("No hay suficientes personas disponibles (necesarias: %d, disponibles: %d)",
			necesarias, len(disponibles))
	}

	// Garantía de conductor: o ya hay uno de guardia, o debe haber uno disponible
	tieneConductor := false
	for i := range guardiasExistentes {
		if guardiasExistentes[i].Persona != nil && guardiasExistentes[i].Persona.IsConductor {
			tieneConductor = true
			break
		}
	}
	if !tieneConductor {
		hayConductorDisponible := false
		for i := range disponibles {
			if disponibles[i].IsConductor {
				hayConductorDisponible = true
				break
			}
		}
		if !hayConductorDisponible {
			return fmt.Errorf("No hay conductores disponibles para asignar")
		}
	}

	candidatos := seleccionarCandidatos(disponibles, necesarias, contador, tieneConductor)

	for i := range candidatos {
		nueva := &model.Asignacion{
			Fecha:     dia,
			PersonaID: candidatos[i].PersonaID,
			Estado:    model.EstadoGuardia,
			Origen:    model.OrigenAuto,
			Nota:      "Asignación automática",
		}
		if err := s.repo.Asignacion.Create(ctx, nueva); err != nil {
			return fmt.Errorf("error al crear guardia para %s: %w", candidatos[i].Nombre, err)
		}

		contador[candidatos[i].PersonaID]++
		resultado.GuardiasAsignadas++
	}

	return nil
}

// seleccionarCandidatos elige exactamente cantidad personas de disponibles
//
// Determinista: con la misma entrada produce siempre la misma salida.
//  1. Si el día aún no tiene conductor de guardia, se reserva plaza para el
//     conductor con menos guardias (empates: orden estable de entrada).
//  2. El resto de plazas se cubre por contador ascendente; los empates se
//     rompen por orden lexicográfico del ID de persona, un orden total
//     arbitrario pero reproducible entre pasadas.
func seleccionarCandidatos(
	disponibles []model.Persona,
	cantidad int,
	contador map[string]int,
	yaTieneConductor bool,
) []model.Persona {
	candidatos := make([]model.Persona, 0, cantidad)
	restantes := make([]model.Persona, len(disponibles))
	copy(restantes, disponibles)

	// 1. Asegurar conductor si falta (el de menos guardias, de cualquier grupo)
	if !yaTieneConductor {
		conductores := make([]model.Persona, 0, len(restantes))
		for i := range restantes {
			if restantes[i].IsConductor {
				conductores = append(conductores, restantes[i])
			}
		}
		sort.SliceStable(conductores, func(i, j int) bool {
			return contador[conductores[i].PersonaID] < contador[conductores[j].PersonaID]
		})

		if len(conductores) > 0 {
			elegido := conductores[0]
			candidatos = append(candidatos, elegido)

			filtradas := restantes[:0]
			for i := range restantes {
				if restantes[i].PersonaID != elegido.PersonaID {
					filtradas = append(filtradas, restantes[i])
				}
			}
			restantes = filtradas
		}
	}

	// 2. Completar por balance estricto de guardias
	faltan := cantidad - len(candidatos)
	if faltan > 0 {
		sort.Slice(restantes, func(i, j int) bool {
			ci, cj := contador[restantes[i].PersonaID], contador[restantes[j].PersonaID]
			if ci != cj {
				return ci < cj // menos guardias primero
			}
			return strings.Compare(restantes[i].PersonaID, restantes[j].PersonaID) < 0
		})
		candidatos = append(candidatos, restantes[:faltan]...)
	}

	return candidatos
}
