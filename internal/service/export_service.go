package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
	"github.com/Reimot5/cuadrante-servicios/pkg/fechas"
)

// ── Errores de negocio del módulo de exportación ──

var (
	ErrExportSinPersonas = errors.New("no hay personas registradas para exportar")
	ErrExportGenerar     = errors.New("error al generar el fichero de exportación")
)

// ExportService exportación del cuadrante
//
// Notas de diseño:
//   - El Excel es una rejilla personas × días con la letra de estado en cada
//     celda; es el formato con el que se trabaja en papel
//   - El ICS exporta solo las guardias (G) de una persona como eventos de
//     día completo, para suscribirse desde el calendario del móvil
//   - Ambas exportaciones devuelven el contenido en memoria; el handler
//     fija las cabeceras HTTP y escribe la respuesta
type ExportService interface {
	// ExportCuadranteExcel exporta la rejilla del rango como .xlsx
	ExportCuadranteExcel(ctx context.Context, inicio, fin string) (*bytes.Buffer, string, error)
	// ExportCalendarioICS exporta las guardias de una persona como iCalendar
	ExportCalendarioICS(ctx context.Context, personaID, inicio, fin string) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService crea una instancia de ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// ExportCuadranteExcel — rejilla personas × días
// ════════════════════════════════════════════════════════════

func (s *exportService) ExportCuadranteExcel(ctx context.Context, inicio, fin string) (*bytes.Buffer, string, error) {
	fechaInicio, err := fechas.Parsear(inicio)
	if err != nil {
		return nil, "", ErrFechaInvalida
	}
	fechaFin, err := fechas.Parsear(fin)
	if err != nil {
		return nil, "", ErrFechaInvalida
	}

	personas, err := s.repo.Persona.List(ctx, nil, nil)
	if err != nil {
		s.logger.Error("error al listar personas para exportación", zap.Error(err))
		return nil, "", err
	}
	if len(personas) == 0 {
		return nil, "", ErrExportSinPersonas
	}

	asignaciones, err := s.repo.Asignacion.ListByRango(ctx, fechaInicio, fechaFin, nil)
	if err != nil {
		s.logger.Error("error al listar asignaciones para exportación", zap.Error(err))
		return nil, "", err
	}

	// Índice "fecha:persona" → letra de estado
	estadoIndex := make(map[string]string, len(asignaciones))
	for i := range asignaciones {
		a := &asignaciones[i]
		key := fechas.Formatear(a.Fecha) + ":" + a.PersonaID
		estadoIndex[key] = string(a.Estado)
	}

	dias := fechas.Rango(fechaInicio, fechaFin)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Cuadrante"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// Anchos: nombre y grupo fijos, un ancho corto por día
	f.SetColWidth(sheetName, "A", "A", 24)
	f.SetColWidth(sheetName, "B", "B", 8)
	for i := range dias {
		col := colName(2 + i)
		f.SetColWidth(sheetName, col, col, 6)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// Título
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Cuadrante %s a %s", inicio, fin))
	f.MergeCell(sheetName, "A1", cell(colName(1+len(dias)), 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// Cabecera: día del mes por columna
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "Persona")
	f.SetCellValue(sheetName, cell("B", row), "Grupo")
	for i, dia := range dias {
		f.SetCellValue(sheetName, cell(colName(2+i), row), dia.Day())
	}

	// Una fila por persona, ya ordenadas por grupo y nombre
	row = 3
	for i := range personas {
		p := &personas[i]
		nombre := p.Nombre
		if p.IsConductor {
			nombre += " (C)"
		}
		f.SetCellValue(sheetName, cell("A", row), nombre)
		f.SetCellValue(sheetName, cell("B", row), string(p.Grupo))
		for j, dia := range dias {
			key := fechas.Formatear(dia) + ":" + p.PersonaID
			if estado, ok := estadoIndex[key]; ok {
				f.SetCellValue(sheetName, cell(colName(2+j), row), estado)
			} else {
				f.SetCellValue(sheetName, cell(colName(2+j), row), "-")
			}
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("error al escribir el Excel", zap.Error(err))
		return nil, "", ErrExportGenerar
	}

	filename := fmt.Sprintf("cuadrante_%s_%s.xlsx", inicio, fin)
	return buf, filename, nil
}

// ════════════════════════════════════════════════════════════
// ExportCalendarioICS — guardias de una persona como iCalendar
// ════════════════════════════════════════════════════════════

func (s *exportService) ExportCalendarioICS(ctx context.Context, personaID, inicio, fin string) ([]byte, string, error) {
	fechaInicio, err := fechas.Parsear(inicio)
	if err != nil {
		return nil, "", ErrFechaInvalida
	}
	fechaFin, err := fechas.Parsear(fin)
	if err != nil {
		return nil, "", ErrFechaInvalida
	}

	persona, err := s.repo.Persona.GetByID(ctx, personaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrPersonaNoEncontrada
		}
		return nil, "", err
	}

	filtro := &repository.AsignacionFiltro{
		PersonaID: personaID,
		Estado:    model.EstadoGuardia,
	}
	asignaciones, err := s.repo.Asignacion.ListByRango(ctx, fechaInicio, fechaFin, filtro)
	if err != nil {
		s.logger.Error("error al listar guardias para exportación", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//cuadrante-servicios//ES")

	for i := range asignaciones {
		a := &asignaciones[i]
		event := cal.AddEvent(a.AsignacionID + "@cuadrante")
		event.SetCreatedTime(a.CreatedAt)
		event.SetDtStampTime(a.UpdatedAt)
		// Evento de día completo: DTEND es el día siguiente, exclusivo
		event.SetAllDayStartAt(a.Fecha)
		event.SetAllDayEndAt(fechas.Sumar(a.Fecha, 1))
		event.SetSummary(fmt.Sprintf("Guardia — %s", persona.Nombre))
		if a.Nota != "" {
			event.SetDescription(a.Nota)
		}
	}

	filename := fmt.Sprintf("guardias_%s_%s_%s.ics", persona.Nombre, inicio, fin)
	return []byte(cal.Serialize()), filename, nil
}

// ── Funciones auxiliares ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
