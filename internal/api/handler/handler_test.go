package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ════════════════════════════════════════════════════════════
// Mock de servicios
// ════════════════════════════════════════════════════════════

// ── Mock AsignacionService ──

type mockAsignacionService struct {
	listResult    []dto.AsignacionResponse
	listErr       error
	createResult  *dto.AsignacionResponse
	createCreada  bool
	createErr     error
	rangoResult   []dto.AsignacionResponse
	rangoErr      error
	deleteErr     error
	permutaResult *dto.PermutaResponse
	permutaErr    error
}

func (m *mockAsignacionService) List(_ context.Context, _ *dto.ListAsignacionesRequest) ([]dto.AsignacionResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockAsignacionService) Create(_ context.Context, _ *dto.CreateAsignacionRequest, _, _ string) (*dto.AsignacionResponse, bool, error) {
	return m.createResult, m.createCreada, m.createErr
}
func (m *mockAsignacionService) CreateRango(_ context.Context, _ *dto.CreateAsignacionRangoRequest, _, _ string) ([]dto.AsignacionResponse, error) {
	return m.rangoResult, m.rangoErr
}
func (m *mockAsignacionService) Delete(_ context.Context, _, _, _ string) error {
	return m.deleteErr
}
func (m *mockAsignacionService) Permutar(_ context.Context, _ *dto.PermutaRequest, _ string) (*dto.PermutaResponse, error) {
	return m.permutaResult, m.permutaErr
}

// ── Mock ValidadorService ──

type mockValidadorService struct {
	diaResult   *dto.ValidacionDia
	diaErr      error
	rangoResult []dto.ValidacionDia
	rangoErr    error
}

func (m *mockValidadorService) ValidarDia(_ context.Context, _ time.Time) (*dto.ValidacionDia, error) {
	return m.diaResult, m.diaErr
}
func (m *mockValidadorService) ValidarRango(_ context.Context, _, _ time.Time) ([]dto.ValidacionDia, error) {
	return m.rangoResult, m.rangoErr
}

// ── Mock AutoAsignadorService ──

type mockAutoAsignadorService struct {
	result *dto.ResultadoAutoAsignacion
	err    error
}

func (m *mockAutoAsignadorService) AutoAsignar(_ context.Context, _, _ time.Time, _ string) (*dto.ResultadoAutoAsignacion, error) {
	return m.result, m.err
}

// ── Auxiliares ──

// conIdentidad simula la identidad que inyectaría el middleware JWT
func conIdentidad(username, rol string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("usuario_id", "usr-"+username)
		c.Set("username", username)
		c.Set("rol", rol)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ════════════════════════════════════════════════════════════
// Asignaciones
// ════════════════════════════════════════════════════════════

func TestAsignacionHandler_Permutar_DevuelveAdvertencias(t *testing.T) {
	h := NewAsignacionHandler(&mockAsignacionService{
		permutaResult: &dto.PermutaResponse{
			Mensaje:      "Permuta realizada exitosamente",
			Advertencias: []string{"Debe haber al menos 1 conductor en guardia"},
		},
	})

	r := gin.New()
	r.POST("/permutar", conIdentidad("mando", "USER"), h.Permutar)

	w := doRequest(r, http.MethodPost, "/permutar", dto.PermutaRequest{
		Asignacion1ID: "7b0d8f3e-81c7-4cd5-b54e-0d6a3bb3fa01",
		Asignacion2ID: "7b0d8f3e-81c7-4cd5-b54e-0d6a3bb3fa02",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("se esperaba 200, hay %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data dto.PermutaResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Data.Advertencias) != 1 {
		t.Errorf("las advertencias deben llegar al cliente: %+v", resp.Data)
	}
}

func TestAsignacionHandler_Create_ManualProtegidaDa403(t *testing.T) {
	h := NewAsignacionHandler(&mockAsignacionService{
		createErr: service.ErrSobrescribirManual,
	})

	r := gin.New()
	r.POST("/asignaciones", conIdentidad("operador", "USER"), h.Create)

	w := doRequest(r, http.MethodPost, "/asignaciones", dto.CreateAsignacionRequest{
		Fecha:     "2026-09-14",
		PersonaID: "7b0d8f3e-81c7-4cd5-b54e-0d6a3bb3fa01",
		Estado:    "G",
	})

	if w.Code != http.StatusForbidden {
		t.Errorf("se esperaba 403, hay %d: %s", w.Code, w.Body.String())
	}
}

func TestAsignacionHandler_Create_NuevaDa201(t *testing.T) {
	h := NewAsignacionHandler(&mockAsignacionService{
		createResult: &dto.AsignacionResponse{ID: "asig-1", Estado: "G", Origen: "manual"},
		createCreada: true,
	})

	r := gin.New()
	r.POST("/asignaciones", conIdentidad("operador", "USER"), h.Create)

	w := doRequest(r, http.MethodPost, "/asignaciones", dto.CreateAsignacionRequest{
		Fecha:     "2026-09-14",
		PersonaID: "7b0d8f3e-81c7-4cd5-b54e-0d6a3bb3fa01",
		Estado:    "G",
	})

	if w.Code != http.StatusCreated {
		t.Errorf("se esperaba 201, hay %d: %s", w.Code, w.Body.String())
	}
}

func TestAsignacionHandler_Create_EstadoInvalidoDa400(t *testing.T) {
	h := NewAsignacionHandler(&mockAsignacionService{})

	r := gin.New()
	r.POST("/asignaciones", conIdentidad("operador", "USER"), h.Create)

	w := doRequest(r, http.MethodPost, "/asignaciones", map[string]string{
		"fecha":      "2026-09-14",
		"persona_id": "7b0d8f3e-81c7-4cd5-b54e-0d6a3bb3fa01",
		"estado":     "ZZ",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("un estado fuera del catálogo debe dar 400, hay %d", w.Code)
	}
}

// ════════════════════════════════════════════════════════════
// Cuadrante
// ════════════════════════════════════════════════════════════

func TestCuadranteHandler_ValidarDia_FechaInvalida(t *testing.T) {
	h := NewCuadranteHandler(&mockValidadorService{}, &mockAutoAsignadorService{})

	r := gin.New()
	r.GET("/validar/:fecha", h.ValidarDia)

	w := doRequest(r, http.MethodGet, "/validar/14-09-2026", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("se esperaba 400, hay %d", w.Code)
	}
}

func TestCuadranteHandler_AutoAsignar_InformaFallosCon200(t *testing.T) {
	h := NewCuadranteHandler(&mockValidadorService{}, &mockAutoAsignadorService{
		result: &dto.ResultadoAutoAsignacion{
			DiasProcesados:    5,
			GuardiasAsignadas: 12,
			Errores: []dto.ErrorDia{
				{Fecha: "2026-09-16", Mensaje: "No hay conductores disponibles para asignar"},
			},
			Exito: false,
		},
	})

	r := gin.New()
	r.POST("/auto-asignar", conIdentidad("mando", "ADMIN"), h.AutoAsignar)

	w := doRequest(r, http.MethodPost, "/auto-asignar", dto.AutoAsignarRequest{
		FechaInicio: "2026-09-14",
		FechaFin:    "2026-09-18",
	})

	// Los fallos por día no son un fallo HTTP: van dentro del informe
	if w.Code != http.StatusOK {
		t.Fatalf("se esperaba 200, hay %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data dto.ResultadoAutoAsignacion `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.DiasProcesados != 5 || resp.Data.Exito {
		t.Errorf("informe inesperado: %+v", resp.Data)
	}
}
