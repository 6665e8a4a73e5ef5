package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/pkg/fechas"
)

// ── Pruebas auxiliares ──

func setupTestValidadorService() (ValidadorService, *mockRepos) {
	repos := newMockRepos()
	svc := NewValidadorService(repos.repository(), zap.NewNop())
	return svc, repos
}

// seedPlantilla crea una plantilla mínima: un conductor del grupo A,
// un conductor del grupo B y tres personas del grupo B sin carné
func seedPlantilla(repos *mockRepos) {
	ctx := context.Background()
	repos.persona.Create(ctx, &model.Persona{PersonaID: "per-ana", Nombre: "Ana", Grupo: model.GrupoA, IsConductor: true})
	repos.persona.Create(ctx, &model.Persona{PersonaID: "per-bruno", Nombre: "Bruno", Grupo: model.GrupoB, IsConductor: true})
	repos.persona.Create(ctx, &model.Persona{PersonaID: "per-carla", Nombre: "Carla", Grupo: model.GrupoB, IsConductor: false})
	repos.persona.Create(ctx, &model.Persona{PersonaID: "per-david", Nombre: "David", Grupo: model.GrupoB, IsConductor: false})
	repos.persona.Create(ctx, &model.Persona{PersonaID: "per-elena", Nombre: "Elena", Grupo: model.GrupoB, IsConductor: false})
}

func seedGuardia(repos *mockRepos, fecha time.Time, personaID string) {
	repos.asignacion.Create(context.Background(), &model.Asignacion{
		Fecha:     fecha,
		PersonaID: personaID,
		Estado:    model.EstadoGuardia,
		Origen:    model.OrigenManual,
	})
}

func diaDePrueba() time.Time {
	return fechas.SinHora(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
}

// ── ValidarDia ──

func TestValidadorService_ValidarDia_Valido(t *testing.T) {
	svc, repos := setupTestValidadorService()
	seedPlantilla(repos)

	dia := diaDePrueba()
	seedGuardia(repos, dia, "per-ana")
	seedGuardia(repos, dia, "per-carla")
	seedGuardia(repos, dia, "per-david")
	seedGuardia(repos, dia, "per-elena")

	v, err := svc.ValidarDia(context.Background(), dia)
	if err != nil {
		t.Fatalf("ValidarDia debería funcionar: %v", err)
	}
	if !v.Valido {
		t.Errorf("el día debería ser válido, errores: %v", v.Errores)
	}
	if v.Guardias != 4 {
		t.Errorf("se esperaban 4 guardias, hay %d", v.Guardias)
	}
	if !v.TieneConductor {
		t.Error("Ana es conductora, TieneConductor debería ser true")
	}
	if !v.TieneGrupoA {
		t.Error("Ana es del grupo A, TieneGrupoA debería ser true")
	}
}

func TestValidadorService_ValidarDia_GuardiasInsuficientes(t *testing.T) {
	svc, repos := setupTestValidadorService()
	seedPlantilla(repos)

	dia := diaDePrueba()
	seedGuardia(repos, dia, "per-ana")
	seedGuardia(repos, dia, "per-carla")
	seedGuardia(repos, dia, "per-david")

	v, err := svc.ValidarDia(context.Background(), dia)
	if err != nil {
		t.Fatalf("ValidarDia debería funcionar: %v", err)
	}
	if v.Valido {
		t.Error("el día no debería ser válido con 3 guardias")
	}
	if len(v.Errores) != 1 {
		t.Fatalf("se esperaba 1 error, hay %d: %v", len(v.Errores), v.Errores)
	}
	if v.Errores[0] != "Se requieren exactamente 4 guardias, pero hay 3" {
		t.Errorf("mensaje inesperado: %q", v.Errores[0])
	}
}

func TestValidadorService_ValidarDia_SinConductor(t *testing.T) {
	svc, repos := setupTestValidadorService()
	seedPlantilla(repos)
	repos.persona.Create(context.Background(), &model.Persona{
		PersonaID: "per-felipe", Nombre: "Felipe", Grupo: model.GrupoB, IsConductor: false,
	})

	dia := diaDePrueba()
	seedGuardia(repos, dia, "per-carla")
	seedGuardia(repos, dia, "per-david")
	seedGuardia(repos, dia, "per-elena")
	seedGuardia(repos, dia, "per-felipe")

	v, err := svc.ValidarDia(context.Background(), dia)
	if err != nil {
		t.Fatalf("ValidarDia debería funcionar: %v", err)
	}
	if v.Valido {
		t.Error("el día no debería ser válido sin conductor")
	}
	if len(v.Errores) != 1 || v.Errores[0] != "Debe haber al menos 1 conductor en guardia" {
		t.Errorf("errores inesperados: %v", v.Errores)
	}
	if v.TieneGrupoA {
		t.Error("TieneGrupoA debería ser false sin nadie del grupo A")
	}
}

func TestValidadorService_ValidarDia_ErroresAcumulados(t *testing.T) {
	svc, repos := setupTestValidadorService()
	seedPlantilla(repos)

	// Dos guardias y ninguna conductora: deben salir los dos errores a la vez
	dia := diaDePrueba()
	seedGuardia(repos, dia, "per-carla")
	seedGuardia(repos, dia, "per-david")

	v, err := svc.ValidarDia(context.Background(), dia)
	if err != nil {
		t.Fatalf("ValidarDia debería funcionar: %v", err)
	}
	if len(v.Errores) != 2 {
		t.Errorf("se esperaban 2 errores acumulados, hay %d: %v", len(v.Errores), v.Errores)
	}
}

func TestValidadorService_ValidarDia_SoloCuentaGuardias(t *testing.T) {
	svc, repos := setupTestValidadorService()
	seedPlantilla(repos)

	dia := diaDePrueba()
	seedGuardia(repos, dia, "per-ana")
	seedGuardia(repos, dia, "per-carla")
	seedGuardia(repos, dia, "per-david")
	seedGuardia(repos, dia, "per-elena")
	// Los estados que no son G no cuentan para la dotación
	repos.asignacion.Create(context.Background(), &model.Asignacion{
		Fecha: dia, PersonaID: "per-bruno", Estado: model.EstadoLicencia, Origen: model.OrigenManual,
	})

	v, err := svc.ValidarDia(context.Background(), dia)
	if err != nil {
		t.Fatalf("ValidarDia debería funcionar: %v", err)
	}
	if v.Guardias != 4 {
		t.Errorf("la licencia no debe contar como guardia: guardias=%d", v.Guardias)
	}
	if !v.Valido {
		t.Errorf("el día debería ser válido, errores: %v", v.Errores)
	}
}

func TestValidadorService_ValidarDia_DiaVacio(t *testing.T) {
	svc, repos := setupTestValidadorService()
	seedPlantilla(repos)

	v, err := svc.ValidarDia(context.Background(), diaDePrueba())
	if err != nil {
		t.Fatalf("ValidarDia debería funcionar: %v", err)
	}
	if v.Valido {
		t.Error("un día vacío no puede ser válido")
	}
	if v.Guardias != 0 {
		t.Errorf("se esperaban 0 guardias, hay %d", v.Guardias)
	}
}

// ── ValidarRango ──

func TestValidadorService_ValidarRango_OrdenCronologico(t *testing.T) {
	svc, repos := setupTestValidadorService()
	seedPlantilla(repos)

	inicio := diaDePrueba()
	fin := fechas.Sumar(inicio, 2)

	validaciones, err := svc.ValidarRango(context.Background(), inicio, fin)
	if err != nil {
		t.Fatalf("ValidarRango debería funcionar: %v", err)
	}
	if len(validaciones) != 3 {
		t.Fatalf("se esperaban 3 días, hay %d", len(validaciones))
	}
	for i, v := range validaciones {
		esperada := fechas.Formatear(fechas.Sumar(inicio, i))
		if v.Fecha != esperada {
			t.Errorf("día %d: se esperaba fecha %s, hay %s", i, esperada, v.Fecha)
		}
	}
}
