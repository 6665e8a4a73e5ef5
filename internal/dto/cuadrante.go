package dto

// AutoAsignarRequest rango sobre el que auto-asignar guardias
type AutoAsignarRequest struct {
	FechaInicio string `json:"fecha_inicio" binding:"required"`
	FechaFin    string `json:"fecha_fin" binding:"required"`
}

// ValidacionDia resultado de validar las restricciones duras de un día
//
// TieneGrupoA es informativo: la presencia del Grupo A dejó de ser requisito
// duro y no debe volver a forzarse sin decisión de producto.
type ValidacionDia struct {
	Fecha          string   `json:"fecha"`
	Valido         bool     `json:"valido"`
	Errores        []string `json:"errores"`
	Guardias       int      `json:"guardias"`
	TieneGrupoA    bool     `json:"tiene_grupo_a"`
	TieneConductor bool     `json:"tiene_conductor"`
}

// ErrorDia fallo de auto-asignación de un día concreto
type ErrorDia struct {
	Fecha   string `json:"fecha"`
	Mensaje string `json:"mensaje"`
}

// ResultadoAutoAsignacion informe de una pasada de auto-asignación
// Exito es false si algún día del rango falló; el resto de días se procesa igual
type ResultadoAutoAsignacion struct {
	DiasProcesados    int        `json:"diasProcesados"`
	GuardiasAsignadas int        `json:"guardiasAsignadas"`
	Errores           []ErrorDia `json:"errores"`
	Exito             bool       `json:"exito"`
}
