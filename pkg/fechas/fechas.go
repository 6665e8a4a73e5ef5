// Package fechas normaliza fechas a clave de día de calendario (sin hora).
//
// Todo el motor del cuadrante opera exclusivamente sobre claves de día en UTC:
// la unicidad (persona, fecha) y la iteración de rangos dependen de que nunca
// se arrastre componente horario ni zona local.
package fechas

import "time"

// FormatoDia formato canónico YYYY-MM-DD usado en respuestas y mensajes.
const FormatoDia = "2006-01-02"

// SinHora devuelve la medianoche UTC del día de t.
// Es la clave de día canónica: comparable con Equal/Before/After.
func SinHora(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parsear interpreta una fecha YYYY-MM-DD como clave de día.
func Parsear(s string) (time.Time, error) {
	return time.ParseInLocation(FormatoDia, s, time.UTC)
}

// Formatear serializa una clave de día como YYYY-MM-DD.
func Formatear(t time.Time) string {
	return t.UTC().Format(FormatoDia)
}

// Sumar devuelve la clave de día desplazada n días (n puede ser negativo).
func Sumar(t time.Time, n int) time.Time {
	return SinHora(t).AddDate(0, 0, n)
}

// Rango enumera las claves de día entre inicio y fin, ambos inclusive,
// en orden cronológico. Si fin < inicio devuelve un slice vacío, no un error.
func Rango(inicio, fin time.Time) []time.Time {
	inicio = SinHora(inicio)
	fin = SinHora(fin)

	if fin.Before(inicio) {
		return []time.Time{}
	}

	dias := make([]time.Time, 0, int(fin.Sub(inicio).Hours()/24)+1)
	for d := inicio; !d.After(fin); d = d.AddDate(0, 0, 1) {
		dias = append(dias, d)
	}
	return dias
}
