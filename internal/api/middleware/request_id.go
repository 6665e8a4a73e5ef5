package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen limita la longitud del Request-ID que llega de fuera
// para evitar inyección en los logs
const requestIDMaxLen = 64

// RequestID middleware de trazabilidad de peticiones
// Lee X-Request-ID de la petición y genera un UUID si no existe;
// el valor se inyecta en el contexto y en la cabecera de respuesta
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
