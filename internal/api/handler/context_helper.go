package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Reimot5/cuadrante-servicios/pkg/jwt"
	"github.com/Reimot5/cuadrante-servicios/pkg/response"
)

// MustGetUsername extrae el username inyectado por el middleware JWT.
// Si ok=false ya se ha escrito la respuesta 401; el llamante debe retornar.
func MustGetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get("username")
	if !exists {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", false
	}
	return s, true
}

// MustGetRol extrae el rol del contexto
func MustGetRol(c *gin.Context) (string, bool) {
	v, exists := c.Get("rol")
	if !exists {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", false
	}
	return s, true
}

// MustGetUsuarioID extrae el id de usuario del contexto
func MustGetUsuarioID(c *gin.Context) (string, bool) {
	v, exists := c.Get("usuario_id")
	if !exists {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "no autenticado")
		return "", false
	}
	return s, true
}

// MustGetClaims extrae los claims completos del token
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "no autenticado")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "no autenticado")
		return nil, false
	}
	return claims, true
}
