package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Reimot5/cuadrante-servicios/pkg/jwt"
	"github.com/Reimot5/cuadrante-servicios/pkg/redis"
	"github.com/Reimot5/cuadrante-servicios/pkg/response"
)

// JWTAuth middleware de autenticación
// Extrae y valida el access token de Authorization: Bearer <token>,
// rechazando también los tokens revocados (lista negra en Redis)
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "falta la cabecera de autenticación")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "formato de cabecera de autenticación inválido")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token inválido o caducado")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "tipo de token inválido")
			c.Abort()
			return
		}

		blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
		if err != nil || blacklisted {
			response.Unauthorized(c, 10002, "token revocado")
			c.Abort()
			return
		}

		// Inyecta la identidad en el contexto de la petición
		c.Set("usuario_id", claims.UsuarioID)
		c.Set("username", claims.Username)
		c.Set("rol", claims.Rol)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth middleware de autorización por rol
// Comprueba que el usuario autenticado tenga alguno de los roles indicados
func RoleAuth(rolesPermitidos ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rol, exists := c.Get("rol")
		if !exists {
			response.Unauthorized(c, 10002, "no autenticado")
			c.Abort()
			return
		}

		rolUsuario := rol.(string)
		for _, r := range rolesPermitidos {
			if rolUsuario == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "sin permisos para acceder")
		c.Abort()
	}
}
