package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Reimot5/cuadrante-servicios/config"
	"github.com/Reimot5/cuadrante-servicios/internal/api/handler"
	"github.com/Reimot5/cuadrante-servicios/internal/api/middleware"
	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/pkg/jwt"
	"github.com/Reimot5/cuadrante-servicios/pkg/redis"
)

// Setup inicializa y devuelve el motor de rutas de Gin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Comprobación de salud ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Autenticación (sin token)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Rutas que exigen autenticación
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// Plantilla
			personas := authorized.Group("/personas")
			{
				personas.GET("", h.Persona.List)
				personas.GET("/:id", h.Persona.Get)
				personas.POST("", middleware.RoleAuth(model.RolAdmin), h.Persona.Create)
				personas.PATCH("/:id", middleware.RoleAuth(model.RolAdmin), h.Persona.Update)
				personas.DELETE("/:id", middleware.RoleAuth(model.RolAdmin), h.Persona.Delete)
			}

			// Cuadrante diario
			asignaciones := authorized.Group("/asignaciones")
			{
				asignaciones.GET("", h.Asignacion.List)
				asignaciones.POST("", h.Asignacion.Create)
				asignaciones.POST("/rango", h.Asignacion.CreateRango)
				asignaciones.POST("/permutar", h.Asignacion.Permutar)
				asignaciones.DELETE("/:id", h.Asignacion.Delete)
			}

			// Validación y auto-asignación
			cuadrante := authorized.Group("/cuadrante")
			{
				cuadrante.GET("/validar", h.Cuadrante.ValidarRango)
				cuadrante.GET("/validar/:fecha", h.Cuadrante.ValidarDia)
				cuadrante.POST("/auto-asignar", middleware.RoleAuth(model.RolAdmin), h.Cuadrante.AutoAsignar)
			}

			// Reglas de descanso
			reglas := authorized.Group("/reglas")
			{
				reglas.GET("", h.Regla.List)
				reglas.GET("/:id", h.Regla.Get)
				reglas.PATCH("/:id", middleware.RoleAuth(model.RolAdmin), h.Regla.Update)
			}

			// Períodos
			periodos := authorized.Group("/periodos")
			{
				periodos.GET("", h.Periodo.List)
				periodos.POST("", middleware.RoleAuth(model.RolAdmin), h.Periodo.Create)
				periodos.POST("/:id/publicar", middleware.RoleAuth(model.RolAdmin), h.Periodo.Publicar)
			}

			// Auditoría
			authorized.GET("/auditoria", middleware.RoleAuth(model.RolAdmin), h.Auditoria.List)

			// Exportación
			export := authorized.Group("/export")
			{
				export.GET("/cuadrante", h.Export.ExportExcel)
				export.GET("/calendario/:persona_id", h.Export.ExportICS)
			}
		}
	}

	return r
}
