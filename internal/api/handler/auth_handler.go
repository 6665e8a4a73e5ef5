package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/service"
	"github.com/Reimot5/cuadrante-servicios/pkg/response"
)

// AuthHandler manejador HTTP del módulo de autenticación
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler crea el AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login inicio de sesión
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			response.Error(c, http.StatusUnauthorized, 11001, "usuario o contraseña incorrectos")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Refresh renovación del par de tokens
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros inválidos")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRefreshInvalido) {
			response.Error(c, http.StatusUnauthorized, 11002, "refresh token inválido")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout cierre de sesión; revoca el access token en curso
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Me datos del usuario autenticado
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	usuarioID, ok := MustGetUsuarioID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Me(c.Request.Context(), usuarioID)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNoEncontrado) {
			response.NotFound(c, 11003, "usuario no encontrado")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
