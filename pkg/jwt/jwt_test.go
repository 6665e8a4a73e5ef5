package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/Reimot5/cuadrante-servicios/config"
)

func newTestManager(accessTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "clave-secreta-de-pruebas-0123",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestManager_GenerateAndParse(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateAccessToken("usr-1", "admin", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateAccessToken debía funcionar: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken debía funcionar: %v", err)
	}
	if claims.UsuarioID != "usr-1" {
		t.Errorf("esperaba usuario_id=usr-1, obtuvo %s", claims.UsuarioID)
	}
	if claims.Rol != "ADMIN" {
		t.Errorf("esperaba rol=ADMIN, obtuvo %s", claims.Rol)
	}
	if claims.TokenType != "access" {
		t.Errorf("esperaba token_type=access, obtuvo %s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("el jti no puede estar vacío")
	}
}

func TestManager_ParseExpired(t *testing.T) {
	m := newTestManager(-1 * time.Minute)

	token, err := m.GenerateAccessToken("usr-1", "admin", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateAccessToken debía funcionar: %v", err)
	}

	_, err = m.ParseToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("esperaba ErrTokenExpired, obtuvo: %v", err)
	}
}

func TestManager_ParseInvalidSignature(t *testing.T) {
	m := newTestManager(15 * time.Minute)
	otro := NewManager(&config.AuthConfig{
		JWTSecret:       "otra-clave-distinta-456789",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("usr-1", "admin", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateAccessToken debía funcionar: %v", err)
	}

	_, err = otro.ParseToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("esperaba ErrTokenInvalid, obtuvo: %v", err)
	}
}

func TestManager_RefreshTokenType(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateRefreshToken("usr-1", "admin", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateRefreshToken debía funcionar: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken debía funcionar: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("esperaba token_type=refresh, obtuvo %s", claims.TokenType)
	}
}
