package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Reimot5/cuadrante-servicios/config"
)

var (
	ErrTokenExpired = errors.New("token caducado")
	ErrTokenInvalid = errors.New("token inválido")
)

// Claims declaraciones propias del JWT
type Claims struct {
	UsuarioID string `json:"usuario_id"`
	Username  string `json:"username"`
	Rol       string `json:"rol"`
	TokenType string `json:"token_type"` // "access" | "refresh"
	jwtv5.RegisteredClaims
}

// Manager gestor de JWT
type Manager struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewManager crea el gestor de JWT
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:          []byte(cfg.JWTSecret),
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// GenerateAccessToken genera un access token
func (m *Manager) GenerateAccessToken(usuarioID, username, rol string) (string, error) {
	return m.generate(usuarioID, username, rol, "access", m.accessTokenTTL)
}

// GenerateRefreshToken genera un refresh token
func (m *Manager) GenerateRefreshToken(usuarioID, username, rol string) (string, error) {
	return m.generate(usuarioID, username, rol, "refresh", m.refreshTokenTTL)
}

func (m *Manager) generate(usuarioID, username, rol, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UsuarioID: usuarioID,
		Username:  username,
		Rol:       rol,
		TokenType: tokenType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "cuadrante",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken valida la firma y devuelve los claims
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
