package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Reimot5/cuadrante-servicios/internal/dto"
	"github.com/Reimot5/cuadrante-servicios/internal/model"
	"github.com/Reimot5/cuadrante-servicios/internal/repository"
	"github.com/Reimot5/cuadrante-servicios/pkg/jwt"
	"github.com/Reimot5/cuadrante-servicios/pkg/redis"
)

var (
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrRefreshInvalido       = errors.New("refresh token inválido")
)

// AuthService autenticación y ciclo de vida de tokens
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Refresh emite un nuevo par de tokens a partir de un refresh token
	// válido y revoca el anterior
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error)
	// Logout revoca el token recibido añadiéndolo a la lista negra hasta
	// su caducidad natural
	Logout(ctx context.Context, claims *jwt.Claims) error
	Me(ctx context.Context, usuarioID string) (*dto.UsuarioResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService crea una instancia de AuthService
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.repo.Usuario.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No se distingue usuario inexistente de contraseña errónea
			return nil, ErrCredencialesInvalidas
		}
		s.logger.Error("error al consultar usuario", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	return s.emitirTokens(usuario)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrRefreshInvalido
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalido
	}

	blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("error al consultar lista negra de tokens", zap.Error(err))
		return nil, err
	}
	if blacklisted {
		return nil, ErrRefreshInvalido
	}

	usuario, err := s.repo.Usuario.GetByID(ctx, claims.UsuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalido
		}
		return nil, err
	}

	// Cada refresh token sirve una sola vez
	if err := s.revocar(ctx, claims); err != nil {
		return nil, err
	}

	return s.emitirTokens(usuario)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	return s.revocar(ctx, claims)
}

func (s *authService) Me(ctx context.Context, usuarioID string) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.Usuario.GetByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, err
	}
	return &dto.UsuarioResponse{
		ID:       usuario.UsuarioID,
		Username: usuario.Username,
		Rol:      usuario.Rol,
	}, nil
}

func (s *authService) emitirTokens(usuario *model.Usuario) (*dto.LoginResponse, error) {
	access, err := s.jwtMgr.GenerateAccessToken(usuario.UsuarioID, usuario.Username, usuario.Rol)
	if err != nil {
		s.logger.Error("error al generar access token", zap.Error(err))
		return nil, err
	}
	refresh, err := s.jwtMgr.GenerateRefreshToken(usuario.UsuarioID, usuario.Username, usuario.Rol)
	if err != nil {
		s.logger.Error("error al generar refresh token", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario: dto.UsuarioResponse{
			ID:       usuario.UsuarioID,
			Username: usuario.Username,
			Rol:      usuario.Rol,
		},
	}, nil
}

func (s *authService) revocar(ctx context.Context, claims *jwt.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("error al revocar token", zap.Error(err))
		return err
	}
	return nil
}
