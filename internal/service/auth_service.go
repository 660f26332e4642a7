package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"ugel-backend/internal/model"
	"ugel-backend/internal/repository"
	"ugel-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenDuracion = 8 * time.Hour

// --- DTOs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

type CambiarPasswordRequest struct {
	PasswordActual string `json:"passwordActual" binding:"required"`
	PasswordNuevo  string `json:"passwordNuevo" binding:"required"`
}

// --- Interface ---

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Me(ctx context.Context, usuarioID string) (*UsuarioResponse, error)
	CambiarPassword(ctx context.Context, usuarioID string, req CambiarPasswordRequest) error
}

type authService struct {
	repo repository.UsuarioRepository
}

// NewAuthService returns a new instance of AuthService
func NewAuthService(repo repository.UsuarioRepository) AuthService {
	return &authService{repo: repo}
}

// --- Implementation ---

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only
	}
	return []byte(secret)
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	usuario, err := s.repo.GetByEmail(ctx, email)
	if err != nil || !usuario.Activo {
		return nil, errors.New("email o contraseña incorrectos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("email o contraseña incorrectos")
	}

	now := time.Now()
	usuario.UltimoAcceso = &now
	if err := s.repo.Update(ctx, usuario); err != nil {
		return nil, fmt.Errorf("error actualizando último acceso: %w", err)
	}

	rolNombre := ""
	if usuario.Rol != nil {
		rolNombre = usuario.Rol.Nombre
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   usuario.ID.String(),
		"email": usuario.Email,
		"rol":   rolNombre,
		"exp":   now.Add(tokenDuracion).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret())
	if err != nil {
		return nil, errors.New("error generando el token")
	}

	return &LoginResponse{
		Token:   tokenString,
		Usuario: *mapUsuarioResponse(usuario),
	}, nil
}

func (s *authService) Me(ctx context.Context, usuarioID string) (*UsuarioResponse, error) {
	usuario, err := s.repo.GetByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("usuario no encontrado")
		}
		return nil, err
	}
	return mapUsuarioResponse(usuario), nil
}

func (s *authService) CambiarPassword(ctx context.Context, usuarioID string, req CambiarPasswordRequest) error {
	if len(req.PasswordNuevo) < 8 {
		return apperror.NewValidation("passwordNuevo", "la nueva contraseña debe tener al menos 8 caracteres")
	}

	usuario, err := s.repo.GetByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("usuario no encontrado")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(req.PasswordActual)); err != nil {
		return apperror.NewValidation("passwordActual", "la contraseña actual es incorrecta")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.PasswordNuevo), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("error generando el hash de contraseña")
	}

	usuario.Password = string(hashed)
	return s.repo.Update(ctx, usuario)
}

// esRolValido reports whether the role name is one the system knows
func esRolValido(rol string) bool {
	return rol == model.RolAdmin || rol == model.RolOperador
}
