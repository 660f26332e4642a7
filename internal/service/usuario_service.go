package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ugel-backend/internal/model"
	"ugel-backend/internal/repository"
	"ugel-backend/pkg/apperror"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- DTOs ---

type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	DNI      string `json:"dni"`
	Telefono string `json:"telefono"`
	Rol      string `json:"rol" binding:"required"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email" binding:"omitempty,email"`
	DNI      string `json:"dni"`
	Telefono string `json:"telefono"`
	Rol      string `json:"rol"`
	Activo   *bool  `json:"activo"`
	Password string `json:"password"`
}

// UsuarioResponse is the password-free staff account projection
type UsuarioResponse struct {
	ID           uuid.UUID  `json:"id"`
	Nombre       string     `json:"nombre"`
	Apellido     string     `json:"apellido"`
	Email        string     `json:"email"`
	DNI          string     `json:"dni"`
	Telefono     string     `json:"telefono"`
	Rol          string     `json:"rol"`
	Activo       bool       `json:"activo"`
	UltimoAcceso *time.Time `json:"ultimoAcceso"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// --- Interface ---

type UsuarioService interface {
	Listar(ctx context.Context) ([]UsuarioResponse, error)
	Crear(ctx context.Context, req CrearUsuarioRequest) (*UsuarioResponse, error)
	Actualizar(ctx context.Context, id string, req ActualizarUsuarioRequest) (*UsuarioResponse, error)
	Eliminar(ctx context.Context, id string, solicitanteID string) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

// NewUsuarioService returns a new instance of UsuarioService
func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

// --- Implementation ---

func mapUsuarioResponse(u *model.Usuario) *UsuarioResponse {
	resp := &UsuarioResponse{
		ID:           u.ID,
		Nombre:       u.Nombre,
		Apellido:     u.Apellido,
		Email:        u.Email,
		DNI:          u.DNI,
		Telefono:     u.Telefono,
		Activo:       u.Activo,
		UltimoAcceso: u.UltimoAcceso,
		CreatedAt:    u.CreatedAt,
	}
	if u.Rol != nil {
		resp.Rol = u.Rol.Nombre
	}
	return resp
}

func (s *usuarioService) Listar(ctx context.Context) ([]UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		responses = append(responses, *mapUsuarioResponse(&usuarios[i]))
	}
	return responses, nil
}

func (s *usuarioService) Crear(ctx context.Context, req CrearUsuarioRequest) (*UsuarioResponse, error) {
	if !esRolValido(req.Rol) {
		return nil, apperror.NewValidation("rol", "rol inválido: debe ser ADMIN u OPERADOR")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, apperror.Conflict("el email ya está registrado")
	}

	rol, err := s.repo.GetRolByNombre(ctx, req.Rol)
	if err != nil {
		return nil, fmt.Errorf("error buscando rol: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("error generando el hash de contraseña")
	}

	usuario := &model.Usuario{
		Nombre:   strings.TrimSpace(req.Nombre),
		Apellido: strings.TrimSpace(req.Apellido),
		Email:    email,
		Password: string(hashed),
		DNI:      req.DNI,
		Telefono: req.Telefono,
		Activo:   true,
		RolID:    rol.ID,
	}

	if err := s.repo.Create(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("el email ya está registrado")
		}
		return nil, err
	}

	usuario.Rol = rol
	return mapUsuarioResponse(usuario), nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id string, req ActualizarUsuarioRequest) (*UsuarioResponse, error) {
	usuario, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("usuario no encontrado")
		}
		return nil, err
	}

	if req.Nombre != "" {
		usuario.Nombre = strings.TrimSpace(req.Nombre)
	}
	if req.Apellido != "" {
		usuario.Apellido = strings.TrimSpace(req.Apellido)
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != usuario.Email {
			if _, err := s.repo.GetByEmail(ctx, email); err == nil {
				return nil, apperror.Conflict("el email ya está registrado")
			}
			usuario.Email = email
		}
	}
	if req.DNI != "" {
		usuario.DNI = req.DNI
	}
	if req.Telefono != "" {
		usuario.Telefono = req.Telefono
	}
	if req.Rol != "" {
		if !esRolValido(req.Rol) {
			return nil, apperror.NewValidation("rol", "rol inválido: debe ser ADMIN u OPERADOR")
		}
		rol, err := s.repo.GetRolByNombre(ctx, req.Rol)
		if err != nil {
			return nil, fmt.Errorf("error buscando rol: %w", err)
		}
		usuario.RolID = rol.ID
		usuario.Rol = rol
	}
	if req.Activo != nil {
		usuario.Activo = *req.Activo
	}
	if req.Password != "" {
		if len(req.Password) < 8 {
			return nil, apperror.NewValidation("password", "la contraseña debe tener mínimo 8 caracteres")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.New("error generando el hash de contraseña")
		}
		usuario.Password = string(hashed)
	}

	if err := s.repo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return mapUsuarioResponse(usuario), nil
}

func (s *usuarioService) Eliminar(ctx context.Context, id string, solicitanteID string) error {
	if id == solicitanteID {
		return apperror.NewValidation("id", "no puede eliminar su propio usuario")
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("usuario no encontrado")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
