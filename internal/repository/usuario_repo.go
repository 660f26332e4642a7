package repository

import (
	"context"

	"ugel-backend/internal/model"

	"gorm.io/gorm"
)

// UsuarioRepository defines the interface for data access of Usuario entities
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *model.Usuario) error
	GetByID(ctx context.Context, id string) (*model.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Update(ctx context.Context, usuario *model.Usuario) error
	Delete(ctx context.Context, id string) error
	GetRolByNombre(ctx context.Context, nombre string) (*model.Rol, error)
}

type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository returns a new instance of UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepository) GetByID(ctx context.Context, id string) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.WithContext(ctx).Preload("Rol").First(&usuario, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.WithContext(ctx).Preload("Rol").First(&usuario, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) List(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	if err := r.db.WithContext(ctx).Preload("Rol").Order("created_at DESC").Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepository) Update(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Save(usuario).Error
}

func (r *usuarioRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Usuario{}).Error
}

func (r *usuarioRepository) GetRolByNombre(ctx context.Context, nombre string) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.WithContext(ctx).First(&rol, "nombre = ?", nombre).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}
