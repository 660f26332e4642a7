package repository

import (
	"context"

	"ugel-backend/internal/model"

	"gorm.io/gorm"
)

// ComunicadoFilter narrows comunicado listings. Estado is forced to
// PUBLICADO on the public path by the service layer.
type ComunicadoFilter struct {
	Estado    string
	Categoria string
	Destacado *bool
	Offset    int
	Limite    int
	// PublicOrder sorts destacado-first, then publish date, instead of
	// creation date (used by the public listing)
	PublicOrder bool
}

// ComunicadoRepository defines the interface for data access of Comunicado entities
type ComunicadoRepository interface {
	Create(ctx context.Context, comunicado *model.Comunicado) error
	GetByID(ctx context.Context, id string) (*model.Comunicado, error)
	List(ctx context.Context, filter ComunicadoFilter) ([]model.Comunicado, int64, error)
	Update(ctx context.Context, comunicado *model.Comunicado) error
	Delete(ctx context.Context, id string) error
	IncrementVistas(ctx context.Context, id string) error
}

type comunicadoRepository struct {
	db *gorm.DB
}

// NewComunicadoRepository returns a new instance of ComunicadoRepository
func NewComunicadoRepository(db *gorm.DB) ComunicadoRepository {
	return &comunicadoRepository{db: db}
}

func (r *comunicadoRepository) Create(ctx context.Context, comunicado *model.Comunicado) error {
	return r.db.WithContext(ctx).Create(comunicado).Error
}

func (r *comunicadoRepository) GetByID(ctx context.Context, id string) (*model.Comunicado, error) {
	var comunicado model.Comunicado
	if err := r.db.WithContext(ctx).Preload("Autor").First(&comunicado, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comunicado, nil
}

func (r *comunicadoRepository) List(ctx context.Context, filter ComunicadoFilter) ([]model.Comunicado, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Comunicado{})

	if filter.Estado != "" {
		query = query.Where("estado = ?", filter.Estado)
	}
	if filter.Categoria != "" {
		query = query.Where("categoria = ?", filter.Categoria)
	}
	if filter.Destacado != nil {
		query = query.Where("destacado = ?", *filter.Destacado)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	fetch := query.Preload("Autor")
	if filter.PublicOrder {
		fetch = fetch.Order("destacado DESC").Order("fecha_publicacion DESC")
	} else {
		fetch = fetch.Order("created_at DESC")
	}

	var comunicados []model.Comunicado
	if err := fetch.Offset(filter.Offset).Limit(filter.Limite).Find(&comunicados).Error; err != nil {
		return nil, 0, err
	}

	return comunicados, total, nil
}

func (r *comunicadoRepository) Update(ctx context.Context, comunicado *model.Comunicado) error {
	return r.db.WithContext(ctx).Save(comunicado).Error
}

func (r *comunicadoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comunicado{}).Error
}

func (r *comunicadoRepository) IncrementVistas(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Comunicado{}).
		Where("id = ?", id).
		UpdateColumn("vistas", gorm.Expr("vistas + 1")).Error
}
