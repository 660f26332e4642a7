package repository

import (
	"context"

	"ugel-backend/internal/model"

	"gorm.io/gorm"
)

// DocumentoFilter narrows documento listings
type DocumentoFilter struct {
	Categoria  string
	SoloActivo bool
	Offset     int
	Limite     int
}

// DocumentoRepository defines the interface for data access of Documento entities
type DocumentoRepository interface {
	Create(ctx context.Context, documento *model.Documento) error
	GetByID(ctx context.Context, id string) (*model.Documento, error)
	List(ctx context.Context, filter DocumentoFilter) ([]model.Documento, int64, error)
	Update(ctx context.Context, documento *model.Documento) error
	Delete(ctx context.Context, id string) error
	IncrementDescargas(ctx context.Context, id string) error
}

type documentoRepository struct {
	db *gorm.DB
}

// NewDocumentoRepository returns a new instance of DocumentoRepository
func NewDocumentoRepository(db *gorm.DB) DocumentoRepository {
	return &documentoRepository{db: db}
}

func (r *documentoRepository) Create(ctx context.Context, documento *model.Documento) error {
	return r.db.WithContext(ctx).Create(documento).Error
}

func (r *documentoRepository) GetByID(ctx context.Context, id string) (*model.Documento, error) {
	var documento model.Documento
	if err := r.db.WithContext(ctx).Preload("Autor").First(&documento, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &documento, nil
}

func (r *documentoRepository) List(ctx context.Context, filter DocumentoFilter) ([]model.Documento, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Documento{})

	if filter.Categoria != "" {
		query = query.Where("categoria = ?", filter.Categoria)
	}
	if filter.SoloActivo {
		query = query.Where("activo = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var documentos []model.Documento
	if err := query.
		Preload("Autor").
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limite).
		Find(&documentos).Error; err != nil {
		return nil, 0, err
	}

	return documentos, total, nil
}

func (r *documentoRepository) Update(ctx context.Context, documento *model.Documento) error {
	return r.db.WithContext(ctx).Save(documento).Error
}

func (r *documentoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Documento{}).Error
}

func (r *documentoRepository) IncrementDescargas(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Documento{}).
		Where("id = ?", id).
		UpdateColumn("descargas", gorm.Expr("descargas + 1")).Error
}
