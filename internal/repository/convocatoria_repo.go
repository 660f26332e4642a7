package repository

import (
	"context"

	"ugel-backend/internal/model"

	"gorm.io/gorm"
)

// ConvocatoriaFilter narrows convocatoria listings
type ConvocatoriaFilter struct {
	Tipo   string
	Estado string
	Offset int
	Limite int
}

// ConvocatoriaRepository defines the interface for data access of Convocatoria entities
type ConvocatoriaRepository interface {
	Create(ctx context.Context, convocatoria *model.Convocatoria) error
	GetByID(ctx context.Context, id string) (*model.Convocatoria, error)
	List(ctx context.Context, filter ConvocatoriaFilter) ([]model.Convocatoria, int64, error)
	Update(ctx context.Context, convocatoria *model.Convocatoria) error
	Delete(ctx context.Context, id string) error
}

type convocatoriaRepository struct {
	db *gorm.DB
}

// NewConvocatoriaRepository returns a new instance of ConvocatoriaRepository
func NewConvocatoriaRepository(db *gorm.DB) ConvocatoriaRepository {
	return &convocatoriaRepository{db: db}
}

func (r *convocatoriaRepository) Create(ctx context.Context, convocatoria *model.Convocatoria) error {
	return r.db.WithContext(ctx).Create(convocatoria).Error
}

func (r *convocatoriaRepository) GetByID(ctx context.Context, id string) (*model.Convocatoria, error) {
	var convocatoria model.Convocatoria
	if err := r.db.WithContext(ctx).Preload("Autor").First(&convocatoria, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &convocatoria, nil
}

func (r *convocatoriaRepository) List(ctx context.Context, filter ConvocatoriaFilter) ([]model.Convocatoria, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Convocatoria{})

	if filter.Tipo != "" {
		query = query.Where("tipo = ?", filter.Tipo)
	}
	if filter.Estado != "" {
		query = query.Where("estado = ?", filter.Estado)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var convocatorias []model.Convocatoria
	if err := query.
		Preload("Autor").
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limite).
		Find(&convocatorias).Error; err != nil {
		return nil, 0, err
	}

	return convocatorias, total, nil
}

func (r *convocatoriaRepository) Update(ctx context.Context, convocatoria *model.Convocatoria) error {
	return r.db.WithContext(ctx).Save(convocatoria).Error
}

func (r *convocatoriaRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Convocatoria{}).Error
}
