package repository

import (
	"context"
	"strings"

	"ugel-backend/internal/model"

	"gorm.io/gorm"
)

// TramiteFilter narrows admin listings
type TramiteFilter struct {
	Estado      string
	TipoTramite string
	Busqueda    string // substring match on expediente, nombre, apellido, dni
	Offset      int
	Limite      int
}

// TramiteRepository defines the interface for data access of Tramite entities
type TramiteRepository interface {
	Create(ctx context.Context, tramite *model.Tramite) error
	GetByID(ctx context.Context, id string) (*model.Tramite, error)
	GetByNumeroExpediente(ctx context.Context, numero string) (*model.Tramite, error)
	// LastExpedienteForPrefix returns the expediente with the highest numeric
	// suffix under the given prefix, or gorm.ErrRecordNotFound.
	LastExpedienteForPrefix(ctx context.Context, prefix string) (string, error)
	List(ctx context.Context, filter TramiteFilter) ([]model.Tramite, int64, error)
	Update(ctx context.Context, tramite *model.Tramite) error
	CountByEstado(ctx context.Context) (map[string]int64, error)
}

type tramiteRepository struct {
	db *gorm.DB
}

// NewTramiteRepository returns a new instance of TramiteRepository
func NewTramiteRepository(db *gorm.DB) TramiteRepository {
	return &tramiteRepository{db: db}
}

func (r *tramiteRepository) Create(ctx context.Context, tramite *model.Tramite) error {
	return r.db.WithContext(ctx).Create(tramite).Error
}

func (r *tramiteRepository) GetByID(ctx context.Context, id string) (*model.Tramite, error) {
	var tramite model.Tramite
	if err := r.db.WithContext(ctx).Preload("Operador").First(&tramite, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tramite, nil
}

func (r *tramiteRepository) GetByNumeroExpediente(ctx context.Context, numero string) (*model.Tramite, error) {
	var tramite model.Tramite
	if err := r.db.WithContext(ctx).First(&tramite, "numero_expediente = ?", numero).Error; err != nil {
		return nil, err
	}
	return &tramite, nil
}

// With a fixed prefix and a zero-padded suffix of at least six digits,
// ordering by length then lexicographic value is numeric order — including
// suffixes that have grown past the padding width.
func (r *tramiteRepository) LastExpedienteForPrefix(ctx context.Context, prefix string) (string, error) {
	var numero string
	err := r.db.WithContext(ctx).Model(&model.Tramite{}).
		Select("numero_expediente").
		Where("numero_expediente LIKE ?", prefix+"%").
		Order("char_length(numero_expediente) DESC").
		Order("numero_expediente DESC").
		Limit(1).
		Scan(&numero).Error
	if err != nil {
		return "", err
	}
	if numero == "" {
		return "", gorm.ErrRecordNotFound
	}
	return numero, nil
}

func (r *tramiteRepository) List(ctx context.Context, filter TramiteFilter) ([]model.Tramite, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Tramite{})

	if filter.Estado != "" {
		query = query.Where("estado = ?", filter.Estado)
	}
	if filter.TipoTramite != "" {
		query = query.Where("tipo_tramite = ?", filter.TipoTramite)
	}
	if filter.Busqueda != "" {
		term := "%" + strings.TrimSpace(filter.Busqueda) + "%"
		query = query.Where(
			"numero_expediente ILIKE ? OR nombre ILIKE ? OR apellido ILIKE ? OR dni LIKE ?",
			term, term, term, term,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tramites []model.Tramite
	if err := query.
		Preload("Operador").
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limite).
		Find(&tramites).Error; err != nil {
		return nil, 0, err
	}

	return tramites, total, nil
}

func (r *tramiteRepository) Update(ctx context.Context, tramite *model.Tramite) error {
	return r.db.WithContext(ctx).Save(tramite).Error
}

func (r *tramiteRepository) CountByEstado(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Estado string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Tramite{}).
		Select("estado, COUNT(id) AS total").
		Group("estado").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Estado] = row.Total
	}
	return counts, nil
}
