package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ugel-backend/internal/model"
	"ugel-backend/internal/repository"
	"ugel-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CrearConvocatoriaRequest struct {
	Titulo          string `form:"titulo" json:"titulo" binding:"required"`
	Descripcion     string `form:"descripcion" json:"descripcion" binding:"required"`
	Tipo            string `form:"tipo" json:"tipo" binding:"required"`
	Estado          string `form:"estado" json:"estado"`
	Plazas          int    `form:"plazas" json:"plazas"`
	Remuneracion    string `form:"remuneracion" json:"remuneracion"`
	Requisitos      string `form:"requisitos" json:"requisitos"`
	Beneficios      string `form:"beneficios" json:"beneficios"`
	FechaInicio     string `form:"fechaInicio" json:"fechaInicio"`
	FechaFin        string `form:"fechaFin" json:"fechaFin"`
	FechaResultados string `form:"fechaResultados" json:"fechaResultados"`
}

type ActualizarConvocatoriaRequest struct {
	Titulo          string `form:"titulo" json:"titulo"`
	Descripcion     string `form:"descripcion" json:"descripcion"`
	Tipo            string `form:"tipo" json:"tipo"`
	Estado          string `form:"estado" json:"estado"`
	Plazas          int    `form:"plazas" json:"plazas"`
	Remuneracion    string `form:"remuneracion" json:"remuneracion"`
	Requisitos      string `form:"requisitos" json:"requisitos"`
	Beneficios      string `form:"beneficios" json:"beneficios"`
	FechaInicio     string `form:"fechaInicio" json:"fechaInicio"`
	FechaFin        string `form:"fechaFin" json:"fechaFin"`
	FechaResultados string `form:"fechaResultados" json:"fechaResultados"`
}

// AdjuntosConvocatoria carries the optional annex and bases documents
type AdjuntosConvocatoria struct {
	Archivo *ArchivoAdjunto
	Base    *ArchivoAdjunto
}

// --- Interface ---

type ConvocatoriaService interface {
	Listar(ctx context.Context, tipo, estado string, offset, limite int) ([]model.Convocatoria, int64, error)
	Obtener(ctx context.Context, id string) (*model.Convocatoria, error)
	Crear(ctx context.Context, req CrearConvocatoriaRequest, autorID uuid.UUID, adjuntos AdjuntosConvocatoria) (*model.Convocatoria, error)
	Actualizar(ctx context.Context, id string, req ActualizarConvocatoriaRequest, adjuntos AdjuntosConvocatoria) (*model.Convocatoria, error)
	Eliminar(ctx context.Context, id string) error
}

type convocatoriaService struct {
	repo  repository.ConvocatoriaRepository
	store ArchivoStore
}

// NewConvocatoriaService returns a new instance of ConvocatoriaService
func NewConvocatoriaService(repo repository.ConvocatoriaRepository, store ArchivoStore) ConvocatoriaService {
	return &convocatoriaService{repo: repo, store: store}
}

// --- Implementation ---

func parseFecha(valor string) (*time.Time, error) {
	if valor == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", valor)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *convocatoriaService) Listar(ctx context.Context, tipo, estado string, offset, limite int) ([]model.Convocatoria, int64, error) {
	return s.repo.List(ctx, repository.ConvocatoriaFilter{
		Tipo:   tipo,
		Estado: estado,
		Offset: offset,
		Limite: limite,
	})
}

func (s *convocatoriaService) Obtener(ctx context.Context, id string) (*model.Convocatoria, error) {
	convocatoria, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("convocatoria no encontrada")
		}
		return nil, err
	}
	return convocatoria, nil
}

func (s *convocatoriaService) Crear(ctx context.Context, req CrearConvocatoriaRequest, autorID uuid.UUID, adjuntos AdjuntosConvocatoria) (*model.Convocatoria, error) {
	convocatoria := &model.Convocatoria{
		Titulo:      strings.TrimSpace(req.Titulo),
		Descripcion: req.Descripcion,
		Tipo:        req.Tipo,
		Estado:      req.Estado,
		Plazas:      req.Plazas,
		Requisitos:  req.Requisitos,
		Beneficios:  req.Beneficios,
		AutorID:     autorID,
	}
	if convocatoria.Estado == "" {
		convocatoria.Estado = model.ConvocatoriaProxima
	}
	if convocatoria.Plazas <= 0 {
		convocatoria.Plazas = 1
	}
	if req.Remuneracion != "" {
		monto, err := decimal.NewFromString(req.Remuneracion)
		if err != nil {
			return nil, apperror.NewValidation("remuneracion", "la remuneración no es un monto válido")
		}
		convocatoria.Remuneracion = monto
	}

	var err error
	if convocatoria.FechaInicio, err = parseFecha(req.FechaInicio); err != nil {
		return nil, apperror.NewValidation("fechaInicio", "la fecha debe tener formato YYYY-MM-DD")
	}
	if convocatoria.FechaFin, err = parseFecha(req.FechaFin); err != nil {
		return nil, apperror.NewValidation("fechaFin", "la fecha debe tener formato YYYY-MM-DD")
	}
	if convocatoria.FechaResultados, err = parseFecha(req.FechaResultados); err != nil {
		return nil, apperror.NewValidation("fechaResultados", "la fecha debe tener formato YYYY-MM-DD")
	}

	if adjuntos.Archivo != nil {
		convocatoria.ArchivoURL = adjuntos.Archivo.URL
		convocatoria.ArchivoNombre = adjuntos.Archivo.Nombre
	}
	if adjuntos.Base != nil {
		convocatoria.BaseURL = adjuntos.Base.URL
		convocatoria.BaseNombre = adjuntos.Base.Nombre
	}

	if err := s.repo.Create(ctx, convocatoria); err != nil {
		return nil, err
	}
	return convocatoria, nil
}

func (s *convocatoriaService) Actualizar(ctx context.Context, id string, req ActualizarConvocatoriaRequest, adjuntos AdjuntosConvocatoria) (*model.Convocatoria, error) {
	convocatoria, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("convocatoria no encontrada")
		}
		return nil, err
	}

	if req.Titulo != "" {
		convocatoria.Titulo = strings.TrimSpace(req.Titulo)
	}
	if req.Descripcion != "" {
		convocatoria.Descripcion = req.Descripcion
	}
	if req.Tipo != "" {
		convocatoria.Tipo = req.Tipo
	}
	if req.Estado != "" {
		convocatoria.Estado = req.Estado
	}
	if req.Plazas > 0 {
		convocatoria.Plazas = req.Plazas
	}
	if req.Requisitos != "" {
		convocatoria.Requisitos = req.Requisitos
	}
	if req.Beneficios != "" {
		convocatoria.Beneficios = req.Beneficios
	}
	if req.Remuneracion != "" {
		monto, err := decimal.NewFromString(req.Remuneracion)
		if err != nil {
			return nil, apperror.NewValidation("remuneracion", "la remuneración no es un monto válido")
		}
		convocatoria.Remuneracion = monto
	}
	if req.FechaInicio != "" {
		if convocatoria.FechaInicio, err = parseFecha(req.FechaInicio); err != nil {
			return nil, apperror.NewValidation("fechaInicio", "la fecha debe tener formato YYYY-MM-DD")
		}
	}
	if req.FechaFin != "" {
		if convocatoria.FechaFin, err = parseFecha(req.FechaFin); err != nil {
			return nil, apperror.NewValidation("fechaFin", "la fecha debe tener formato YYYY-MM-DD")
		}
	}
	if req.FechaResultados != "" {
		if convocatoria.FechaResultados, err = parseFecha(req.FechaResultados); err != nil {
			return nil, apperror.NewValidation("fechaResultados", "la fecha debe tener formato YYYY-MM-DD")
		}
	}

	if adjuntos.Archivo != nil {
		if convocatoria.ArchivoURL != "" && s.store != nil {
			_ = s.store.Remove(convocatoria.ArchivoURL)
		}
		convocatoria.ArchivoURL = adjuntos.Archivo.URL
		convocatoria.ArchivoNombre = adjuntos.Archivo.Nombre
	}
	if adjuntos.Base != nil {
		if convocatoria.BaseURL != "" && s.store != nil {
			_ = s.store.Remove(convocatoria.BaseURL)
		}
		convocatoria.BaseURL = adjuntos.Base.URL
		convocatoria.BaseNombre = adjuntos.Base.Nombre
	}

	if err := s.repo.Update(ctx, convocatoria); err != nil {
		return nil, err
	}
	return convocatoria, nil
}

func (s *convocatoriaService) Eliminar(ctx context.Context, id string) error {
	convocatoria, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("convocatoria no encontrada")
		}
		return err
	}

	if s.store != nil {
		if convocatoria.ArchivoURL != "" {
			_ = s.store.Remove(convocatoria.ArchivoURL)
		}
		if convocatoria.BaseURL != "" {
			_ = s.store.Remove(convocatoria.BaseURL)
		}
	}
	return s.repo.Delete(ctx, id)
}
