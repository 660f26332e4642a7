package service

import (
	"context"
	"errors"
	"strings"

	"ugel-backend/internal/model"
	"ugel-backend/internal/repository"
	"ugel-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs ---

type CrearDocumentoRequest struct {
	Titulo      string `form:"titulo" json:"titulo" binding:"required"`
	Descripcion string `form:"descripcion" json:"descripcion"`
	Categoria   string `form:"categoria" json:"categoria"`
}

type ActualizarDocumentoRequest struct {
	Titulo      string `form:"titulo" json:"titulo"`
	Descripcion string `form:"descripcion" json:"descripcion"`
	Categoria   string `form:"categoria" json:"categoria"`
	Activo      *bool  `form:"activo" json:"activo"`
}

// --- Interface ---

type DocumentoService interface {
	ListarPublico(ctx context.Context, categoria string, offset, limite int) ([]model.Documento, int64, error)
	// ObtenerParaDescarga returns an active documento and counts the download
	ObtenerParaDescarga(ctx context.Context, id string) (*model.Documento, error)
	ListarAdmin(ctx context.Context, categoria string, offset, limite int) ([]model.Documento, int64, error)
	Crear(ctx context.Context, req CrearDocumentoRequest, autorID uuid.UUID, adjunto *ArchivoAdjunto) (*model.Documento, error)
	Actualizar(ctx context.Context, id string, req ActualizarDocumentoRequest, adjunto *ArchivoAdjunto) (*model.Documento, error)
	Eliminar(ctx context.Context, id string) error
}

type documentoService struct {
	repo  repository.DocumentoRepository
	store ArchivoStore
}

// NewDocumentoService returns a new instance of DocumentoService
func NewDocumentoService(repo repository.DocumentoRepository, store ArchivoStore) DocumentoService {
	return &documentoService{repo: repo, store: store}
}

// --- Implementation ---

func (s *documentoService) ListarPublico(ctx context.Context, categoria string, offset, limite int) ([]model.Documento, int64, error) {
	return s.repo.List(ctx, repository.DocumentoFilter{
		Categoria:  categoria,
		SoloActivo: true,
		Offset:     offset,
		Limite:     limite,
	})
}

func (s *documentoService) ObtenerParaDescarga(ctx context.Context, id string) (*model.Documento, error) {
	documento, err := s.repo.GetByID(ctx, id)
	if err != nil || !documento.Activo {
		return nil, apperror.NotFound("documento no encontrado")
	}

	if err := s.repo.IncrementDescargas(ctx, id); err == nil {
		documento.Descargas++
	}
	return documento, nil
}

func (s *documentoService) ListarAdmin(ctx context.Context, categoria string, offset, limite int) ([]model.Documento, int64, error) {
	return s.repo.List(ctx, repository.DocumentoFilter{
		Categoria: categoria,
		Offset:    offset,
		Limite:    limite,
	})
}

func (s *documentoService) Crear(ctx context.Context, req CrearDocumentoRequest, autorID uuid.UUID, adjunto *ArchivoAdjunto) (*model.Documento, error) {
	if adjunto == nil {
		return nil, apperror.NewValidation("archivo", "el archivo es requerido")
	}

	documento := &model.Documento{
		Titulo:         strings.TrimSpace(req.Titulo),
		Descripcion:    req.Descripcion,
		Categoria:      req.Categoria,
		ArchivoURL:     adjunto.URL,
		ArchivoNombre:  adjunto.Nombre,
		ArchivoTamanio: adjunto.Tamanio,
		Activo:         true,
		AutorID:        autorID,
	}
	if documento.Categoria == "" {
		documento.Categoria = model.DocOtro
	}

	if err := s.repo.Create(ctx, documento); err != nil {
		return nil, err
	}
	return documento, nil
}

func (s *documentoService) Actualizar(ctx context.Context, id string, req ActualizarDocumentoRequest, adjunto *ArchivoAdjunto) (*model.Documento, error) {
	documento, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("documento no encontrado")
		}
		return nil, err
	}

	if req.Titulo != "" {
		documento.Titulo = strings.TrimSpace(req.Titulo)
	}
	if req.Descripcion != "" {
		documento.Descripcion = req.Descripcion
	}
	if req.Categoria != "" {
		documento.Categoria = req.Categoria
	}
	if req.Activo != nil {
		documento.Activo = *req.Activo
	}
	if adjunto != nil {
		if documento.ArchivoURL != "" && s.store != nil {
			_ = s.store.Remove(documento.ArchivoURL)
		}
		documento.ArchivoURL = adjunto.URL
		documento.ArchivoNombre = adjunto.Nombre
		documento.ArchivoTamanio = adjunto.Tamanio
	}

	if err := s.repo.Update(ctx, documento); err != nil {
		return nil, err
	}
	return documento, nil
}

func (s *documentoService) Eliminar(ctx context.Context, id string) error {
	documento, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("documento no encontrado")
		}
		return err
	}

	if documento.ArchivoURL != "" && s.store != nil {
		_ = s.store.Remove(documento.ArchivoURL)
	}
	return s.repo.Delete(ctx, id)
}
