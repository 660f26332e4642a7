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
	"gorm.io/gorm"
)

// ArchivoStore removes stored files that are no longer referenced. The
// upload collaborator implements it; services never touch raw uploads.
type ArchivoStore interface {
	Remove(url string) error
}

// --- DTOs ---

type CrearComunicadoRequest struct {
	Titulo    string `form:"titulo" json:"titulo" binding:"required"`
	Contenido string `form:"contenido" json:"contenido" binding:"required"`
	Resumen   string `form:"resumen" json:"resumen"`
	Categoria string `form:"categoria" json:"categoria"`
	Estado    string `form:"estado" json:"estado"`
	Destacado bool   `form:"destacado" json:"destacado"`
}

type ActualizarComunicadoRequest struct {
	Titulo    string `form:"titulo" json:"titulo"`
	Contenido string `form:"contenido" json:"contenido"`
	Resumen   string `form:"resumen" json:"resumen"`
	Categoria string `form:"categoria" json:"categoria"`
	Estado    string `form:"estado" json:"estado"`
	Destacado *bool  `form:"destacado" json:"destacado"`
}

// --- Interface ---

type ComunicadoService interface {
	ListarPublico(ctx context.Context, categoria string, destacado *bool, offset, limite int) ([]model.Comunicado, int64, error)
	ObtenerPublico(ctx context.Context, id string) (*model.Comunicado, error)
	ListarAdmin(ctx context.Context, estado string, offset, limite int) ([]model.Comunicado, int64, error)
	Crear(ctx context.Context, req CrearComunicadoRequest, autorID uuid.UUID, adjunto *ArchivoAdjunto) (*model.Comunicado, error)
	Actualizar(ctx context.Context, id string, req ActualizarComunicadoRequest, adjunto *ArchivoAdjunto) (*model.Comunicado, error)
	Eliminar(ctx context.Context, id string) error
}

type comunicadoService struct {
	repo  repository.ComunicadoRepository
	store ArchivoStore
}

// NewComunicadoService returns a new instance of ComunicadoService
func NewComunicadoService(repo repository.ComunicadoRepository, store ArchivoStore) ComunicadoService {
	return &comunicadoService{repo: repo, store: store}
}

// --- Implementation ---

func (s *comunicadoService) ListarPublico(ctx context.Context, categoria string, destacado *bool, offset, limite int) ([]model.Comunicado, int64, error) {
	return s.repo.List(ctx, repository.ComunicadoFilter{
		Estado:      model.ComunicadoPublicado,
		Categoria:   categoria,
		Destacado:   destacado,
		Offset:      offset,
		Limite:      limite,
		PublicOrder: true,
	})
}

func (s *comunicadoService) ObtenerPublico(ctx context.Context, id string) (*model.Comunicado, error) {
	comunicado, err := s.repo.GetByID(ctx, id)
	if err != nil || comunicado.Estado != model.ComunicadoPublicado {
		return nil, apperror.NotFound("comunicado no encontrado")
	}

	if err := s.repo.IncrementVistas(ctx, id); err == nil {
		comunicado.Vistas++
	}
	return comunicado, nil
}

func (s *comunicadoService) ListarAdmin(ctx context.Context, estado string, offset, limite int) ([]model.Comunicado, int64, error) {
	return s.repo.List(ctx, repository.ComunicadoFilter{
		Estado: estado,
		Offset: offset,
		Limite: limite,
	})
}

func (s *comunicadoService) Crear(ctx context.Context, req CrearComunicadoRequest, autorID uuid.UUID, adjunto *ArchivoAdjunto) (*model.Comunicado, error) {
	comunicado := &model.Comunicado{
		Titulo:    strings.TrimSpace(req.Titulo),
		Contenido: req.Contenido,
		Resumen:   req.Resumen,
		Categoria: req.Categoria,
		Estado:    req.Estado,
		Destacado: req.Destacado,
		AutorID:   autorID,
	}
	if comunicado.Categoria == "" {
		comunicado.Categoria = model.CategoriaGeneral
	}
	if comunicado.Estado == "" {
		comunicado.Estado = model.ComunicadoBorrador
	}
	if comunicado.Estado == model.ComunicadoPublicado {
		now := time.Now()
		comunicado.FechaPublicacion = &now
	}
	if adjunto != nil {
		comunicado.ArchivoURL = adjunto.URL
		comunicado.ArchivoNombre = adjunto.Nombre
	}

	if err := s.repo.Create(ctx, comunicado); err != nil {
		return nil, err
	}
	return comunicado, nil
}

func (s *comunicadoService) Actualizar(ctx context.Context, id string, req ActualizarComunicadoRequest, adjunto *ArchivoAdjunto) (*model.Comunicado, error) {
	comunicado, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("comunicado no encontrado")
		}
		return nil, err
	}

	if req.Titulo != "" {
		comunicado.Titulo = strings.TrimSpace(req.Titulo)
	}
	if req.Contenido != "" {
		comunicado.Contenido = req.Contenido
	}
	if req.Resumen != "" {
		comunicado.Resumen = req.Resumen
	}
	if req.Categoria != "" {
		comunicado.Categoria = req.Categoria
	}
	if req.Destacado != nil {
		comunicado.Destacado = *req.Destacado
	}
	if req.Estado != "" {
		// First publish stamps the publication date
		if req.Estado == model.ComunicadoPublicado && comunicado.Estado != model.ComunicadoPublicado {
			now := time.Now()
			comunicado.FechaPublicacion = &now
		}
		comunicado.Estado = req.Estado
	}
	if adjunto != nil {
		if comunicado.ArchivoURL != "" && s.store != nil {
			_ = s.store.Remove(comunicado.ArchivoURL)
		}
		comunicado.ArchivoURL = adjunto.URL
		comunicado.ArchivoNombre = adjunto.Nombre
	}

	if err := s.repo.Update(ctx, comunicado); err != nil {
		return nil, err
	}
	return comunicado, nil
}

func (s *comunicadoService) Eliminar(ctx context.Context, id string) error {
	comunicado, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("comunicado no encontrado")
		}
		return err
	}

	if comunicado.ArchivoURL != "" && s.store != nil {
		_ = s.store.Remove(comunicado.ArchivoURL)
	}
	return s.repo.Delete(ctx, id)
}
