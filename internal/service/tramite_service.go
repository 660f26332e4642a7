package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"ugel-backend/internal/model"
	"ugel-backend/internal/repository"
	"ugel-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const expedientePrefijo = "UGEL"

// maxIntentosRegistro bounds the retry loop when two concurrent intakes race
// for the same expediente number. The unique index on numero_expediente turns
// the loser's insert into gorm.ErrDuplicatedKey and a fresh number is drawn.
const maxIntentosRegistro = 3

// EstadosValidos is the set of estados the transition guard accepts. Any
// known estado may move to any other; narrowing the workflow means shrinking
// this set, not editing the guard.
var EstadosValidos = []string{
	model.EstadoRecibido,
	model.EstadoEnProceso,
	model.EstadoAtendido,
	model.EstadoRechazado,
}

// TiposValidos is the accepted tipoTramite enumeration
var TiposValidos = []string{
	model.TipoContratacionDocente,
	model.TipoLicencia,
	model.TipoPermiso,
	model.TipoReasignacion,
	model.TipoPermuta,
	model.TipoCese,
	model.TipoReincorporacion,
	model.TipoPagoHaberes,
	model.TipoEscalafon,
	model.TipoReconocimiento,
	model.TipoSubsanacion,
	model.TipoApelacion,
	model.TipoOtro,
}

var (
	dniRegex   = regexp.MustCompile(`^\d{8}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// --- DTOs ---

type RegistrarTramiteRequest struct {
	Nombre      string `form:"nombre" json:"nombre"`
	Apellido    string `form:"apellido" json:"apellido"`
	DNI         string `form:"dni" json:"dni"`
	Email       string `form:"email" json:"email"`
	Telefono    string `form:"telefono" json:"telefono"`
	TipoTramite string `form:"tipoTramite" json:"tipoTramite"`
	Asunto      string `form:"asunto" json:"asunto"`
	Descripcion string `form:"descripcion" json:"descripcion"`
}

// ArchivoAdjunto references a file already validated and stored by the
// upload collaborator
type ArchivoAdjunto struct {
	URL     string
	Nombre  string
	Tamanio int64
}

// RegistroTramiteResponse is the intake result. Deliberately only the
// expediente number, estado and registration date — personal data is never
// echoed back to the caller.
type RegistroTramiteResponse struct {
	NumeroExpediente string    `json:"numeroExpediente"`
	Estado           string    `json:"estado"`
	FechaRegistro    time.Time `json:"fechaRegistro"`
}

// TramitePublico is the public-safe projection for lookups by code. DNI,
// email, teléfono, the attachment and the operator reference are excluded.
type TramitePublico struct {
	NumeroExpediente string     `json:"numeroExpediente"`
	Nombre           string     `json:"nombre"`
	Apellido         string     `json:"apellido"`
	TipoTramite      string     `json:"tipoTramite"`
	Asunto           string     `json:"asunto"`
	Estado           string     `json:"estado"`
	Observaciones    string     `json:"observaciones"`
	FechaAtencion    *time.Time `json:"fechaAtencion"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type CambiarEstadoRequest struct {
	Estado        string `json:"estado" binding:"required"`
	Observaciones string `json:"observaciones"`
}

// --- Interface ---

type TramiteService interface {
	Registrar(ctx context.Context, req RegistrarTramiteRequest, adjunto *ArchivoAdjunto) (*RegistroTramiteResponse, error)
	ConsultarPorCodigo(ctx context.Context, codigo string) (*TramitePublico, error)
	ListarAdmin(ctx context.Context, filter repository.TramiteFilter) ([]model.Tramite, int64, error)
	ObtenerAdmin(ctx context.Context, id string) (*model.Tramite, error)
	CambiarEstado(ctx context.Context, id string, operadorID uuid.UUID, req CambiarEstadoRequest) (*model.Tramite, error)
	Estadisticas(ctx context.Context) (model.TramiteStats, error)
}

type tramiteService struct {
	repo repository.TramiteRepository
	hub  interface{ GetBroadcast() chan []byte } // optional websocket hub
}

// NewTramiteService returns a new instance of TramiteService. hub may be nil.
func NewTramiteService(repo repository.TramiteRepository, hub interface{ GetBroadcast() chan []byte }) TramiteService {
	return &tramiteService{repo: repo, hub: hub}
}

// --- Implementation ---

func contiene(set []string, valor string) bool {
	for _, v := range set {
		if v == valor {
			return true
		}
	}
	return false
}

// generarNumeroExpediente derives the next expediente number for the current
// year: prefix UGEL-<year>- plus the highest existing suffix incremented,
// zero-padded to six digits. Year rollover restarts the sequence at 1 under
// the new prefix.
func (s *tramiteService) generarNumeroExpediente(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("%s-%d-", expedientePrefijo, time.Now().Year())

	secuencia := 1
	ultimo, err := s.repo.LastExpedienteForPrefix(ctx, prefix)
	if err == nil {
		partes := strings.Split(ultimo, "-")
		n, convErr := strconv.Atoi(partes[len(partes)-1])
		if convErr != nil {
			return "", fmt.Errorf("expediente malformado %q: %w", ultimo, convErr)
		}
		secuencia = n + 1
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("error buscando último expediente: %w", err)
	}

	return fmt.Sprintf("%s%06d", prefix, secuencia), nil
}

func validarRegistro(req *RegistrarTramiteRequest) *apperror.ValidationError {
	var fields []apperror.FieldError

	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Apellido = strings.TrimSpace(req.Apellido)
	req.DNI = strings.TrimSpace(req.DNI)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Asunto = strings.TrimSpace(req.Asunto)

	if req.Nombre == "" {
		fields = append(fields, apperror.FieldError{Field: "nombre", Message: "el nombre es requerido"})
	}
	if req.Apellido == "" {
		fields = append(fields, apperror.FieldError{Field: "apellido", Message: "el apellido es requerido"})
	}
	if req.DNI == "" {
		fields = append(fields, apperror.FieldError{Field: "dni", Message: "el DNI es requerido"})
	} else if !dniRegex.MatchString(req.DNI) {
		fields = append(fields, apperror.FieldError{Field: "dni", Message: "el DNI debe tener exactamente 8 dígitos numéricos"})
	}
	if req.Email == "" {
		fields = append(fields, apperror.FieldError{Field: "email", Message: "el email es requerido"})
	} else if !emailRegex.MatchString(req.Email) {
		fields = append(fields, apperror.FieldError{Field: "email", Message: "el email no es válido"})
	}
	if req.TipoTramite == "" {
		fields = append(fields, apperror.FieldError{Field: "tipoTramite", Message: "el tipo de trámite es requerido"})
	} else if !contiene(TiposValidos, req.TipoTramite) {
		fields = append(fields, apperror.FieldError{Field: "tipoTramite", Message: "tipo de trámite inválido"})
	}
	if req.Asunto == "" {
		fields = append(fields, apperror.FieldError{Field: "asunto", Message: "el asunto es requerido"})
	}

	if len(fields) > 0 {
		return &apperror.ValidationError{Fields: fields}
	}
	return nil
}

func (s *tramiteService) Registrar(ctx context.Context, req RegistrarTramiteRequest, adjunto *ArchivoAdjunto) (*RegistroTramiteResponse, error) {
	if ve := validarRegistro(&req); ve != nil {
		return nil, ve
	}

	tramite := &model.Tramite{
		Nombre:      req.Nombre,
		Apellido:    req.Apellido,
		DNI:         req.DNI,
		Email:       req.Email,
		Telefono:    req.Telefono,
		TipoTramite: req.TipoTramite,
		Asunto:      req.Asunto,
		Descripcion: req.Descripcion,
		Estado:      model.EstadoRecibido,
	}
	if adjunto != nil {
		tramite.ArchivoURL = adjunto.URL
		tramite.ArchivoNombre = adjunto.Nombre
		tramite.ArchivoTamanio = adjunto.Tamanio
	}

	for intento := 0; intento < maxIntentosRegistro; intento++ {
		numero, err := s.generarNumeroExpediente(ctx)
		if err != nil {
			return nil, err
		}
		tramite.NumeroExpediente = numero

		err = s.repo.Create(ctx, tramite)
		if err == nil {
			s.broadcast("tramite_nuevo", tramite)
			return &RegistroTramiteResponse{
				NumeroExpediente: tramite.NumeroExpediente,
				Estado:           tramite.Estado,
				FechaRegistro:    tramite.CreatedAt,
			}, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("error registrando trámite: %w", err)
		}
	}

	return nil, apperror.Conflict("no se pudo asignar un número de expediente único, intente nuevamente")
}

func (s *tramiteService) ConsultarPorCodigo(ctx context.Context, codigo string) (*TramitePublico, error) {
	codigo = strings.ToUpper(strings.TrimSpace(codigo))

	tramite, err := s.repo.GetByNumeroExpediente(ctx, codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("no se encontró ningún expediente con ese código")
		}
		return nil, err
	}

	return &TramitePublico{
		NumeroExpediente: tramite.NumeroExpediente,
		Nombre:           tramite.Nombre,
		Apellido:         tramite.Apellido,
		TipoTramite:      tramite.TipoTramite,
		Asunto:           tramite.Asunto,
		Estado:           tramite.Estado,
		Observaciones:    tramite.Observaciones,
		FechaAtencion:    tramite.FechaAtencion,
		CreatedAt:        tramite.CreatedAt,
		UpdatedAt:        tramite.UpdatedAt,
	}, nil
}

func (s *tramiteService) ListarAdmin(ctx context.Context, filter repository.TramiteFilter) ([]model.Tramite, int64, error) {
	if filter.Limite <= 0 {
		filter.Limite = 20
	}
	return s.repo.List(ctx, filter)
}

func (s *tramiteService) ObtenerAdmin(ctx context.Context, id string) (*model.Tramite, error) {
	tramite, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("trámite no encontrado")
		}
		return nil, err
	}
	return tramite, nil
}

func (s *tramiteService) CambiarEstado(ctx context.Context, id string, operadorID uuid.UUID, req CambiarEstadoRequest) (*model.Tramite, error) {
	if !contiene(EstadosValidos, req.Estado) {
		return nil, apperror.NewValidation("estado", "estado inválido")
	}

	tramite, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("trámite no encontrado")
		}
		return nil, err
	}

	tramite.Estado = req.Estado
	tramite.OperadorID = &operadorID
	if req.Observaciones != "" {
		tramite.Observaciones = req.Observaciones
	}
	// FechaAtencion records when the trámite first reached a terminal estado;
	// it is never overwritten afterwards.
	if (req.Estado == model.EstadoAtendido || req.Estado == model.EstadoRechazado) && tramite.FechaAtencion == nil {
		now := time.Now()
		tramite.FechaAtencion = &now
	}

	if err := s.repo.Update(ctx, tramite); err != nil {
		return nil, fmt.Errorf("error actualizando trámite: %w", err)
	}

	s.broadcast("tramite_estado", tramite)
	return tramite, nil
}

func (s *tramiteService) Estadisticas(ctx context.Context) (model.TramiteStats, error) {
	counts, err := s.repo.CountByEstado(ctx)
	if err != nil {
		return model.TramiteStats{}, err
	}

	stats := model.TramiteStats{
		Recibido:  counts[model.EstadoRecibido],
		EnProceso: counts[model.EstadoEnProceso],
		Atendido:  counts[model.EstadoAtendido],
		Rechazado: counts[model.EstadoRechazado],
	}
	stats.Total = stats.Recibido + stats.EnProceso + stats.Atendido + stats.Rechazado
	return stats, nil
}

func (s *tramiteService) broadcast(tipo string, tramite *model.Tramite) {
	if s.hub == nil {
		return
	}
	msg, err := json.Marshal(map[string]interface{}{
		"type":             tipo,
		"numeroExpediente": tramite.NumeroExpediente,
		"tipoTramite":      tramite.TipoTramite,
		"estado":           tramite.Estado,
	})
	if err != nil {
		return
	}
	select {
	case s.hub.GetBroadcast() <- msg:
	default:
		// Nobody listening; drop the event
	}
}
