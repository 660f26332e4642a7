package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"ugel-backend/internal/model"
	"ugel-backend/internal/repository"
	"ugel-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeTramiteRepo is an in-memory stand-in for the gorm repository
type fakeTramiteRepo struct {
	byNumero    map[string]*model.Tramite
	byID        map[string]*model.Tramite
	counts      map[string]int64
	createCalls int
	// raceOnce makes the first Create fail with a duplicate-key error while
	// inserting a blocker record, as if a concurrent intake won the number
	raceOnce bool
	// failCreates forces that many duplicate-key failures in a row
	failCreates int
}

func newFakeTramiteRepo() *fakeTramiteRepo {
	return &fakeTramiteRepo{
		byNumero: make(map[string]*model.Tramite),
		byID:     make(map[string]*model.Tramite),
	}
}

func (f *fakeTramiteRepo) seed(t *model.Tramite) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.byNumero[t.NumeroExpediente] = t
	f.byID[t.ID.String()] = t
}

func (f *fakeTramiteRepo) Create(_ context.Context, t *model.Tramite) error {
	f.createCalls++
	if f.failCreates > 0 {
		f.failCreates--
		return gorm.ErrDuplicatedKey
	}
	if f.raceOnce {
		f.raceOnce = false
		f.seed(&model.Tramite{NumeroExpediente: t.NumeroExpediente})
		return gorm.ErrDuplicatedKey
	}
	if _, ok := f.byNumero[t.NumeroExpediente]; ok {
		return gorm.ErrDuplicatedKey
	}
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	f.byNumero[cp.NumeroExpediente] = &cp
	f.byID[cp.ID.String()] = &cp
	return nil
}

func (f *fakeTramiteRepo) GetByID(_ context.Context, id string) (*model.Tramite, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTramiteRepo) GetByNumeroExpediente(_ context.Context, numero string) (*model.Tramite, error) {
	t, ok := f.byNumero[numero]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTramiteRepo) LastExpedienteForPrefix(_ context.Context, prefix string) (string, error) {
	best := ""
	for numero := range f.byNumero {
		if !strings.HasPrefix(numero, prefix) {
			continue
		}
		if len(numero) > len(best) || (len(numero) == len(best) && numero > best) {
			best = numero
		}
	}
	if best == "" {
		return "", gorm.ErrRecordNotFound
	}
	return best, nil
}

func (f *fakeTramiteRepo) List(_ context.Context, _ repository.TramiteFilter) ([]model.Tramite, int64, error) {
	var out []model.Tramite
	for _, t := range f.byNumero {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTramiteRepo) Update(_ context.Context, t *model.Tramite) error {
	cp := *t
	f.byNumero[cp.NumeroExpediente] = &cp
	f.byID[cp.ID.String()] = &cp
	return nil
}

func (f *fakeTramiteRepo) CountByEstado(_ context.Context) (map[string]int64, error) {
	return f.counts, nil
}

func validRequest() RegistrarTramiteRequest {
	return RegistrarTramiteRequest{
		Nombre:      "Ana",
		Apellido:    "Quispe",
		DNI:         "12345678",
		Email:       "ana.quispe@example.com",
		TipoTramite: model.TipoLicencia,
		Asunto:      "Licencia por motivos personales",
	}
}

func TestRegistrarAsignaPrimerExpediente(t *testing.T) {
	repo := newFakeTramiteRepo()
	svc := NewTramiteService(repo, nil)

	res, err := svc.Registrar(context.Background(), validRequest(), nil)
	if err != nil {
		t.Fatalf("Registrar failed: %v", err)
	}

	want := fmt.Sprintf("UGEL-%d-000001", time.Now().Year())
	if res.NumeroExpediente != want {
		t.Fatalf("numero = %q, want %q", res.NumeroExpediente, want)
	}
	if res.Estado != model.EstadoRecibido {
		t.Fatalf("estado = %q, want %q", res.Estado, model.EstadoRecibido)
	}
	if res.FechaRegistro.IsZero() {
		t.Fatal("fechaRegistro should be stamped")
	}
}

func TestRegistrarIncrementaSecuencia(t *testing.T) {
	repo := newFakeTramiteRepo()
	repo.seed(&model.Tramite{NumeroExpediente: fmt.Sprintf("UGEL-%d-000041", time.Now().Year())})
	svc := NewTramiteService(repo, nil)

	res, err := svc.Registrar(context.Background(), validRequest(), nil)
	if err != nil {
		t.Fatalf("Registrar failed: %v", err)
	}

	want := fmt.Sprintf("UGEL-%d-000042", time.Now().Year())
	if res.NumeroExpediente != want {
		t.Fatalf("numero = %q, want %q", res.NumeroExpediente, want)
	}
}

func TestRegistrarNoEchaDatosPersonales(t *testing.T) {
	repo := newFakeTramiteRepo()
	svc := NewTramiteService(repo, nil)

	req := validRequest()
	req.Email = "  ANA.Quispe@Example.COM "
	res, err := svc.Registrar(context.Background(), req, nil)
	if err != nil {
		t.Fatalf("Registrar failed: %v", err)
	}

	// The response carries only the tracking data
	if res.NumeroExpediente == "" || res.Estado == "" {
		t.Fatal("response missing tracking fields")
	}

	guardado := repo.byNumero[res.NumeroExpediente]
	if guardado.Email != "ana.quispe@example.com" {
		t.Fatalf("email = %q, want normalized lowercase", guardado.Email)
	}
}

func TestRegistrarValidaciones(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegistrarTramiteRequest)
		field  string
	}{
		{"dni corto", func(r *RegistrarTramiteRequest) { r.DNI = "1234567" }, "dni"},
		{"dni con letras", func(r *RegistrarTramiteRequest) { r.DNI = "1234567a" }, "dni"},
		{"dni vacio", func(r *RegistrarTramiteRequest) { r.DNI = "" }, "dni"},
		{"email invalido", func(r *RegistrarTramiteRequest) { r.Email = "no-es-email" }, "email"},
		{"email vacio", func(r *RegistrarTramiteRequest) { r.Email = "" }, "email"},
		{"tipo desconocido", func(r *RegistrarTramiteRequest) { r.TipoTramite = "VACACIONES" }, "tipoTramite"},
		{"sin nombre", func(r *RegistrarTramiteRequest) { r.Nombre = "   " }, "nombre"},
		{"sin asunto", func(r *RegistrarTramiteRequest) { r.Asunto = "" }, "asunto"},
	}

	svc := NewTramiteService(newFakeTramiteRepo(), nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Registrar(context.Background(), req, nil)
			ve, ok := apperror.AsValidation(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}

			found := false
			for _, fe := range ve.Fields {
				if fe.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected field %q in %+v", tc.field, ve.Fields)
			}
		})
	}
}

func TestRegistrarReintentaTrasColision(t *testing.T) {
	repo := newFakeTramiteRepo()
	repo.raceOnce = true
	svc := NewTramiteService(repo, nil)

	res, err := svc.Registrar(context.Background(), validRequest(), nil)
	if err != nil {
		t.Fatalf("Registrar failed: %v", err)
	}

	// The loser of the race must pick the next free number
	want := fmt.Sprintf("UGEL-%d-000002", time.Now().Year())
	if res.NumeroExpediente != want {
		t.Fatalf("numero = %q, want %q", res.NumeroExpediente, want)
	}
	if repo.createCalls != 2 {
		t.Fatalf("createCalls = %d, want 2", repo.createCalls)
	}
}

func TestRegistrarAgotaReintentos(t *testing.T) {
	repo := newFakeTramiteRepo()
	repo.failCreates = 3
	svc := NewTramiteService(repo, nil)

	_, err := svc.Registrar(context.Background(), validRequest(), nil)
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if repo.createCalls != 3 {
		t.Fatalf("createCalls = %d, want 3", repo.createCalls)
	}
}

func TestConsultarPorCodigo(t *testing.T) {
	repo := newFakeTramiteRepo()
	atencion := time.Now()
	repo.seed(&model.Tramite{
		NumeroExpediente: "UGEL-2025-000007",
		Nombre:           "Luis",
		Apellido:         "Mamani",
		DNI:              "87654321",
		Email:            "luis@example.com",
		Telefono:         "987654321",
		TipoTramite:      model.TipoLicencia,
		Asunto:           "Licencia",
		Estado:           model.EstadoAtendido,
		Observaciones:    "Aprobado",
		FechaAtencion:    &atencion,
	})
	svc := NewTramiteService(repo, nil)

	// Lookup is case-insensitive and trims whitespace
	pub, err := svc.ConsultarPorCodigo(context.Background(), "  ugel-2025-000007 ")
	if err != nil {
		t.Fatalf("ConsultarPorCodigo failed: %v", err)
	}

	if pub.NumeroExpediente != "UGEL-2025-000007" {
		t.Fatalf("numero = %q", pub.NumeroExpediente)
	}
	if pub.Estado != model.EstadoAtendido || pub.Observaciones != "Aprobado" {
		t.Fatalf("estado/observaciones = %q/%q", pub.Estado, pub.Observaciones)
	}
	if pub.FechaAtencion == nil {
		t.Fatal("fechaAtencion should be present")
	}
}

func TestConsultarNoEncontrado(t *testing.T) {
	svc := NewTramiteService(newFakeTramiteRepo(), nil)

	_, err := svc.ConsultarPorCodigo(context.Background(), "UGEL-2025-999999")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCambiarEstado(t *testing.T) {
	operador := uuid.New()

	t.Run("estado terminal estampa fecha de atencion", func(t *testing.T) {
		repo := newFakeTramiteRepo()
		tramite := &model.Tramite{NumeroExpediente: "UGEL-2025-000001", Estado: model.EstadoRecibido}
		repo.seed(tramite)
		svc := NewTramiteService(repo, nil)

		res, err := svc.CambiarEstado(context.Background(), tramite.ID.String(), operador, CambiarEstadoRequest{
			Estado:        model.EstadoAtendido,
			Observaciones: "Aprobado",
		})
		if err != nil {
			t.Fatalf("CambiarEstado failed: %v", err)
		}

		if res.Estado != model.EstadoAtendido {
			t.Fatalf("estado = %q", res.Estado)
		}
		if res.FechaAtencion == nil {
			t.Fatal("fechaAtencion should be stamped on terminal estado")
		}
		if res.OperadorID == nil || *res.OperadorID != operador {
			t.Fatal("operadorID should record who resolved the trámite")
		}
		if res.Observaciones != "Aprobado" {
			t.Fatalf("observaciones = %q", res.Observaciones)
		}
	})

	t.Run("estado intermedio no estampa fecha", func(t *testing.T) {
		repo := newFakeTramiteRepo()
		tramite := &model.Tramite{NumeroExpediente: "UGEL-2025-000002", Estado: model.EstadoRecibido}
		repo.seed(tramite)
		svc := NewTramiteService(repo, nil)

		res, err := svc.CambiarEstado(context.Background(), tramite.ID.String(), operador, CambiarEstadoRequest{
			Estado: model.EstadoEnProceso,
		})
		if err != nil {
			t.Fatalf("CambiarEstado failed: %v", err)
		}
		if res.FechaAtencion != nil {
			t.Fatal("fechaAtencion must stay nil outside terminal estados")
		}
	})

	t.Run("fecha de atencion no se sobrescribe", func(t *testing.T) {
		repo := newFakeTramiteRepo()
		primera := time.Now().Add(-24 * time.Hour)
		tramite := &model.Tramite{NumeroExpediente: "UGEL-2025-000003", Estado: model.EstadoAtendido, FechaAtencion: &primera}
		repo.seed(tramite)
		svc := NewTramiteService(repo, nil)

		res, err := svc.CambiarEstado(context.Background(), tramite.ID.String(), operador, CambiarEstadoRequest{
			Estado: model.EstadoRechazado,
		})
		if err != nil {
			t.Fatalf("CambiarEstado failed: %v", err)
		}
		if !res.FechaAtencion.Equal(primera) {
			t.Fatalf("fechaAtencion = %v, want original %v", res.FechaAtencion, primera)
		}
	})

	t.Run("estado desconocido se rechaza", func(t *testing.T) {
		repo := newFakeTramiteRepo()
		tramite := &model.Tramite{NumeroExpediente: "UGEL-2025-000004", Estado: model.EstadoRecibido}
		repo.seed(tramite)
		svc := NewTramiteService(repo, nil)

		_, err := svc.CambiarEstado(context.Background(), tramite.ID.String(), operador, CambiarEstadoRequest{
			Estado: "ARCHIVADO",
		})
		if _, ok := apperror.AsValidation(err); !ok {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("tramite inexistente", func(t *testing.T) {
		svc := NewTramiteService(newFakeTramiteRepo(), nil)

		_, err := svc.CambiarEstado(context.Background(), uuid.NewString(), operador, CambiarEstadoRequest{
			Estado: model.EstadoAtendido,
		})
		if !errors.Is(err, apperror.ErrNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})
}

func TestEstadisticas(t *testing.T) {
	repo := newFakeTramiteRepo()
	repo.counts = map[string]int64{
		model.EstadoRecibido: 3,
		model.EstadoAtendido: 2,
	}
	svc := NewTramiteService(repo, nil)

	stats, err := svc.Estadisticas(context.Background())
	if err != nil {
		t.Fatalf("Estadisticas failed: %v", err)
	}

	if stats.Recibido != 3 || stats.Atendido != 2 {
		t.Fatalf("counts = %+v", stats)
	}
	// States with no rows still appear as zero
	if stats.EnProceso != 0 || stats.Rechazado != 0 {
		t.Fatalf("missing estados should default to zero: %+v", stats)
	}
	if stats.Total != 5 {
		t.Fatalf("total = %d, want 5", stats.Total)
	}
}
