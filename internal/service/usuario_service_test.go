package service

import (
	"context"
	"errors"
	"testing"

	"ugel-backend/internal/model"
	"ugel-backend/pkg/apperror"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUsuarioRepo struct {
	byID    map[string]*model.Usuario
	byEmail map[string]*model.Usuario
	roles   map[string]*model.Rol
	deleted []string
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	f := &fakeUsuarioRepo{
		byID:    make(map[string]*model.Usuario),
		byEmail: make(map[string]*model.Usuario),
		roles:   make(map[string]*model.Rol),
	}
	for _, nombre := range []string{model.RolAdmin, model.RolOperador} {
		f.roles[nombre] = &model.Rol{ID: uuid.New(), Nombre: nombre}
	}
	return f
}

func (f *fakeUsuarioRepo) seed(u *model.Usuario) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.byID[u.ID.String()] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	u.ID = uuid.New()
	f.seed(u)
	return nil
}

func (f *fakeUsuarioRepo) GetByID(_ context.Context, id string) (*model.Usuario, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*model.Usuario, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	cp := *u
	f.byID[cp.ID.String()] = &cp
	f.byEmail[cp.Email] = &cp
	return nil
}

func (f *fakeUsuarioRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeUsuarioRepo) GetRolByNombre(_ context.Context, nombre string) (*model.Rol, error) {
	rol, ok := f.roles[nombre]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rol, nil
}

func TestCrearUsuario(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := NewUsuarioService(repo)

	res, err := svc.Crear(context.Background(), CrearUsuarioRequest{
		Nombre:   "María",
		Apellido: "Flores",
		Email:    "  Maria.Flores@UGEL.gob.pe ",
		Password: "contraseña-segura",
		Rol:      model.RolOperador,
	})
	if err != nil {
		t.Fatalf("Crear failed: %v", err)
	}

	if res.Email != "maria.flores@ugel.gob.pe" {
		t.Fatalf("email = %q, want normalized", res.Email)
	}
	if res.Rol != model.RolOperador {
		t.Fatalf("rol = %q", res.Rol)
	}
	if !res.Activo {
		t.Fatal("new users start active")
	}

	guardado := repo.byEmail["maria.flores@ugel.gob.pe"]
	if guardado.Password == "contraseña-segura" {
		t.Fatal("password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(guardado.Password), []byte("contraseña-segura")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestCrearUsuarioEmailDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	repo.seed(&model.Usuario{Email: "ya@ugel.gob.pe"})
	svc := NewUsuarioService(repo)

	_, err := svc.Crear(context.Background(), CrearUsuarioRequest{
		Nombre:   "Otro",
		Apellido: "Usuario",
		Email:    "ya@ugel.gob.pe",
		Password: "12345678x",
		Rol:      model.RolAdmin,
	})
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestCrearUsuarioRolInvalido(t *testing.T) {
	svc := NewUsuarioService(newFakeUsuarioRepo())

	_, err := svc.Crear(context.Background(), CrearUsuarioRequest{
		Nombre:   "X",
		Apellido: "Y",
		Email:    "x@ugel.gob.pe",
		Password: "12345678x",
		Rol:      "SUPERUSUARIO",
	})
	if _, ok := apperror.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEliminarUsuarioPropioRechazado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	admin := &model.Usuario{Email: "admin@ugel.gob.pe"}
	repo.seed(admin)
	svc := NewUsuarioService(repo)

	err := svc.Eliminar(context.Background(), admin.ID.String(), admin.ID.String())
	if _, ok := apperror.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatal("self-deletion must not reach the repository")
	}
}

func TestEliminarUsuario(t *testing.T) {
	repo := newFakeUsuarioRepo()
	otro := &model.Usuario{Email: "operador@ugel.gob.pe"}
	repo.seed(otro)
	svc := NewUsuarioService(repo)

	if err := svc.Eliminar(context.Background(), otro.ID.String(), uuid.NewString()); err != nil {
		t.Fatalf("Eliminar failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != otro.ID.String() {
		t.Fatalf("deleted = %v", repo.deleted)
	}
}
