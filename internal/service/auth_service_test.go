package service

import (
	"context"
	"testing"

	"ugel-backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func seedStaff(t *testing.T, repo *fakeUsuarioRepo, email, password string, activo bool) *model.Usuario {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	usuario := &model.Usuario{
		Nombre:   "Carla",
		Apellido: "Rojas",
		Email:    email,
		Password: string(hashed),
		Activo:   activo,
		Rol:      repo.roles[model.RolAdmin],
		RolID:    repo.roles[model.RolAdmin].ID,
	}
	repo.seed(usuario)
	return usuario
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	repo := newFakeUsuarioRepo()
	seedStaff(t, repo, "carla@ugel.gob.pe", "clave-correcta", true)
	svc := NewAuthService(repo)

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    " Carla@UGEL.gob.pe ",
		Password: "clave-correcta",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if res.Usuario.Email != "carla@ugel.gob.pe" {
		t.Fatalf("usuario.email = %q", res.Usuario.Email)
	}
	if res.Usuario.Rol != model.RolAdmin {
		t.Fatalf("usuario.rol = %q", res.Usuario.Rol)
	}

	// The token must carry the rol claim the middleware checks
	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secreto-de-prueba"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["rol"] != model.RolAdmin {
		t.Fatalf("claim rol = %v", claims["rol"])
	}

	// Last access is stamped
	actualizado := repo.byEmail["carla@ugel.gob.pe"]
	if actualizado.UltimoAcceso == nil {
		t.Fatal("ultimoAcceso should be stamped on login")
	}
}

func TestLoginRechazos(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	repo := newFakeUsuarioRepo()
	seedStaff(t, repo, "activa@ugel.gob.pe", "clave-correcta", true)
	seedStaff(t, repo, "inactiva@ugel.gob.pe", "clave-correcta", false)
	svc := NewAuthService(repo)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"password incorrecto", "activa@ugel.gob.pe", "clave-erronea"},
		{"usuario inexistente", "nadie@ugel.gob.pe", "clave-correcta"},
		{"cuenta desactivada", "inactiva@ugel.gob.pe", "clave-correcta"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), LoginRequest{Email: tc.email, Password: tc.password})
			if err == nil {
				t.Fatal("expected login to fail")
			}
			// Same opaque message in every case: no account probing
			if err.Error() != "email o contraseña incorrectos" {
				t.Fatalf("unexpected message: %q", err.Error())
			}
		})
	}
}

func TestCambiarPassword(t *testing.T) {
	repo := newFakeUsuarioRepo()
	usuario := seedStaff(t, repo, "carla@ugel.gob.pe", "clave-anterior", true)
	svc := NewAuthService(repo)

	err := svc.CambiarPassword(context.Background(), usuario.ID.String(), CambiarPasswordRequest{
		PasswordActual: "clave-anterior",
		PasswordNuevo:  "clave-nueva-larga",
	})
	if err != nil {
		t.Fatalf("CambiarPassword failed: %v", err)
	}

	actualizado, err := repo.GetByID(context.Background(), usuario.ID.String())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(actualizado.Password), []byte("clave-nueva-larga")) != nil {
		t.Fatal("new password should verify against stored hash")
	}
}
