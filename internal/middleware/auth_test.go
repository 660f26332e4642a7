package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ugel-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newRouter(allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protegido", RequireRole(allowed...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":  c.GetString("userID"),
			"userRol": c.GetString("userRol"),
		})
	})
	return router
}

func signToken(t *testing.T, secret, rol string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "3f6bb6f0-9f25-4a9c-9c7e-0d9f7a2d9e11",
		"email": "admin@ugel.gob.pe",
		"rol":   rol,
		"exp":   exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	cases := []struct {
		name       string
		allowed    []string
		authHeader string
		cookie     string
		wantStatus int
	}{
		{
			name:       "sin token",
			allowed:    []string{model.RolAdmin},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "formato invalido",
			allowed:    []string{model.RolAdmin},
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "firma incorrecta",
			allowed:    []string{model.RolAdmin},
			authHeader: "Bearer " + signToken(t, "otro-secreto", model.RolAdmin, time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token expirado",
			allowed:    []string{model.RolAdmin},
			authHeader: "Bearer " + signToken(t, "secreto-de-prueba", model.RolAdmin, time.Now().Add(-time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rol insuficiente",
			allowed:    []string{model.RolAdmin},
			authHeader: "Bearer " + signToken(t, "secreto-de-prueba", model.RolOperador, time.Now().Add(time.Hour)),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "rol permitido via header",
			allowed:    []string{model.RolAdmin, model.RolOperador},
			authHeader: "Bearer " + signToken(t, "secreto-de-prueba", model.RolOperador, time.Now().Add(time.Hour)),
			wantStatus: http.StatusOK,
		},
		{
			name:       "rol permitido via cookie",
			allowed:    []string{model.RolAdmin},
			cookie:     signToken(t, "secreto-de-prueba", model.RolAdmin, time.Now().Add(time.Hour)),
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newRouter(tc.allowed...)

			req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tc.cookie})
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
		})
	}
}
