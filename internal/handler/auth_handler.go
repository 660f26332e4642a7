package handler

import (
	"net/http"

	"ugel-backend/internal/middleware"
	"ugel-backend/internal/model"
	"ugel-backend/internal/service"
	"ugel-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler sets up the routing dependencies for auth endpoints
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.RequireRole(model.RolAdmin, model.RolOperador), h.Me)
		auth.POST("/cambiar-password", middleware.RequireRole(model.RolAdmin, model.RolOperador), h.CambiarPassword)
	}
}

// Login handles POST /auth/login to authenticate and return a JWT token
// @Summary      Iniciar sesión
// @Description  Autentica por email y contraseña y devuelve un token JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Credenciales"
// @Success      200      {object}  response.Response{data=service.LoginResponse}
// @Failure      401      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Email y contraseña son requeridos"))
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success("Sesión iniciada", res))
}

// Me handles GET /auth/me returning the authenticated user
// @Summary      Usuario actual
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=service.UsuarioResponse}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error("Usuario no identificado"))
		return
	}

	usuario, err := h.authService.Me(c.Request.Context(), id.String())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("", usuario))
}

// CambiarPassword handles POST /auth/cambiar-password
// @Summary      Cambiar contraseña propia
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CambiarPasswordRequest  true  "Contraseña actual y nueva"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /auth/cambiar-password [post]
func (h *AuthHandler) CambiarPassword(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error("Usuario no identificado"))
		return
	}

	var req service.CambiarPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Contraseña actual y nueva son requeridas"))
		return
	}

	if err := h.authService.CambiarPassword(c.Request.Context(), id.String(), req); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Contraseña actualizada correctamente", nil))
}
