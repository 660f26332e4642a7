package handler

import (
	"net/http"

	"ugel-backend/internal/middleware"
	"ugel-backend/internal/model"
	"ugel-backend/internal/service"
	"ugel-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UsuarioHandler struct {
	usuarioService service.UsuarioService
}

// NewUsuarioHandler sets up the routing dependencies for usuario endpoints
func NewUsuarioHandler(usuarioService service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup. All staff
// management is ADMIN only.
func (h *UsuarioHandler) RegisterRoutes(api *gin.RouterGroup) {
	usuarios := api.Group("/admin/usuarios", middleware.RequireRole(model.RolAdmin))
	{
		usuarios.GET("", h.Listar)
		usuarios.POST("", h.Crear)
		usuarios.PUT("/:id", h.Actualizar)
		usuarios.DELETE("/:id", h.Eliminar)
	}
}

// Listar handles GET /admin/usuarios
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]service.UsuarioResponse}
// @Router       /admin/usuarios [get]
func (h *UsuarioHandler) Listar(c *gin.Context) {
	usuarios, err := h.usuarioService.Listar(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("", usuarios))
}

// Crear handles POST /admin/usuarios
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CrearUsuarioRequest  true  "Datos del usuario"
// @Success      201      {object}  response.Response{data=service.UsuarioResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /admin/usuarios [post]
func (h *UsuarioHandler) Crear(c *gin.Context) {
	var req service.CrearUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Datos inválidos: "+err.Error()))
		return
	}

	usuario, err := h.usuarioService.Crear(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success("Usuario creado correctamente", usuario))
}

// Actualizar handles PUT /admin/usuarios/:id
// @Summary      Actualizar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                            true  "ID del usuario"
// @Param        payload  body      service.ActualizarUsuarioRequest  true  "Campos a actualizar"
// @Success      200      {object}  response.Response{data=service.UsuarioResponse}
// @Failure      404      {object}  response.Response
// @Router       /admin/usuarios/{id} [put]
func (h *UsuarioHandler) Actualizar(c *gin.Context) {
	var req service.ActualizarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Datos inválidos"))
		return
	}

	usuario, err := h.usuarioService.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Usuario actualizado correctamente", usuario))
}

// Eliminar handles DELETE /admin/usuarios/:id. Self-deletion is rejected.
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del usuario"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/usuarios/{id} [delete]
func (h *UsuarioHandler) Eliminar(c *gin.Context) {
	solicitanteID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error("Usuario no identificado"))
		return
	}

	if err := h.usuarioService.Eliminar(c.Request.Context(), c.Param("id"), solicitanteID.String()); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Usuario eliminado correctamente", nil))
}
