package handler

import (
	"net/http"
	"strconv"

	"ugel-backend/internal/middleware"
	"ugel-backend/internal/model"
	"ugel-backend/internal/service"
	"ugel-backend/internal/storage"
	"ugel-backend/pkg/pagination"
	"ugel-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ComunicadoHandler struct {
	comunicadoService service.ComunicadoService
	store             *storage.Local
}

// NewComunicadoHandler sets up the routing dependencies for comunicado endpoints
func NewComunicadoHandler(comunicadoService service.ComunicadoService, store *storage.Local) *ComunicadoHandler {
	return &ComunicadoHandler{comunicadoService: comunicadoService, store: store}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *ComunicadoHandler) RegisterRoutes(api *gin.RouterGroup) {
	// Public routes: only published comunicados are visible
	api.GET("/comunicados", h.ListarPublico)
	api.GET("/comunicados/:id", h.ObtenerPublico)

	admin := api.Group("/admin/comunicados", middleware.RequireRole(model.RolAdmin, model.RolOperador))
	{
		admin.GET("", h.ListarAdmin)
		admin.POST("", h.Crear)
		admin.PUT("/:id", h.Actualizar)
		admin.DELETE("/:id", middleware.RequireRole(model.RolAdmin), h.Eliminar)
	}
}

// ListarPublico handles GET /comunicados
// @Summary      Listar comunicados publicados
// @Tags         comunicados
// @Produce      json
// @Param        categoria  query     string  false  "Filtrar por categoría"
// @Param        destacado  query     bool    false  "Solo destacados"
// @Param        pagina     query     int     false  "Página"
// @Param        limite     query     int     false  "Elementos por página"
// @Success      200  {object}  response.Paginated{data=[]model.Comunicado}
// @Router       /comunicados [get]
func (h *ComunicadoHandler) ListarPublico(c *gin.Context) {
	p := pagination.Parse(c)

	var destacado *bool
	if raw := c.Query("destacado"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			destacado = &v
		}
	}

	comunicados, total, err := h.comunicadoService.ListarPublico(c.Request.Context(), c.Query("categoria"), destacado, p.Offset, p.Limite)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(comunicados, total, p.Pagina, p.Limite))
}

// ObtenerPublico handles GET /comunicados/:id and counts the view
// @Summary      Detalle de un comunicado publicado
// @Tags         comunicados
// @Produce      json
// @Param        id   path      string  true  "ID del comunicado"
// @Success      200  {object}  response.Response{data=model.Comunicado}
// @Failure      404  {object}  response.Response
// @Router       /comunicados/{id} [get]
func (h *ComunicadoHandler) ObtenerPublico(c *gin.Context) {
	comunicado, err := h.comunicadoService.ObtenerPublico(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("", comunicado))
}

// ListarAdmin handles GET /admin/comunicados including drafts and archived
// @Summary      Listar comunicados (admin)
// @Tags         comunicados
// @Produce      json
// @Security     BearerAuth
// @Param        estado  query     string  false  "Filtrar por estado"
// @Param        pagina  query     int     false  "Página"
// @Param        limite  query     int     false  "Elementos por página"
// @Success      200  {object}  response.Paginated{data=[]model.Comunicado}
// @Router       /admin/comunicados [get]
func (h *ComunicadoHandler) ListarAdmin(c *gin.Context) {
	p := pagination.Parse(c)

	comunicados, total, err := h.comunicadoService.ListarAdmin(c.Request.Context(), c.Query("estado"), p.Offset, p.Limite)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(comunicados, total, p.Pagina, p.Limite))
}

// Crear handles POST /admin/comunicados (multipart with optional archivo)
// @Summary      Crear comunicado
// @Tags         comunicados
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  response.Response{data=model.Comunicado}
// @Failure      400  {object}  response.Response
// @Router       /admin/comunicados [post]
func (h *ComunicadoHandler) Crear(c *gin.Context) {
	autorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error("Usuario no identificado"))
		return
	}

	var req service.CrearComunicadoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Título y contenido son requeridos"))
		return
	}

	adjunto, err := formAdjunto(c, h.store, "archivo", "comunicados")
	if err != nil {
		handleServiceError(c, err)
		return
	}

	comunicado, err := h.comunicadoService.Crear(c.Request.Context(), req, autorID, adjunto)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success("Comunicado creado correctamente", comunicado))
}

// Actualizar handles PUT /admin/comunicados/:id
// @Summary      Actualizar comunicado
// @Tags         comunicados
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del comunicado"
// @Success      200  {object}  response.Response{data=model.Comunicado}
// @Failure      404  {object}  response.Response
// @Router       /admin/comunicados/{id} [put]
func (h *ComunicadoHandler) Actualizar(c *gin.Context) {
	var req service.ActualizarComunicadoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Datos inválidos"))
		return
	}

	adjunto, err := formAdjunto(c, h.store, "archivo", "comunicados")
	if err != nil {
		handleServiceError(c, err)
		return
	}

	comunicado, err := h.comunicadoService.Actualizar(c.Request.Context(), c.Param("id"), req, adjunto)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Comunicado actualizado correctamente", comunicado))
}

// Eliminar handles DELETE /admin/comunicados/:id
// @Summary      Eliminar comunicado
// @Tags         comunicados
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del comunicado"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/comunicados/{id} [delete]
func (h *ComunicadoHandler) Eliminar(c *gin.Context) {
	if err := h.comunicadoService.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Comunicado eliminado correctamente", nil))
}
