package handler

import (
	"net/http"

	"ugel-backend/internal/middleware"
	"ugel-backend/internal/model"
	"ugel-backend/internal/service"
	"ugel-backend/internal/storage"
	"ugel-backend/pkg/pagination"
	"ugel-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ConvocatoriaHandler struct {
	convocatoriaService service.ConvocatoriaService
	store               *storage.Local
}

// NewConvocatoriaHandler sets up the routing dependencies for convocatoria endpoints
func NewConvocatoriaHandler(convocatoriaService service.ConvocatoriaService, store *storage.Local) *ConvocatoriaHandler {
	return &ConvocatoriaHandler{convocatoriaService: convocatoriaService, store: store}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *ConvocatoriaHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/convocatorias", h.Listar)
	api.GET("/convocatorias/:id", h.Obtener)

	admin := api.Group("/admin/convocatorias", middleware.RequireRole(model.RolAdmin, model.RolOperador))
	{
		admin.GET("", h.Listar)
		admin.POST("", h.Crear)
		admin.PUT("/:id", h.Actualizar)
		admin.DELETE("/:id", middleware.RequireRole(model.RolAdmin), h.Eliminar)
	}
}

// Listar handles GET /convocatorias
// @Summary      Listar convocatorias
// @Tags         convocatorias
// @Produce      json
// @Param        tipo    query     string  false  "Filtrar por tipo"
// @Param        estado  query     string  false  "Filtrar por estado"
// @Param        pagina  query     int     false  "Página"
// @Param        limite  query     int     false  "Elementos por página"
// @Success      200  {object}  response.Paginated{data=[]model.Convocatoria}
// @Router       /convocatorias [get]
func (h *ConvocatoriaHandler) Listar(c *gin.Context) {
	p := pagination.Parse(c)

	convocatorias, total, err := h.convocatoriaService.Listar(c.Request.Context(), c.Query("tipo"), c.Query("estado"), p.Offset, p.Limite)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(convocatorias, total, p.Pagina, p.Limite))
}

// Obtener handles GET /convocatorias/:id
// @Summary      Detalle de una convocatoria
// @Tags         convocatorias
// @Produce      json
// @Param        id   path      string  true  "ID de la convocatoria"
// @Success      200  {object}  response.Response{data=model.Convocatoria}
// @Failure      404  {object}  response.Response
// @Router       /convocatorias/{id} [get]
func (h *ConvocatoriaHandler) Obtener(c *gin.Context) {
	convocatoria, err := h.convocatoriaService.Obtener(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("", convocatoria))
}

// adjuntosConvocatoria stores the optional archivo and bases uploads
func (h *ConvocatoriaHandler) adjuntosConvocatoria(c *gin.Context) (service.AdjuntosConvocatoria, error) {
	var adjuntos service.AdjuntosConvocatoria

	archivo, err := formAdjunto(c, h.store, "archivo", "convocatorias")
	if err != nil {
		return adjuntos, err
	}
	base, err := formAdjunto(c, h.store, "base", "convocatorias")
	if err != nil {
		return adjuntos, err
	}

	adjuntos.Archivo = archivo
	adjuntos.Base = base
	return adjuntos, nil
}

// Crear handles POST /admin/convocatorias (multipart with optional archivo y base)
// @Summary      Crear convocatoria
// @Tags         convocatorias
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  response.Response{data=model.Convocatoria}
// @Failure      400  {object}  response.Response
// @Router       /admin/convocatorias [post]
func (h *ConvocatoriaHandler) Crear(c *gin.Context) {
	autorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error("Usuario no identificado"))
		return
	}

	var req service.CrearConvocatoriaRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Título, descripción y tipo son requeridos"))
		return
	}

	adjuntos, err := h.adjuntosConvocatoria(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	convocatoria, err := h.convocatoriaService.Crear(c.Request.Context(), req, autorID, adjuntos)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success("Convocatoria creada correctamente", convocatoria))
}

// Actualizar handles PUT /admin/convocatorias/:id
// @Summary      Actualizar convocatoria
// @Tags         convocatorias
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la convocatoria"
// @Success      200  {object}  response.Response{data=model.Convocatoria}
// @Failure      404  {object}  response.Response
// @Router       /admin/convocatorias/{id} [put]
func (h *ConvocatoriaHandler) Actualizar(c *gin.Context) {
	var req service.ActualizarConvocatoriaRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Datos inválidos"))
		return
	}

	adjuntos, err := h.adjuntosConvocatoria(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	convocatoria, err := h.convocatoriaService.Actualizar(c.Request.Context(), c.Param("id"), req, adjuntos)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Convocatoria actualizada correctamente", convocatoria))
}

// Eliminar handles DELETE /admin/convocatorias/:id
// @Summary      Eliminar convocatoria
// @Tags         convocatorias
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la convocatoria"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/convocatorias/{id} [delete]
func (h *ConvocatoriaHandler) Eliminar(c *gin.Context) {
	if err := h.convocatoriaService.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Convocatoria eliminada correctamente", nil))
}
