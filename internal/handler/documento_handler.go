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

type DocumentoHandler struct {
	documentoService service.DocumentoService
	store            *storage.Local
}

// NewDocumentoHandler sets up the routing dependencies for documento endpoints
func NewDocumentoHandler(documentoService service.DocumentoService, store *storage.Local) *DocumentoHandler {
	return &DocumentoHandler{documentoService: documentoService, store: store}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *DocumentoHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/documentos", h.ListarPublico)
	api.GET("/documentos/:id/descargar", h.Descargar)

	admin := api.Group("/admin/documentos", middleware.RequireRole(model.RolAdmin, model.RolOperador))
	{
		admin.GET("", h.ListarAdmin)
		admin.POST("", h.Crear)
		admin.PUT("/:id", h.Actualizar)
		admin.DELETE("/:id", middleware.RequireRole(model.RolAdmin), h.Eliminar)
	}
}

// ListarPublico handles GET /documentos listing active documents
// @Summary      Listar documentos activos
// @Tags         documentos
// @Produce      json
// @Param        categoria  query     string  false  "Filtrar por categoría"
// @Param        pagina     query     int     false  "Página"
// @Param        limite     query     int     false  "Elementos por página"
// @Success      200  {object}  response.Paginated{data=[]model.Documento}
// @Router       /documentos [get]
func (h *DocumentoHandler) ListarPublico(c *gin.Context) {
	p := pagination.Parse(c)

	documentos, total, err := h.documentoService.ListarPublico(c.Request.Context(), c.Query("categoria"), p.Offset, p.Limite)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(documentos, total, p.Pagina, p.Limite))
}

// Descargar handles GET /documentos/:id/descargar serving the file and
// counting the download
// @Summary      Descargar un documento
// @Tags         documentos
// @Produce      octet-stream
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {file}    file
// @Failure      404  {object}  response.Response
// @Router       /documentos/{id}/descargar [get]
func (h *DocumentoHandler) Descargar(c *gin.Context) {
	documento, err := h.documentoService.ObtenerParaDescarga(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	path, ok := h.store.FilePath(documento.ArchivoURL)
	if !ok {
		c.JSON(http.StatusNotFound, response.Error("documento no encontrado"))
		return
	}

	c.FileAttachment(path, documento.ArchivoNombre)
}

// ListarAdmin handles GET /admin/documentos including inactive documents
// @Summary      Listar documentos (admin)
// @Tags         documentos
// @Produce      json
// @Security     BearerAuth
// @Param        categoria  query     string  false  "Filtrar por categoría"
// @Param        pagina     query     int     false  "Página"
// @Param        limite     query     int     false  "Elementos por página"
// @Success      200  {object}  response.Paginated{data=[]model.Documento}
// @Router       /admin/documentos [get]
func (h *DocumentoHandler) ListarAdmin(c *gin.Context) {
	p := pagination.Parse(c)

	documentos, total, err := h.documentoService.ListarAdmin(c.Request.Context(), c.Query("categoria"), p.Offset, p.Limite)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(documentos, total, p.Pagina, p.Limite))
}

// Crear handles POST /admin/documentos (multipart, archivo requerido)
// @Summary      Publicar documento
// @Tags         documentos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  response.Response{data=model.Documento}
// @Failure      400  {object}  response.Response
// @Router       /admin/documentos [post]
func (h *DocumentoHandler) Crear(c *gin.Context) {
	autorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error("Usuario no identificado"))
		return
	}

	var req service.CrearDocumentoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("El título es requerido"))
		return
	}

	adjunto, err := formAdjunto(c, h.store, "archivo", "documentos")
	if err != nil {
		handleServiceError(c, err)
		return
	}

	documento, err := h.documentoService.Crear(c.Request.Context(), req, autorID, adjunto)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success("Documento publicado correctamente", documento))
}

// Actualizar handles PUT /admin/documentos/:id
// @Summary      Actualizar documento
// @Tags         documentos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  response.Response{data=model.Documento}
// @Failure      404  {object}  response.Response
// @Router       /admin/documentos/{id} [put]
func (h *DocumentoHandler) Actualizar(c *gin.Context) {
	var req service.ActualizarDocumentoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Datos inválidos"))
		return
	}

	adjunto, err := formAdjunto(c, h.store, "archivo", "documentos")
	if err != nil {
		handleServiceError(c, err)
		return
	}

	documento, err := h.documentoService.Actualizar(c.Request.Context(), c.Param("id"), req, adjunto)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Documento actualizado correctamente", documento))
}

// Eliminar handles DELETE /admin/documentos/:id
// @Summary      Eliminar documento
// @Tags         documentos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/documentos/{id} [delete]
func (h *DocumentoHandler) Eliminar(c *gin.Context) {
	if err := h.documentoService.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Documento eliminado correctamente", nil))
}
