package handler

import (
	"net/http"

	"ugel-backend/internal/middleware"
	"ugel-backend/internal/model"
	"ugel-backend/internal/repository"
	"ugel-backend/internal/service"
	"ugel-backend/internal/storage"
	"ugel-backend/pkg/pagination"
	"ugel-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// Trámite intakes only accept PDF attachments
var pdfOnly = []string{".pdf"}

type TramiteHandler struct {
	tramiteService service.TramiteService
	store          *storage.Local
}

// NewTramiteHandler sets up the routing dependencies for trámite endpoints
func NewTramiteHandler(tramiteService service.TramiteService, store *storage.Local) *TramiteHandler {
	return &TramiteHandler{tramiteService: tramiteService, store: store}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *TramiteHandler) RegisterRoutes(api *gin.RouterGroup) {
	// Public routes
	api.POST("/tramites", h.Registrar)
	api.GET("/tramites/consultar/:codigo", h.Consultar)

	// Protected admin routes
	admin := api.Group("/admin/tramites", middleware.RequireRole(model.RolAdmin, model.RolOperador))
	{
		admin.GET("", h.Listar)
		admin.GET("/estadisticas", h.Estadisticas)
		admin.GET("/:id", h.Obtener)
		admin.PATCH("/:id/estado", h.CambiarEstado)
	}
}

// Registrar handles the public intake via POST /tramites
// @Summary      Registrar un trámite
// @Description  Registra una solicitud y asigna un número de expediente correlativo anual
// @Tags         tramites
// @Accept       multipart/form-data
// @Produce      json
// @Param        nombre       formData  string  true   "Nombre del solicitante"
// @Param        apellido     formData  string  true   "Apellido del solicitante"
// @Param        dni          formData  string  true   "DNI (8 dígitos)"
// @Param        email        formData  string  true   "Email de contacto"
// @Param        telefono     formData  string  false  "Teléfono de contacto"
// @Param        tipoTramite  formData  string  true   "Tipo de trámite"
// @Param        asunto       formData  string  true   "Asunto"
// @Param        descripcion  formData  string  false  "Descripción"
// @Param        archivo      formData  file    false  "Adjunto PDF"
// @Success      201  {object}  response.Response{data=service.RegistroTramiteResponse}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /tramites [post]
func (h *TramiteHandler) Registrar(c *gin.Context) {
	var req service.RegistrarTramiteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Datos del formulario inválidos"))
		return
	}

	var adjunto *service.ArchivoAdjunto
	if file, err := c.FormFile("archivo"); err == nil {
		stored, err := h.store.Save(file, "tramites", pdfOnly)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		adjunto = &service.ArchivoAdjunto{URL: stored.URL, Nombre: stored.Nombre, Tamanio: stored.Tamanio}
	}

	res, err := h.tramiteService.Registrar(c.Request.Context(), req, adjunto)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success("Trámite registrado correctamente", res))
}

// Consultar handles the public lookup via GET /tramites/consultar/:codigo
// @Summary      Consultar un trámite
// @Description  Devuelve el estado público de un trámite por su número de expediente
// @Tags         tramites
// @Produce      json
// @Param        codigo  path      string  true  "Número de expediente"
// @Success      200     {object}  response.Response{data=service.TramitePublico}
// @Failure      404     {object}  response.Response
// @Router       /tramites/consultar/{codigo} [get]
func (h *TramiteHandler) Consultar(c *gin.Context) {
	tramite, err := h.tramiteService.ConsultarPorCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("", tramite))
}

// Listar handles GET /admin/tramites with filters and pagination
// @Summary      Listar trámites
// @Description  Lista trámites con filtros por estado, tipo y búsqueda libre
// @Tags         tramites
// @Produce      json
// @Security     BearerAuth
// @Param        estado       query     string  false  "Filtrar por estado"
// @Param        tipoTramite  query     string  false  "Filtrar por tipo"
// @Param        busqueda     query     string  false  "Buscar por expediente, nombre, apellido o DNI"
// @Param        pagina       query     int     false  "Página (default 1)"
// @Param        limite       query     int     false  "Elementos por página (default 20)"
// @Success      200  {object}  response.Paginated{data=[]model.Tramite}
// @Failure      401  {object}  response.Response
// @Router       /admin/tramites [get]
func (h *TramiteHandler) Listar(c *gin.Context) {
	p := pagination.Parse(c)
	filter := repository.TramiteFilter{
		Estado:      c.Query("estado"),
		TipoTramite: c.Query("tipoTramite"),
		Busqueda:    c.Query("busqueda"),
		Offset:      p.Offset,
		Limite:      p.Limite,
	}

	tramites, total, err := h.tramiteService.ListarAdmin(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(tramites, total, p.Pagina, p.Limite))
}

// Estadisticas handles GET /admin/tramites/estadisticas
// @Summary      Estadísticas de trámites
// @Description  Conteo de trámites por estado y total global
// @Tags         tramites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=model.TramiteStats}
// @Router       /admin/tramites/estadisticas [get]
func (h *TramiteHandler) Estadisticas(c *gin.Context) {
	stats, err := h.tramiteService.Estadisticas(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("", stats))
}

// Obtener handles GET /admin/tramites/:id returning the full record
// @Summary      Detalle de un trámite
// @Tags         tramites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID del trámite"
// @Success      200  {object}  response.Response{data=model.Tramite}
// @Failure      404  {object}  response.Response
// @Router       /admin/tramites/{id} [get]
func (h *TramiteHandler) Obtener(c *gin.Context) {
	tramite, err := h.tramiteService.ObtenerAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("", tramite))
}

// CambiarEstado handles PATCH /admin/tramites/:id/estado
// @Summary      Cambiar estado de un trámite
// @Description  Actualiza el estado, registra al operador y estampa la fecha de atención al llegar a un estado terminal
// @Tags         tramites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                        true  "ID del trámite"
// @Param        payload  body      service.CambiarEstadoRequest  true  "Nuevo estado y observaciones"
// @Success      200      {object}  response.Response{data=model.Tramite}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /admin/tramites/{id}/estado [patch]
func (h *TramiteHandler) CambiarEstado(c *gin.Context) {
	operadorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error("Usuario no identificado"))
		return
	}

	var req service.CambiarEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Datos inválidos: se requiere el campo estado"))
		return
	}

	tramite, err := h.tramiteService.CambiarEstado(c.Request.Context(), c.Param("id"), operadorID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Estado actualizado correctamente", tramite))
}
