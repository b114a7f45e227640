package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/axanet-clients/internal/domain/client"
	"github.com/BruksfildServices01/axanet-clients/internal/dto"
	"github.com/BruksfildServices01/axanet-clients/internal/httperr"
	"github.com/BruksfildServices01/axanet-clients/internal/httpresp"
	"github.com/BruksfildServices01/axanet-clients/internal/middleware"
	ucClient "github.com/BruksfildServices01/axanet-clients/internal/usecase/client"
	"github.com/BruksfildServices01/axanet-clients/internal/validators"
)

// WarningInvalidEmail avisa que o correio não parece um endereço; o
// cliente é criado mesmo assim.
const WarningInvalidEmail = "invalid_email_format"

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	create     *ucClient.CreateClient
	view       *ucClient.ViewClient
	list       *ucClient.ListClients
	addService *ucClient.AddService
	delete     *ucClient.DeleteClient
}

func NewClientHandler(
	create *ucClient.CreateClient,
	view *ucClient.ViewClient,
	list *ucClient.ListClients,
	addService *ucClient.AddService,
	deleteClient *ucClient.DeleteClient,
) *ClientHandler {
	return &ClientHandler{
		create:     create,
		view:       view,
		list:       list,
		addService: addService,
		delete:     deleteClient,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Service string `json:"service"`
}

type AddServiceRequest struct {
	Description string `json:"description"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeClientError(c, err)
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucClient.CreateClientInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		FirstService: req.Service,
		Actor:        actorFrom(c),
	})
	if err != nil {
		writeClientError(c, err)
		return
	}

	resp := dto.ClientCreatedDTO{
		Name:     out.Record.Name,
		ClientID: out.Record.ClientID,
		File:     out.FileName,
	}
	if out.Record.Email != "" && !validators.LooksLikeEmail(out.Record.Email) {
		resp.Warnings = append(resp.Warnings, WarningInvalidEmail)
	}
	httpresp.Created(c, resp)
}

func (h *ClientHandler) Get(c *gin.Context) {
	out, err := h.view.Execute(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeClientError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ClientHandler) AddService(c *gin.Context) {
	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	entry, err := h.addService.Execute(c.Request.Context(), actorFrom(c), c.Param("name"), req.Description)
	if err != nil {
		writeClientError(c, err)
		return
	}
	httpresp.Created(c, entry)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.DefaultQuery("confirm", "false"))

	if err := h.delete.Execute(c.Request.Context(), actorFrom(c), c.Param("name"), confirmed); err != nil {
		writeClientError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// HELPERS
// ======================================================

func actorFrom(c *gin.Context) ucClient.Actor {
	return ucClient.Actor{
		Operator:  c.GetString(middleware.ContextOperator),
		RequestID: c.GetString(middleware.ContextRequestID),
	}
}

// ======================================================
// ERRORS
// ======================================================

func writeClientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		httperr.BadRequest(c, httperr.Code(err), "El nombre no puede estar vacío.")
	case errors.Is(err, domain.ErrInvalidName):
		httperr.BadRequest(c, httperr.Code(err), "El nombre contiene caracteres no permitidos.")
	case errors.Is(err, domain.ErrAlreadyExists):
		httperr.Conflict(c, httperr.Code(err), "Ya existe un cliente con ese nombre.")
	case errors.Is(err, domain.ErrNotFound):
		httperr.NotFound(c, httperr.Code(err), "No se encontró el cliente.")
	case errors.Is(err, domain.ErrFileMissing):
		httperr.Gone(c, httperr.Code(err), "No se pudo encontrar el archivo del cliente.")
	case errors.Is(err, domain.ErrCancelled):
		httperr.Conflict(c, httperr.Code(err), "Eliminación cancelada: falta confirm=true.")
	default:
		log.Printf("client handler: %v", err)
		httperr.Internal(c, "internal_error", "Error interno.")
	}
}
