package handler

import (
	"errors"
	"net/http"

	"github.com/courtesjuan/OakTownTechnologyServer/internal/service"
	"github.com/courtesjuan/OakTownTechnologyServer/pkg/response"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService service.ClientService
}

func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) RegisterRoutes(router *gin.RouterGroup) {
	clients := router.Group("/api/clients")
	{
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.POST("", h.CreateClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}
}

// ListClients returns all clients
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}   model.Client
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient returns one client by id
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  model.Client
// @Failure      404  {object}  response.MessageBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Message("Client not found"))
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, response.Message("Client not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient inserts a new client
// @Summary      Create client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SaveClientRequest  true  "Client payload"
// @Success      200      {object}  response.CreatedBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /api/clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req service.SaveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	id, err := h.clientService.CreateClient(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Created("Client created", id))
}

// UpdateClient rewrites every display column of a client
// @Summary      Update client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "Client ID"
// @Param        payload  body      service.SaveClientRequest  true  "Client payload"
// @Success      200      {object}  response.AffectedBody
// @Failure      404      {object}  response.MessageBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Message("Client not found"))
		return
	}

	var req service.SaveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}

	rows, err := h.clientService.UpdateClient(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, response.Message("Client not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Affected("Client updated", rows))
}

// DeleteClient removes a client; its invoices keep their dangling reference
// @Summary      Delete client
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  response.AffectedBody
// @Failure      404  {object}  response.MessageBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Message("Client not found"))
		return
	}

	rows, err := h.clientService.DeleteClient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, response.Message("Client not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Affected("Client deleted", rows))
}
