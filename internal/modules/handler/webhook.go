package handler

import (
	"errors"
	"net/http"

	"github.com/cafeanalog/coffeecard-api/internal/modules/serializer"
	"github.com/cafeanalog/coffeecard-api/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WebhookHandler struct {
	svc service.WebhookService
}

func NewWebhookHandler(s service.WebhookService) *WebhookHandler {
	return &WebhookHandler{svc: s}
}

type RegisterWebhookReq struct {
	URL string `json:"url" binding:"required,url"`
}

func (h *WebhookHandler) RegisterWebhook(c *gin.Context) {
	req := RegisterWebhookReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	cfg, err := h.svc.Register(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, serializer.Err(http.StatusBadGateway, "webhook registration failed", err))
		return
	}
	c.JSON(http.StatusCreated, serializer.OK(cfg))
}

func (h *WebhookHandler) ListWebhooks(c *gin.Context) {
	configs, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.OK(configs))
}

func (h *WebhookHandler) DisableWebhook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err = h.svc.Disable(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrWebhookNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("webhook configuration not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.OK(nil))
	}
}
