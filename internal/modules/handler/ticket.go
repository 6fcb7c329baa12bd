package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/cafeanalog/coffeecard-api/internal/modules/serializer"
	"github.com/cafeanalog/coffeecard-api/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	svc service.TicketService
}

func NewTicketHandler(s service.TicketService) *TicketHandler {
	return &TicketHandler{svc: s}
}

type RedeemTicketReq struct {
	MenuItemID *int `json:"menu_item_id" binding:"omitempty,min=1"`
}

func (h *TicketHandler) RedeemTicket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := RedeemTicketReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	ticket, err := h.svc.Redeem(c.Request.Context(), id, req.MenuItemID)
	switch {
	case errors.Is(err, service.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("ticket not found", err))
	case errors.Is(err, service.ErrTicketNotRedeemable), errors.Is(err, model.ErrTicketNotUnused):
		c.JSON(http.StatusConflict, serializer.ConflictErr("ticket cannot be redeemed", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.OK(ticket))
	}
}

func (h *TicketHandler) GetUnusedTickets(c *gin.Context) {
	ownerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	tickets, err := h.svc.ListUnused(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.OK(tickets))
}
