package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cafeanalog/coffeecard-api/internal/modules/serializer"
	"github.com/cafeanalog/coffeecard-api/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchases service.PurchaseService
	vouchers  service.VoucherService
}

func NewPurchaseHandler(purchases service.PurchaseService, vouchers service.VoucherService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases, vouchers: vouchers}
}

type InitiatePurchaseReq struct {
	UserID    int `json:"user_id" binding:"required,min=1"`
	ProductID int `json:"product_id" binding:"required,min=1"`
}

func (h *PurchaseHandler) InitiatePurchase(c *gin.Context) {
	req := InitiatePurchaseReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	res, err := h.purchases.Initiate(c.Request.Context(), req.UserID, req.ProductID)
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("product not found", err))
	case errors.Is(err, service.ErrProductNotAvailable):
		c.JSON(http.StatusForbidden, serializer.Err(http.StatusForbidden, "product not available", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusCreated, serializer.OK(res))
	}
}

type PaymentConfirmationReq struct {
	OrderID               string `json:"order_id" binding:"required"`
	ExternalTransactionID string `json:"external_transaction_id" binding:"required"`
}

// ConfirmPayment handles the gateway's capture callback.
func (h *PurchaseHandler) ConfirmPayment(c *gin.Context) {
	req := PaymentConfirmationReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	purchase, err := h.purchases.Complete(c.Request.Context(), req.OrderID, req.ExternalTransactionID)
	switch {
	case errors.Is(err, service.ErrPurchaseNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("purchase not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.OK(purchase))
	}
}

func (h *PurchaseHandler) RefundPurchase(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err = h.purchases.Refund(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrPurchaseNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("purchase not found", err))
	case errors.Is(err, service.ErrPurchaseNotRefundable):
		c.JSON(http.StatusConflict, serializer.ConflictErr("purchase cannot be refunded", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.OK(nil))
	}
}

func (h *PurchaseHandler) GetUserPurchases(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	purchases, err := h.purchases.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.OK(purchases))
}

type RedeemVoucherReq struct {
	UserID int    `json:"user_id" binding:"required,min=1"`
	Code   string `json:"code" binding:"required"`
}

func (h *PurchaseHandler) RedeemVoucher(c *gin.Context) {
	req := RedeemVoucherReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	purchase, err := h.vouchers.Redeem(c.Request.Context(), req.UserID, req.Code)
	switch {
	case errors.Is(err, service.ErrVoucherNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("voucher not found", err))
	case errors.Is(err, service.ErrVoucherRedeemed):
		c.JSON(http.StatusConflict, serializer.ConflictErr("voucher already redeemed", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusCreated, serializer.OK(purchase))
	}
}
