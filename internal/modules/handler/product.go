package handler

import (
	"net/http"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/cafeanalog/coffeecard-api/internal/modules/serializer"
	"github.com/cafeanalog/coffeecard-api/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{svc: s}
}

type GetProductsReq struct {
	UserGroup int `form:"user_group,default=0" json:"user_group" binding:"min=0,max=3"`
}

// GetProducts returns the catalogue visible to the requested user group.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	req := GetProductsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	products, err := h.svc.VisibleFor(c.Request.Context(), model.UserGroupFromInt(req.UserGroup))
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.OK(products))
}

// GetMenu returns the menu items tickets can be swiped against.
func (h *ProductHandler) GetMenu(c *gin.Context) {
	items, err := h.svc.Menu(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.OK(items))
}
