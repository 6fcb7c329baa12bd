package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cafeanalog/coffeecard-api/internal/config"
	"github.com/cafeanalog/coffeecard-api/internal/middleware"
	"github.com/cafeanalog/coffeecard-api/internal/modules/handler"
	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/cafeanalog/coffeecard-api/internal/modules/serializer"
)

type RouterDeps struct {
	Config          *config.Config
	DB              *gorm.DB
	Log             *zap.Logger
	ProductHandler  *handler.ProductHandler
	PurchaseHandler *handler.PurchaseHandler
	TicketHandler   *handler.TicketHandler
	WebhookHandler  *handler.WebhookHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	v1 := r.Group("/api/v1")
	{
		v1.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		product := v1.Group("/products")
		{
			product.GET("", d.ProductHandler.GetProducts)
		}
		v1.GET("/menu", d.ProductHandler.GetMenu)

		purchase := v1.Group("/purchases")
		{
			purchase.POST("", d.PurchaseHandler.InitiatePurchase)
			purchase.POST("/confirm", d.PurchaseHandler.ConfirmPayment)
			purchase.POST("/:id/refund", d.PurchaseHandler.RefundPurchase)
		}

		v1.POST("/vouchers/redeem", d.PurchaseHandler.RedeemVoucher)

		ticket := v1.Group("/tickets")
		{
			ticket.POST("/:id/use", d.TicketHandler.RedeemTicket)
		}

		user := v1.Group("/users")
		{
			user.GET("/:id/tickets", d.TicketHandler.GetUnusedTickets)
			user.GET("/:id/purchases", d.PurchaseHandler.GetUserPurchases)
		}

		// Admin surface; callable only with an unexpired refresh token.
		webhook := v1.Group("/webhooks")
		{
			webhook.Use(middleware.TokenAuth(d.DB, model.TokenTypeRefresh))
			webhook.POST("", d.WebhookHandler.RegisterWebhook)
			webhook.GET("", d.WebhookHandler.ListWebhooks)
			webhook.DELETE("/:id", d.WebhookHandler.DisableWebhook)
		}
	}

	return r
}
