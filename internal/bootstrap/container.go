package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/cafeanalog/coffeecard-api/internal/config"
	"github.com/cafeanalog/coffeecard-api/internal/gateway/mobilepay"
	"github.com/cafeanalog/coffeecard-api/internal/infra/cache"
	"github.com/cafeanalog/coffeecard-api/internal/infra/db"
	"github.com/cafeanalog/coffeecard-api/internal/infra/logger"
	mq "github.com/cafeanalog/coffeecard-api/internal/infra/queue"
	"github.com/cafeanalog/coffeecard-api/internal/modules/handler"
	"github.com/cafeanalog/coffeecard-api/internal/modules/repo"
	"github.com/cafeanalog/coffeecard-api/internal/modules/service"
	"github.com/cafeanalog/coffeecard-api/internal/seed"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate || cfg.Database.Ephemeral() {
			if err := db.Migrate(d); err != nil {
				return nil, err
			}
		}
		// An ephemeral backend starts empty every boot; replay the
		// snapshot so the service has data to serve.
		if cfg.Database.Ephemeral() && cfg.Seed.Dir != "" {
			if err := seed.NewLoader(d, cfg, log).Load(context.Background()); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// RabbitMQ Connection
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.EnableTLS || strings.HasPrefix(cfg.RabbitMQ.URL, "amqps://") {
			url := cfg.RabbitMQ.URL
			if strings.HasPrefix(url, "amqp://") {
				url = strings.Replace(url, "amqp://", "amqps://", 1)
			}
			return amqp.DialTLS(url, &tls.Config{MinVersion: tls.VersionTLS12})
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// RabbitMQ Publisher
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		conn := do.MustInvoke[*amqp.Connection](i)
		log := do.MustInvoke[*zap.Logger](i)
		return mq.NewPublisher(conn, log, cfg)
	})

	// MobilePay gateway. The mock flavor pins every capability to cheap
	// deterministic stubs; selection happens here and nowhere else.
	do.Provide(inj, func(i *do.Injector) (mobilepay.AccessTokenClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.MobilePay.UseMock {
			return mobilepay.NewAccessTokenMock(), nil
		}
		return mobilepay.NewAccessTokenClient(cfg, do.MustInvoke[*zap.Logger](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (mobilepay.WebhooksClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.MobilePay.UseMock {
			return mobilepay.NewWebhooksMock(), nil
		}
		return mobilepay.NewWebhooksClient(cfg, do.MustInvoke[*zap.Logger](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (mobilepay.EPaymentClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.MobilePay.UseMock {
			return mobilepay.NewEPaymentMock(), nil
		}
		return mobilepay.NewEPaymentClient(cfg, do.MustInvoke[*zap.Logger](i)), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProductRepo, error) {
		return repo.NewProductRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PurchaseRepo, error) {
		return repo.NewPurchaseRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TicketRepo, error) {
		return repo.NewTicketRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.VoucherRepo, error) {
		return repo.NewVoucherRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.WebhookConfigurationRepo, error) {
		return repo.NewWebhookConfigurationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProductService, error) {
		return service.NewProductService(
			do.MustInvoke[repo.ProductRepo](i),
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PurchaseService, error) {
		return service.NewPurchaseService(
			do.MustInvoke[repo.PurchaseRepo](i),
			do.MustInvoke[repo.ProductRepo](i),
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[mobilepay.EPaymentClient](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TicketService, error) {
		return service.NewTicketService(
			do.MustInvoke[repo.TicketRepo](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.VoucherService, error) {
		return service.NewVoucherService(
			do.MustInvoke[repo.VoucherRepo](i),
			do.MustInvoke[repo.PurchaseRepo](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.WebhookService, error) {
		return service.NewWebhookService(
			do.MustInvoke[repo.WebhookConfigurationRepo](i),
			do.MustInvoke[mobilepay.WebhooksClient](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProductHandler, error) {
		return handler.NewProductHandler(do.MustInvoke[service.ProductService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PurchaseHandler, error) {
		return handler.NewPurchaseHandler(
			do.MustInvoke[service.PurchaseService](i),
			do.MustInvoke[service.VoucherService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TicketHandler, error) {
		return handler.NewTicketHandler(do.MustInvoke[service.TicketService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.WebhookHandler, error) {
		return handler.NewWebhookHandler(do.MustInvoke[service.WebhookService](i)), nil
	})

	return inj
}
