package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/cafeanalog/coffeecard-api/internal/modules/repo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// catalogueTTL bounds staleness of the cached per-group product list.
const catalogueTTL = 5 * time.Minute

type ProductService interface {
	// VisibleFor returns the catalogue a member of the group can buy
	// from. The result is cached per group.
	VisibleFor(ctx context.Context, group model.UserGroup) ([]model.Product, error)
	Menu(ctx context.Context) ([]model.MenuItem, error)
}

type productService struct {
	products repo.ProductRepo
	rdb      *redis.Client
	log      *zap.Logger
}

func NewProductService(products repo.ProductRepo, rdb *redis.Client, log *zap.Logger) ProductService {
	return &productService{products: products, rdb: rdb, log: log}
}

func (s *productService) VisibleFor(ctx context.Context, group model.UserGroup) ([]model.Product, error) {
	key := fmt.Sprintf("catalogue:group:%d", int(group))

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var products []model.Product
			if uerr := sonic.Unmarshal(cached, &products); uerr == nil {
				return products, nil
			}
		} else if err != redis.Nil {
			// Cache trouble must not take the catalogue down.
			s.log.Warn("catalogue cache read", zap.Error(err))
		}
	}

	products, err := s.products.ListVisibleForGroup(ctx, group)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if b, merr := sonic.Marshal(products); merr == nil {
			if serr := s.rdb.Set(ctx, key, b, catalogueTTL).Err(); serr != nil {
				s.log.Warn("catalogue cache write", zap.Error(serr))
			}
		}
	}
	return products, nil
}

func (s *productService) Menu(ctx context.Context) ([]model.MenuItem, error) {
	return s.products.ListMenuItems(ctx)
}
