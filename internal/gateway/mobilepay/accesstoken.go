package mobilepay

import (
	"context"
	"net/http"

	"github.com/cafeanalog/coffeecard-api/internal/config"
	"go.uber.org/zap"
)

// AccessTokenClient exchanges client credentials for a gateway access
// token.
type AccessTokenClient interface {
	GetToken(ctx context.Context, clientID, clientSecret string) (*AuthorizationTokenResponse, error)
}

type accessTokenClient struct {
	client
	merchantSerialNumber string
}

func NewAccessTokenClient(cfg *config.Config, log *zap.Logger) AccessTokenClient {
	return &accessTokenClient{
		client:               newClient(cfg, log),
		merchantSerialNumber: cfg.MobilePay.MerchantSerialNumber,
	}
}

func (c *accessTokenClient) GetToken(ctx context.Context, clientID, clientSecret string) (*AuthorizationTokenResponse, error) {
	headers := map[string]string{
		"client_id":              clientID,
		"client_secret":          clientSecret,
		"Merchant-Serial-Number": c.merchantSerialNumber,
	}
	var out AuthorizationTokenResponse
	if err := c.do(ctx, http.MethodPost, "/accesstoken/get", headers, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
