package erp

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/pencilhq/orderform-gateway/internal/config"
)

// TokenProvider exchanges a business-center client id for a bearer token via
// the configured client-credentials endpoint.
type TokenProvider struct {
	cfg config.OAuthConfig
	log *zap.Logger
}

// NewTokenProvider returns a TokenProvider bound to the configured token
// endpoint.
func NewTokenProvider(cfg config.OAuthConfig, log *zap.Logger) *TokenProvider {
	return &TokenProvider{cfg: cfg, log: log}
}

// Retrieve performs the token exchange. A failed exchange is logged and
// yields an empty token; callers treat an absent token as their own hard
// failure path.
func (p *TokenProvider) Retrieve(ctx context.Context, clientID string) string {
	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: p.cfg.ClientSecret,
		TokenURL:     p.cfg.TokenURL,
		Scopes:       []string{p.cfg.Scope},
	}

	tok, err := cc.Token(ctx)
	if err != nil {
		p.log.Error("token exchange failed",
			zap.String("client_id", clientID),
			zap.Error(err))
		return ""
	}
	return tok.AccessToken
}
