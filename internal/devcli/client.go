package devcli

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/steven3002/pbi-go/pbi"
)

// NewClient constructs an SDK client from Settings. hc may be nil to use the
// SDK's default transport.
func NewClient(s Settings, hc *http.Client, log *zap.Logger, m *pbi.Metrics) *pbi.Client {
	opts := []pbi.Option{
		pbi.WithRetries(s.Retries),
		pbi.WithBackoff(s.BackoffMin, s.BackoffMax),
		pbi.WithLogger(log),
		pbi.WithMetrics(m),
	}
	if hc != nil {
		opts = append(opts, pbi.WithHTTPClient(hc))
	}
	if s.AccessToken != "" {
		opts = append(opts, pbi.WithAccessToken(s.AccessToken))
	} else {
		opts = append(opts, pbi.WithClientCredentials(s.TenantID, s.ClientID, s.ClientSecret))
	}
	return pbi.New(opts...)
}

// Ctx returns a context with the CLI-configured timeout.
func Ctx(parent context.Context, s Settings) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, s.Timeout)
}
