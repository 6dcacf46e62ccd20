package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hausbar/drinkwise/internal/core/ports"
	"github.com/hausbar/drinkwise/internal/metrics"
)

// refreshKey is the single-flight key: one session per client, so all
// concurrent 401s on this client share one exchange.
const refreshKey = "refresh"

var errRefreshRejected = errors.New("refresh token rejected")

// refreshAccess exchanges the refresh token for a new access token and
// stores it. Concurrent callers await the first in-flight exchange instead
// of issuing their own. The store is never cleared here; terminal cleanup is
// the pipeline's responsibility.
func (c *Client) refreshAccess(ctx context.Context) (string, error) {
	v, err, shared := c.refresh.Do(refreshKey, func() (any, error) {
		return c.exchange(ctx)
	})
	if err != nil {
		return "", err
	}
	if shared {
		c.logger.Debug().Msg("joined in-flight token refresh")
	}
	return v.(string), nil
}

func (c *Client) exchange(ctx context.Context) (string, error) {
	pair, err := c.store.Tokens(ctx)
	if err != nil {
		return "", fmt.Errorf("read token store: %w", err)
	}
	if pair.Refresh == "" {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		return "", errRefreshRejected
	}

	var resp struct {
		Access string `json:"access"`
	}
	body := map[string]string{"refresh": pair.Refresh}
	_, err = c.attempt(ctx, ports.Call{
		Method:   http.MethodPost,
		Path:     "/token/refresh/",
		Body:     body,
		SkipAuth: true,
	}, "", &resp)
	if err != nil || resp.Access == "" {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		c.logger.Warn().Err(err).Msg("token refresh failed")
		if err == nil {
			err = errRefreshRejected
		}
		return "", err
	}

	if err := c.store.SetAccess(ctx, resp.Access); err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		return "", fmt.Errorf("store refreshed access token: %w", err)
	}

	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	c.logger.Debug().Msg("access token refreshed")
	return resp.Access, nil
}
