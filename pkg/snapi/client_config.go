package snapi

import (
	"resty.dev/v3"
)

type ClientConfig struct {
	TransportSettings *resty.TransportSettings

	RequestMiddlewares  []resty.RequestMiddleware
	ResponseMiddlewares []resty.ResponseMiddleware
}

// DefaultConfig carries no transport timeouts on purpose: failures
// propagate to the caller as-is, there is no retry and no deadline
// beyond the per-request context.
var DefaultConfig = &ClientConfig{
	ResponseMiddlewares: []resty.ResponseMiddleware{metricsMiddleware},
}
