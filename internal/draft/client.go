package draft

import "tripweave/internal/config"

// NewClient builds a reconciler over the HTTP transport against baseURL, with
// the upload fan-out width taken from configuration. Extra options override
// the config-derived defaults.
func NewClient(cfg *config.Config, baseURL string, token TokenFunc, opts ...Option) *Reconciler {
	transport := NewHTTPTransport(baseURL, WithTokenFunc(token))
	merged := append([]Option{WithUploadLimit(cfg.UploadConcurrency)}, opts...)
	return NewReconciler(transport, merged...)
}
