package ports

// RequestContext is the request-time information the pipeline and wrappers
// may depend on. Cache keys are derived exclusively from this context and the
// asset's own declared data, never from ambient state.
//
//go:generate mockgen -source=request_context.go -destination=mocks/mock_request_context.go -package=mocks
type RequestContext interface {
	// CurrentURL is the canonical URL of the request being served.
	CurrentURL() string

	// BaseURL is the absolute URL prefix final asset references are resolved
	// against.
	BaseURL() string

	// Secure reports whether the request arrived over a secure transport.
	Secure() bool

	// Param returns a per-request parameter, used for template variable
	// substitution.
	Param(name string) (string, bool)

	// ParamNames returns the names of all set parameters in sorted order.
	ParamNames() []string
}
