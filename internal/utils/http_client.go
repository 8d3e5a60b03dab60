package utils

import (
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace id between the client and the API.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient wraps *resty.Client so application-specific defaults live in one
// place.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends JSON and stamps every
// request with a fresh trace id unless the caller already set one.
func NewHTTPClient() *HTTPClient {
	gen := NewUUIDGenerator()

	client := resty.New().
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(TraceIDHeader) == "" {
				req.SetHeader(TraceIDHeader, gen.Generate())
			}
			return nil
		})

	return &HTTPClient{Client: client}
}
