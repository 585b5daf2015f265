package utils

import (
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace id between client and server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Every request whose context carries a trace id (see [WithTraceID]) is sent
// with it in the X-Trace-ID header, so client and server log lines can be
// correlated.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(utils.WithTraceID(ctx, id)).Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New()
	client.OnBeforeRequest(propagateTraceID)
	return &HTTPClient{Client: client}
}

func propagateTraceID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(TraceIDHeader) != "" {
		return nil
	}
	if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}
