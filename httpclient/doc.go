// Package httpclient is the default transport of apiruntime clients.
//
// An Adapter sends one HTTP request per call and returns the complete
// response. It handles base URL resolution, default headers, a User-Agent
// and request ID, authentication (bearer, basic, API key, per-request
// signed JWTs), TLS, optional forced HTTP/2, a cookie jar and client-side
// rate limiting. It never retries: a failed request is returned to the
// caller at once.
//
// Query parameters and form fields may be nested maps and slices. They are
// encoded the way PHP-style backends expect, with the slice style selected
// by Config.QueryFormat:
//
//	brackets  tags[]=a&tags[]=b   (default)
//	indices   tags[0]=a&tags[1]=b
//	repeat    tags=a&tags=b
//
// Non-2xx responses are returned as *Error values classified by status code,
// with the response body kept for error mapping.
//
// # Basic Usage
//
//	adapter, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com/v1",
//	    Auth:    httpclient.BearerAuth("my-token"),
//	})
//
//	resp, err := adapter.Send(ctx, http.MethodGet, "pets/42", request.Options{
//	    Query: map[string]any{"fields": []any{"name", "tags"}},
//	})
package httpclient
