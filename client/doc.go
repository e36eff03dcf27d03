// Package client is the base of generated API clients.
//
// A Client turns an endpoint name and caller input into one HTTP exchange:
//
//	endpoint.Descriptor  ->  request.Build  ->  Connection.Send  ->  response.Normalizer
//
// Failed exchanges are passed through an optional ErrorMapper that may turn
// the decoded error body into a domain error. The last successful response
// is kept for introspection.
//
// # Usage
//
//	c, err := client.New(cfg)
//	pet, err := client.CallAs[Pet](ctx, c, "getPet", client.Input{
//	    Params: map[string]any{"id": 42},
//	})
//
// Or, with a custom transport:
//
//	c, err := client.NewBuilder().
//	    SetConnection(conn).
//	    SetRegistry(registry).
//	    SetSnakeCase(true, true, true).
//	    Build()
package client
