// Package observability provides OpenTelemetry tracing and metrics for
// apiruntime clients.
//
// Exporters:
//
//	shutdown, err := observability.Init(ctx, observability.Config{
//	    Enabled:     true,
//	    ServiceName: "petstore-client",
//	    Endpoint:    "localhost:4318",
//	    Insecure:    true,
//	})
//	defer shutdown(ctx)
//
// Per-request instrumentation:
//
//	inst, err := observability.NewInstrumentation("petstore-client")
//	ctx, finish := inst.Start(ctx, "getPet", "GET", "pets/42")
//	resp, err := send(ctx)
//	finish(resp.StatusCode, err)
//
// Without Init the global providers are no-ops, so instrumentation costs
// next to nothing.
package observability
