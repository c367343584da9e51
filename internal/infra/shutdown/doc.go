// Package shutdown coordinates graceful termination of numera-server.
//
// Hooks registered with OnShutdown run in reverse registration order once
// SIGINT/SIGTERM arrives or the parent context is cancelled, all sharing a
// single timeout:
//
//	h := shutdown.NewHandler(10 * time.Second)
//	h.OnShutdown("http", srv.Shutdown)
//	if err := h.Wait(ctx); err != nil { ... }
package shutdown
