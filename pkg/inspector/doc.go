// Package inspector serves a live view of binding activity over HTTP: host
// states as JSON, the latest painted frame as a display list, Prometheus
// metrics, and a websocket feed of host snapshots.
//
// The server is strictly read-only and intended for development builds:
//
//	srv := inspector.NewServer(owner)
//	port, err := srv.Start(0)
package inspector
