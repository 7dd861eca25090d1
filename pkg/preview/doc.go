// Package preview serves an HTTP preview of descriptor documents.
//
// Routes:
//
//	GET  /          page showing the latest render, updated live
//	POST /render    body: JSON or YAML document; response: HTML fragment
//	GET  /live      websocket; every successful render is pushed as
//	                {"type":"render","html":"..."}
//	GET  /healthz   liveness
//	GET  /metrics   Prometheus exposition
//
// Each POST /render mounts into a fresh dom.Document, so renders never see
// each other's nodes.
package preview
