// Package middleware instruments mounts and host primitives.
//
// This package includes:
//   - Prometheus metrics for mounts and for every host primitive call
//   - OpenTelemetry tracing with one span per mount
//   - Mounter, which combines both around vdom.Mount
//
// # Prometheus Metrics
//
//   - velem_mounts_total{status}: Mount calls by outcome
//   - velem_mount_duration_seconds: Mount duration histogram
//   - velem_mount_errors_total{type}: Failed mounts by error class
//   - velem_host_ops_total{op}: Host primitive calls by primitive
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	host := middleware.Instrument[*dom.Node](m, dom.NewDocument())
//
// # OpenTelemetry
//
// The tracer uses the global OpenTelemetry tracer provider unless one is
// passed with WithTracerProvider.
//
//	mounter := middleware.NewMounter[*dom.Node](doc,
//	    middleware.WithMetrics(m),
//	    middleware.WithTracing(middleware.NewTracing()),
//	)
//	node, err := mounter.Mount(ctx, el, root)
package middleware
