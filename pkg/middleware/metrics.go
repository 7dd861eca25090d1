package middleware

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/velem/pkg/vdom"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "velem").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for mount duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "velem",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors. Create one per registry.
type Metrics struct {
	mountsTotal   *prometheus.CounterVec
	mountDuration prometheus.Histogram
	mountErrors   *prometheus.CounterVec
	hostOps       *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		mountsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounts_total",
			Help:        "Total number of mount calls by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		mountDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mount_duration_seconds",
			Help:        "Mount duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		mountErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mount_errors_total",
			Help:        "Total number of failed mounts by error class",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		hostOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "host_ops_total",
			Help:        "Total number of host primitive calls by primitive",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),
	}
}

// ObserveMount records one mount outcome.
func (m *Metrics) ObserveMount(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.mountDuration.Observe(d.Seconds())
	if err != nil {
		m.mountsTotal.WithLabelValues("error").Inc()
		m.mountErrors.WithLabelValues(ErrorClass(err)).Inc()
		return
	}
	m.mountsTotal.WithLabelValues("success").Inc()
}

// ErrorClass returns a low-cardinality label for a mount error.
func ErrorClass(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vdom.ErrInvalidKind):
		return "invalid_kind"
	case errors.Is(err, vdom.ErrUnsupportedKind):
		return "unsupported_kind"
	case errors.Is(err, vdom.ErrInvalidChild):
		return "invalid_child"
	case errors.Is(err, vdom.ErrInvalidProp):
		return "invalid_prop"
	default:
		return "host"
	}
}

// Host primitive labels for velem_host_ops_total.
const (
	OpCreateNode       = "create_node"
	OpCreateText       = "create_text"
	OpSetAttribute     = "set_attribute"
	OpSetEventListener = "set_event_listener"
	OpSetTextContent   = "set_text_content"
	OpAppendChild      = "append_child"
)

// instrumentedHost counts primitive calls before delegating.
type instrumentedHost[N any] struct {
	next vdom.Host[N]
	ops  *prometheus.CounterVec
}

// Instrument wraps host so every primitive call is counted in m.
// A nil m returns host unchanged.
func Instrument[N any](m *Metrics, host vdom.Host[N]) vdom.Host[N] {
	if m == nil {
		return host
	}
	return &instrumentedHost[N]{next: host, ops: m.hostOps}
}

func (h *instrumentedHost[N]) CreateNode(tag string) (N, error) {
	h.ops.WithLabelValues(OpCreateNode).Inc()
	return h.next.CreateNode(tag)
}

func (h *instrumentedHost[N]) CreateText(text string) (N, error) {
	h.ops.WithLabelValues(OpCreateText).Inc()
	return h.next.CreateText(text)
}

func (h *instrumentedHost[N]) SetAttribute(n N, name, value string) error {
	h.ops.WithLabelValues(OpSetAttribute).Inc()
	return h.next.SetAttribute(n, name, value)
}

func (h *instrumentedHost[N]) SetEventListener(n N, event string, handler vdom.Handler) error {
	h.ops.WithLabelValues(OpSetEventListener).Inc()
	return h.next.SetEventListener(n, event, handler)
}

func (h *instrumentedHost[N]) SetTextContent(n N, text string) error {
	h.ops.WithLabelValues(OpSetTextContent).Inc()
	return h.next.SetTextContent(n, text)
}

func (h *instrumentedHost[N]) AppendChild(parent, child N) error {
	h.ops.WithLabelValues(OpAppendChild).Inc()
	return h.next.AppendChild(parent, child)
}
