package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/vango-dev/velem/pkg/vdom"
)

// MounterOption configures a Mounter.
type MounterOption func(*mounterConfig)

type mounterConfig struct {
	metrics *Metrics
	tracing *Tracing
	logger  *slog.Logger
}

// WithMetrics records mounts and host primitive calls in m.
func WithMetrics(m *Metrics) MounterOption {
	return func(c *mounterConfig) {
		c.metrics = m
	}
}

// WithTracing opens a span per mount.
func WithTracing(t *Tracing) MounterOption {
	return func(c *mounterConfig) {
		c.tracing = t
	}
}

// WithLogger sets the logger for mount results.
func WithLogger(logger *slog.Logger) MounterOption {
	return func(c *mounterConfig) {
		c.logger = logger
	}
}

// Mounter runs vdom.Mount against one host with metrics, tracing and
// logging around it. It adds no state between calls: every Mount appends a
// new subtree exactly as vdom.Mount does.
type Mounter[N any] struct {
	host   vdom.Host[N]
	config mounterConfig
}

// NewMounter creates a Mounter for host.
func NewMounter[N any](host vdom.Host[N], opts ...MounterOption) *Mounter[N] {
	var config mounterConfig
	for _, opt := range opts {
		opt(&config)
	}
	if config.logger == nil {
		config.logger = slog.Default()
	}
	return &Mounter[N]{host: host, config: config}
}

// Mount mounts el into container.
func (m *Mounter[N]) Mount(ctx context.Context, el *vdom.Element, container N) (N, error) {
	counter := &countingHost[N]{next: Instrument(m.config.metrics, m.host)}
	tag := el.Tag()

	var finishSpan func(error)
	if m.config.tracing != nil {
		_, span := m.config.tracing.start(ctx, tag)
		finishSpan = func(err error) { finish(span, counter.nodes, counter.ops, err) }
	}

	start := time.Now()
	node, err := vdom.Mount[N](counter, el, container)
	elapsed := time.Since(start)

	m.config.metrics.ObserveMount(elapsed, err)
	if finishSpan != nil {
		finishSpan(err)
	}

	if err != nil {
		m.config.logger.Warn("mount failed",
			"tag", tag,
			"error", err,
			"class", ErrorClass(err),
		)
		return node, err
	}
	m.config.logger.Debug("mounted",
		"tag", tag,
		"nodes", counter.nodes,
		"ops", counter.ops,
		"duration", elapsed,
	)
	return node, nil
}

// countingHost counts created nodes and primitive calls for one mount.
type countingHost[N any] struct {
	next  vdom.Host[N]
	nodes int
	ops   int
}

func (h *countingHost[N]) CreateNode(tag string) (N, error) {
	h.ops++
	h.nodes++
	return h.next.CreateNode(tag)
}

func (h *countingHost[N]) CreateText(text string) (N, error) {
	h.ops++
	h.nodes++
	return h.next.CreateText(text)
}

func (h *countingHost[N]) SetAttribute(n N, name, value string) error {
	h.ops++
	return h.next.SetAttribute(n, name, value)
}

func (h *countingHost[N]) SetEventListener(n N, event string, handler vdom.Handler) error {
	h.ops++
	return h.next.SetEventListener(n, event, handler)
}

func (h *countingHost[N]) SetTextContent(n N, text string) error {
	h.ops++
	return h.next.SetTextContent(n, text)
}

func (h *countingHost[N]) AppendChild(parent, child N) error {
	h.ops++
	return h.next.AppendChild(parent, child)
}
