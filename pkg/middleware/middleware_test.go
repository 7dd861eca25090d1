package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/velem/pkg/dom"
	"github.com/vango-dev/velem/pkg/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewMetrics(WithRegistry(reg), WithNamespace("test")), reg
}

func TestInstrumentCountsPrimitives(t *testing.T) {
	m, _ := newTestMetrics(t)
	doc := dom.NewDocument()
	root := doc.CreateRoot()

	el := vdom.MustH("ul", vdom.Props{"class": vdom.String("list")},
		vdom.MustH("li", vdom.Props{"onClick": vdom.Handler(func(vdom.Event) {})}, "one"),
		"tail",
	)
	if _, err := vdom.Mount[*dom.Node](Instrument[*dom.Node](m, doc), el, root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		op   string
		want float64
	}{
		{OpCreateNode, 2},
		{OpCreateText, 1},
		{OpSetAttribute, 1},
		{OpSetEventListener, 1},
		{OpSetTextContent, 1},
		{OpAppendChild, 3},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(m.hostOps.WithLabelValues(tt.op)); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.op, got, tt.want)
		}
	}
}

func TestInstrumentNilMetrics(t *testing.T) {
	doc := dom.NewDocument()
	if got := Instrument[*dom.Node](nil, doc); got != vdom.Host[*dom.Node](doc) {
		t.Error("Instrument(nil) should return the host unchanged")
	}
}

func TestMounterMetrics(t *testing.T) {
	m, reg := newTestMetrics(t)
	doc := dom.NewDocument()
	root := doc.CreateRoot()
	mounter := NewMounter[*dom.Node](doc, WithMetrics(m), WithLogger(quietLogger()))

	if _, err := mounter.Mount(context.Background(), vdom.MustH("p", nil, "ok"), root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := vdom.MustH("p", vdom.Props{"onClick": vdom.String("nope")})
	if _, err := mounter.Mount(context.Background(), bad, root); !errors.Is(err, vdom.ErrInvalidProp) {
		t.Fatalf("err = %v, want ErrInvalidProp", err)
	}

	if got := testutil.ToFloat64(m.mountsTotal.WithLabelValues("success")); got != 1 {
		t.Errorf("success = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.mountsTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.mountErrors.WithLabelValues("invalid_prop")); got != 1 {
		t.Errorf("invalid_prop = %v, want 1", got)
	}
	if n, err := testutil.GatherAndCount(reg, "test_mount_duration_seconds"); err != nil || n != 1 {
		t.Errorf("duration series = %d, %v", n, err)
	}
	if root.ChildCount() != 1 {
		t.Errorf("root has %d children, want 1", root.ChildCount())
	}
}

func TestObserveMountNil(t *testing.T) {
	var m *Metrics
	m.ObserveMount(time.Second, errors.New("ignored"))
}

func TestErrorClass(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&vdom.InvalidKindError{}, "invalid_kind"},
		{&vdom.UnsupportedKindError{Kind: vdom.HostTag("x")}, "unsupported_kind"},
		{&vdom.InvalidChildError{}, "invalid_child"},
		{&vdom.InvalidPropError{}, "invalid_prop"},
		{dom.ErrVoidElement, "host"},
	}
	for _, tt := range tests {
		if got := ErrorClass(tt.err); got != tt.want {
			t.Errorf("ErrorClass(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

// recordingSpan captures what finish writes to a span.
type recordingSpan struct {
	noop.Span
	attrs  map[attribute.Key]attribute.Value
	status codes.Code
	errs   []error
	ended  bool
}

func newRecordingSpan() *recordingSpan {
	return &recordingSpan{attrs: map[attribute.Key]attribute.Value{}}
}

func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func (s *recordingSpan) SetStatus(code codes.Code, _ string) { s.status = code }

func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) {
	s.errs = append(s.errs, err)
}

func (s *recordingSpan) End(...trace.SpanEndOption) { s.ended = true }

func TestFinishSpan(t *testing.T) {
	span := newRecordingSpan()
	finish(span, 3, 7, nil)

	if !span.ended || span.status != codes.Ok {
		t.Errorf("ended = %v, status = %v", span.ended, span.status)
	}
	if span.attrs["velem.nodes"].AsInt64() != 3 || span.attrs["velem.host_ops"].AsInt64() != 7 {
		t.Errorf("attrs = %v", span.attrs)
	}

	span = newRecordingSpan()
	finish(span, 1, 1, &vdom.InvalidChildError{Reason: "nested"})
	if span.status != codes.Error || len(span.errs) != 1 {
		t.Errorf("status = %v, errs = %v", span.status, span.errs)
	}
	if got := span.attrs["velem.error_class"].AsString(); got != "invalid_child" {
		t.Errorf("error_class = %q", got)
	}
}

func TestMounterTracing(t *testing.T) {
	tracing := NewTracing(
		WithTracerProvider(noop.NewTracerProvider()),
		WithTracerName("test"),
		WithSpanAttributes(attribute.String("env", "test")),
	)
	doc := dom.NewDocument()
	root := doc.CreateRoot()

	mounter := NewMounter[*dom.Node](doc, WithTracing(tracing), WithLogger(quietLogger()))
	node, err := mounter.Mount(context.Background(), vdom.MustH("div", nil, "x"), root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Parent != root {
		t.Error("node should be appended to root")
	}
}

func TestCountingHost(t *testing.T) {
	doc := dom.NewDocument()
	counter := &countingHost[*dom.Node]{next: doc}

	el := vdom.MustH("p", vdom.Props{"id": vdom.String("a")}, "x", vdom.MustH("b", nil))
	if _, err := vdom.Mount[*dom.Node](counter, el, doc.CreateRoot()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// p, "x", b; attribute; two appends into p plus the root append.
	if counter.nodes != 3 || counter.ops != 7 {
		t.Errorf("nodes = %d, ops = %d; want 3, 7", counter.nodes, counter.ops)
	}
}
