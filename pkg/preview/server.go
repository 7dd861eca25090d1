package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	velemerrors "github.com/vango-dev/velem/internal/errors"
	"github.com/vango-dev/velem/pkg/decode"
	"github.com/vango-dev/velem/pkg/dom"
	"github.com/vango-dev/velem/pkg/middleware"
	"github.com/vango-dev/velem/pkg/render"
)

// rootID is the id of the element the live script replaces.
const rootID = "velem-root"

// Config configures the preview server.
type Config struct {
	// Addr is the listen address for ListenAndServe.
	Addr string

	// Render configures HTML output. The "pretty" query parameter
	// overrides Render.Pretty per request.
	Render render.RendererConfig

	// StrictTags rejects tags that are not HTML elements or custom elements.
	StrictTags bool

	// MaxBodyBytes limits request bodies. Default 1 MiB.
	MaxBodyBytes int64

	// Handlers resolves event props in documents.
	Handlers decode.Registry

	// Registry receives the server's metrics; Gatherer serves /metrics.
	// Both default to a fresh prometheus.Registry.
	Registry prometheus.Registerer
	Gatherer prometheus.Gatherer

	// Namespace is the metrics namespace (default "velem").
	Namespace string

	// Tracing, when set, opens a span per mount.
	Tracing *middleware.Tracing

	Logger *slog.Logger
}

// Server is the preview HTTP server.
type Server struct {
	config  Config
	router  chi.Router
	hub     *Hub
	decoder *decode.Decoder
	metrics *middleware.Metrics
	logger  *slog.Logger

	mu   sync.RWMutex
	last *dom.Node // root of the latest successful render; read-only once stored
}

// New creates a Server.
func New(config Config) *Server {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = 1 << 20
	}
	if config.Namespace == "" {
		config.Namespace = "velem"
	}
	if config.Registry == nil || config.Gatherer == nil {
		reg := prometheus.NewRegistry()
		config.Registry = reg
		config.Gatherer = reg
	}

	s := &Server{
		config:  config,
		hub:     NewHub(config.Logger),
		decoder: decode.NewDecoder(config.Handlers),
		metrics: middleware.NewMetrics(
			middleware.WithNamespace(config.Namespace),
			middleware.WithRegistry(config.Registry),
		),
		logger: config.Logger,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Post("/render", s.handleRender)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(config.Gatherer, promhttp.HandlerOpts{}))
	r.Get("/live", s.hub.ServeHTTP)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Hub returns the live client hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Render decodes a document, mounts it into a fresh document and returns
// the HTML of the mounted subtree.
func (s *Server) Render(ctx context.Context, data []byte, format decode.Format, cfg render.RendererConfig) (string, error) {
	root, err := s.mount(ctx, data, format)
	if err != nil {
		return "", err
	}
	return render.NewRenderer(cfg).RenderToString(root)
}

func (s *Server) mount(ctx context.Context, data []byte, format decode.Format) (*dom.Node, error) {
	el, err := s.decoder.Decode(data, format)
	if err != nil {
		return nil, err
	}

	var opts []dom.Option
	if s.config.StrictTags {
		opts = append(opts, dom.WithStrictTags())
	}
	doc := dom.NewDocument(opts...)
	root := doc.CreateRoot()

	mopts := []middleware.MounterOption{
		middleware.WithMetrics(s.metrics),
		middleware.WithLogger(s.logger),
	}
	if s.config.Tracing != nil {
		mopts = append(mopts, middleware.WithTracing(s.config.Tracing))
	}
	if _, err := middleware.NewMounter[*dom.Node](doc, mopts...).Mount(ctx, el, root); err != nil {
		return nil, err
	}
	return root, nil
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		writeError(w, http.StatusBadRequest, velemerrors.New("E110").WithDetail("empty document"))
		return
	}

	cfg := s.config.Render
	if v := r.URL.Query().Get("pretty"); v != "" {
		cfg.Pretty, _ = strconv.ParseBool(v)
	}

	root, err := s.mount(r.Context(), body, formatOf(r))
	if err != nil {
		ve := velemerrors.FromError(err)
		s.hub.Broadcast(Message{Type: MessageError, Error: ve.Error()})
		writeError(w, http.StatusBadRequest, ve)
		return
	}
	html, err := render.NewRenderer(cfg).RenderToString(root)
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.last = root
	s.mu.Unlock()
	s.hub.Broadcast(Message{Type: MessageRender, HTML: html})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, html)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := render.NewRenderer(s.config.Render).RenderPage(w, render.PageData{
		Title:   "velem preview",
		RootID:  rootID,
		Body:    last,
		Scripts: []string{liveScript},
	})
	if err != nil {
		s.logger.Debug("index write failed", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

// logRequests logs each request with slog.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// formatOf picks the document format from the Content-Type header.
func formatOf(r *http.Request) decode.Format {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return decode.FormatAuto
	}
	switch mt {
	case "application/json":
		return decode.FormatJSON
	case "application/yaml", "application/x-yaml", "text/yaml":
		return decode.FormatYAML
	case "text/html":
		return decode.FormatHTML
	default:
		return decode.FormatAuto
	}
}

func writeError(w http.ResponseWriter, status int, e *velemerrors.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Code     string `json:"code"`
		Message  string `json:"message"`
		Location string `json:"location,omitempty"`
		Cause    string `json:"cause,omitempty"`
	}{
		Code:     e.Code,
		Message:  e.Message,
		Location: e.Location.String(),
		Cause:    causeOf(e),
	})
}

func causeOf(e *velemerrors.Error) string {
	if e.Wrapped == nil {
		return e.Detail
	}
	return e.Wrapped.Error()
}
