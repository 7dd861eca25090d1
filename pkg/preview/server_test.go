package preview

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/velem/pkg/decode"
	"github.com/vango-dev/velem/pkg/render"
	"github.com/vango-dev/velem/pkg/vdom"
)

func newTestServer(t *testing.T, config Config) *Server {
	t.Helper()
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return New(config)
}

func post(t *testing.T, h http.Handler, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRender(t *testing.T) {
	s := newTestServer(t, Config{})

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"json", "application/json", `{"type":"a","props":{"href":"https://google.com","target":"_parent"},"children":"Click me to visit google"}`},
		{"yaml", "application/yaml", "type: a\nprops:\n  href: https://google.com\n  target: _parent\nchildren: Click me to visit google\n"},
		{"html", "text/html; charset=utf-8", `<a href="https://google.com" target="_parent">Click me to visit google</a>`},
		{"sniffed", "", `{"type":"a","props":{"href":"https://google.com","target":"_parent"},"children":"Click me to visit google"}`},
	}

	want := `<a href="https://google.com" target="_parent">Click me to visit google</a>`
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, s, "/render", tt.contentType, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if got := rec.Body.String(); got != want {
				t.Errorf("got %q, want %q", got, want)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestRenderPrettyQuery(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := post(t, s, "/render?pretty=1", "application/yaml", "kind: div\nchildren:\n  - {kind: p, children: a}\n  - {kind: p, children: b}\n")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != "<div>\n  <p>a</p>\n  <p>b</p>\n</div>\n" {
		t.Errorf("got %q", got)
	}
}

func TestRenderErrors(t *testing.T) {
	s := newTestServer(t, Config{StrictTags: true})

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"empty", "  ", "E110"},
		{"syntax", `{"kind":`, "E110"},
		{"missing kind", `{"props":{}}`, "E112"},
		{"invalid kind", `{"kind":"1p"}`, "E100"},
		{"unknown tag", `{"kind":"blink"}`, "E101"},
		{"unknown handler", `{"kind":"button","props":{"onClick":"nope"}}`, "E111"},
		{"nested sequence", "kind: p\nchildren:\n  - [a]\n  - b\n", "E102"},
		{"two html roots", "<p>a</p><p>b</p>", "E110"},
		{"injected attribute name", `{"kind":"a","props":{"x onclick=\"alert(1)\" y":"z","title":"t"},"children":"hi"}`, "E103"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, s, "/render", "", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON %q: %v", rec.Body.String(), err)
			}
			if body.Code != tt.wantCode || body.Message == "" {
				t.Errorf("got %+v, want code %s", body, tt.wantCode)
			}
		})
	}
}

func TestRenderScriptTextStaysInside(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := post(t, s, "/render", "application/json", `{"kind":"script","children":"</script><img src=x onerror=alert(1)>"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	want := `<script><\/script><img src=x onerror=alert(1)></script>`
	if got := rec.Body.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderBodyLimit(t *testing.T) {
	s := newTestServer(t, Config{MaxBodyBytes: 16})

	rec := post(t, s, "/render", "application/json", `{"kind":"p","children":"this body is too long"}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestRenderHandlers(t *testing.T) {
	s := newTestServer(t, Config{
		Handlers: decode.Registry{"greet": func(vdom.Event) {}},
		Render:   render.RendererConfig{EventMarkers: true},
	})

	rec := post(t, s, "/render", "application/json", `{"kind":"button","props":{"onClick":"greet"},"children":"Hi"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != `<button data-on-click="true">Hi</button>` {
		t.Errorf("got %q", got)
	}
}

func TestIndexShowsLatestRender(t *testing.T) {
	s := newTestServer(t, Config{})

	get := func() string {
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		return rec.Body.String()
	}

	if page := get(); !strings.Contains(page, `<div id="velem-root"></div>`) {
		t.Errorf("empty page should hold an empty root:\n%s", page)
	}

	post(t, s, "/render", "application/yaml", "kind: h1\nchildren: Hello\n")
	page := get()
	if !strings.Contains(page, `<div id="velem-root"><h1>Hello</h1></div>`) {
		t.Errorf("page should show the latest render:\n%s", page)
	}
	if !strings.Contains(page, "/live") {
		t.Error("page should include the live script")
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}

	post(t, s, "/render", "application/yaml", "kind: p\nchildren: x\n")
	post(t, s, "/render", "application/yaml", "kind: p\nprops:\n  onClick: missing\n")

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`velem_mounts_total{status="success"} 1`,
		`velem_host_ops_total{op="create_node"} 1`,
		"velem_mount_duration_seconds_count 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics should contain %q", want)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/render", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestLiveBroadcast(t *testing.T) {
	s := newTestServer(t, Config{})
	ts := httptest.NewServer(s)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for s.Hub().ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Post(ts.URL+"/render", "application/yaml", strings.NewReader("kind: p\nchildren: live\n"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != MessageRender || msg.HTML != "<p>live</p>" {
		t.Errorf("message = %+v", msg)
	}

	resp, err = http.Post(ts.URL+"/render", "application/yaml", strings.NewReader("props: {}\n"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()

	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != MessageError || !strings.Contains(msg.Error, "E112") {
		t.Errorf("message = %+v", msg)
	}
}
