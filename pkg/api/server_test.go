package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/user/carousel/pkg/adapters/logger"
	"github.com/user/carousel/pkg/mocks"
	"github.com/user/carousel/pkg/orchestrator"
	"github.com/user/carousel/pkg/pipeline"
	"github.com/user/carousel/pkg/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubGenerator returns canned results and records the received slides.
type stubGenerator struct {
	run    orchestrator.RunResult
	err    error
	slides []pipeline.Slide
}

func (g *stubGenerator) Generate(ctx context.Context, slides []pipeline.Slide) (orchestrator.RunResult, error) {
	g.slides = slides
	return g.run, g.err
}

type testServer struct {
	engine *gin.Engine
	gen    *stubGenerator
	fs     *mocks.FileSystem
}

func newTestServer(run orchestrator.RunResult, genErr error) *testServer {
	gen := &stubGenerator{run: run, err: genErr}
	fs := &mocks.FileSystem{}
	server := NewServer(gen, &mocks.TemplateStore{}, &mocks.Renderer{}, fs, logger.NewNoop(), "gen", "")

	engine := gin.New()
	server.RegisterRoutes(engine)
	return &testServer{engine: engine, gen: gen, fs: fs}
}

func (ts *testServer) post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate-carousel", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func (ts *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func successRun() orchestrator.RunResult {
	return orchestrator.RunResult{
		Results: []orchestrator.SlideResult{
			{
				SlideNumber: 1,
				Role:        ports.RoleCover,
				Filename:    "image_20240102_150405_1.png",
				Image:       image.NewRGBA(image.Rect(0, 0, 1, 1)),
			},
			{
				SlideNumber: 2,
				Role:        ports.RoleCTA,
				Filename:    "image_20240102_150405_2.png",
				Image:       image.NewRGBA(image.Rect(0, 0, 1, 1)),
				Warnings:    []string{"layout overflow: text wider than padded region after wrapping"},
			},
		},
		Success: true,
		Count:   2,
	}
}

func TestGenerateCarousel_URLMode(t *testing.T) {
	ts := newTestServer(successRun(), nil)

	w := ts.post(t, `{"slides":[{"mainText":"a"},{"mainText":"b"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Error("expected success true")
	}
	if body["count"].(float64) != 2 {
		t.Errorf("expected count 2, got %v", body["count"])
	}

	images := body["images"].([]any)
	first := images[0].(map[string]any)
	expectedURL := "http://example.com/download/image_20240102_150405_1.png"
	if first["url"] != expectedURL {
		t.Errorf("expected url %s, got %v", expectedURL, first["url"])
	}
	if _, ok := first["data"]; ok {
		t.Error("url mode must not inline image data")
	}

	second := images[1].(map[string]any)
	warnings := second["warnings"].([]any)
	if len(warnings) != 1 || !strings.Contains(warnings[0].(string), "layout overflow") {
		t.Errorf("expected the overflow warning surfaced, got %v", warnings)
	}

	// Both files are persisted for later download.
	for _, name := range []string{"image_20240102_150405_1.png", "image_20240102_150405_2.png"} {
		if _, ok := ts.fs.Files[filepath.Join("gen", name)]; !ok {
			t.Errorf("expected %s persisted under gen/", name)
		}
	}

	if len(ts.gen.slides) != 2 {
		t.Errorf("expected 2 slides forwarded to the generator, got %d", len(ts.gen.slides))
	}
}

func TestGenerateCarousel_InlineMode(t *testing.T) {
	ts := newTestServer(successRun(), nil)

	w := ts.post(t, `{"slides":[{"mainText":"a"},{"mainText":"b"}],"responseMode":"inline"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	images := body["images"].([]any)
	first := images[0].(map[string]any)

	// The mock renderer encodes every image as "png".
	if first["data"] != base64.StdEncoding.EncodeToString([]byte("png")) {
		t.Errorf("expected base64 image data, got %v", first["data"])
	}
	if _, ok := first["url"]; ok {
		t.Error("inline mode must not emit download URLs")
	}
	if len(ts.fs.Files) != 0 {
		t.Errorf("inline mode must not persist files, got %v", ts.fs.Files)
	}
}

func TestGenerateCarousel_BaseURLOverride(t *testing.T) {
	gen := &stubGenerator{run: successRun()}
	server := NewServer(gen, &mocks.TemplateStore{}, &mocks.Renderer{}, &mocks.FileSystem{}, logger.NewNoop(), "gen", "https://cdn.example.net/")

	engine := gin.New()
	server.RegisterRoutes(engine)

	req := httptest.NewRequest(http.MethodPost, "/generate-carousel", strings.NewReader(`{"slides":[{"mainText":"a"}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	body := decodeBody(t, w)
	first := body["images"].([]any)[0].(map[string]any)
	if got := first["url"].(string); !strings.HasPrefix(got, "https://cdn.example.net/download/") {
		t.Errorf("expected the configured base URL, got %s", got)
	}
}

func TestGenerateCarousel_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"slides": [`},
		{name: "empty slides", body: `{"slides": []}`},
		{name: "missing slides", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(orchestrator.RunResult{}, nil)
			w := ts.post(t, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGenerateCarousel_MissingTemplate(t *testing.T) {
	ts := newTestServer(orchestrator.RunResult{}, &ports.MissingTemplateError{Name: "2"})

	w := ts.post(t, `{"slides":[{"mainText":"a"}]}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 for a missing template, got %d", w.Code)
	}
}

func TestDownload(t *testing.T) {
	ts := newTestServer(orchestrator.RunResult{}, nil)
	ts.fs.WriteFile(filepath.Join("gen", "image_1.png"), []byte("png bytes"))

	w := ts.get(t, "/download/image_1.png")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %s", ct)
	}
	if !bytes.Equal(w.Body.Bytes(), []byte("png bytes")) {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestDownload_NotFound(t *testing.T) {
	ts := newTestServer(orchestrator.RunResult{}, nil)

	w := ts.get(t, "/download/missing.png")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDownload_RejectsTraversal(t *testing.T) {
	ts := newTestServer(orchestrator.RunResult{}, nil)
	ts.fs.WriteFile("secret.txt", []byte("keep out"))

	// Routing may reject an escaped traversal before the handler does, so
	// the contract is: never 200, never the file's contents.
	for _, path := range []string{
		"/download/..%2Fsecret.txt",
		"/download/a..b.png",
	} {
		w := ts.get(t, path)
		if w.Code == http.StatusOK {
			t.Errorf("%s: traversal served with 200", path)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("keep out")) {
			t.Errorf("%s: leaked file contents", path)
		}
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(orchestrator.RunResult{}, nil)

	w := ts.get(t, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", body["status"])
	}
	templates := body["templates"].([]any)
	if len(templates) != 3 {
		t.Errorf("expected 3 templates listed, got %v", templates)
	}
}

func TestIndex(t *testing.T) {
	ts := newTestServer(orchestrator.RunResult{}, nil)

	w := ts.get(t, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["version"] != Version {
		t.Errorf("expected version %s, got %v", Version, body["version"])
	}
}
