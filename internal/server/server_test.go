package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshwakefield/jd-brief/internal/generator"
	"github.com/joshwakefield/jd-brief/internal/storage"
	"github.com/joshwakefield/jd-brief/internal/types"
)

const testBotToken = "test-bot-token"

// fakeGenerator returns a canned brief or error and records its calls.
type fakeGenerator struct {
	brief *types.Brief
	err   error
	calls int
}

func (g *fakeGenerator) Generate(_ context.Context, _, _, _ string) (*types.Brief, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.brief, nil
}

// fakeRenderer returns canned PDF bytes.
type fakeRenderer struct {
	pdf   []byte
	err   error
	calls int
}

func (r *fakeRenderer) Render(_ context.Context, _ *types.Brief) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.pdf, nil
}

// fakeStore keeps uploads in memory.
type fakeStore struct {
	objects   map[string][]byte
	uploadErr error
	signErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (s *fakeStore) Upload(_ context.Context, key string, data []byte) (*types.ArtifactRecord, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.objects[key] = data
	now := time.Now().UTC()
	return &types.ArtifactRecord{
		StorageKey: key,
		CreatedAt:  now,
		ExpiresAt:  now.Add(storage.DefaultSignedURLTTL),
	}, nil
}

func (s *fakeStore) SignedURL(key string, _ time.Duration) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "https://storage.example.com/" + key + "?sig=abc", nil
}

func (s *fakeStore) Stream(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, &storage.Error{Op: "read", Key: key, Cause: errors.New("object doesn't exist")}
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	if _, ok := s.objects[key]; !ok {
		return &storage.Error{Op: "delete", Key: key, Cause: errors.New("object doesn't exist")}
	}
	delete(s.objects, key)
	return nil
}

func testBrief() *types.Brief {
	return &types.Brief{
		FitScore: 78,
		JDFields: types.JDFields{Role: "SRE", Company: "Acme"},
	}
}

func newTestServer(gen BriefGenerator, renderer *fakeRenderer, store *fakeStore) *Server {
	return &Server{
		generator: gen,
		renderer:  renderer,
		store:     store,
		botToken:  testBotToken,
	}
}

func createBody(t *testing.T, jdText, token string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(types.BriefRequest{
		JDText:   jdText,
		Role:     "SRE",
		Company:  "Acme",
		BotToken: token,
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(&fakeGenerator{}, &fakeRenderer{}, newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["ok"])
}

func TestCreateBrief(t *testing.T) {
	gen := &fakeGenerator{brief: testBrief()}
	renderer := &fakeRenderer{pdf: []byte("%PDF-1.4 fake")}
	store := newFakeStore()
	s := newTestServer(gen, renderer, store)

	jd := strings.Repeat("We are hiring a site reliability engineer. ", 40)
	req := httptest.NewRequest(http.MethodPost, "/api/brief", createBody(t, jd, testBotToken))
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "whyjosh-acme-sre-")
	assert.Contains(t, w.Header().Get("X-Share-URL"), "https://storage.example.com/briefs/")
	assert.NotEmpty(t, w.Header().Get("X-Share-Expires"))
	assert.Equal(t, []byte("%PDF-1.4 fake"), w.Body.Bytes())

	require.Len(t, store.objects, 1)
	for key := range store.objects {
		assert.True(t, strings.HasPrefix(key, "briefs/"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))
		assert.Contains(t, key, "acme")
	}
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 1, renderer.calls)
}

func TestCreateBrief_InvalidBody(t *testing.T) {
	s := newTestServer(&fakeGenerator{}, &fakeRenderer{}, newFakeStore())

	req := httptest.NewRequest(http.MethodPost, "/api/brief", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBrief_WrongToken(t *testing.T) {
	gen := &fakeGenerator{brief: testBrief()}
	s := newTestServer(gen, &fakeRenderer{}, newFakeStore())

	jd := strings.Repeat("We are hiring a site reliability engineer. ", 40)
	req := httptest.NewRequest(http.MethodPost, "/api/brief", createBody(t, jd, "wrong-token"))
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, gen.calls, "nothing downstream should run on a bad token")
}

func TestCreateBrief_MissingFields(t *testing.T) {
	gen := &fakeGenerator{brief: testBrief()}
	s := newTestServer(gen, &fakeRenderer{}, newFakeStore())

	body := fmt.Sprintf(`{"botToken": %q}`, testBotToken)
	req := httptest.NewRequest(http.MethodPost, "/api/brief", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gen.calls)
}

func TestCreateBrief_GeneratorErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "input size",
			err:        &generator.InputSizeError{Length: 50, Min: 200, Max: 20000},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "contract violation",
			err: &generator.SchemaViolationError{Violations: &types.Violations{
				Violations: []types.Violation{{Rule: types.RuleEvidenceUnknown, Field: "summary_bullets[0]"}},
			}},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "malformed output",
			err:        &generator.MalformedOutputError{Cause: errors.New("not json")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "model call failed",
			err:        &generator.GenerationError{Message: "model call failed", Cause: errors.New("quota")},
			wantStatus: http.StatusBadGateway,
		},
	}

	jd := strings.Repeat("We are hiring a site reliability engineer. ", 40)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := &fakeRenderer{pdf: []byte("pdf")}
			s := newTestServer(&fakeGenerator{err: tt.err}, renderer, newFakeStore())

			req := httptest.NewRequest(http.MethodPost, "/api/brief", createBody(t, jd, testBotToken))
			w := httptest.NewRecorder()

			s.routes().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, 0, renderer.calls)
		})
	}
}

func TestCreateBrief_RenderFailure(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("chrome not found")}
	s := newTestServer(&fakeGenerator{brief: testBrief()}, renderer, newFakeStore())

	jd := strings.Repeat("We are hiring a site reliability engineer. ", 40)
	req := httptest.NewRequest(http.MethodPost, "/api/brief", createBody(t, jd, testBotToken))
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateBrief_UploadFailure(t *testing.T) {
	store := newFakeStore()
	store.uploadErr = &storage.Error{Op: "upload", Key: "briefs/x.pdf", Cause: errors.New("bucket gone")}
	s := newTestServer(&fakeGenerator{brief: testBrief()}, &fakeRenderer{pdf: []byte("pdf")}, store)

	jd := strings.Repeat("We are hiring a site reliability engineer. ", 40)
	req := httptest.NewRequest(http.MethodPost, "/api/brief", createBody(t, jd, testBotToken))
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetBrief(t *testing.T) {
	store := newFakeStore()
	store.objects["briefs/1757600000-acme-1a2b3c4d.pdf"] = []byte("%PDF stored")
	s := newTestServer(&fakeGenerator{}, &fakeRenderer{}, store)

	req := httptest.NewRequest(http.MethodGet, "/api/brief/1757600000-acme-1a2b3c4d.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+testBotToken)
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte("%PDF stored"), w.Body.Bytes())
}

func TestGetBrief_Unauthorized(t *testing.T) {
	s := newTestServer(&fakeGenerator{}, &fakeRenderer{}, newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/api/brief/abc.pdf", nil)
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetBrief_NotFound(t *testing.T) {
	s := newTestServer(&fakeGenerator{}, &fakeRenderer{}, newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/api/brief/missing.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+testBotToken)
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBrief(t *testing.T) {
	store := newFakeStore()
	store.objects["briefs/1757600000-acme-1a2b3c4d.pdf"] = []byte("%PDF stored")
	s := newTestServer(&fakeGenerator{}, &fakeRenderer{}, store)

	req := httptest.NewRequest(http.MethodDelete, "/api/brief/1757600000-acme-1a2b3c4d.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+testBotToken)
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, store.objects)
	assert.Empty(t, w.Body.Bytes())
}

func TestDeleteBrief_NotFound(t *testing.T) {
	s := newTestServer(&fakeGenerator{}, &fakeRenderer{}, newFakeStore())

	req := httptest.NewRequest(http.MethodDelete, "/api/brief/missing.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+testBotToken)
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNew_RequiresBotToken(t *testing.T) {
	_, err := New(Config{Port: 8080}, &fakeGenerator{}, &fakeRenderer{}, newFakeStore())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot token")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", &ErrUnauthorized{}, http.StatusUnauthorized},
		{"not found", &ErrArtifactNotFound{Key: "briefs/x.pdf"}, http.StatusNotFound},
		{"input size", &generator.InputSizeError{}, http.StatusBadRequest},
		{"contract violation", &generator.SchemaViolationError{Violations: &types.Violations{}}, http.StatusUnprocessableEntity},
		{"malformed", &generator.MalformedOutputError{}, http.StatusBadGateway},
		{"generation", &generator.GenerationError{}, http.StatusBadGateway},
		{"storage", &storage.Error{Op: "upload"}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
