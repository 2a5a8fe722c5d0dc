// README: Handler tests exercising the gin router with stubbed collaborators.
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"trailhead/internal/gateway"
	httptransport "trailhead/internal/http"
	"trailhead/internal/llm"
	"trailhead/internal/logging"
	"trailhead/internal/modules/recommendation"
)

type stubGateway struct{}

func (stubGateway) Invoke(_ context.Context, name string, args map[string]any) gateway.ToolResult {
	return gateway.ToolResult{ToolName: name, Output: name + " data", Succeeded: true}
}

type stubTools struct {
	descriptors []gateway.ToolDescriptor
	err         error
}

func (s stubTools) Tools(context.Context) ([]gateway.ToolDescriptor, error) {
	return s.descriptors, s.err
}

type stubGenerator struct {
	result llm.GenerationResult
}

func (g stubGenerator) Complete(context.Context, llm.Request) llm.GenerationResult {
	return g.result
}

type memHistory struct {
	records []recommendation.Record
	saveErr error
}

func (m *memHistory) Save(_ context.Context, rec *recommendation.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append(m.records, *rec)
	return nil
}

func (m *memHistory) List(_ context.Context, limit, offset int) ([]recommendation.Record, error) {
	out := append([]recommendation.Record{}, m.records...)
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memHistory) Get(_ context.Context, id string) (*recommendation.Record, error) {
	for _, rec := range m.records {
		if rec.ID == id {
			out := rec
			return &out, nil
		}
	}
	return nil, recommendation.ErrNotFound
}

func buildTestRouter(store *memHistory, gen stubGenerator, tools stubTools) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := recommendation.NewService(store, stubGateway{}, gen, logging.NewNop())
	return httptransport.NewRouter(svc, tools, logging.NewNop())
}

func defaultRouter(store *memHistory) *gin.Engine {
	return buildTestRouter(store,
		stubGenerator{result: llm.GenerationResult{Text: "Visit Zion.", Succeeded: true}},
		stubTools{descriptors: []gateway.ToolDescriptor{{Name: "search"}, {Name: "weather"}}},
	)
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validForm() url.Values {
	return url.Values{
		"interests":      {"hiking"},
		"duration":       {"3 days"},
		"season":         {"fall"},
		"activity_level": {"moderate"},
	}
}

func TestRecommend_FormSubmission(t *testing.T) {
	store := &memHistory{}
	r := defaultRouter(store)

	w := postForm(r, "/api/recommend", validForm())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var rec recommendation.Record
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if rec.Request.Interests != "hiking" || rec.Request.Season != "fall" {
		t.Errorf("record does not echo the submitted form: %+v", rec.Request)
	}
	if !rec.Succeeded || rec.GeneratedText == "" {
		t.Error("expected a successful generation")
	}
	if len(rec.ToolResults) != 2 {
		t.Errorf("expected weather and search results, got %d", len(rec.ToolResults))
	}
	if len(store.records) != 1 {
		t.Error("record must be persisted")
	}
}

func TestRecommend_JSONSubmission(t *testing.T) {
	r := defaultRouter(&memHistory{})

	body := `{"interests":"skiing","duration":"1 week","season":"winter","activity_level":"high"}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRecommend_MissingFieldRejected(t *testing.T) {
	store := &memHistory{}
	r := defaultRouter(store)

	form := validForm()
	form.Del("season")
	w := postForm(r, "/api/recommend", form)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(store.records) != 0 {
		t.Error("invalid request must not be persisted")
	}
}

func TestRecommend_PersistenceFailureReturnsContent(t *testing.T) {
	store := &memHistory{saveErr: errors.New("db down")}
	r := defaultRouter(store)

	w := postForm(r, "/api/recommend", validForm())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp struct {
		Error  string                 `json:"error"`
		Record *recommendation.Record `json:"record"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Error == "" {
		t.Error("response must explain that history was not recorded")
	}
	if resp.Record == nil || resp.Record.GeneratedText == "" {
		t.Error("generated content must still be returned")
	}
}

func TestListRecommendations(t *testing.T) {
	store := &memHistory{}
	store.records = append(store.records, recommendation.Record{
		ID:            "abc",
		Request:       recommendation.PreferenceRequest{Interests: "hiking", Duration: "3 days", Season: "fall", ActivityLevel: "moderate"},
		GeneratedText: strings.Repeat("long text ", 50),
		Succeeded:     true,
		CreatedAt:     time.Now().UTC(),
	})
	r := defaultRouter(store)

	w := get(r, "/api/recommendations?limit=10")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Recommendations []struct {
			ID      string `json:"id"`
			Preview string `json:"preview"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Recommendations) != 1 || resp.Recommendations[0].ID != "abc" {
		t.Fatalf("unexpected summaries: %+v", resp.Recommendations)
	}
	if len(resp.Recommendations[0].Preview) > 200 {
		t.Error("preview must be truncated")
	}
}

func TestGetRecommendation_NotFound(t *testing.T) {
	r := defaultRouter(&memHistory{})
	if w := get(r, "/api/recommendations/nope"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGetRecommendation_Found(t *testing.T) {
	store := &memHistory{}
	r := defaultRouter(store)

	created := postForm(r, "/api/recommend", validForm())
	var rec recommendation.Record
	if err := json.Unmarshal(created.Body.Bytes(), &rec); err != nil {
		t.Fatalf("invalid create response: %v", err)
	}

	w := get(r, "/api/recommendations/"+rec.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got recommendation.Record
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.ID != rec.ID || got.Request != rec.Request || got.GeneratedText != rec.GeneratedText {
		t.Error("retrieved record differs from created record")
	}
}

func TestListDestinations(t *testing.T) {
	r := defaultRouter(&memHistory{})
	w := get(r, "/api/destinations")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Zion National Park") {
		t.Error("catalog must include the national parks")
	}
}

func TestListTools_Degraded(t *testing.T) {
	r := buildTestRouter(&memHistory{},
		stubGenerator{result: llm.GenerationResult{Text: "x", Succeeded: true}},
		stubTools{err: errors.New("gateway down")},
	)

	w := get(r, "/api/tools")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Available bool `json:"available"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Available {
		t.Error("discovery failure must report available=false")
	}
}

func TestHealth(t *testing.T) {
	r := defaultRouter(&memHistory{})
	w := get(r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}
