package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"serenemind/models"
	"serenemind/services/selfcare"

	"github.com/gin-gonic/gin"
)

type stubSelfCareService struct {
	advice  string
	columns []models.ColumnDescriptor
	err     error
}

func (s *stubSelfCareService) Recommend(ctx context.Context, query map[string]string) (string, error) {
	return s.advice, s.err
}

func (s *stubSelfCareService) Columns(ctx context.Context) ([]models.ColumnDescriptor, error) {
	return s.columns, s.err
}

func newSelfCareRouter(svc *stubSelfCareService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSelfCareHandler(svc)
	r.GET("/selfcare/columns", h.Columns)
	r.POST("/selfcare/recommend", h.Recommend)
	return r
}

func postRecommend(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/selfcare/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRecommendHandler(t *testing.T) {
	r := newSelfCareRouter(&stubSelfCareService{advice: "Call a friend"})

	w := postRecommend(r, `{"mood":"low"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["advice"] != "Call a friend" {
		t.Errorf("advice = %q, want %q", body["advice"], "Call a friend")
	}
}

func TestRecommendHandlerErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty query", selfcare.ErrEmptyQuery, http.StatusBadRequest},
		{"empty catalog", selfcare.ErrEmptyCatalog, http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newSelfCareRouter(&stubSelfCareService{err: tc.err})
			if w := postRecommend(r, `{"mood":"low"}`); w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestRecommendHandlerBadJSON(t *testing.T) {
	r := newSelfCareRouter(&stubSelfCareService{})
	if w := postRecommend(r, `{"mood":`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestColumnsHandler(t *testing.T) {
	r := newSelfCareRouter(&stubSelfCareService{columns: []models.ColumnDescriptor{
		{Name: "mood", Options: []string{"high", "low"}},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/selfcare/columns", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var columns []models.ColumnDescriptor
	if err := json.Unmarshal(w.Body.Bytes(), &columns); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(columns) != 1 || columns[0].Name != "mood" {
		t.Errorf("columns = %v", columns)
	}
}
