package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/baitoguard/backend/internal/client"
	"github.com/baitoguard/backend/internal/db"
	"github.com/baitoguard/backend/internal/model"
	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// stubLLM - 固定の応答を返すservice.LLM実装
type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) GenerateText(ctx context.Context, prompt string, chat bool) (string, error) {
	return s.reply, s.err
}

func (s *stubLLM) ExtractImageText(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	return s.reply, s.err
}

func (s *stubLLM) EmbedText(ctx context.Context, text string) ([]float32, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return []float32{0.1}, "text-embedding-004", nil
}

const stubVerdict = `{"isSafe": true, "safetyScore": 85, "safetyAnalysis": "安全な求人です", "confidenceLevel": 90}`

func jsonRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewAnalyzeService(&stubLLM{reply: stubVerdict}, db.NewMemory(), "", time.Second)
	r.POST("/api/v1/analyze", NewAnalyzeHandler(svc).Analyze)

	w := jsonRequest(t, r, http.MethodPost, "/api/v1/analyze", `{"jobDescription": "カフェスタッフ募集"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var rec model.Record
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !rec.AnalysisResult.IsSafe || rec.AnalysisResult.SafetyScore != 85 {
		t.Errorf("verdict = %+v", rec.AnalysisResult)
	}
}

func TestAnalyzeHandlerValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewAnalyzeService(&stubLLM{reply: stubVerdict}, db.NewMemory(), "", time.Second)
	r.POST("/api/v1/analyze", NewAnalyzeHandler(svc).Analyze)

	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{"jobDescription": `},
		{"empty description", `{"jobDescription": ""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := jsonRequest(t, r, http.MethodPost, "/api/v1/analyze", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestAnalyzeHandlerMissingAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewAnalyzeService(nil, db.NewMemory(), "", time.Second)
	r.POST("/api/v1/analyze", NewAnalyzeHandler(svc).Analyze)

	w := jsonRequest(t, r, http.MethodPost, "/api/v1/analyze", `{"jobDescription": "求人"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestHistoryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewHistoryService(db.NewMemory())
	r.GET("/api/v1/analyses", NewHistoryHandler(svc).List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses?filter=unsafe&sortBy=safety_score&sortOrder=asc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if cc := w.Header().Get("Cache-Control"); cc == "" {
		t.Error("missing Cache-Control header")
	}

	var envelope model.AnalysesEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Status != "success" {
		t.Errorf("status = %q", envelope.Status)
	}
	for _, rec := range envelope.Data {
		if rec.AnalysisResult.IsSafe {
			t.Errorf("record %s is safe, filter=unsafe leaked", rec.ID)
		}
	}
}

func TestStatisticsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewStatisticsService(db.NewMemory())
	r.GET("/api/v1/statistics", NewStatisticsHandler(svc).Statistics)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/statistics", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var envelope model.StatisticsEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data == nil || envelope.Data.TotalCount == 0 {
		t.Error("statistics over fixture data should not be empty")
	}
	if len(envelope.Data.ScoreDistribution) != 5 {
		t.Errorf("len(ScoreDistribution) = %d, want 5", len(envelope.Data.ScoreDistribution))
	}
}

func TestTrendsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewTrendsService(db.NewMemory())
	r.GET("/api/v1/trends", NewTrendsHandler(svc).Trends)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trends", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp model.TrendsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.MonthlyAnalysis) != 12 {
		t.Errorf("len(MonthlyAnalysis) = %d, want 12", len(resp.MonthlyAnalysis))
	}
}

func TestChatHandlerValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewChatService(&stubLLM{reply: "安全です"}, time.Second)
	r.POST("/api/v1/chat", NewChatHandler(svc).Chat)

	w := jsonRequest(t, r, http.MethodPost, "/api/v1/chat", `{"message": "安全ですか？"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without analysisResult, got %d", w.Code)
	}
}

func TestScrapeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewScrapeService(client.NewScraper(nil))
	r.POST("/api/v1/scrape", NewScrapeHandler(svc).Scrape)

	w := jsonRequest(t, r, http.MethodPost, "/api/v1/scrape", `{"url": "https://townwork.net/job/123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp model.ScrapeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.JobDescription == "" {
		t.Error("empty job description")
	}

	w = jsonRequest(t, r, http.MethodPost, "/api/v1/scrape", `{"url": ""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty URL, got %d", w.Code)
	}
}

func TestOCRHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewOCRService(&stubLLM{reply: `{"text": "カフェスタッフ募集", "confidence": 88}`}, time.Second)
	r.POST("/api/v1/ocr", NewOCRHandler(svc).ExtractText)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="job.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	writer.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ocr", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp model.OCRResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Text != "カフェスタッフ募集" || resp.Confidence != 88 {
		t.Errorf("response = %+v", resp)
	}
}

func TestOCRHandlerMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewOCRService(&stubLLM{}, time.Second)
	r.POST("/api/v1/ocr", NewOCRHandler(svc).ExtractText)

	w := jsonRequest(t, r, http.MethodPost, "/api/v1/ocr", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without image part, got %d", w.Code)
	}
}

func TestCompareHandlerValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	analyze := service.NewAnalyzeService(&stubLLM{reply: stubVerdict}, db.NewMemory(), "", time.Second)
	svc := service.NewCompareService(analyze, 5)
	r.POST("/api/v1/compare", NewCompareHandler(svc).Compare)

	w := jsonRequest(t, r, http.MethodPost, "/api/v1/compare", `{"jobDescriptions": ["一件だけ"]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a single posting, got %d", w.Code)
	}

	w = jsonRequest(t, r, http.MethodPost, "/api/v1/compare", `{"jobDescriptions": ["求人A", "求人B"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp model.CompareResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Errorf("len(Results) = %d, want 2", len(resp.Results))
	}
}

func TestUpstreamErrorHidesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewAnalyzeService(&stubLLM{err: errors.New("secret internal detail")}, db.NewMemory(), "", time.Second)
	r.POST("/api/v1/analyze", NewAnalyzeHandler(svc).Analyze)

	w := jsonRequest(t, r, http.MethodPost, "/api/v1/analyze", `{"jobDescription": "求人"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("secret internal detail")) {
		t.Error("upstream error detail leaked to the client")
	}
}

func TestHealthEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", Ping)
	r.GET("/", Root)

	for _, path := range []string{"/ping", "/"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:3000"}))
	r.GET("/ping", Ping)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected Access-Control-Allow-Origin = %q for unknown origin", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
}
