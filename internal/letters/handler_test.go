package letters_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"letter-backend/internal/credits"
	"letter-backend/internal/letters"
	"letter-backend/internal/llm"
)

func newLetterRouter(svc *letters.Service, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) {
			c.Set("userId", userID)
			c.Next()
		})
	}
	api := r.Group("/api/v1")
	letters.NewHandler(svc).RegisterRoutes(api)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	code, _ := payload["error"].(string)
	return code
}

func TestGenerateEndpoint(t *testing.T) {
	svc, _, _ := newTestService(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "Dear Committee, I write in support of Maya Ortiz.", nil
	}))
	router := newLetterRouter(svc, "user-1")

	resp := postJSON(t, router, "/api/v1/letters/generate", map[string]string{
		"prompt": "Write a job recommendation letter.",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		LetterID  string `json:"letterId"`
		Text      string `json:"text"`
		CreatedAt string `json:"createdAt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.LetterID == "" || out.CreatedAt == "" {
		t.Fatalf("expected letterId and createdAt, got %+v", out)
	}
	if !strings.Contains(out.Text, "Maya Ortiz") {
		t.Fatalf("unexpected text: %q", out.Text)
	}
}

func TestGenerateEndpointUnauthorized(t *testing.T) {
	svc, _, _ := newTestService(llm.PlaceholderClient{})
	router := newLetterRouter(svc, "")

	resp := postJSON(t, router, "/api/v1/letters/generate", map[string]string{"prompt": "p"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if code := decodeError(t, resp); code != "unauthorized" {
		t.Fatalf("expected unauthorized, got %q", code)
	}
}

func TestGenerateEndpointEmptyPrompt(t *testing.T) {
	svc, _, _ := newTestService(llm.PlaceholderClient{})
	router := newLetterRouter(svc, "user-1")

	resp := postJSON(t, router, "/api/v1/letters/generate", map[string]string{"prompt": "  "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if code := decodeError(t, resp); code != "validation_error" {
		t.Fatalf("expected validation_error, got %q", code)
	}
}

func TestGenerateEndpointPaymentRequired(t *testing.T) {
	svc, _, creditSvc := newTestService(llm.PlaceholderClient{})
	router := newLetterRouter(svc, "user-1")

	ctx := context.Background()
	if _, err := creditSvc.Debit(ctx, "user-1", 3); err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if _, err := creditSvc.SetSubscriptionStatus(ctx, "user-1", credits.StatusDeleted); err != nil {
		t.Fatalf("SetSubscriptionStatus: %v", err)
	}

	resp := postJSON(t, router, "/api/v1/letters/generate", map[string]string{"prompt": "p"})
	if resp.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", resp.Code)
	}
	if code := decodeError(t, resp); code != "payment_required" {
		t.Fatalf("expected payment_required, got %q", code)
	}
}

func TestGenerateEndpointNotConfigured(t *testing.T) {
	svc, _, _ := newTestService(llm.PlaceholderClient{})
	router := newLetterRouter(svc, "user-1")

	resp := postJSON(t, router, "/api/v1/letters/generate", map[string]string{"prompt": "p"})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if code := decodeError(t, resp); code != "llm_not_configured" {
		t.Fatalf("expected llm_not_configured, got %q", code)
	}
}

func TestGenerateEndpointUpstreamError(t *testing.T) {
	svc, _, _ := newTestService(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", context.DeadlineExceeded
	}))
	router := newLetterRouter(svc, "user-1")

	resp := postJSON(t, router, "/api/v1/letters/generate", map[string]string{"prompt": "p"})
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
	if code := decodeError(t, resp); code != "upstream_error" {
		t.Fatalf("expected upstream_error, got %q", code)
	}
}

func TestPreviewEndpoint(t *testing.T) {
	svc, _, _ := newTestService(llm.PlaceholderClient{})
	svc.Builder = &letters.Builder{
		Bucket: "letters-uploads",
		Region: "us-east-1",
		Rand:   rand.New(rand.NewSource(1)),
	}
	router := newLetterRouter(svc, "user-1")

	resp := postJSON(t, router, "/api/v1/letters/preview", map[string]any{
		"letterType":         "job",
		"applicantFirstName": "Maya",
		"applicantLastName":  "Ortiz",
		"language":           "english",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(out.Prompt, "Write a job recommendation letter in English.") {
		t.Fatalf("unexpected prompt: %q", out.Prompt)
	}
}

func TestPreviewEndpointMissingName(t *testing.T) {
	svc, _, _ := newTestService(llm.PlaceholderClient{})
	router := newLetterRouter(svc, "user-1")

	resp := postJSON(t, router, "/api/v1/letters/preview", map[string]any{
		"letterType": "job",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if code := decodeError(t, resp); code != "validation_error" {
		t.Fatalf("expected validation_error, got %q", code)
	}
}

func TestLetterListAndGet(t *testing.T) {
	svc, _, _ := newTestService(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "letter body", nil
	}))
	router := newLetterRouter(svc, "user-1")

	first := postJSON(t, router, "/api/v1/letters/generate", map[string]string{"prompt": "first"})
	if first.Code != http.StatusOK {
		t.Fatalf("generate 1: expected 200, got %d", first.Code)
	}
	var created struct {
		LetterID string `json:"letterId"`
	}
	if err := json.NewDecoder(first.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	second := postJSON(t, router, "/api/v1/letters/generate", map[string]string{"prompt": "second"})
	if second.Code != http.StatusOK {
		t.Fatalf("generate 2: expected 200, got %d", second.Code)
	}

	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/letters", nil)
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", respList.Code)
	}
	var items []map[string]any
	if err := json.NewDecoder(respList.Body).Decode(&items); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 letters, got %d", len(items))
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/letters/"+created.LetterID, nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", respGet.Code)
	}

	reqMissing := httptest.NewRequest(http.MethodGet, "/api/v1/letters/no-such-letter", nil)
	respMissing := httptest.NewRecorder()
	router.ServeHTTP(respMissing, reqMissing)
	if respMissing.Code != http.StatusNotFound {
		t.Fatalf("get missing: expected 404, got %d", respMissing.Code)
	}
	if code := decodeError(t, respMissing); code != "not_found" {
		t.Fatalf("expected not_found, got %q", code)
	}
}

func TestLetterGetHidesForeignLetters(t *testing.T) {
	svc, _, _ := newTestService(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "letter body", nil
	}))

	ownerRouter := newLetterRouter(svc, "owner")
	created := postJSON(t, ownerRouter, "/api/v1/letters/generate", map[string]string{"prompt": "p"})
	if created.Code != http.StatusOK {
		t.Fatalf("generate: expected 200, got %d", created.Code)
	}
	var out struct {
		LetterID string `json:"letterId"`
	}
	if err := json.NewDecoder(created.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	otherRouter := newLetterRouter(svc, "intruder")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/letters/"+out.LetterID, nil)
	resp := httptest.NewRecorder()
	otherRouter.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign letter, got %d", resp.Code)
	}
}
