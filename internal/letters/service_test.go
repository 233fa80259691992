package letters_test

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"letter-backend/internal/credits"
	"letter-backend/internal/documents"
	"letter-backend/internal/letters"
	"letter-backend/internal/llm"
)

type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func newTestService(llmClient letters.Completer) (*letters.Service, *letters.MemoryRepo, *credits.Service) {
	repo := letters.NewMemoryRepo()
	creditSvc := credits.NewService()
	svc := &letters.Service{
		Repo:    repo,
		Credits: creditSvc,
		LLM:     llmClient,
		Builder: &letters.Builder{
			Bucket: "letters-uploads",
			Region: "us-east-1",
			Rand:   rand.New(rand.NewSource(1)),
		},
	}
	return svc, repo, creditSvc
}

func TestGenerateDebitsCreditAndPersists(t *testing.T) {
	ctx := context.Background()
	svc, repo, creditSvc := newTestService(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "Dear Committee, it is my pleasure to recommend Maya Ortiz.", nil
	}))

	letter, err := svc.Generate(ctx, "user-1", "Write a scholarship recommendation letter.")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if letter.ID == "" {
		t.Fatalf("expected letter ID")
	}
	if !strings.Contains(letter.Content, "Maya Ortiz") {
		t.Fatalf("unexpected content: %q", letter.Content)
	}

	account, err := creditSvc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get account: %v", err)
	}
	if account.Credits != 2 {
		t.Fatalf("expected 2 credits after one generation, got %d", account.Credits)
	}

	stored, err := repo.ListByUser(ctx, "user-1", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != letter.ID {
		t.Fatalf("expected one persisted letter, got %v", stored)
	}
}

func TestGenerateRejectsUnentitledUser(t *testing.T) {
	ctx := context.Background()
	llmCalled := false
	svc, repo, creditSvc := newTestService(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		llmCalled = true
		return "should not run", nil
	}))

	// Burn the starting balance, then flag the subscription as past due.
	if _, err := creditSvc.Debit(ctx, "user-1", 3); err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if _, err := creditSvc.SetSubscriptionStatus(ctx, "user-1", credits.StatusPastDue); err != nil {
		t.Fatalf("SetSubscriptionStatus: %v", err)
	}

	_, err := svc.Generate(ctx, "user-1", "prompt")
	if !errors.Is(err, letters.ErrPaymentRequired) {
		t.Fatalf("expected ErrPaymentRequired, got %v", err)
	}
	if llmCalled {
		t.Fatalf("provider must not be called for unentitled users")
	}

	account, err := creditSvc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get account: %v", err)
	}
	if account.Credits != 0 {
		t.Fatalf("expected balance unchanged at 0, got %d", account.Credits)
	}

	stored, err := repo.ListByUser(ctx, "user-1", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no persisted letters, got %v", stored)
	}
}

func TestGenerateSubscriberIsDebitedBelowZero(t *testing.T) {
	ctx := context.Background()
	svc, _, creditSvc := newTestService(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "letter text", nil
	}))

	if _, err := creditSvc.Debit(ctx, "user-1", 3); err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if _, err := creditSvc.SetSubscriptionStatus(ctx, "user-1", credits.StatusActive); err != nil {
		t.Fatalf("SetSubscriptionStatus: %v", err)
	}

	if _, err := svc.Generate(ctx, "user-1", "prompt"); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	account, err := creditSvc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get account: %v", err)
	}
	if account.Credits != -1 {
		t.Fatalf("expected balance of -1 for a subscriber, got %d", account.Credits)
	}
}

func TestGenerateDoesNotRefundOnUpstreamFailure(t *testing.T) {
	ctx := context.Background()
	svc, repo, creditSvc := newTestService(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("connection reset")
	}))

	_, err := svc.Generate(ctx, "user-1", "prompt")
	if !errors.Is(err, letters.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	account, err := creditSvc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get account: %v", err)
	}
	if account.Credits != 2 {
		t.Fatalf("expected debit to stand after provider failure, got %d credits", account.Credits)
	}

	stored, err := repo.ListByUser(ctx, "user-1", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no persisted letters, got %v", stored)
	}
}

func TestGenerateSurfacesNotConfigured(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(llm.PlaceholderClient{})

	_, err := svc.Generate(ctx, "user-1", "prompt")
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGenerateNotConfiguredLeavesCreditsUntouched(t *testing.T) {
	ctx := context.Background()
	svc, repo, creditSvc := newTestService(llm.PlaceholderClient{})

	_, err := svc.Generate(ctx, "user-1", "prompt")
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	account, err := creditSvc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get account: %v", err)
	}
	if account.Credits != 3 {
		t.Fatalf("config failure must not debit: expected 3 credits, got %d", account.Credits)
	}

	stored, err := repo.ListByUser(ctx, "user-1", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no persisted letters, got %v", stored)
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "text", nil
	}))

	if _, err := svc.Generate(ctx, "", "prompt"); !errors.Is(err, letters.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.Generate(ctx, "user-1", "   "); !errors.Is(err, letters.ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
}

func TestPreparePromptResolvesDocumentKey(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(llm.PlaceholderClient{})

	docRepo := documents.NewMemoryRepo()
	svc.DocRepo = docRepo
	if err := docRepo.Create(ctx, documents.Document{
		ID:         "doc-1",
		UserID:     "user-1",
		FileName:   "resume.pdf",
		StorageKey: "uploads/user-1/resume.pdf",
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		t.Fatalf("Create document: %v", err)
	}

	req := letters.LetterRequest{
		LetterType:         letters.TypeJob,
		ApplicantFirstName: "Maya",
		ApplicantLastName:  "Ortiz",
	}
	prompt, err := svc.PreparePrompt(ctx, "user-1", req, "doc-1")
	if err != nil {
		t.Fatalf("PreparePrompt: %v", err)
	}
	want := "Supporting document: https://letters-uploads.s3.us-east-1.amazonaws.com/uploads/user-1/resume.pdf"
	if !strings.Contains(prompt, want) {
		t.Fatalf("expected %q in prompt %q", want, prompt)
	}
}

func TestPreparePromptUnknownDocument(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(llm.PlaceholderClient{})
	svc.DocRepo = documents.NewMemoryRepo()

	req := letters.LetterRequest{
		LetterType:         letters.TypeJob,
		ApplicantFirstName: "Maya",
		ApplicantLastName:  "Ortiz",
	}
	if _, err := svc.PreparePrompt(ctx, "user-1", req, "missing-doc"); !errors.Is(err, letters.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
