package letters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"letter-backend/internal/credits"
	"letter-backend/internal/documents"
	"letter-backend/internal/llm"
	"letter-backend/internal/shared/storage/object"
)

// Service contains business logic for letter generation.
type Service struct {
	Repo    Repo
	Credits *credits.Service
	LLM     Completer
	Builder *Builder
	DocRepo documents.DocumentsRepo
	Store   object.ObjectStore
}

// Completer is the completion provider contract the service depends on.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generate runs the credit-gated generation flow: validate the caller
// and prompt, verify a provider is configured, check entitlement, debit
// one credit, call the provider, and persist the result. The configured
// check precedes the debit so a misconfiguration never costs a credit;
// the debit itself is not refunded if the provider call fails.
func (s *Service) Generate(ctx context.Context, userID, prompt string) (GeneratedLetter, error) {
	if userID == "" {
		return GeneratedLetter{}, ErrUnauthenticated
	}
	if strings.TrimSpace(prompt) == "" {
		return GeneratedLetter{}, ErrEmptyPrompt
	}
	if s.Repo == nil || s.Credits == nil || s.LLM == nil {
		return GeneratedLetter{}, errors.New("missing dependencies")
	}
	if _, unconfigured := s.LLM.(llm.PlaceholderClient); unconfigured {
		return GeneratedLetter{}, llm.ErrNotConfigured
	}

	entitled, _, err := s.Credits.Entitled(ctx, userID)
	if err != nil {
		return GeneratedLetter{}, err
	}
	if !entitled {
		return GeneratedLetter{}, ErrPaymentRequired
	}

	if _, err := s.Credits.Debit(ctx, userID, 1); err != nil {
		return GeneratedLetter{}, err
	}

	text, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return GeneratedLetter{}, err
		}
		return GeneratedLetter{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	letter := GeneratedLetter{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, letter); err != nil {
		return GeneratedLetter{}, err
	}
	return letter, nil
}

// PreparePrompt builds the prompt server-side from wizard fields,
// resolving the optional supporting document to its extracted text or
// storage key.
func (s *Service) PreparePrompt(ctx context.Context, userID string, req LetterRequest, documentID string) (string, error) {
	if userID == "" {
		return "", ErrUnauthenticated
	}
	if s.Builder == nil {
		return "", errors.New("missing dependencies")
	}

	var docText, docKey string
	if documentID != "" {
		if s.DocRepo == nil {
			return "", errors.New("missing dependencies")
		}
		doc, err := s.DocRepo.GetByID(ctx, userID, documentID)
		if err != nil {
			if errors.Is(err, documents.ErrNotFound) {
				return "", ErrNotFound
			}
			return "", err
		}
		docText, docKey = s.resolveDocument(ctx, doc)
	}

	return s.Builder.Build(req, docText, docKey)
}

// resolveDocument prefers extracted text over the raw storage key.
// Extraction failures degrade to the key reference.
func (s *Service) resolveDocument(ctx context.Context, doc documents.Document) (docText, docKey string) {
	if doc.ExtractedTextKey != "" && s.Store != nil {
		reader, err := s.Store.Open(ctx, doc.ExtractedTextKey)
		if err == nil {
			defer reader.Close()
			if raw, err := io.ReadAll(reader); err == nil && len(raw) > 0 {
				return string(raw), ""
			}
		}
	}
	return "", doc.StorageKey
}

// Get returns a letter by ID for a user.
func (s *Service) Get(ctx context.Context, userID, letterID string) (GeneratedLetter, error) {
	if userID == "" {
		return GeneratedLetter{}, ErrUnauthenticated
	}
	if letterID == "" {
		return GeneratedLetter{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userID, letterID)
}

// List returns letters for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]GeneratedLetter, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
