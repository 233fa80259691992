package documents

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"letter-backend/internal/extract"
	"letter-backend/internal/shared/storage/object"
	"letter-backend/internal/shared/telemetry"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  DocumentsRepo
}

// Upload saves the file to object storage, records the document, and
// extracts its text. Extraction failures are logged, not returned; the
// document stays usable by storage key.
func (s *Service) Upload(ctx context.Context, userId, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userId, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     userId,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	s.extractText(ctx, &doc)
	return doc, nil
}

// CreateFromS3 records a document already uploaded out-of-band via a
// presigned URL.
func (s *Service) CreateFromS3(ctx context.Context, userId, s3Key, originalFileName, contentType string, sizeBytes int64) (Document, error) {
	if s3Key == "" || originalFileName == "" {
		return Document{}, ErrInvalidInput
	}

	doc := Document{
		ID:               uuid.NewString(),
		UserID:           userId,
		FileName:         originalFileName,
		OriginalFilename: originalFileName,
		MimeType:         contentType,
		ContentType:      contentType,
		SizeBytes:        sizeBytes,
		StorageProvider:  "s3",
		StorageKey:       s3Key,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	s.extractText(ctx, &doc)
	return doc, nil
}

// extractText derives the text object and records its key, best effort.
func (s *Service) extractText(ctx context.Context, doc *Document) {
	if _, err := extract.ExtractText(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName); err != nil {
		telemetry.Error("document text extraction failed", map[string]any{
			"document_id": doc.ID,
			"error":       err.Error(),
		})
		return
	}
	extractedKey := doc.StorageKey + ".extracted.txt"
	extractedAt := time.Now().UTC()
	if err := s.Repo.UpdateExtraction(ctx, doc.UserID, doc.ID, extractedKey, extractedAt); err != nil {
		telemetry.Error("document extraction update failed", map[string]any{
			"document_id": doc.ID,
			"error":       err.Error(),
		})
		return
	}
	doc.ExtractedTextKey = extractedKey
	doc.ExtractedAt = &extractedAt
}

// Current returns the current document for a user.
func (s *Service) Current(ctx context.Context, userId string) (Document, error) {
	if userId == "" {
		return Document{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByUser(ctx, userId)
}

// List returns documents for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Document, error) {
	if userId == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}
