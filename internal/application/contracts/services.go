package contracts

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/icislabs/contract-workbench/internal/application"
	"github.com/icislabs/contract-workbench/internal/domain/analysis"
	"github.com/icislabs/contract-workbench/internal/domain/drafts"
	"github.com/icislabs/contract-workbench/internal/domain/extract"
)

// sampleContract is returned through analysis when the client sends no text,
// so an empty workbench still demonstrates the rule catalog.
const sampleContract = "3. Payment Terms\nPayment is due promptly. Retention later.\n\n" +
	"7. Limitation of Liability\nLiability shall be unlimited in all cases.\n"

// Service implements the contract-workbench use cases. It is stateless apart
// from its collaborators and safe for concurrent use.
type Service struct {
	Repo      drafts.Repository
	Extractor extract.Extractor
	Artifacts extract.ArtifactStore // optional; nil disables source archiving
	Clock     application.Clock
}

// Analyze runs the rule catalog over raw text. Empty input falls back to the
// built-in sample contract.
func (s *Service) Analyze(text string) analysis.Result {
	if strings.TrimSpace(text) == "" {
		text = sampleContract
	}
	return analysis.AnalyzeText(text)
}

// AnalyzeFileResult bundles the extracted text with its analysis.
type AnalyzeFileResult struct {
	ExtractedText string          `json:"extracted_text"`
	ArtifactURL   string          `json:"artifact_url,omitempty"`
	Analysis      analysis.Result `json:"analysis"`
}

// AnalyzeFile extracts text from an uploaded document, analyzes it, and
// archives the source document when an artifact store is configured.
// Extraction failures are returned as errors, never as an empty analysis.
func (s *Service) AnalyzeFile(ctx context.Context, path, originalName, lang string) (AnalyzeFileResult, error) {
	text, err := s.Extractor.Extract(ctx, path, lang)
	if err != nil {
		return AnalyzeFileResult{}, fmt.Errorf("extracting %s: %w", originalName, err)
	}

	out := AnalyzeFileResult{
		ExtractedText: text,
		Analysis:      analysis.AnalyzeText(text),
	}

	if s.Artifacts != nil {
		key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(originalName)))
		url, err := s.Artifacts.Upload(ctx, path, key)
		if err != nil {
			// Archiving is best-effort; the analysis already succeeded.
			log.Printf("artifact upload failed for %s: %v", originalName, err)
		} else {
			out.ArtifactURL = url
		}
	}
	return out, nil
}

// SynthesizeDraft renders the addendum for the accepted issues.
func (s *Service) SynthesizeDraft(baseText string, issues []analysis.Issue, author string) string {
	if strings.TrimSpace(author) == "" {
		author = "ICIS"
	}
	return analysis.SynthesizeAddendum(baseText, issues, author)
}

// SaveDraft persists an addendum. The store assigns the id; a missing title
// gets a timestamped default.
func (s *Service) SaveDraft(ctx context.Context, title, content string, issues []analysis.Issue) (*drafts.Draft, error) {
	now := s.Clock.Now()
	if strings.TrimSpace(title) == "" {
		title = fmt.Sprintf("Draft v%d", now.Unix())
	}
	if issues == nil {
		issues = []analysis.Issue{}
	}
	d := &drafts.Draft{
		Title:     title,
		Content:   content,
		Issues:    issues,
		CreatedAt: now,
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("saving draft: %w", err)
	}
	return d, nil
}

// ListDrafts returns saved drafts newest-first.
func (s *Service) ListDrafts(ctx context.Context, limit int) ([]*drafts.Draft, error) {
	return s.Repo.List(ctx, limit)
}

// GetDraft fetches one draft by id.
func (s *Service) GetDraft(ctx context.Context, id int64) (*drafts.Draft, error) {
	return s.Repo.Get(ctx, id)
}
