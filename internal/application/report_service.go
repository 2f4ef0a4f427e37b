package application

import (
	"fmt"
	"os"

	"github.com/patternlens/patternlens/internal/domain"
	"github.com/patternlens/patternlens/internal/domain/report"
)

// ReportService turns a persisted pattern artifact into a Markdown document.
type ReportService struct {
	store domain.ReportStore
}

func NewReportService(store domain.ReportStore) *ReportService {
	return &ReportService{store: store}
}

// GenerateMarkdown loads the artifact at analysisPath, renders it, and
// writes the document to outputPath. The rendered text is returned as well.
func (s *ReportService) GenerateMarkdown(analysisPath, outputPath string) (string, error) {
	patterns, err := s.store.Load(analysisPath)
	if err != nil {
		return "", err
	}

	md := report.Markdown(patterns)

	if err := os.WriteFile(outputPath, []byte(md), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return md, nil
}
