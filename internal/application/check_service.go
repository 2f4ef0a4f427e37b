package application

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/patternlens/patternlens/internal/domain"
	"github.com/patternlens/patternlens/internal/domain/compliance"
)

// CheckService orchestrates the compliance pipeline:
// load artifact → read candidate → run checker → record history.
type CheckService struct {
	store        domain.ReportStore
	configLoader domain.ConfigLoader
	history      domain.CheckHistory
	git          domain.GitInfo
}

func NewCheckService(
	store domain.ReportStore,
	configLoader domain.ConfigLoader,
	history domain.CheckHistory,
	git domain.GitInfo,
) *CheckService {
	return &CheckService{
		store:        store,
		configLoader: configLoader,
		history:      history,
		git:          git,
	}
}

// CheckFile compares one candidate component file against the pattern
// artifact at patternsPath. A missing candidate or artifact is fatal; no
// partial result is returned.
func (s *CheckService) CheckFile(patternsPath, componentPath string) (*domain.ComplianceResult, error) {
	report, err := s.store.Load(patternsPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(componentPath)
	if err != nil {
		return nil, &domain.PathError{Path: componentPath, Err: err}
	}

	projectDir := filepath.Dir(componentPath)
	cfg, err := s.configLoader.Load(projectDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	checker := compliance.NewChecker(cfg.EffectiveWeights())
	result := checker.Check(report, string(data), componentPath)

	// Best-effort history entry; failures never affect the result.
	entry := domain.CheckEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		File:      componentPath,
		Score:     result.Score,
		Grade:     domain.GradeFor(result.Score),
	}
	if hash, err := s.git.CommitHash(projectDir); err == nil {
		entry.CommitHash = hash
	}
	_ = s.history.Save(projectDir, entry)

	return result, nil
}
