package application

import (
	"fmt"

	"github.com/patternlens/patternlens/internal/domain"
)

// ScanService orchestrates the scan pipeline:
// load config → walk project → persist artifact.
type ScanService struct {
	scanner      domain.ProjectScanner
	store        domain.ReportStore
	configLoader domain.ConfigLoader
}

func NewScanService(
	scanner domain.ProjectScanner,
	store domain.ReportStore,
	configLoader domain.ConfigLoader,
) *ScanService {
	return &ScanService{
		scanner:      scanner,
		store:        store,
		configLoader: configLoader,
	}
}

// ScanProject scans projectPath and writes the pattern artifact to
// outputPath. The report is returned for summary rendering; an empty project
// yields an empty-but-valid report, not an error.
func (s *ScanService) ScanProject(projectPath, outputPath string) (*domain.PatternReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	report, err := s.scanner.Scan(projectPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	if err := s.store.Save(outputPath, report); err != nil {
		return nil, fmt.Errorf("writing artifact: %w", err)
	}

	return report, nil
}
