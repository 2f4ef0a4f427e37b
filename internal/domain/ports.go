package domain

// ProjectScanner walks a project tree and extracts its design patterns.
type ProjectScanner interface {
	Scan(projectPath string, cfg ProjectConfig) (*PatternReport, error)
}

// ReportStore persists and retrieves pattern report artifacts.
type ReportStore interface {
	Save(path string, report *PatternReport) error
	Load(path string) (*PatternReport, error)
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// GitInfo provides repository metadata for a project path.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// CheckHistory records compliance check results over time.
type CheckHistory interface {
	Save(projectPath string, entry CheckEntry) error
	Load(projectPath string) ([]CheckEntry, error)
}
