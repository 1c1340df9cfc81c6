package config

import (
	"fmt"
	"os"
	"path/filepath"

	"shopcli/pkg/contracts/domain"
)

// PathsConfig is the single source of truth for all file paths. Relative
// directories are resolved against BaseDir, which defaults to the current
// working directory.
//
// Layout:
//
//	base/
//	  ├── ecommerce_data/   (source CSV datasets)
//	  ├── reports/          (generated CSV/Excel reports)
//	  └── logs/             (application logs)
type PathsConfig struct {
	BaseDir    string `yaml:"base_dir" envconfig:"BASE_DIR"`
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// resolve anchors every relative directory at BaseDir.
func (p *PathsConfig) resolve() error {
	if p.BaseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		p.BaseDir = wd
	}
	if p.DataDir == "" {
		p.DataDir = "ecommerce_data"
	}
	if p.ReportsDir == "" {
		p.ReportsDir = "reports"
	}
	if p.LogsDir == "" {
		p.LogsDir = "logs"
	}
	if !filepath.IsAbs(p.DataDir) {
		p.DataDir = filepath.Join(p.BaseDir, p.DataDir)
	}
	if !filepath.IsAbs(p.ReportsDir) {
		p.ReportsDir = filepath.Join(p.BaseDir, p.ReportsDir)
	}
	if !filepath.IsAbs(p.LogsDir) {
		p.LogsDir = filepath.Join(p.BaseDir, p.LogsDir)
	}
	return nil
}

// DatasetPath returns the CSV file path for a dataset name, or an error for
// names outside the fixed five-dataset set.
func (p *PathsConfig) DatasetPath(name string) (string, error) {
	file, ok := domain.DatasetFiles()[name]
	if !ok {
		return "", fmt.Errorf("unknown dataset %q", name)
	}
	return filepath.Join(p.DataDir, file), nil
}

// LogPath returns the path for a log file inside the logs directory.
func (p *PathsConfig) LogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// EnsureDirectories creates the reports and logs directories if needed. The
// data directory is the caller's input and is never created implicitly.
func (p *PathsConfig) EnsureDirectories() error {
	for _, dir := range []string{p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
