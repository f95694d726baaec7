package adapter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "regmut.dev/pkg/regmut/internal/model"
)

// ReportFileVersion is written into every saved report file.
const ReportFileVersion = 1

// ReportStore persists and retrieves mutation reports.
type ReportStore interface {
	SaveReports(path string, file m.ReportFile) error
	LoadReports(path string) (m.ReportFile, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore that writes YAML documents.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveReports(path string, file m.ReportFile) error {
	if file.Version == 0 {
		file.Version = ReportFileVersion
	}

	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(file); err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	return nil
}

func (rs *reportStore) LoadReports(path string) (m.ReportFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return m.ReportFile{}, fmt.Errorf("read reports: %w", err)
	}

	var file m.ReportFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return m.ReportFile{}, fmt.Errorf("decode reports %s: %w", path, err)
	}

	if file.Version > ReportFileVersion {
		return m.ReportFile{}, fmt.Errorf("report file %s has version %d, newest supported is %d", path, file.Version, ReportFileVersion)
	}

	return file, nil
}
