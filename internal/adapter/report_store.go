package adapter

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

// ReportStore persists structured run reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.RunReport) error
	LoadReport(path m.Path) (m.RunReport, error)
}

type yamlReportStore struct {
	fs afero.Fs
}

// NewReportStore returns a ReportStore writing YAML to the OS filesystem.
func NewReportStore() ReportStore {
	return NewReportStoreFs(afero.NewOsFs())
}

// NewReportStoreFs returns a ReportStore writing YAML to fs.
func NewReportStoreFs(fs afero.Fs) ReportStore {
	return &yamlReportStore{fs: fs}
}

func (s *yamlReportStore) SaveReport(path m.Path, report m.RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := afero.WriteFile(s.fs, string(path), data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (s *yamlReportStore) LoadReport(path m.Path) (m.RunReport, error) {
	var report m.RunReport

	data, err := afero.ReadFile(s.fs, string(path))
	if err != nil {
		return report, fmt.Errorf("read report %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("unmarshal report %s: %w", path, err)
	}

	return report, nil
}
