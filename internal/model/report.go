package model

import "time"

// StageStats summarizes one reduction stage.
type StageStats struct {
	Name    string        `yaml:"name"`
	Input   int           `yaml:"input"`   // records entering the stage
	Grouped int           `yaml:"grouped"` // records in emitted groups
	Groups  int           `yaml:"groups"`
	Elapsed time.Duration `yaml:"elapsed"`
}

// MergeStats summarizes the relink phase.
type MergeStats struct {
	Groups         int   `yaml:"groups"`
	Relinked       int   `yaml:"relinked"`
	AlreadyLinked  int   `yaml:"already_linked"`
	ReclaimedBytes int64 `yaml:"reclaimed_bytes"`
}

// ReportGroup is the serialized form of a confirmed duplicate group.
type ReportGroup struct {
	Origin  Path      `yaml:"origin"`
	ModTime time.Time `yaml:"mtime"`
	Size    int64     `yaml:"size"`
	Members []Path    `yaml:"members"`
}

// RunReport is the structured result of one deduplication run.
type RunReport struct {
	Roots     []Path        `yaml:"roots"`
	DryRun    bool          `yaml:"dry_run"`
	Merge     MergeStrategy `yaml:"merge"`
	Mtime     MtimePolicy   `yaml:"mtime"`
	Scanned   int           `yaml:"scanned"`
	Stages    []StageStats  `yaml:"stages"`
	Converged int           `yaml:"converged"`
	Groups    []ReportGroup `yaml:"groups"`
	Linking   MergeStats    `yaml:"linking"`
	StartedAt time.Time     `yaml:"started_at"`
	EndedAt   time.Time     `yaml:"ended_at"`
}

// DuplicateFiles counts the member paths across all confirmed groups.
func (r RunReport) DuplicateFiles() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Members)
	}

	return n
}
