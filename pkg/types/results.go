package types

// TargetStatus describes what happened to one candidate file.
type TargetStatus string

const (
	// TargetAppended means the line was written to the file.
	TargetAppended TargetStatus = "appended"
	// TargetDryRun means the file was read and the new content built, but not written.
	TargetDryRun TargetStatus = "dry-run"
	// TargetSkipped means the file did not exist in apply-to-all mode.
	TargetSkipped TargetStatus = "skipped"
)

// TargetResult is the outcome for a single rc file.
type TargetResult struct {
	Path   string       `json:"path"`
	Status TargetStatus `json:"status"`
	// Bytes is the size of the content that was (or would have been) written.
	Bytes int `json:"bytes"`
}

// AppendLineResult holds the result of one srap run.
type AppendLineResult struct {
	Line    string         `json:"line"`
	DryRun  bool           `json:"dryRun"`
	Targets []TargetResult `json:"targets"`
}

// Count returns how many targets ended with the given status.
func (r *AppendLineResult) Count(status TargetStatus) int {
	n := 0
	for _, t := range r.Targets {
		if t.Status == status {
			n++
		}
	}
	return n
}
