package installer

// Outcome is what happened to a single list entry.
type Outcome string

const (
	OutcomeInstalled        Outcome = "installed"
	OutcomeInstalledCask    Outcome = "installed-cask"
	OutcomeAlreadyInstalled Outcome = "already-installed"
	OutcomeWouldInstall     Outcome = "would-install"
	OutcomeFailed           Outcome = "failed"
	OutcomeNotAttempted     Outcome = "not-attempted"
)

// SkipReason explains why a whole category was skipped.
type SkipReason string

const (
	SkipNone           SkipReason = ""
	SkipMissingList    SkipReason = "missing-list"
	SkipUnreadableList SkipReason = "unreadable-list"
	SkipMissingCommand SkipReason = "missing-command"
)

// ItemResult records one entry.
type ItemResult struct {
	Name    string  `yaml:"name"`
	Outcome Outcome `yaml:"outcome"`
	Error   string  `yaml:"error,omitempty"`
}

// CategoryReport records one pass.
type CategoryReport struct {
	Category string       `yaml:"category"`
	Title    string       `yaml:"title"`
	ListPath string       `yaml:"list"`
	Command  string       `yaml:"command,omitempty"`
	Skipped  SkipReason   `yaml:"skipped,omitempty"`
	Items    []ItemResult `yaml:"items,omitempty"`
}

// Count returns how many entries ended with outcome.
func (c CategoryReport) Count(outcome Outcome) int {
	n := 0
	for _, item := range c.Items {
		if item.Outcome == outcome {
			n++
		}
	}
	return n
}

// Report is the result of an install run.
type Report struct {
	DryRun     bool             `yaml:"dry_run"`
	Canceled   bool             `yaml:"canceled,omitempty"`
	Categories []CategoryReport `yaml:"categories"`
}

// Count returns how many entries across all categories ended with outcome.
func (r *Report) Count(outcome Outcome) int {
	n := 0
	for _, c := range r.Categories {
		n += c.Count(outcome)
	}
	return n
}

// Failed counts failed entries.
func (r *Report) Failed() int {
	return r.Count(OutcomeFailed)
}

// Skipped counts skipped categories.
func (r *Report) Skipped() int {
	n := 0
	for _, c := range r.Categories {
		if c.Skipped != SkipNone {
			n++
		}
	}
	return n
}

// Clean reports whether every category ran and no entry failed.
func (r *Report) Clean() bool {
	return r.Failed() == 0 && r.Skipped() == 0 && !r.Canceled
}

// Category returns the report for a category name.
func (r *Report) Category(name string) (CategoryReport, bool) {
	for _, c := range r.Categories {
		if c.Category == name {
			return c, true
		}
	}
	return CategoryReport{}, false
}
