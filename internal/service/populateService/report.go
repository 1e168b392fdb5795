package populateService

import (
	"fmt"
	"strings"
)

type Status string

const (
	// StatusCreated marks an item this run wrote.
	StatusCreated Status = "created"
	// StatusEnsured marks an item confirmed through a login-or-create call,
	// which does not reveal whether the record already existed.
	StatusEnsured Status = "ensured"
	// StatusSkipped marks an item that already existed.
	StatusSkipped Status = "skipped"
	// StatusFailed marks an item dropped with a reason. Failures never abort
	// the run.
	StatusFailed Status = "failed"
)

type Outcome struct {
	Item   string
	Status Status
	Reason string
}

// Report aggregates per-item outcomes for every pipeline stage, so a run
// leaves an inspectable record instead of only log lines.
type Report struct {
	Users        []Outcome
	Authors      []Outcome
	Books        []Outcome
	Reviews      []Outcome
	Reservations []Outcome
}

func NewReport() *Report {
	return &Report{}
}

func (r *Report) Failures() []Outcome {
	var failures []Outcome
	for _, stage := range [][]Outcome{r.Users, r.Authors, r.Books, r.Reviews, r.Reservations} {
		for _, o := range stage {
			if o.Status == StatusFailed {
				failures = append(failures, o)
			}
		}
	}
	return failures
}

// Summary renders a per-stage outcome tally.
func (r *Report) Summary() string {
	var sb strings.Builder
	stages := []struct {
		name     string
		outcomes []Outcome
	}{
		{"users", r.Users},
		{"authors", r.Authors},
		{"books", r.Books},
		{"reviews", r.Reviews},
		{"reservations", r.Reservations},
	}

	for _, stage := range stages {
		counts := map[Status]int{}
		for _, o := range stage.outcomes {
			counts[o.Status]++
		}
		sb.WriteString(fmt.Sprintf(
			"%s: %d created, %d ensured, %d skipped, %d failed\n",
			stage.name,
			counts[StatusCreated],
			counts[StatusEnsured],
			counts[StatusSkipped],
			counts[StatusFailed],
		))
	}

	for _, f := range r.Failures() {
		sb.WriteString(fmt.Sprintf("  failed: %s (%s)\n", f.Item, f.Reason))
	}
	return sb.String()
}
