package results

import (
	"fmt"
	"time"
)

// Summary records when a process ran and what went wrong.
type Summary struct {
	// This is set to true when the process that produces
	// this result starts.
	Attempted bool `json:"attempted"`

	// Errors is a list of strings describing fatal errors
	// that stopped the process.
	Errors []string `json:"errors"`

	// Warnings describes problems that did not stop the process,
	// but that someone should look at before the output goes to
	// Workbench.
	Warnings []string `json:"warnings"`

	// StartedAt describes when the process started.
	// If StartedAt.IsZero(), it has not started.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt describes when the process completed. Note that
	// it may have completed without succeeding. Check the
	// Succeeded() method to see if it actually completed
	// successfully.
	FinishedAt time.Time `json:"finished_at"`
}

func NewSummary() Summary {
	return Summary{
		Attempted:  false,
		Errors:     make([]string, 0),
		Warnings:   make([]string, 0),
		StartedAt:  time.Time{},
		FinishedAt: time.Time{},
	}
}

func (summary *Summary) Start() {
	summary.Attempted = true
	summary.StartedAt = time.Now().UTC()
}

func (summary *Summary) Started() bool {
	return !summary.StartedAt.IsZero()
}

func (summary *Summary) Finish() {
	summary.FinishedAt = time.Now().UTC()
}

func (summary *Summary) Finished() bool {
	return !summary.FinishedAt.IsZero()
}

func (summary *Summary) RunTime() time.Duration {
	startTime := summary.StartedAt
	if startTime.IsZero() {
		return time.Duration(0)
	}
	endTime := summary.FinishedAt
	if endTime.IsZero() {
		endTime = time.Now().UTC()
	}
	return endTime.Sub(startTime)
}

func (summary *Summary) Succeeded() bool {
	return summary.Finished() && len(summary.Errors) == 0
}

func (summary *Summary) HasErrors() bool {
	return len(summary.Errors) > 0
}

func (summary *Summary) AddError(format string, a ...interface{}) {
	summary.Errors = append(summary.Errors, fmt.Sprintf(format, a...))
}

func (summary *Summary) AddWarning(format string, a ...interface{}) {
	summary.Warnings = append(summary.Warnings, fmt.Sprintf(format, a...))
}

// AllErrorsAsString returns all errors, one per line.
func (summary *Summary) AllErrorsAsString() string {
	if len(summary.Errors) == 0 {
		return ""
	}
	str := ""
	for _, message := range summary.Errors {
		str += message + "\n"
	}
	return str
}
