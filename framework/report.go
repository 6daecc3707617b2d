package framework

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// RunReport is a machine-readable summary of one harness run, suitable for
// archiving as a build artifact or uploading to a results collector.
type RunReport struct {
	RunID     string       `json:"runId"`
	StartTime string       `json:"startTime"`
	Tests     []TestReport `json:"tests"`
	Failures  int          `json:"failures"`
}

// TestReport describes the outcome of a single test. DurationMS is absent
// for skipped tests, which never executed.
type TestReport struct {
	Name       string              `json:"name"`
	Failed     bool                `json:"failed,omitempty"`
	Skipped    bool                `json:"skipped,omitempty"`
	DurationMS ldvalue.OptionalInt `json:"durationMs,omitempty"`
	Errors     []string            `json:"errors,omitempty"`
}

// MakeRunReport converts accumulated results into a report with a unique
// run ID. Group nodes (the suite level and the root) are omitted; only
// individual tests appear.
func MakeRunReport(startTime time.Time, results Results) RunReport {
	report := RunReport{
		RunID:     uuid.NewString(),
		StartTime: startTime.Format(time.RFC3339),
		Failures:  len(results.Failures),
	}
	for _, t := range results.Tests {
		if !t.IsTest() {
			continue
		}
		tr := TestReport{
			Name:    t.TestID.String(),
			Failed:  len(t.Errors) > 0,
			Skipped: t.Skipped,
		}
		if !t.Skipped {
			tr.DurationMS = ldvalue.NewOptionalInt(int(t.Duration.Milliseconds()))
		}
		for _, err := range t.Errors {
			tr.Errors = append(tr.Errors, err.Error())
		}
		report.Tests = append(report.Tests, tr)
	}
	return report
}

// WriteFile writes the report to a file as indented JSON.
func (r RunReport) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PostReport uploads the report as JSON to a results collector, such as a
// CI aggregation service.
func PostReport(url string, report RunReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Post(url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	if resp.Body != nil {
		_ = resp.Body.Close()
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("report upload returned HTTP status %d", resp.StatusCode)
	}
	return nil
}
