package screening

import (
	"encoding/json"
	"os"
	"time"
)

// Report is the persisted JSON document of one batch run.
type Report struct {
	Timestamp         string    `json:"timestamp"`
	Summary           *Summary  `json:"summary"`
	IndividualResults []*Result `json:"individual_results"`
}

func NewReport(results []*Result) *Report {
	return &Report{
		Timestamp:         time.Now().Format(time.RFC3339),
		Summary:           Summarize(results),
		IndividualResults: results,
	}
}

// Save writes the report as indented JSON.
func (r *Report) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
