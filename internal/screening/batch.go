package screening

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillsift/skillsift/internal/ai"
	"github.com/skillsift/skillsift/internal/resume"
	"github.com/skillsift/skillsift/internal/skills"

	"go.uber.org/zap"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Result is the outcome of processing a single resume file.
type Result struct {
	Filename    string     `json:"filename"`
	Status      Status     `json:"status"`
	Error       string     `json:"error,omitempty"`
	TextLength  int        `json:"text_length,omitempty"`
	Skills      skills.Set `json:"skills,omitempty"`
	TotalSkills int        `json:"total_skills"`
}

// Runner processes every supported resume in a directory, one file at a time.
type Runner struct {
	extractor *ai.Extractor
	logger    *zap.Logger
}

func NewRunner(extractor *ai.Extractor, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{extractor: extractor, logger: logger}
}

// ProcessDirectory runs extraction and categorization over the immediate
// children of dir that carry a supported extension, in listing order. A file
// that fails extraction is marked failed and the model is never called for it;
// the batch always completes. A missing directory yields an empty result set
// and the error, which callers report without aborting.
func (r *Runner) ProcessDirectory(ctx context.Context, dir string) ([]*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing resume directory: %w", err)
	}

	results := make([]*Result, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !resume.Supported(entry.Name()) {
			continue
		}

		result := r.processFile(ctx, filepath.Join(dir, entry.Name()))
		results = append(results, result)

		r.logger.Info("processed resume",
			zap.String("filename", result.Filename),
			zap.String("status", string(result.Status)),
			zap.Int("skills", result.TotalSkills),
		)
	}

	return results, nil
}

func (r *Runner) processFile(ctx context.Context, path string) *Result {
	filename := filepath.Base(path)

	text, err := resume.Parse(path)
	if err != nil {
		r.logger.Warn("resume extraction failed",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return &Result{
			Filename: filename,
			Status:   StatusFailed,
			Error:    err.Error(),
		}
	}

	extracted := r.extractor.Extract(ctx, text)

	return &Result{
		Filename:    filename,
		Status:      StatusSuccess,
		TextLength:  len(text),
		Skills:      extracted,
		TotalSkills: extracted.Total(),
	}
}

// Summary aggregates statistics over a finished batch.
type Summary struct {
	TotalResumes      int        `json:"total_resumes"`
	Successful        int        `json:"successful"`
	Failed            int        `json:"failed"`
	UniqueSkills      skills.Set `json:"unique_skills"`
	TotalUniqueSkills int        `json:"total_unique_skills"`
}

// Summarize builds the deduplicated, alphabetically sorted union of skills
// across all successful results plus success/failure counts.
func Summarize(results []*Result) *Summary {
	sets := make([]skills.Set, 0, len(results))
	successful := 0
	for _, result := range results {
		if result.Status != StatusSuccess {
			continue
		}
		successful++
		sets = append(sets, result.Skills)
	}

	union := skills.Union(sets...)

	return &Summary{
		TotalResumes:      len(results),
		Successful:        successful,
		Failed:            len(results) - successful,
		UniqueSkills:      union,
		TotalUniqueSkills: union.Total(),
	}
}
