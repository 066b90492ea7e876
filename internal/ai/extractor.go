package ai

import (
	"context"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/skillsift/skillsift/internal/logger"
	"github.com/skillsift/skillsift/internal/skills"

	"go.uber.org/zap"
)

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Extractor turns resume text into a categorized skill set via one model call.
type Extractor struct {
	generator Generator
	logger    *zap.Logger
	maxLogLen int
}

func NewExtractor(generator Generator, logger *zap.Logger, maxLogLength int) *Extractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Extract categorizes the skills found in the resume text. It never fails:
// a model call error, a response without a JSON object, or undecodable JSON
// all yield the empty six-category set. Failures are logged, not propagated.
func (e *Extractor) Extract(ctx context.Context, text string) skills.Set {
	prompt := buildPrompt(text)

	e.logger.Debug("skill extraction request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		e.logger.Warn("model call failed, returning empty skill set", zap.Error(err))
		return skills.NewSet()
	}

	e.logger.Debug("skill extraction response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
	)

	data, err := ExtractJSONObject(raw)
	if err != nil {
		e.logger.Warn("malformed model response, returning empty skill set",
			zap.Error(err),
			zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
		)
		return skills.NewSet()
	}

	return skills.FromAny(data)
}

func buildPrompt(text string) string {
	return strings.ReplaceAll(promptTemplate, "{{RESUME_TEXT}}", text)
}
