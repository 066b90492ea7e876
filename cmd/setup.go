package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/skillsift/skillsift/internal/ai"
	"github.com/skillsift/skillsift/internal/ai/claude"
	"github.com/skillsift/skillsift/internal/ai/gemini"
	"github.com/skillsift/skillsift/internal/github"
	"github.com/skillsift/skillsift/internal/logger"
	"github.com/skillsift/skillsift/internal/secrets"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// newExtractor builds the skill extractor for the configured AI provider.
// A missing model API key is a fatal configuration error for every command
// that categorizes resumes.
func newExtractor(ctx context.Context, cfg *AIConfig, log *zap.Logger) (*ai.Extractor, error) {
	if cfg == nil {
		cfg = &AIConfig{}
	}

	generator, provider, err := newGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	extractorLogger := logger.WithCommonFields(log, provider, generator.Model())

	return ai.NewExtractor(generator, extractorLogger, cfg.MaxLogLength), nil
}

func newGenerator(ctx context.Context, cfg *AIConfig) (ai.Generator, string, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))

	switch provider {
	case "", "claude":
		claudeCfg := cfg.Claude
		if claudeCfg == nil {
			claudeCfg = &ClaudeConfig{}
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name:  "anthropic api key",
			Value: os.Getenv("ANTHROPIC_API_KEY"),
			File:  claudeCfg.APIKeyFile,
		})
		if err != nil {
			return nil, "", fmt.Errorf("%w (set ANTHROPIC_API_KEY, ANTHROPIC_API_KEY_FILE or ai.claude.api-key-file)", err)
		}

		generator, err := claude.NewGenerator(apiKey, claudeCfg.Model, claudeCfg.MaxTokens)
		if err != nil {
			return nil, "", err
		}
		return generator, "claude", nil

	case "gemini":
		geminiCfg := cfg.Gemini
		if geminiCfg == nil {
			geminiCfg = &GeminiConfig{}
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name:  "gemini api key",
			Value: os.Getenv("GEMINI_API_KEY"),
			File:  geminiCfg.APIKeyFile,
		})
		if err != nil {
			return nil, "", fmt.Errorf("%w (set GEMINI_API_KEY, GEMINI_API_KEY_FILE or ai.gemini.api-key-file)", err)
		}

		generator, err := gemini.NewGenerator(ctx, apiKey, geminiCfg.Model)
		if err != nil {
			return nil, "", err
		}
		return generator, "gemini", nil

	default:
		return nil, "", fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}

// newAnalyzer builds the GitHub profile analyzer. The token is optional:
// without one the client runs unauthenticated with lower rate limits.
func newAnalyzer(ctx context.Context, cfg *GitHubConfig, log *zap.Logger) *github.Analyzer {
	tokenFile := ""
	if cfg != nil {
		tokenFile = cfg.TokenFile
	}

	token, err := secrets.Load(secrets.Source{
		Name:  "github token",
		Value: os.Getenv("GITHUB_TOKEN"),
		File:  tokenFile,
	})
	if err != nil {
		log.Warn("using unauthenticated github api",
			zap.String("reason", err.Error()),
			zap.String("hint", "set GITHUB_TOKEN, GITHUB_TOKEN_FILE or github.token-file for higher rate limits"),
		)
		token = ""
	}

	client := github.New(ctx, log, token)

	return github.NewAnalyzer(client, log)
}

func newLogger() *zap.Logger {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating a logger: %s\n", err)
		os.Exit(1)
	}
	return log
}
