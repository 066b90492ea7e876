package ai

import "context"

// Generator produces one text completion for a prompt. Implementations live in
// the provider subpackages.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}
