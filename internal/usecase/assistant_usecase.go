package usecase

import "context"

// AssistantUsecase turns a free-text prompt into a displayable answer. It
// never returns a hard error to the caller: remote failures degrade to
// user-facing messages or canned fallback answers.
type AssistantUsecase interface {
	Ask(ctx context.Context, prompt string) (string, error)
}
