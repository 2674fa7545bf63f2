package interfaces

import "context"

// Prompter asks the user for input.
type Prompter interface {
	// PromptSecret asks for a hidden value. def, when non-empty, is returned
	// if the user enters nothing.
	PromptSecret(ctx context.Context, message, def string) (string, error)
	// PromptConfirm asks a yes/no question.
	PromptConfirm(ctx context.Context, message string, def bool) (bool, error)
}
