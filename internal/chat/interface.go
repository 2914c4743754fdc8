package chat

import "context"

// UseCase answers a natural-language question about insurance premiums.
type UseCase interface {
	Answer(ctx context.Context, question string) (AnswerOutput, error)
}
