package usecase

import (
	"context"

	"smartcars-insurance/internal/chat"
	"smartcars-insurance/internal/intent"
)

// Answer resolves the question's intent and routes it to the matching
// pipeline. Business rejections and lookup apologies are answers, not
// errors; an error return means infrastructure failed.
func (uc *implUseCase) Answer(ctx context.Context, question string) (chat.AnswerOutput, error) {
	parsed := uc.resolver.Resolve(ctx, question)
	uc.l.Infof(ctx, "chat.Answer: intent=%s question=%q", parsed.Type, question)

	var (
		answer string
		err    error
	)
	switch parsed.Type {
	case intent.TypePremiumByRequestID:
		answer, err = uc.premiumByRequestID(ctx, parsed.RequestID)
	case intent.TypePremiumByEmail:
		answer, err = uc.premiumByEmail(ctx, parsed.Email)
	case intent.TypeVehicleFactorByRequestID:
		answer, err = uc.vehicleFactorByRequestID(ctx, parsed.RequestID)
	default:
		answer = chat.MsgUnknownIntent
	}
	if err != nil {
		return chat.AnswerOutput{}, err
	}

	return chat.AnswerOutput{Answer: answer, Intent: parsed}, nil
}
