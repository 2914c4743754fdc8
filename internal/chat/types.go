package chat

import "smartcars-insurance/internal/intent"

// AnswerOutput is the orchestrator's reply: a natural-language answer
// plus the intent it was routed through.
type AnswerOutput struct {
	Answer string
	Intent intent.Intent
}
