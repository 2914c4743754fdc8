package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"smartcars-insurance/pkg/gemini"
)

// Resolve classifies the question. Missing credentials, transport
// failures, malformed JSON and unrecognized shapes all resolve to
// unknown — the caller never sees an error from this path.
func (r *GeminiResolver) Resolve(ctx context.Context, question string) Intent {
	if r.llm == nil {
		r.l.Warnf(ctx, "%s: resolver disabled (no API key), returning unknown", LogPrefixResolve)
		return Unknown()
	}

	cacheKey := strings.ToLower(strings.TrimSpace(question))
	if cached, ok := r.cache.Get(cacheKey); ok {
		r.l.Debugf(ctx, "%s: cache hit for question", LogPrefixResolve)
		return cached
	}

	prompt := fmt.Sprintf(PromptSystem, question)

	resp, err := r.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: ResolverTemperature,
		},
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: LLM call failed, returning unknown: %v", LogPrefixResolve, err)
		return Unknown()
	}

	raw := resp.Text()
	if raw == "" {
		r.l.Warnf(ctx, "%s: empty LLM response, returning unknown", LogPrefixResolve)
		return Unknown()
	}

	parsed, ok := parseIntentJSON(raw)
	if !ok {
		r.l.Warnf(ctx, "%s: unrecognized LLM output %q, returning unknown", LogPrefixResolve, truncate(raw, 120))
		return Unknown()
	}

	r.l.Infof(ctx, "%s: classified as %s", LogPrefixResolve, parsed.Type)
	r.cache.Add(cacheKey, parsed)
	return parsed
}

// parseIntentJSON decodes and validates the model output as one of the
// four recognized shapes. No blind casting: anything outside the closed
// set is rejected.
func parseIntentJSON(raw string) (Intent, bool) {
	raw = stripCodeFences(raw)

	var parsed Intent
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Intent{}, false
	}
	if !parsed.valid() {
		return Intent{}, false
	}
	return parsed, true
}

// stripCodeFences removes markdown code-fence wrapping (```json ... ```)
// that models sometimes add despite the JSON-only instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
