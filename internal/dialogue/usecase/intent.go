package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"tour-srv/internal/dialogue"
	"tour-srv/internal/model"
	"tour-srv/pkg/locale"
)

var digitRun = regexp.MustCompile(`\d+`)

// rawIntent mirrors the JSON the extractor is instructed to emit. Slot
// values arrive as free-form JSON (string or number), so they are typed
// loosely and coerced by normalizeIntent.
type rawIntent struct {
	Intent      string `json:"intent"`
	Departure   any    `json:"departure_point"`
	Destination any    `json:"destination_point"`
	People      any    `json:"people"`
	Days        any    `json:"days"`
	Language    any    `json:"language"`
}

// extractIntent runs the LLM intent analysis for one turn. Every failure
// path (call error, no JSON in the output, unparsable JSON) degrades to the
// UNKNOWN fallback; this function never reports an error.
func (uc *implUseCase) extractIntent(ctx context.Context, session model.Session, message string) dialogue.ExtractedIntent {
	unknown := dialogue.ExtractedIntent{Intent: model.IntentUnknown}

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.IntentTimeout)
	defer cancel()

	output, err := uc.llm.Generate(callCtx, buildIntentPrompt(session, message))
	if err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.extractIntent: LLM call failed, falling back to UNKNOWN: %v", err)
		return unknown
	}

	jsonText, ok := extractJSON(output)
	if !ok {
		uc.l.Warnf(ctx, "dialogue.usecase.extractIntent: no JSON object in LLM output")
		return unknown
	}

	var raw rawIntent
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.extractIntent: unparsable JSON from LLM: %v", err)
		return unknown
	}

	return normalizeIntent(raw)
}

// extractJSON locates the outermost JSON object in free-form LLM text.
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// normalizeIntent coerces the loosely typed extraction into the domain
// shape. Coercion failures drop the field to nil, never to an error.
func normalizeIntent(raw rawIntent) dialogue.ExtractedIntent {
	ex := dialogue.ExtractedIntent{
		Intent:         model.ParseIntent(raw.Intent),
		DeparturePoint: normalizeText(raw.Departure),
		Destination:    normalizeText(raw.Destination),
		People:         normalizePeople(raw.People),
		Days:           normalizeDays(raw.Days),
	}
	if lang := normalizeText(raw.Language); lang != nil && locale.IsValidLang(*lang) {
		normalized := locale.ParseLang(*lang)
		ex.Language = &normalized
	}
	return ex
}

// normalizeText keeps non-empty strings, trimmed. Anything else is nil.
func normalizeText(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// normalizeDays accepts a number or free text like "khoảng 5 ngày"; the
// first digit run wins. No digits means unknown. Both slots are positive
// integers: zero or negative coercion results are treated as absent so
// they never satisfy the checklist.
func normalizeDays(v any) *int {
	switch value := v.(type) {
	case float64:
		return positive(int(value))
	case string:
		match := digitRun.FindString(value)
		if match == "" {
			return nil
		}
		n, err := strconv.Atoi(match)
		if err != nil {
			return nil
		}
		return positive(n)
	default:
		return nil
	}
}

// normalizePeople attempts plain integer coercion; unlike days there is no
// digit extraction, so "abc" and "about 4" both degrade to unknown.
func normalizePeople(v any) *int {
	switch value := v.(type) {
	case float64:
		return positive(int(value))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil
		}
		return positive(n)
	default:
		return nil
	}
}

func positive(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
