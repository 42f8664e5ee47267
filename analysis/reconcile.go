package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// rawResponse mirrors the structured output requested from the model. All
// sections are optional here; Reconcile fills the gaps.
type rawResponse struct {
	Summary                  string                    `json:"summary"`
	SatisfactionAnalysis     []rawSatisfactionEntry    `json:"satisfactionAnalysis"`
	BlindSampleScores        []BlindSampleScore        `json:"blindSampleScores"`
	SecondarySession         *SecondarySession         `json:"secondarySession"`
	TechnicianClassification *TechnicianClassification `json:"technicianClassification"`
	MarketingAnalysis        *MarketingAnalysis        `json:"marketingAnalysis"`
	ExpertInsights           *ExpertInsights           `json:"expertInsights"`
}

type rawSatisfactionEntry struct {
	Feature       string  `json:"feature"`
	Functional    Feeling `json:"functional"`
	Dysfunctional Feeling `json:"dysfunctional"`
	Note          string  `json:"note"`
}

// cleanResponseText strips markdown code fences the model occasionally wraps
// around the JSON document. Empty text maps to an empty object so that a
// blank response reconciles to an all-defaults result instead of failing.
func cleanResponseText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return "{}"
	}
	return text
}

// Reconcile parses the model's response text and shapes it into a complete
// Result: every checklist feature gets exactly one satisfaction entry (in
// checklist order, defaulted when missing), the Kano category is derived for
// each entry, and optional sections are substituted with their documented
// defaults. A parse failure is returned as an error; it is not retryable.
func Reconcile(text string) (*Result, error) {
	cleaned := cleanResponseText(text)

	var raw rawResponse
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response JSON: %w (response: %s)", err, cleaned)
	}

	byFeature := make(map[string]rawSatisfactionEntry, len(raw.SatisfactionAnalysis))
	for _, entry := range raw.SatisfactionAnalysis {
		byFeature[entry.Feature] = entry
	}

	satisfaction := make([]SatisfactionEntry, 0, len(Checklist))
	for _, feature := range Checklist {
		entry, ok := byFeature[feature.Key]
		if !ok {
			satisfaction = append(satisfaction, SatisfactionEntry{
				Feature:       feature.Key,
				Functional:    FeelingNeutral,
				Dysfunctional: FeelingNeutral,
				Category:      DeriveKano(FeelingNeutral, FeelingNeutral),
				Note:          NoDataNote,
			})
			continue
		}
		satisfaction = append(satisfaction, SatisfactionEntry{
			Feature:       feature.Key,
			Functional:    entry.Functional,
			Dysfunctional: entry.Dysfunctional,
			Category:      DeriveKano(entry.Functional, entry.Dysfunctional),
			Note:          entry.Note,
		})
	}

	samples := raw.BlindSampleScores
	if samples == nil {
		samples = []BlindSampleScore{}
	}

	secondary := raw.SecondarySession
	if secondary == nil {
		secondary = DefaultSecondarySession()
	}

	return &Result{
		Status:                   StatusCompleted,
		Summary:                  raw.Summary,
		SatisfactionAnalysis:     satisfaction,
		BlindSampleScores:        samples,
		SecondarySession:         secondary,
		TechnicianClassification: raw.TechnicianClassification,
		MarketingAnalysis:        raw.MarketingAnalysis,
		ExpertInsights:           raw.ExpertInsights,
	}, nil
}
