package gemini

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/nattapol/interview-insights/analysis"
)

var instructionTemplate = dedent.Dedent(`
	You are a market-research analyst for the chemical sealant industry. The
	attached recording is a product-testing interview with a Thai technician
	who tried several sealant products. The interview is mostly in Thai.
	Analyze the full recording and complete the following five tasks. Respond
	with a single JSON document matching the requested schema. Write narrative
	fields in Thai.

	Task 1 - Satisfaction analysis (Kano survey):
	Rate EVERY feature in the checklist below, with no omissions. For each
	feature report two answers on the scale Like, Expect, Neutral, Tolerate,
	Dislike:
	- functional: how the interviewee feels when the feature is present
	- dysfunctional: how the interviewee feels when the feature is absent
	Add a short note quoting the supporting statement from the interview.

	Feature checklist:
	%s

	Task 2 - Blind sample scoring:
	The interviewee tested 8-9 anonymized samples (A, B, C, ...). Enumerate
	every sample mentioned in the recording. For each sample give ten sensory
	scores, each between -2 (very poor) and +2 (very good): adhesion, odor,
	color, glossiness, texture, spreadability, tackiness, elasticity,
	dryingFeel, overall.

	Task 3 - Marketing analysis:
	Summarize the marketing signals in the interview: target segment, key
	message that would resonate with this interviewee, pricing feedback,
	competitor products mentioned, and recommended sales channel.

	Task 4 - Expert insights:
	Describe the interviewee's brand perception, a buyer-persona profile,
	their purchase drivers, and their pain points with current products.

	Task 5 - Technician classification:
	Classify the interviewee as exactly one of these technician types:
	%s
	Give a confidence score between 1 and 100 and list the keywords from the
	interview that support the classification.

	Also include a short overall summary of the interview.`)

// buildInstruction renders the static instruction document. It depends only
// on the fixed checklist and technician taxonomy, never on the specific
// interview.
func buildInstruction() string {
	var features strings.Builder
	for _, f := range analysis.Checklist {
		fmt.Fprintf(&features, "- %s: %s (%s)\n", f.Key, f.LabelEN, f.LabelTH)
	}

	var types strings.Builder
	for _, t := range analysis.TechnicianTypes {
		fmt.Fprintf(&types, "- %s: %s (%s)\n", t.Key, t.LabelEN, t.LabelTH)
	}

	return fmt.Sprintf(instructionTemplate,
		strings.TrimRight(features.String(), "\n"),
		strings.TrimRight(types.String(), "\n"))
}
