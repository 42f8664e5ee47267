package gemini

import (
	"github.com/nattapol/interview-insights/analysis"
	"google.golang.org/genai"
)

// responseSchema builds the fixed structured-output schema. It is identical
// across invocations. Sensory score ranges are instructed in the prompt, not
// enforced here.
func responseSchema() *genai.Schema {
	feelingEnum := []string{
		string(analysis.FeelingLike),
		string(analysis.FeelingExpect),
		string(analysis.FeelingNeutral),
		string(analysis.FeelingTolerate),
		string(analysis.FeelingDislike),
	}

	technicianEnum := make([]string, 0, len(analysis.TechnicianTypes))
	for _, t := range analysis.TechnicianTypes {
		technicianEnum = append(technicianEnum, t.Key)
	}

	sampleScoreProps := map[string]*genai.Schema{
		"sampleCode": {Type: genai.TypeString},
		"note":       {Type: genai.TypeString},
	}
	for _, field := range []string{
		"adhesion", "odor", "color", "glossiness", "texture",
		"spreadability", "tackiness", "elasticity", "dryingFeel", "overall",
	} {
		sampleScoreProps[field] = &genai.Schema{Type: genai.TypeNumber}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString},
			"satisfactionAnalysis": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"feature":       {Type: genai.TypeString},
						"functional":    {Type: genai.TypeString, Enum: feelingEnum},
						"dysfunctional": {Type: genai.TypeString, Enum: feelingEnum},
						"note":          {Type: genai.TypeString},
					},
					Required: []string{"feature", "functional", "dysfunctional"},
				},
			},
			"blindSampleScores": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: sampleScoreProps,
					Required:   []string{"sampleCode"},
				},
			},
			"secondarySession": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"adhesionScore":    {Type: genai.TypeNumber},
					"applicationScore": {Type: genai.TypeNumber},
					"durabilityScore":  {Type: genai.TypeNumber},
					"overallScore":     {Type: genai.TypeNumber},
					"note":             {Type: genai.TypeString},
				},
			},
			"technicianClassification": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type":       {Type: genai.TypeString, Enum: technicianEnum},
					"confidence": {Type: genai.TypeNumber},
					"keywords":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"reasoning":  {Type: genai.TypeString},
				},
				Required: []string{"type", "confidence"},
			},
			"marketingAnalysis": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"targetSegment":         {Type: genai.TypeString},
					"keyMessage":            {Type: genai.TypeString},
					"pricingFeedback":       {Type: genai.TypeString},
					"competitorMentions":    {Type: genai.TypeString},
					"channelRecommendation": {Type: genai.TypeString},
				},
			},
			"expertInsights": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"brandPerception": {Type: genai.TypeString},
					"personaProfile":  {Type: genai.TypeString},
					"purchaseDrivers": {Type: genai.TypeString},
					"painPoints":      {Type: genai.TypeString},
				},
			},
		},
		Required: []string{
			"summary",
			"satisfactionAnalysis",
			"technicianClassification",
			"marketingAnalysis",
			"expertInsights",
		},
	}
}
