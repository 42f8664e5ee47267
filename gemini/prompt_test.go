package gemini

import (
	"testing"

	"github.com/nattapol/interview-insights/analysis"
	"github.com/stretchr/testify/assert"
)

func TestBuildInstructionCoversTaxonomies(t *testing.T) {
	instruction := buildInstruction()

	for _, f := range analysis.Checklist {
		assert.Contains(t, instruction, "- "+f.Key+": ", "checklist feature %s missing", f.Key)
		assert.Contains(t, instruction, f.LabelTH, "Thai label for %s missing", f.Key)
	}
	for _, tt := range analysis.TechnicianTypes {
		assert.Contains(t, instruction, tt.Key)
	}

	// The feeling scale the model must answer on.
	assert.Contains(t, instruction, "Like, Expect, Neutral, Tolerate,")
	assert.Contains(t, instruction, "-2")
	assert.Contains(t, instruction, "+2")
	assert.Contains(t, instruction, "8-9")
}

func TestBuildInstructionIsStable(t *testing.T) {
	// The instruction depends only on fixed taxonomies, never on the input.
	assert.Equal(t, buildInstruction(), buildInstruction())
}

func TestResponseSchemaShape(t *testing.T) {
	schema := responseSchema()

	assert.ElementsMatch(t, []string{
		"summary", "satisfactionAnalysis", "technicianClassification",
		"marketingAnalysis", "expertInsights",
	}, schema.Required)

	satisfaction := schema.Properties["satisfactionAnalysis"]
	assert.NotNil(t, satisfaction)
	assert.Len(t, satisfaction.Items.Properties["functional"].Enum, 5)

	technician := schema.Properties["technicianClassification"]
	assert.NotNil(t, technician)
	assert.Len(t, technician.Properties["type"].Enum, 6)

	samples := schema.Properties["blindSampleScores"]
	assert.NotNil(t, samples)
	// sampleCode + note + ten sensory scores
	assert.Len(t, samples.Items.Properties, 12)
}
