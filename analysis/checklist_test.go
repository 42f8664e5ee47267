package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklistShape(t *testing.T) {
	assert.Len(t, Checklist, 18)

	seen := make(map[string]bool)
	for _, f := range Checklist {
		assert.NotEmpty(t, f.Key)
		assert.NotEmpty(t, f.LabelEN, "feature %s", f.Key)
		assert.NotEmpty(t, f.LabelTH, "feature %s", f.Key)
		assert.False(t, seen[f.Key], "duplicate feature key %s", f.Key)
		seen[f.Key] = true
	}
}

func TestTechnicianTypes(t *testing.T) {
	assert.Len(t, TechnicianTypes, 6)

	seen := make(map[string]bool)
	for _, tt := range TechnicianTypes {
		assert.NotEmpty(t, tt.Key)
		assert.False(t, seen[tt.Key], "duplicate technician key %s", tt.Key)
		seen[tt.Key] = true
	}
}
