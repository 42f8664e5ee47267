package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKano(t *testing.T) {
	tests := []struct {
		functional    Feeling
		dysfunctional Feeling
		want          KanoCategory
	}{
		{FeelingLike, FeelingLike, KanoQuestionable},
		{FeelingLike, FeelingExpect, KanoAttractive},
		{FeelingLike, FeelingNeutral, KanoAttractive},
		{FeelingLike, FeelingTolerate, KanoAttractive},
		{FeelingLike, FeelingDislike, KanoOneDimensional},
		{FeelingExpect, FeelingLike, KanoReverse},
		{FeelingExpect, FeelingDislike, KanoMustBe},
		{FeelingNeutral, FeelingNeutral, KanoIndifferent},
		{FeelingNeutral, FeelingDislike, KanoMustBe},
		{FeelingTolerate, FeelingExpect, KanoIndifferent},
		{FeelingTolerate, FeelingDislike, KanoMustBe},
		{FeelingDislike, FeelingLike, KanoReverse},
		{FeelingDislike, FeelingTolerate, KanoReverse},
		{FeelingDislike, FeelingDislike, KanoQuestionable},
	}

	for _, tt := range tests {
		got := DeriveKano(tt.functional, tt.dysfunctional)
		assert.Equal(t, tt.want, got, "DeriveKano(%s, %s)", tt.functional, tt.dysfunctional)
	}
}

func TestDeriveKanoOffScale(t *testing.T) {
	assert.Equal(t, KanoQuestionable, DeriveKano("Love", FeelingNeutral))
	assert.Equal(t, KanoQuestionable, DeriveKano(FeelingNeutral, ""))
}

func TestDeriveKanoCoversWholeTable(t *testing.T) {
	feelings := []Feeling{FeelingLike, FeelingExpect, FeelingNeutral, FeelingTolerate, FeelingDislike}
	for _, f := range feelings {
		for _, d := range feelings {
			cat := DeriveKano(f, d)
			assert.Contains(t, []KanoCategory{
				KanoAttractive, KanoOneDimensional, KanoMustBe,
				KanoIndifferent, KanoReverse, KanoQuestionable,
			}, cat)
		}
	}
}
