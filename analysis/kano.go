package analysis

// Feeling is one point on the 5-level satisfaction scale used for both the
// functional ("how do you feel if the feature is present") and dysfunctional
// ("how do you feel if it is absent") questions.
type Feeling string

const (
	FeelingLike     Feeling = "Like"
	FeelingExpect   Feeling = "Expect"
	FeelingNeutral  Feeling = "Neutral"
	FeelingTolerate Feeling = "Tolerate"
	FeelingDislike  Feeling = "Dislike"
)

// KanoCategory is the derived classification of a feature from its
// (functional, dysfunctional) feeling pair.
type KanoCategory string

const (
	KanoAttractive     KanoCategory = "A"
	KanoOneDimensional KanoCategory = "O"
	KanoMustBe         KanoCategory = "M"
	KanoIndifferent    KanoCategory = "I"
	KanoReverse        KanoCategory = "R"
	KanoQuestionable   KanoCategory = "Q"
)

// kanoTable is the standard Kano evaluation table, indexed as
// [functional][dysfunctional].
var kanoTable = map[Feeling]map[Feeling]KanoCategory{
	FeelingLike: {
		FeelingLike:     KanoQuestionable,
		FeelingExpect:   KanoAttractive,
		FeelingNeutral:  KanoAttractive,
		FeelingTolerate: KanoAttractive,
		FeelingDislike:  KanoOneDimensional,
	},
	FeelingExpect: {
		FeelingLike:     KanoReverse,
		FeelingExpect:   KanoIndifferent,
		FeelingNeutral:  KanoIndifferent,
		FeelingTolerate: KanoIndifferent,
		FeelingDislike:  KanoMustBe,
	},
	FeelingNeutral: {
		FeelingLike:     KanoReverse,
		FeelingExpect:   KanoIndifferent,
		FeelingNeutral:  KanoIndifferent,
		FeelingTolerate: KanoIndifferent,
		FeelingDislike:  KanoMustBe,
	},
	FeelingTolerate: {
		FeelingLike:     KanoReverse,
		FeelingExpect:   KanoIndifferent,
		FeelingNeutral:  KanoIndifferent,
		FeelingTolerate: KanoIndifferent,
		FeelingDislike:  KanoMustBe,
	},
	FeelingDislike: {
		FeelingLike:     KanoReverse,
		FeelingExpect:   KanoReverse,
		FeelingNeutral:  KanoReverse,
		FeelingTolerate: KanoReverse,
		FeelingDislike:  KanoQuestionable,
	},
}

// DeriveKano maps a (functional, dysfunctional) feeling pair to its Kano
// category. Values outside the 5-point scale classify as Questionable.
func DeriveKano(functional, dysfunctional Feeling) KanoCategory {
	row, ok := kanoTable[functional]
	if !ok {
		return KanoQuestionable
	}
	cat, ok := row[dysfunctional]
	if !ok {
		return KanoQuestionable
	}
	return cat
}
