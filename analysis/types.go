package analysis

// Status indicates whether an analysis produced a full result or failed.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Thai placeholder texts used when the model output omits a section.
const (
	NoDataNote       = "ไม่พบข้อมูลในบทสัมภาษณ์" // no data found in interview
	NotSpecifiedNote = "ไม่ระบุ"                // not specified
)

// SatisfactionEntry is one reconciled checklist feature with the feelings
// reported in the interview and the Kano category derived from them.
type SatisfactionEntry struct {
	Feature       string       `json:"feature"`
	Functional    Feeling      `json:"functional"`
	Dysfunctional Feeling      `json:"dysfunctional"`
	Category      KanoCategory `json:"category"`
	Note          string       `json:"note,omitempty"`
}

// BlindSampleScore holds the ten sensory scores given to one anonymized
// product sample. Scores are instructed to lie in [-2, +2] but are carried
// through as reported.
type BlindSampleScore struct {
	SampleCode    string  `json:"sampleCode"`
	Adhesion      float64 `json:"adhesion"`
	Odor          float64 `json:"odor"`
	Color         float64 `json:"color"`
	Glossiness    float64 `json:"glossiness"`
	Texture       float64 `json:"texture"`
	Spreadability float64 `json:"spreadability"`
	Tackiness     float64 `json:"tackiness"`
	Elasticity    float64 `json:"elasticity"`
	DryingFeel    float64 `json:"dryingFeel"`
	Overall       float64 `json:"overall"`
	Note          string  `json:"note,omitempty"`
}

// SecondarySession covers the follow-up re-test session of the interview.
// Downstream consumers always receive this section; when the model omits it,
// DefaultSecondarySession fills in.
type SecondarySession struct {
	AdhesionScore    float64 `json:"adhesionScore"`
	ApplicationScore float64 `json:"applicationScore"`
	DurabilityScore  float64 `json:"durabilityScore"`
	OverallScore     float64 `json:"overallScore"`
	Note             string  `json:"note"`
}

// DefaultSecondarySession returns the fixed substitute used when the model
// output has no secondary session: four zero scores and a "not specified"
// note.
func DefaultSecondarySession() *SecondarySession {
	return &SecondarySession{Note: NotSpecifiedNote}
}

// TechnicianClassification assigns the interviewee to one of the six
// technician archetypes.
type TechnicianClassification struct {
	Type       string   `json:"type"`
	Confidence float64  `json:"confidence"`
	Keywords   []string `json:"keywords,omitempty"`
	Reasoning  string   `json:"reasoning,omitempty"`
}

// MarketingAnalysis carries the marketing-strategy narrative extracted from
// the interview.
type MarketingAnalysis struct {
	TargetSegment         string `json:"targetSegment,omitempty"`
	KeyMessage            string `json:"keyMessage,omitempty"`
	PricingFeedback       string `json:"pricingFeedback,omitempty"`
	CompetitorMentions    string `json:"competitorMentions,omitempty"`
	ChannelRecommendation string `json:"channelRecommendation,omitempty"`
}

// ExpertInsights carries the brand and buyer-persona narrative.
type ExpertInsights struct {
	BrandPerception string `json:"brandPerception,omitempty"`
	PersonaProfile  string `json:"personaProfile,omitempty"`
	PurchaseDrivers string `json:"purchaseDrivers,omitempty"`
	PainPoints      string `json:"painPoints,omitempty"`
}

// Result is the final reconciled record of one interview analysis. On
// failure only Status and ErrorMessage are set.
type Result struct {
	Status                   Status                    `json:"status"`
	Summary                  string                    `json:"summary,omitempty"`
	SatisfactionAnalysis     []SatisfactionEntry       `json:"satisfactionAnalysis,omitempty"`
	BlindSampleScores        []BlindSampleScore        `json:"blindSampleScores,omitempty"`
	SecondarySession         *SecondarySession         `json:"secondarySession,omitempty"`
	TechnicianClassification *TechnicianClassification `json:"technicianClassification,omitempty"`
	MarketingAnalysis        *MarketingAnalysis        `json:"marketingAnalysis,omitempty"`
	ExpertInsights           *ExpertInsights           `json:"expertInsights,omitempty"`
	ErrorMessage             string                    `json:"errorMessage,omitempty"`
}

// ErrorResult wraps a failure into the error-record shape returned to
// callers instead of a Go error.
func ErrorResult(err error) *Result {
	return &Result{Status: StatusError, ErrorMessage: err.Error()}
}
