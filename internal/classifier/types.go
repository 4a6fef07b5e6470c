package classifier

// Label is the credibility verdict attached to a piece of text.
type Label string

const (
	LabelReal       Label = "REAL"
	LabelFake       Label = "FAKE"
	LabelSuspicious Label = "SUSPICIOUS"
	LabelNeutral    Label = "NEUTRAL"
	LabelUnknown    Label = "UNKNOWN"
)

// Valid reports whether l is one of the defined labels.
func (l Label) Valid() bool {
	switch l {
	case LabelReal, LabelFake, LabelSuspicious, LabelNeutral, LabelUnknown:
		return true
	}
	return false
}

// Evidence is one segment-level verdict backing an overall assessment.
type Evidence struct {
	Text       string  `json:"text"`
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Assessment is the result of classifying one article or text snippet.
// Produced once at ingestion time and never mutated afterwards.
type Assessment struct {
	Label      Label      `json:"label"`
	Confidence float64    `json:"confidence"`
	Evidence   []Evidence `json:"evidence"`
}

func unknownAssessment() Assessment {
	return Assessment{Label: LabelUnknown, Confidence: 0}
}
