package classifier

import (
	"context"
	"strings"

	"github.com/nileshd/newsguard/internal/logger"
)

const trustedConfidence = 0.99

// Classifier assigns credibility assessments through a tiered strategy:
// trusted-source fast path, then the AI oracle when configured, then the
// keyword heuristic. Each tier is consulted only when the previous one is
// unavailable or fails; a classification call never returns an error.
type Classifier struct {
	trusted []string
	oracle  *Oracle
}

// New builds a Classifier. A nil or empty trusted list falls back to
// DefaultTrustedSources; a nil oracle disables the AI tier.
func New(trusted []string, oracle *Oracle) *Classifier {
	if len(trusted) == 0 {
		trusted = DefaultTrustedSources()
	}
	return &Classifier{trusted: trusted, oracle: oracle}
}

// ClassifyArticle assesses one article at whole-text granularity.
func (c *Classifier) ClassifyArticle(ctx context.Context, sourceName, title, summary string) Assessment {
	if matchTrusted(c.trusted, sourceName) {
		return Assessment{
			Label:      LabelReal,
			Confidence: trustedConfidence,
			Evidence: []Evidence{
				{Text: "Verified Source", Label: LabelReal, Confidence: trustedConfidence},
			},
		}
	}

	text := strings.TrimSpace(strings.TrimSpace(title) + " " + strings.TrimSpace(summary))
	if text == "" {
		return unknownAssessment()
	}

	if label, conf, ok := c.tryOracle(ctx, text); ok {
		return Assessment{
			Label:      label,
			Confidence: conf,
			Evidence: []Evidence{
				{Text: "AI Analysis", Label: label, Confidence: conf},
			},
		}
	}

	label, conf := heuristicCheck(text)
	return Assessment{
		Label:      label,
		Confidence: conf,
		Evidence: []Evidence{
			{Text: "Heuristic Analysis", Label: label, Confidence: conf},
		},
	}
}

// ClassifyText assesses an arbitrary snippet in sentence mode: the overall
// verdict covers the whole text while the evidence trail carries one entry
// per sentence. Without an oracle the heuristic runs at whole-text
// granularity only, so the trail collapses to a single entry.
func (c *Classifier) ClassifyText(ctx context.Context, text string) Assessment {
	text = strings.TrimSpace(text)
	if text == "" {
		return unknownAssessment()
	}

	if c.oracle == nil {
		label, conf := heuristicCheck(text)
		return Assessment{
			Label:      label,
			Confidence: conf,
			Evidence: []Evidence{
				{Text: "Heuristic Analysis", Label: label, Confidence: conf},
			},
		}
	}

	overallLabel, overallConf, ok := c.tryOracle(ctx, text)
	if !ok {
		overallLabel, overallConf = heuristicCheck(text)
	}

	sentences := splitSentences(text)
	evidence := make([]Evidence, 0, len(sentences))
	for _, s := range sentences {
		label, conf, ok := c.tryOracle(ctx, s)
		if !ok {
			label, conf = heuristicCheck(s)
		}
		evidence = append(evidence, Evidence{Text: s, Label: label, Confidence: conf})
	}

	return Assessment{Label: overallLabel, Confidence: overallConf, Evidence: evidence}
}

// tryOracle wraps the oracle tier; any failure is logged and reported as
// "not usable" so the caller walks on to the heuristic.
func (c *Classifier) tryOracle(ctx context.Context, text string) (Label, float64, bool) {
	if c.oracle == nil {
		return LabelUnknown, 0, false
	}
	label, conf, err := c.oracle.Classify(ctx, text)
	if err != nil {
		logger.Warnf("oracle tier unusable, falling through: %v", err)
		return LabelUnknown, 0, false
	}
	return label, conf, true
}
