package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	oracleClientTimeout    = 20 * time.Second
	oracleMaxResponseBytes = 256 * 1024
	oracleMaxSnippetLen    = 2000
)

// Oracle talks to an external credibility model over an OpenAI-compatible
// chat-completions API. It is an optional collaborator: a nil *Oracle means
// the tier is not configured and classification falls through to the
// keyword heuristic.
type Oracle struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

// NewOracle returns a client for the given endpoint, or nil when apiURL is
// empty so the zero configuration disables the tier.
func NewOracle(apiURL, apiKey, model string) *Oracle {
	if apiURL == "" {
		return nil
	}
	return &Oracle{
		apiURL: strings.TrimRight(apiURL, "/"),
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: oracleClientTimeout},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// oracleVerdict is the strict JSON shape the prompt asks the model to emit.
type oracleVerdict struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Classify submits text and parses the model's {"label","confidence"}
// verdict. Transport errors, malformed replies and out-of-range confidences
// are all returned as errors so the caller can fall through to the next tier.
func (o *Oracle) Classify(ctx context.Context, text string) (Label, float64, error) {
	text = strings.TrimSpace(text)
	if rs := []rune(text); len(rs) > oracleMaxSnippetLen {
		text = string(rs[:oracleMaxSnippetLen])
	}

	prompt := fmt.Sprintf(`Analyze the credibility of the following news snippet.
Classify it as 'REAL' or 'FAKE'.
Provide a confidence between 0.0 and 1.0.

Snippet: %q

Return JSON format ONLY: {"label": "REAL/FAKE", "confidence": float}`, text)

	reqBody, err := json.Marshal(chatRequest{
		Model:    o.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return LabelUnknown, 0, fmt.Errorf("oracle: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.apiURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return LabelUnknown, 0, fmt.Errorf("oracle: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if o.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.apiKey)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return LabelUnknown, 0, fmt.Errorf("oracle: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LabelUnknown, 0, fmt.Errorf("oracle: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, oracleMaxResponseBytes))
	if err != nil {
		return LabelUnknown, 0, fmt.Errorf("oracle: read response: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return LabelUnknown, 0, fmt.Errorf("oracle: decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return LabelUnknown, 0, fmt.Errorf("oracle: empty choices")
	}

	return parseVerdict(cr.Choices[0].Message.Content)
}

// parseVerdict extracts the verdict JSON from the model reply, tolerating
// markdown code fences around it.
func parseVerdict(content string) (Label, float64, error) {
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	var v oracleVerdict
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return LabelUnknown, 0, fmt.Errorf("oracle: malformed verdict: %w", err)
	}

	label := Label(strings.ToUpper(strings.TrimSpace(v.Label)))
	if !label.Valid() || label == LabelUnknown {
		return LabelUnknown, 0, fmt.Errorf("oracle: unexpected label %q", v.Label)
	}
	if v.Confidence < 0 || v.Confidence > 1 {
		return LabelUnknown, 0, fmt.Errorf("oracle: confidence %v out of range", v.Confidence)
	}
	return label, v.Confidence, nil
}
