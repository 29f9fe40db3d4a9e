// pkg/ai/client.go

package ai

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

// Client is the generative backend. Implementations must return the model's
// text verbatim; callers decide how hard to parse it.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Result is the tagged outcome of parsing model output that was asked to be
// JSON. Exactly one branch is meaningful: JSON when the text parsed, Raw
// otherwise. The zero Result means "model said nothing".
type Result struct {
	JSON json.RawMessage `json:"json,omitempty"`
	Raw  string          `json:"raw,omitempty"`
}

func (r Result) Parsed() bool { return len(r.JSON) > 0 }

var braceRX = regexp.MustCompile(`(?s)[\{\[].*[\}\]]`)

// ParseLoose turns model text into a Result. Models routinely wrap JSON in
// markdown fences or prose, so after a strict parse fails we retry on the
// outermost brace-to-brace slice before giving up and keeping the raw text.
func ParseLoose(text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}
	}
	if json.Valid([]byte(text)) {
		return Result{JSON: json.RawMessage(text)}
	}
	if m := braceRX.FindString(text); m != "" && json.Valid([]byte(m)) {
		return Result{JSON: json.RawMessage(m)}
	}
	return Result{Raw: text}
}
