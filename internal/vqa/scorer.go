package vqa

import (
	"context"
	"errors"
	"strings"
)

// ErrNoAnswer is returned when the model response carries no usable yes/no answer.
var ErrNoAnswer = errors.New("model returned no yes/no answer")

// AnswerSuffix is appended to every label definition to form the question.
const AnswerSuffix = "Please only answer Yes or No."

// Request is one media/label pair to score.
type Request struct {
	Media    string
	Label    string
	Question string
}

// Scorer returns the probability that the answer to the question about the media is "Yes".
type Scorer interface {
	Score(ctx context.Context, req Request) (float64, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(ctx context.Context, req Request) (float64, error)

// Score calls f.
func (f ScorerFunc) Score(ctx context.Context, req Request) (float64, error) {
	return f(ctx, req)
}

// BuildQuestion concatenates a label definition with the answer suffix.
func BuildQuestion(definition, suffix string) string {
	return definition + suffix
}

// RenderQuestion fills the first "{}" placeholder of a question template with the label.
// Templates without a placeholder are returned unchanged.
func RenderQuestion(template, label string) string {
	if !strings.Contains(template, "{}") {
		return template
	}
	return strings.Replace(template, "{}", label, 1)
}
