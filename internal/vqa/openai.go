package vqa

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultTopLogprobs is the number of first-token candidates requested from the model.
const DefaultTopLogprobs = 20

// chatClient is the subset of the go-openai client used for scoring.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Options configures an OpenAIScorer.
type Options struct {
	BaseURL     string
	APIKey      string
	Model       string
	TopLogprobs int
	Media       MediaMode
	Timeout     time.Duration
	HTTPClient  openai.HTTPDoer
}

// OpenAIScorer scores media against an OpenAI-compatible vision chat endpoint.
// The score is the probability mass the model puts on "Yes" as its first token.
type OpenAIScorer struct {
	client      chatClient
	model       string
	topLogprobs int
	media       MediaMode
	timeout     time.Duration
}

// NewOpenAIScorer builds a scorer from explicit settings.
func NewOpenAIScorer(opts Options) (*OpenAIScorer, error) {
	if strings.TrimSpace(opts.Model) == "" {
		return nil, fmt.Errorf("model is required")
	}
	cfg := openai.DefaultConfig(opts.APIKey)
	if strings.TrimSpace(opts.BaseURL) != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}
	return newOpenAIScorer(openai.NewClientWithConfig(cfg), opts), nil
}

func newOpenAIScorer(client chatClient, opts Options) *OpenAIScorer {
	top := opts.TopLogprobs
	if top <= 0 {
		top = DefaultTopLogprobs
	}
	media := opts.Media
	if media == "" {
		media = MediaFileURL
	}
	return &OpenAIScorer{
		client:      client,
		model:       opts.Model,
		topLogprobs: top,
		media:       media,
		timeout:     opts.Timeout,
	}
}

// Score asks the model the question about the media and returns P("Yes").
func (s *OpenAIScorer) Score(ctx context.Context, req Request) (float64, error) {
	mediaURL, err := MediaURL(req.Media, s.media)
	if err != nil {
		return 0, err
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	resp, err := s.client.CreateChatCompletion(ctx, s.buildRequest(mediaURL, RenderQuestion(req.Question, req.Label)))
	if err != nil {
		return 0, fmt.Errorf("chat completion: %w", err)
	}
	return scoreFromResponse(resp)
}

// buildRequest assembles a single-token, logprob-enabled chat request.
func (s *OpenAIScorer) buildRequest(mediaURL, question string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: mediaURL},
				},
				{
					Type: openai.ChatMessagePartTypeText,
					Text: question,
				},
			},
		}},
		MaxTokens:   1,
		// omitempty drops a literal zero.
		Temperature: math.SmallestNonzeroFloat32,
		LogProbs:    true,
		TopLogProbs: s.topLogprobs,
	}
}

// scoreFromResponse extracts P("Yes") from first-token logprobs, falling back to the
// answer text when the endpoint does not return logprobs.
func scoreFromResponse(resp openai.ChatCompletionResponse) (float64, error) {
	if len(resp.Choices) == 0 {
		return 0, ErrNoAnswer
	}
	choice := resp.Choices[0]
	if choice.LogProbs != nil && len(choice.LogProbs.Content) > 0 {
		return yesProbability(choice.LogProbs.Content[0]), nil
	}
	switch normalizeAnswer(choice.Message.Content) {
	case "yes":
		return 1, nil
	case "no":
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNoAnswer, choice.Message.Content)
}

// yesProbability sums the probability of every "yes" spelling among the candidates.
func yesProbability(first openai.LogProb) float64 {
	if len(first.TopLogProbs) == 0 {
		if normalizeAnswer(first.Token) == "yes" {
			return math.Exp(first.LogProb)
		}
		return 0
	}
	total := 0.0
	for _, candidate := range first.TopLogProbs {
		if normalizeAnswer(candidate.Token) == "yes" {
			total += math.Exp(candidate.LogProb)
		}
	}
	return math.Min(total, 1)
}

func normalizeAnswer(text string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(text), ".!"))
}
