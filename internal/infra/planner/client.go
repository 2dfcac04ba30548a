// Package planner extracts task plans from free-form descriptions using
// the Anthropic API.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// Ensure Client implements domain.PlanExtractor interface.
var _ domain.PlanExtractor = (*Client)(nil)

const systemPrompt = `You are a planning assistant. The user describes work they
want to do, possibly with times and durations. Extract a list of concrete tasks.

Respond with ONLY a JSON object of this shape, no prose:
{"tasks": [{"title": "...", "duration": <minutes as integer>, "notes": "..."}]}

Rules:
- title is a short imperative summary of the task.
- duration is the estimated or stated length in minutes; use 25 when unstated.
- notes carries any detail that does not fit the title; empty string if none.
- Resolve relative times ("tomorrow", "after lunch") against the reference
  time given in the message.
- If the text contains no actionable work, return {"tasks": []}.`

// Client calls the Anthropic messages API to turn a description into a
// task plan. A Client with no credential is valid; every Extract call
// then returns an empty plan.
// Fields are ordered to minimize memory padding.
type Client struct {
	client    *anthropic.Client
	logger    domain.Logger
	model     string
	maxTokens int64
}

// Option configures a Client.
type Option func(*Client) []option.RequestOption

// WithModel overrides the model used for extraction.
func WithModel(model string) Option {
	return func(c *Client) []option.RequestOption {
		if model != "" {
			c.model = model
		}
		return nil
	}
}

// WithMaxTokens overrides the response token limit.
func WithMaxTokens(n int64) Option {
	return func(c *Client) []option.RequestOption {
		if n > 0 {
			c.maxTokens = n
		}
		return nil
	}
}

// WithBaseURL points the client at an alternate API endpoint.
func WithBaseURL(url string) Option {
	return func(_ *Client) []option.RequestOption {
		return []option.RequestOption{option.WithBaseURL(url)}
	}
}

// New creates a Client. An empty apiKey disables extraction; Extract
// then logs a warning and returns an empty plan instead of failing.
func New(apiKey string, logger domain.Logger, opts ...Option) *Client {
	c := &Client{
		logger:    logger,
		model:     domain.DefaultPlannerModel,
		maxTokens: domain.DefaultPlannerMaxTokens,
	}

	var reqOpts []option.RequestOption
	for _, opt := range opts {
		reqOpts = append(reqOpts, opt(c)...)
	}

	if apiKey != "" {
		reqOpts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, reqOpts...)
		c.client = anthropic.NewClient(reqOpts...)
	}
	return c
}

// Extract turns a free-form description into a task plan. It never
// returns an error: any failure (missing credential, API error,
// unparseable response) degrades to an empty plan so the caller can
// fall back to manual entry.
func (c *Client) Extract(ctx context.Context, description string, ref time.Time) domain.PlanResult {
	if strings.TrimSpace(description) == "" {
		return domain.EmptyPlan()
	}

	if c.client == nil {
		c.logger.Warn(0, "planner", "no API key configured; returning empty plan")
		return domain.EmptyPlan()
	}

	userMsg := fmt.Sprintf("Reference time: %s\n\n%s", ref.Format(time.RFC3339), description)

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.F(c.model),
		MaxTokens: anthropic.F(c.maxTokens),
		System:    anthropic.F([]anthropic.TextBlockParam{anthropic.NewTextBlock(systemPrompt)}),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		}),
	})
	if err != nil {
		c.logger.Error(0, "planner", fmt.Sprintf("extraction request failed: %v", err))
		return domain.EmptyPlan()
	}

	var text string
	for _, block := range resp.Content {
		if tb, ok := block.AsUnion().(anthropic.TextBlock); ok {
			text = tb.Text
			break
		}
	}
	if text == "" {
		c.logger.Error(0, "planner", "response contained no text block")
		return domain.EmptyPlan()
	}

	plan, err := parsePlan(text)
	if err != nil {
		c.logger.Error(0, "planner", fmt.Sprintf("unparseable plan response: %v", err))
		return domain.EmptyPlan()
	}

	c.logger.Info(0, "planner", fmt.Sprintf("extracted %d tasks", len(plan.Tasks)))
	return plan
}

// parsePlan decodes the model's JSON reply. Models sometimes wrap JSON
// in a markdown code fence; strip it before decoding.
func parsePlan(text string) (domain.PlanResult, error) {
	text = stripCodeFence(strings.TrimSpace(text))

	var plan domain.PlanResult
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return domain.EmptyPlan(), err
	}
	if plan.Tasks == nil {
		plan.Tasks = []domain.ProposedTask{}
	}
	return plan, nil
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return text
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
