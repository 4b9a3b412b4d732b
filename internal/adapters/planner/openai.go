// Package planner talks to an OpenAI-compatible chat-completions endpoint
// that generates the final travel itinerary.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/manas-deriv/slack-travel-agent/internal/config"
	"github.com/manas-deriv/slack-travel-agent/internal/domain"
)

// systemPrompt carries the itinerary formatting guidance. It is data, not
// logic: the planning engine does all the travel reasoning.
const systemPrompt = `You are *TravelNomad*, an expert travel assistant planning both corporate retreats and personal vacations.

Formatting rules for Slack:
- Do NOT use markdown headers or double asterisks; use *single asterisks* for bold.
- Use hyperlinks for hotels, airlines, attractions and key locations where possible.
- Use emojis sparingly (✈️ flights, 🏨 hotels, 💰 budget).
- Present a day-by-day itinerary with a brief cultural or historical note per entry.
- State visa requirements and all prices in AED.
- Itemize the budget as a simple list, including flights, hotels, activities, transport and food.
- Keep responses concise and easy to scan.`

type Planner struct {
	client  *http.Client
	logger  *slog.Logger
	baseURL string
	apiKey  string
	model   string
	exaKey  string // search-tool key, forwarded when set

	attempts   int
	retryDelay time.Duration
}

func NewPlanner(cfg *config.AppConfig, logger *slog.Logger) *Planner {
	model := cfg.ModelName
	if model == "" {
		model = domain.DefaultPlannerModel
	}
	return &Planner{
		// no per-call deadline; the transport timeout bounds a dead endpoint
		client:     &http.Client{Timeout: 5 * time.Minute},
		logger:     logger,
		baseURL:    cfg.APIBaseURL,
		apiKey:     cfg.OpenAIAPIKey,
		model:      model,
		exaKey:     cfg.ExaAPIKey,
		attempts:   3,
		retryDelay: time.Second,
	}
}

func retry(ctx context.Context, attempts int, sleep time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}
	}
	return err
}

// Plan runs a single chat completion and returns the assistant reply text.
func (p *Planner) Plan(ctx context.Context, prompt string) (string, error) {
	body := domain.ChatRequest{
		Model: p.model,
		Messages: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: systemPrompt},
			{Role: domain.RoleUser, Content: prompt},
		},
	}
	if p.exaKey != "" {
		body.Plugins = []domain.ChatPlugin{{ID: "web"}}
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal body: %w", err)
	}

	requestID := uuid.NewString()
	p.logger.Info("planner request", "request_id", requestID, "model", p.model)

	var cr domain.ChatResponse
	err = retry(ctx, p.attempts, p.retryDelay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(bodyBytes))
		if err != nil {
			return fmt.Errorf("new request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
		if p.exaKey != "" {
			req.Header.Set("X-Exa-Api-Key", p.exaKey)
		}

		resp, err := p.client.Do(req)
		if err != nil {
			p.logger.Error("planner request failed", "request_id", requestID, "error", err)
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			data, _ := io.ReadAll(resp.Body)
			p.logger.Error("planner API returned error",
				"request_id", requestID,
				"status", resp.StatusCode,
				"body", string(data),
			)
			return fmt.Errorf("status %d: %s", resp.StatusCode, string(data))
		}

		return json.NewDecoder(resp.Body).Decode(&cr)
	})
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}

	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty choices")
	}

	p.logger.Info("planner response",
		"request_id", requestID,
		"completion_tokens", cr.Usage.CompletionTokens,
	)
	return cr.Choices[0].Message.Content, nil
}
