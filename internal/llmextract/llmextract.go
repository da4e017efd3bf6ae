package llmextract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/lunchboard/menuscrape/internal/cache"
	"github.com/lunchboard/menuscrape/internal/menu"
)

// Client is the minimal surface needed to call a chat model, so tests and
// OpenAI-compatible local backends can stand in for the real client.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Extractor asks an OpenAI-compatible model to pull menu items out of page
// text. It is a last resort behind both heuristic passes and is only wired
// up when an endpoint is configured.
type Extractor struct {
	Client Client
	Model  string
	// Cache, when set, stores raw model responses keyed by (model, text).
	Cache *cache.LLMCache
	// MaxChars caps the page text sent to the model. Zero means 8000.
	MaxChars int
}

const systemPrompt = "You extract lunch menu items from restaurant web page text. " +
	"Respond with a JSON array only, no prose. Each element: " +
	`{"name": string, "description": string, "price": number or null (CHF), ` +
	`"category": one of "Menu", "Vegi", "Hit", "Frühstück" or null}. ` +
	"Ignore opening hours, contact info and marketing text. " +
	"Return [] when the text contains no menu."

// wireItem mirrors the shape the model is asked for. Parsed defensively: any
// field the model got wrong is dropped, never trusted.
type wireItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
}

// Items extracts candidate menu items from page text. The result still goes
// through the same finalization pass as heuristic candidates.
func (e *Extractor) Items(ctx context.Context, pageText string) ([]menu.Item, error) {
	if e == nil || e.Client == nil || e.Model == "" {
		return nil, fmt.Errorf("llm extractor not configured")
	}
	capChars := e.MaxChars
	if capChars <= 0 {
		capChars = 8000
	}
	if len(pageText) > capChars {
		pageText = pageText[:capChars]
	}

	key := cache.LLMKey(e.Model, pageText)
	if e.Cache != nil {
		if data, ok := e.Cache.Get(ctx, key); ok {
			if items, err := parseItems(data); err == nil {
				log.Debug().Int("count", len(items)).Msg("llm extraction served from cache")
				return items, nil
			}
		}
	}

	resp, err := e.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.Model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: pageText},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}
	raw := []byte(stripCodeFence(resp.Choices[0].Message.Content))

	items, err := parseItems(raw)
	if err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}
	if e.Cache != nil {
		_ = e.Cache.Save(ctx, key, raw)
	}
	return items, nil
}

func parseItems(data []byte) ([]menu.Item, error) {
	var wire []wireItem
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	items := make([]menu.Item, 0, len(wire))
	for _, w := range wire {
		name := strings.TrimSpace(w.Name)
		if name == "" {
			continue
		}
		it := menu.Item{Name: name, Description: strings.TrimSpace(w.Description)}
		if w.Price != nil && *w.Price >= 5.0 && *w.Price <= 50.0 {
			v := *w.Price
			it.Price = &v
		}
		if w.Category != nil {
			if c, ok := knownCategory(*w.Category); ok {
				it.Category = &c
			}
		}
		items = append(items, it)
	}
	return items, nil
}

func knownCategory(s string) (menu.Category, bool) {
	for _, c := range []menu.Category{menu.CategoryMenu, menu.CategoryVegi, menu.CategoryHit, menu.CategoryBreakfast} {
		if s == string(c) {
			return c, true
		}
	}
	return "", false
}

// stripCodeFence unwraps ```json ... ``` blocks some models insist on.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
