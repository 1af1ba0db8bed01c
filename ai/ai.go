// Package ai enriches assembled personas with an LLM-written narrative summary
// and an optional web-presence lookup. Both are best-effort: without API keys
// the service falls back to deterministic output.
package ai

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ericgreene/go-serp"
	openai "github.com/sashabaranov/go-openai"

	"github.com/echolytics/persona-engine/core"
)

var client *openai.Client

func init() {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, using fallback narratives")
		return
	}
	client = openai.NewClient(apiKey)

	if os.Getenv("SERP_API_KEY") == "" {
		log.Println("Warning: SERP_API_KEY not set, web presence lookup will be disabled")
	}
}

// LLMConfig holds configuration for LLM interactions.
type LLMConfig struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

// DefaultLLMConfig returns standard LLM configuration.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Model:       openai.GPT3Dot5Turbo,
		MaxTokens:   512,
		Temperature: 0.7,
	}
}

// SearchResult represents a web search result.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// SearchConfig holds configuration for web search.
type SearchConfig struct {
	MaxResults int
	SafeSearch bool
}

// DefaultSearchConfig returns standard search configuration.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		MaxResults: 5,
		SafeSearch: true,
	}
}

// GenerateNarrative writes a short prose summary of a persona. Falls back to a
// deterministic template when no OpenAI key is configured or the call fails.
func GenerateNarrative(ctx context.Context, p *core.Persona) string {
	prompt := fmt.Sprintf(
		"Write a short, neutral 2-3 sentence summary of this Reddit user based on "+
			"the following extracted characteristics. Do not invent facts beyond them.\n\n%s",
		formatPersona(p),
	)

	narrative, err := queryLLM(ctx, prompt)
	if err != nil {
		log.Printf("AI narrative failed, falling back to template: %v", err)
		return fallbackNarrative(p)
	}
	return narrative
}

// fallbackNarrative is the deterministic summary used without an LLM.
func fallbackNarrative(p *core.Persona) string {
	return fmt.Sprintf(
		"%s is active in %d subreddits with %d posts and %d comments analyzed.",
		p.Username,
		len(p.Metadata.Subreddits),
		p.Metadata.TotalPosts,
		p.Metadata.TotalComments,
	)
}

// formatPersona flattens every characteristic into prompt lines.
func formatPersona(p *core.Persona) string {
	var b strings.Builder
	for _, cat := range core.Categories() {
		for _, c := range p.CharacteristicsFor(cat) {
			b.WriteString(fmt.Sprintf("- [%s] %s: %s", cat, c.Name, c.Value))
			if c.Evidence != "" {
				b.WriteString(" (" + c.Evidence + ")")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// queryLLM sends a request to OpenAI's API.
func queryLLM(ctx context.Context, prompt string) (string, error) {
	if client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	config := DefaultLLMConfig()
	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: config.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: "You summarize user personas from structured analysis output."},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		},
	)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Message.Content, nil
}

// LookupWebPresence searches the public web for a username. Returns nil when
// SERP_API_KEY is not configured.
func LookupWebPresence(username string) ([]SearchResult, error) {
	apiKey := os.Getenv("SERP_API_KEY")
	if apiKey == "" {
		return nil, nil
	}

	config := DefaultSearchConfig()
	parameter := map[string]string{
		"q":   fmt.Sprintf("reddit %q", username),
		"key": apiKey,
		"num": strconv.Itoa(config.MaxResults),
	}
	if config.SafeSearch {
		parameter["safe"] = "active"
	}

	queryResponse := serp.NewGoogleSearch(parameter)
	results, err := queryResponse.GetJSON()
	if err != nil {
		return nil, err
	}

	var searchResults []SearchResult
	for _, result := range results.OrganicResults {
		searchResults = append(searchResults, SearchResult{
			Title:   result.Title,
			Snippet: result.Snippet,
			Link:    result.Link,
		})
	}

	return searchResults, nil
}
