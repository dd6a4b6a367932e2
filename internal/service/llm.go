package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const parsingPrompt = `The user will describe what they have in the fridge and their cooking needs.
You must respond with exactly two lines in this format:

Output 1: ingredient1, ingredient2, ingredient3
Output 2: preference1, preference2, preference3

Rules:
- Output 1: list only the normalized ingredients the user already has, comma-separated, no quantities.
- Output 2: list all other meaningful requirements (time limit, servings, dietary restrictions, cuisine preferences, equipment, etc.), comma-separated.
- If a field is not provided by the user, omit it entirely.
- Do not add extra text, explanations, or formatting.`

// ParsingService extracts ingredient lists from free-form user input via
// the Mistral chat API. When the API is not configured or a call fails,
// parsing falls back to splitting the input on commas.
type ParsingService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewParsingService creates a ParsingService configured from the
// environment. A missing API key is not an error; the service simply runs
// in fallback mode.
func NewParsingService() *ParsingService {
	apiKey, err := mistralAPIKey()
	if err != nil {
		log.Printf("Mistral API key not configured, input parsing will use comma splitting: %v", err)
	}

	apiURL := os.Getenv("MISTRAL_CHAT_API_URL")
	if apiURL == "" {
		apiURL = "https://api.mistral.ai/v1/chat/completions"
	}

	return &ParsingService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  "mistral-small-latest",
		client: &http.Client{Timeout: 20 * time.Second},
	}
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// ParseUserInput separates the user's available ingredients from their
// other preferences.
func (s *ParsingService) ParseUserInput(ctx context.Context, userInput string) ([]string, []string, error) {
	if s.apiKey == "" {
		return fallbackParse(userInput), nil, nil
	}

	content, err := s.complete(ctx, userInput)
	if err != nil {
		log.Printf("LLM parsing failed, falling back to comma splitting: %v", err)
		return fallbackParse(userInput), nil, nil
	}

	ingredients, preferences := parseOutputLines(content)
	if len(ingredients) == 0 {
		ingredients = fallbackParse(userInput)
	}
	return ingredients, preferences, nil
}

func (s *ParsingService) complete(ctx context.Context, userInput string) (string, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: parsingPrompt},
			{Role: "user", Content: userInput},
		},
		Temperature: 0.1,
		MaxTokens:   200,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

// parseOutputLines pulls the two "Output N:" lines out of the model reply.
func parseOutputLines(content string) (ingredients, preferences []string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Output 1:"):
			ingredients = splitList(strings.TrimPrefix(line, "Output 1:"))
		case strings.HasPrefix(line, "Output 2:"):
			preferences = splitList(strings.TrimPrefix(line, "Output 2:"))
		}
	}
	return ingredients, preferences
}

func fallbackParse(userInput string) []string {
	return splitList(userInput)
}

func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
