package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// EmbeddingDimension is the vector size produced by the mistral-embed model.
const EmbeddingDimension = 1024

const defaultEmbeddingTimeout = 15 * time.Second

// EmbeddingService calls the Mistral embeddings API. Failures (network,
// auth, rate limit, malformed response) surface as errors; the search
// service degrades to keyword-only scoring when that happens.
type EmbeddingService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// mistralAPIKey resolves the Mistral API key from the environment,
// preferring MISTRAL_API_KEY over a MISTRAL_API_KEY_FILE secrets file.
func mistralAPIKey() (string, error) {
	if apiKey := os.Getenv("MISTRAL_API_KEY"); apiKey != "" {
		return apiKey, nil
	}

	apiKeyFile := os.Getenv("MISTRAL_API_KEY_FILE")
	if apiKeyFile == "" {
		return "", fmt.Errorf("MISTRAL_API_KEY or MISTRAL_API_KEY_FILE must be set")
	}

	apiKeyBytes, err := os.ReadFile(apiKeyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}

	apiKey := strings.TrimSpace(string(apiKeyBytes))
	if apiKey == "" {
		return "", fmt.Errorf("API key file is empty")
	}
	return apiKey, nil
}

// NewEmbeddingService creates an EmbeddingService configured from the
// environment.
func NewEmbeddingService() (*EmbeddingService, error) {
	apiKey, err := mistralAPIKey()
	if err != nil {
		return nil, err
	}

	apiURL := os.Getenv("MISTRAL_API_URL")
	if apiURL == "" {
		apiURL = "https://api.mistral.ai/v1/embeddings"
	}

	return &EmbeddingService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  "mistral-embed",
		client: &http.Client{Timeout: defaultEmbeddingTimeout},
	}, nil
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingData struct {
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
}

type embeddingResponse struct {
	Data []embeddingData `json:"data"`
}

// EmbedTexts requests one embedding per input text. The response is
// validated for count and dimension so a malformed payload is reported as
// an error instead of corrupting scores downstream.
func (s *EmbeddingService) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	reqBody := embeddingRequest{
		Model: s.model,
		Input: texts,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("embedding API returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("embedding API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Data) != len(texts) {
		return nil, fmt.Errorf("embedding API returned %d vectors for %d inputs", len(result.Data), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for _, d := range result.Data {
		if d.Index < 0 || d.Index >= len(texts) {
			return nil, fmt.Errorf("embedding API returned out-of-range index %d", d.Index)
		}
		if len(d.Embedding) != EmbeddingDimension {
			return nil, fmt.Errorf("embedding API returned %d-dimensional vector, expected %d", len(d.Embedding), EmbeddingDimension)
		}
		vectors[d.Index] = d.Embedding
	}
	for i, v := range vectors {
		if v == nil {
			return nil, fmt.Errorf("embedding API response missing vector for index %d", i)
		}
	}

	return vectors, nil
}
