package categorizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"msalas/statement-csv/internal/config"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
	"msalas/statement-csv/internal/parsererror"
)

// GeminiStrategy asks the Gemini API to pick a category when no local
// strategy matched. It is only constructed when ai.enabled is set.
type GeminiStrategy struct {
	client     *genai.Client
	model      *genai.GenerativeModel
	categories []string
	fallback   string
	timeout    time.Duration
	logger     logging.Logger
}

// NewGeminiStrategy creates the AI strategy from the application
// configuration. knownCategories constrains the model's answer; a reply
// outside the list maps to the configured fallback category.
func NewGeminiStrategy(cfg *config.Config, knownCategories []string, logger logging.Logger) (*GeminiStrategy, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if !cfg.AI.Enabled {
		return nil, fmt.Errorf("AI categorization is disabled")
	}

	apiKey := cfg.AI.APIKey
	if apiKey == "" {
		apiKey = config.GetGeminiAPIKey()
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiStrategy{
		client:     client,
		model:      client.GenerativeModel(cfg.AI.Model),
		categories: knownCategories,
		fallback:   cfg.AI.FallbackCategory,
		timeout:    time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		logger:     logger,
	}, nil
}

// Name returns the strategy name for logging.
func (s *GeminiStrategy) Name() string {
	return "Gemini"
}

// Close releases the underlying API client.
func (s *GeminiStrategy) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Categorize sends the transaction to the model and parses the category
// from its reply.
func (s *GeminiStrategy) Categorize(ctx context.Context, tx models.Transaction) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(s.buildPrompt(tx)))
	if err != nil {
		return "", false, s.categorizationError(tx, fmt.Errorf("Gemini API error: %w", err))
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", false, s.categorizationError(tx, fmt.Errorf("no response from Gemini API"))
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	category := extractCategory(responseText)
	if category == "" {
		return "", false, s.categorizationError(tx, fmt.Errorf("no category in response"))
	}

	resolved := s.resolveCategory(category)
	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: "description", Value: tx.Description},
		logging.Field{Key: logging.FieldCategory, Value: resolved},
	).Debug("Transaction categorized by Gemini")
	return resolved, true, nil
}

func (s *GeminiStrategy) categorizationError(tx models.Transaction, err error) error {
	return &parsererror.CategorizationError{
		Description: tx.Description,
		Strategy:    s.Name(),
		Err:         err,
	}
}

func (s *GeminiStrategy) buildPrompt(tx models.Transaction) string {
	direction := "debit"
	if tx.IsCredit() {
		direction = "credit"
	}
	return fmt.Sprintf(
		"Categorize this bank transaction into exactly one of the listed categories.\n"+
			"Description: %s\n"+
			"Amount: %s (%s)\n"+
			"Date: %s\n"+
			"Categories: %s\n"+
			"Reply with a single line in the form \"Category: <name>\".",
		tx.Description,
		tx.Amount.StringFixed(2),
		direction,
		tx.Date.Format("2006-01-02"),
		strings.Join(s.categories, ", "))
}

// resolveCategory maps the model's answer onto a known category name. An
// unknown answer falls back to the configured default.
func (s *GeminiStrategy) resolveCategory(answer string) string {
	for _, name := range s.categories {
		if strings.EqualFold(name, answer) {
			return name
		}
	}
	return s.fallback
}

// extractCategory pulls the category name from a "Category: <name>" line.
// A bare single-line answer is accepted too.
func extractCategory(responseText string) string {
	for _, line := range strings.Split(responseText, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "Category:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	trimmed := strings.TrimSpace(responseText)
	if trimmed != "" && !strings.Contains(trimmed, "\n") {
		return trimmed
	}
	return ""
}
