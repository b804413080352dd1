package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/frahmantamala/ops-dashboard/internal/talent"
)

const systemPrompt = `You are a recruiting assistant for an operations team.
Assess the candidate using only the profile you are given.
Answer with a single JSON object with the keys "summary" (string), "strengths" (array of strings),
"concerns" (array of strings) and "recommendation" (one of "strong_fit", "consider", "review").`

type OpenAIAnalyzer struct {
	client openai.Client
	model  string
	logger *slog.Logger
	now    func() time.Time
}

func NewOpenAIAnalyzer(apiKey, baseURL, model string, logger *slog.Logger) *OpenAIAnalyzer {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIAnalyzer{
		client: openai.NewClient(opts...),
		model:  model,
		logger: logger,
		now:    time.Now,
	}
}

func (a *OpenAIAnalyzer) Name() string {
	return "openai"
}

type modelAnswer struct {
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	Concerns       []string `json:"concerns"`
	Recommendation string   `json:"recommendation"`
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, t *talent.Talent) (*talent.Analysis, error) {
	profile, err := json.Marshal(struct {
		Name            string   `json:"name"`
		Category        string   `json:"category"`
		Rating          float64  `json:"rating"`
		ExperienceYears int      `json:"experienceYears"`
		Skills          []string `json:"skills"`
		Location        string   `json:"location"`
		Summary         string   `json:"summary,omitempty"`
	}{t.Name, t.Category, t.Rating, t.ExperienceYears, t.Skills, t.Location, t.Summary})
	if err != nil {
		return nil, fmt.Errorf("encode talent profile: %w", err)
	}

	response, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(string(profile)),
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(600),
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(response.Choices) == 0 {
		return nil, errors.New("no response from model")
	}

	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		return nil, errors.New("empty response from model")
	}

	analysis := &talent.Analysis{
		TalentID:    t.ID,
		Strengths:   []string{},
		Concerns:    []string{},
		Analyzer:    a.Name(),
		GeneratedAt: a.now().UTC(),
	}

	var answer modelAnswer
	if err := json.Unmarshal([]byte(stripFence(content)), &answer); err != nil {
		a.logger.WarnContext(ctx, "model answer is not JSON, using it as summary", "talent_id", t.ID)
		analysis.Summary = content
		analysis.Recommendation = RecommendationReview
		return analysis, nil
	}

	analysis.Summary = answer.Summary
	if answer.Strengths != nil {
		analysis.Strengths = answer.Strengths
	}
	if answer.Concerns != nil {
		analysis.Concerns = answer.Concerns
	}
	analysis.Recommendation = normalizeRecommendation(answer.Recommendation)
	return analysis, nil
}

// stripFence removes a surrounding ```json fence some models add.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func normalizeRecommendation(r string) string {
	switch r = strings.ToLower(strings.TrimSpace(r)); r {
	case RecommendationStrongFit, RecommendationConsider, RecommendationReview:
		return r
	default:
		return RecommendationReview
	}
}

// New picks the OpenAI analyzer when an API key is configured.
func New(apiKey, baseURL, model string, logger *slog.Logger) talent.Analyzer {
	if strings.TrimSpace(apiKey) == "" {
		logger.Info("no AI api key configured, using rule based talent analysis")
		return NewRuleBasedAnalyzer()
	}
	return NewOpenAIAnalyzer(apiKey, baseURL, model, logger)
}
