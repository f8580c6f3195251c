package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"withme/internal/models/response_models"
	"withme/pkg/utils"
)

type SuggestServiceInterface interface {
	SuggestItinerary(ctx context.Context, destination string, dayCount int, interests []string) (*response_models.SuggestedItinerary, error)
}

type SuggestService struct {
	client *openai.Client // nil when no API key is configured
	model  string
	logger *zap.Logger
}

func NewSuggestService(apiKey string, logger *zap.Logger) SuggestServiceInterface {
	s := &SuggestService{model: openai.GPT4oMini, logger: logger}
	if apiKey == "" {
		logger.Warn("openai api key missing, itinerary suggestions disabled")
		return s
	}
	s.client = openai.NewClient(apiKey)
	return s
}

const suggestSchema = `{
  "destination": "string",
  "days": [
    {
      "day": 1,
      "activities": [
        {"start_time":"09:00","end_time":"11:00","title":"string","description":"string"}
      ]
    }
  ]
}`

// SuggestItinerary asks the model for day-by-day activity ideas as strict
// JSON matching suggestSchema.
func (s *SuggestService) SuggestItinerary(ctx context.Context, destination string, dayCount int, interests []string) (*response_models.SuggestedItinerary, error) {
	if s.client == nil {
		return nil, utils.ErrSuggestDisabled
	}
	if destination == "" {
		return nil, utils.ErrInvalidInput
	}
	if dayCount < 1 || dayCount > 30 {
		return nil, utils.ErrInvalidInput
	}

	prompt := fmt.Sprintf(
		"Plan %d days in %s. Interests: %s. Return JSON only, exactly matching this schema:\n%s",
		dayCount, destination, strings.Join(interests, ", "), suggestSchema)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a travel planner. Respond with JSON only."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		s.logger.Error("suggestion request failed", zap.String("destination", destination), zap.Error(err))
		return nil, utils.ErrUpstreamRejected
	}
	if len(resp.Choices) == 0 {
		return nil, utils.ErrUpstreamRejected
	}

	var out response_models.SuggestedItinerary
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		s.logger.Warn("suggestion response was not valid JSON", zap.Error(err))
		return nil, utils.ErrUpstreamRejected
	}
	if out.Destination == "" {
		out.Destination = destination
	}
	return &out, nil
}
