package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/models"
)

var (
	ErrAIServiceNotConfigured = apierrors.Unavailable("AI job extraction is not configured")
	ErrPostingTextRequired    = apierrors.Validation("Text is required")
)

// JobDraft is a job posting extracted from free text. Nothing is persisted;
// an admin reviews the draft and submits it through the create endpoint.
type JobDraft struct {
	Title        string              `json:"title"`
	Company      string              `json:"company"`
	Description  string              `json:"description"`
	Requirements []string            `json:"requirements"`
	SalaryRange  string              `json:"salaryRange"`
	Type         models.JobType      `json:"type"`
	Location     string              `json:"location"`
	LocationType models.LocationType `json:"locationType"`
}

// JobExtractor turns pasted posting text into a draft.
type JobExtractor interface {
	ExtractJob(ctx context.Context, text string) (*JobDraft, error)
}

type AIService struct {
	client *openai.Client
	model  string
}

func NewAIService(apiKey, model string) *AIService {
	if model == "" {
		model = openai.GPT4o
	}
	return &AIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

const extractJobPrompt = `You extract structured job postings. Read the posting below and return one JSON object:
{
  "title": "job title",
  "company": "employer name",
  "description": "two or three sentence summary",
  "requirements": ["short requirement", "..."],
  "salaryRange": "salary as written, or empty",
  "type": "FULL_TIME | PART_TIME | CONTRACT | FREELANCE | INTERNSHIP",
  "location": "city/region, or empty",
  "locationType": "REMOTE | HYBRID | ONSITE"
}
Return JSON only.

Posting:
%s`

// ExtractJob asks the model for a structured draft of the posting.
func (s *AIService) ExtractJob(ctx context.Context, text string) (*JobDraft, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrPostingTextRequired
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf(extractJobPrompt, text),
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			Temperature: 0.2,
		},
	)
	if err != nil {
		return nil, apierrors.Internal("OpenAI API error", err)
	}

	if len(resp.Choices) == 0 {
		return nil, apierrors.Internal("no response from OpenAI", nil)
	}

	return ParseJobDraft(resp.Choices[0].Message.Content)
}

// ParseJobDraft decodes model output and normalizes enum fields to known values.
func ParseJobDraft(content string) (*JobDraft, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var draft JobDraft
	if err := json.Unmarshal([]byte(content), &draft); err != nil {
		return nil, apierrors.Internal("failed to parse AI response", err)
	}

	switch models.JobType(strings.ToUpper(string(draft.Type))) {
	case models.JobTypeFullTime, models.JobTypePartTime, models.JobTypeContract, models.JobTypeFreelance, models.JobTypeInternship:
		draft.Type = models.JobType(strings.ToUpper(string(draft.Type)))
	default:
		draft.Type = models.JobTypeFullTime
	}
	switch models.LocationType(strings.ToUpper(string(draft.LocationType))) {
	case models.LocationTypeRemote, models.LocationTypeHybrid, models.LocationTypeOnsite:
		draft.LocationType = models.LocationType(strings.ToUpper(string(draft.LocationType)))
	default:
		draft.LocationType = models.LocationTypeOnsite
	}
	if draft.Requirements == nil {
		draft.Requirements = []string{}
	}

	return &draft, nil
}
