// Package ai wraps the chat-completions client behind domain operations:
// review generation, insights, and the prompt-specific endpoint helpers.
// Model output is untrusted free text; nothing leaves this package without
// passing through the JSON extraction pipeline and, for reviews, the
// sanitizer.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prepforge/prepforge/internal/groq"
	"github.com/prepforge/prepforge/pkg/model"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no AI credential was supplied. It is the
// one non-recoverable error class here: callers surface it instead of
// degrading.
var ErrNotConfigured = errors.New("AI credential is not configured")

// ChatCompleter is the slice of the groq client the generator needs.
type ChatCompleter interface {
	Chat(ctx context.Context, req groq.ChatRequest) (string, error)
}

type Generator struct {
	client ChatCompleter
	log    *zap.SugaredLogger
}

// NewGenerator wires the generator. A nil client means "not configured" and
// every call will fail with ErrNotConfigured.
func NewGenerator(client ChatCompleter, log *zap.Logger) *Generator {
	return &Generator{client: client, log: log.Sugar()}
}

func (g *Generator) chat(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	if g.client == nil {
		return "", ErrNotConfigured
	}
	return g.client.Chat(ctx, groq.ChatRequest{
		Messages: []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
}

// GenerateReview synthesizes a review for a company/role pair with no seed
// match. Any upstream failure other than a missing credential degrades to
// the deterministic fallback review, never to an error: the read path must
// stay usable.
func (g *Generator) GenerateReview(ctx context.Context, company, role string) (model.Review, error) {
	text, err := g.chat(ctx, reviewSystem, fmt.Sprintf(reviewUserTmpl, role, company), 1200, 0.7)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return model.Review{}, err
		}
		g.log.Warnw("review generation failed, using fallback", "company", company, "role", role, "err", err)
		return FallbackReview(company, role), nil
	}

	raw, err := ExtractJSONObject(text)
	if err != nil {
		g.log.Warnw("review reply unparsable, using fallback", "company", company, "role", role)
		return FallbackReview(company, role), nil
	}

	r := model.SanitizeReview(raw)
	r.Author = model.AuthorAI
	if r.Company == "" {
		r.Company = company
	}
	if r.Role == "" {
		r.Role = role
	}
	return r, nil
}

// FallbackReview is the deterministic stub used when generation or parsing
// fails. Its author tag marks the provenance.
func FallbackReview(company, role string) model.Review {
	return model.Review{
		Company:    company,
		Role:       role,
		Experience: model.ExperienceNeutral,
		Difficulty: "Medium",
		Rating:     3,
		InterviewProcess: fmt.Sprintf("The %s interview at %s typically includes a technical screen "+
			"followed by onsite rounds covering coding, system design and behavioral questions.", role, company),
		QuestionsAsked: []string{
			"Tell me about yourself",
			"Describe a challenging project you worked on",
			"Solve a data structures problem on a whiteboard",
		},
		PreparationTips: "Practice common coding problems, review the fundamentals for the role, and research the company beforehand.",
		Author:          model.AuthorSystem,
	}.Sanitize()
}

// GenerateInsights enriches a submitted review. Insights are strictly
// best-effort: every failure comes back as an error and the caller proceeds
// with nil.
func (g *Generator) GenerateInsights(ctx context.Context, r model.Review) (*model.Insights, error) {
	user := fmt.Sprintf(insightsUserTmpl,
		r.Company, r.Role, r.Experience, r.Difficulty, r.Rating,
		r.InterviewProcess, strings.Join(r.QuestionsAsked, "; "), r.PreparationTips)

	text, err := g.chat(ctx, insightsSystem, user, 600, 0.3)
	if err != nil {
		return nil, err
	}
	var ins model.Insights
	if err := ExtractJSONInto(text, &ins); err != nil {
		return nil, err
	}
	return &ins, nil
}

// generateObject is shared by the prompt pass-through endpoints: one chat
// call, one extraction, no fallback.
func (g *Generator) generateObject(ctx context.Context, system, user string, maxTokens int) (map[string]any, error) {
	text, err := g.chat(ctx, system, user, maxTokens, 0.4)
	if err != nil {
		return nil, err
	}
	return ExtractJSONObject(text)
}

func (g *Generator) AnalyzeCode(ctx context.Context, code, language string) (map[string]any, error) {
	return g.generateObject(ctx, analyzeCodeSystem, fmt.Sprintf(analyzeCodeUserTmpl, language, code), 900)
}

func (g *Generator) Hint(ctx context.Context, title, description, userCode string) (map[string]any, error) {
	return g.generateObject(ctx, hintSystem, fmt.Sprintf(hintUserTmpl, title, description, userCode), 300)
}

// GenerateMCQs asks for count questions and returns whatever parses; the
// model is not trusted to honor the count.
func (g *Generator) GenerateMCQs(ctx context.Context, topic, difficulty string, count int) ([]model.MCQ, error) {
	text, err := g.chat(ctx, mcqSystem, fmt.Sprintf(mcqUserTmpl, count, difficulty, topic), 1800, 0.5)
	if err != nil {
		return nil, err
	}
	var out struct {
		MCQs []model.MCQ `json:"mcqs"`
	}
	if err := ExtractJSONInto(text, &out); err != nil {
		return nil, err
	}
	return out.MCQs, nil
}

func (g *Generator) MockInterview(ctx context.Context, role, level string) (map[string]any, error) {
	return g.generateObject(ctx, mockInterviewSystem, fmt.Sprintf(mockInterviewUserTmpl, level, role), 1500)
}

func (g *Generator) AnalyzeResume(ctx context.Context, resumeText string) (map[string]any, error) {
	if len(resumeText) > 12000 {
		resumeText = resumeText[:12000]
	}
	return g.generateObject(ctx, resumeSystem, resumeText, 900)
}

func (g *Generator) StudyPlan(ctx context.Context, goal string, weeks int) (map[string]any, error) {
	return g.generateObject(ctx, studyPlanSystem, fmt.Sprintf(studyPlanUserTmpl, weeks, goal), 1500)
}

func (g *Generator) CompanyInsights(ctx context.Context, company string) (map[string]any, error) {
	return g.generateObject(ctx, companyInsightsSystem, "Company: "+company, 900)
}

// ExtractReview converts fetched page text into a structured review for the
// import endpoint. Unlike GenerateReview there is no stub fallback: an
// unparsable page is an error the handler reports.
func (g *Generator) ExtractReview(ctx context.Context, pageText string) (model.Review, error) {
	if len(pageText) > 10000 {
		pageText = pageText[:10000]
	}
	text, err := g.chat(ctx, extractReviewSystem, fmt.Sprintf(extractReviewUserTmpl, pageText), 1200, 0)
	if err != nil {
		return model.Review{}, err
	}
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return model.Review{}, fmt.Errorf("parse review from page: %w", err)
	}
	return model.SanitizeReview(raw), nil
}
