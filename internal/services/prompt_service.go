package services

import (
	"context"
	"fmt"
	"time"

	domainerrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/logger"
	"github.com/Tomas-vilte/MatePR/internal/regex"
)

type PromptService struct {
	generator ports.PromptGenerator
	trans     *i18n.Translations
	enhanced  bool
	now       func() time.Time
}

// PromptResult es el documento de prompts más los contadores de la corrida.
type PromptResult struct {
	Document  *models.PromptDocument
	Generated int
	Skipped   int
}

func NewPromptService(generator ports.PromptGenerator, trans *i18n.Translations, enhanced bool) *PromptService {
	return &PromptService{
		generator: generator,
		trans:     trans,
		enhanced:  enhanced,
		now:       time.Now,
	}
}

// GeneratePrompts recorre el documento de extracción en orden y genera un
// prompt por PR. Un registro que falla (cuota, red, respuesta malformada)
// se registra y se saltea, los demás continúan. Un documento vacío produce
// un documento vacío, no un error.
func (s *PromptService) GeneratePrompts(ctx context.Context, document *models.ResultDocument, progress func(msg string)) *PromptResult {
	result := &PromptResult{
		Document: models.NewPromptDocument(),
	}

	for _, repoName := range document.Repos() {
		for _, record := range document.Records(repoName) {
			if progress != nil {
				progress(s.trans.GetMessage("ui.generating_prompt", 0, map[string]interface{}{
					"URL": record.URL,
				}))
			}

			prompt, err := s.generator.GeneratePrompt(ctx, s.buildInput(record))
			if err != nil {
				genErr := domainerrors.NewGenerationError(record.URL, s.generator.ModelName(), err)
				logger.Warn(ctx, "registro salteado", "pr_url", record.URL, "error", genErr)
				result.Skipped++
				continue
			}

			result.Document.Append(repoName, models.PromptRecord{
				OriginalPR: models.PRSummary{
					Title: record.Title,
					URL:   record.URL,
				},
				GeneratedPrompt: prompt,
				Timestamp:       s.now().UTC().Format(time.RFC3339),
				ModelUsed:       s.generator.ModelName(),
			})
			result.Generated++
		}
	}

	return result
}

func (s *PromptService) buildInput(record models.PullRequestRecord) models.PromptInput {
	input := models.PromptInput{
		Title:       record.Title,
		Description: record.Description,
		URL:         record.URL,
	}

	if !s.enhanced {
		return input
	}

	input.CodeSnippets = extractCodeSnippets(record)
	input.ReviewComments = extractReviewContext(record)

	return input
}

// extractCodeSnippets junta los bloques de código fenced de la descripción
// y de todos los comentarios, en orden de aparición.
func extractCodeSnippets(record models.PullRequestRecord) []string {
	var snippets []string

	collect := func(text string) {
		for _, match := range regex.FencedCodeBlock.FindAllStringSubmatch(text, -1) {
			if len(match) > 1 && match[1] != "" {
				snippets = append(snippets, match[1])
			}
		}
	}

	collect(record.Description)
	for _, comment := range record.Comments {
		collect(comment.Body)
	}

	return snippets
}

// extractReviewContext arma una línea por comentario de review, con el
// archivo y la línea sobre los que se hizo.
func extractReviewContext(record models.PullRequestRecord) []string {
	var context []string

	for _, comment := range record.Comments {
		if comment.Type != models.CommentTypeReview {
			continue
		}
		context = append(context, fmt.Sprintf("%s:%d (%s): %s", comment.File, comment.Line, comment.Author, comment.Body))
	}

	return context
}
