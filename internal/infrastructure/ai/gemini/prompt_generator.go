package gemini

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/ai"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var (
	_ ports.PromptGenerator = (*GeminiPromptGenerator)(nil)
	_ io.Closer             = (*GeminiPromptGenerator)(nil)
)

// GeminiPromptGenerator es el modo enhanced: arma el prompt con el contexto
// del PR (snippets de código y comentarios de review) y se lo pide a Gemini.
type GeminiPromptGenerator struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	lang      string
	trans     *i18n.Translations
}

func NewGeminiPromptGenerator(ctx context.Context, apiKey, modelName, lang string, trans *i18n.Translations) (*GeminiPromptGenerator, error) {
	if apiKey == "" {
		msg := trans.GetMessage("error.missing_gemini_key", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", trans.GetMessage("error.gemini_client", 0, nil), err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.3)

	return &GeminiPromptGenerator{
		client:    client,
		model:     model,
		modelName: modelName,
		lang:      lang,
		trans:     trans,
	}, nil
}

func (g *GeminiPromptGenerator) GeneratePrompt(ctx context.Context, input models.PromptInput) (string, error) {
	prompt := g.buildPrompt(input)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("error al generar contenido: %w", err)
	}

	generated := strings.TrimSpace(formatResponse(resp))
	if generated == "" {
		return "", fmt.Errorf("respuesta vacía de la IA")
	}

	return generated, nil
}

func (g *GeminiPromptGenerator) ModelName() string {
	return g.modelName
}

func (g *GeminiPromptGenerator) Close() error {
	return g.client.Close()
}

func (g *GeminiPromptGenerator) buildPrompt(input models.PromptInput) string {
	var extras strings.Builder

	if len(input.CodeSnippets) > 0 {
		extras.WriteString("\n")
		extras.WriteString(ai.GetCodeContextHeader(g.lang))
		extras.WriteString("\n")
		for _, snippet := range input.CodeSnippets {
			extras.WriteString("```\n")
			extras.WriteString(strings.TrimRight(snippet, "\n"))
			extras.WriteString("\n```\n")
		}
	}

	if len(input.ReviewComments) > 0 {
		extras.WriteString("\n")
		extras.WriteString(ai.GetReviewContextHeader(g.lang))
		extras.WriteString("\n")
		for _, comment := range input.ReviewComments {
			extras.WriteString("- ")
			extras.WriteString(comment)
			extras.WriteString("\n")
		}
	}

	template := ai.GetGenerationPromptTemplate(g.lang)
	return fmt.Sprintf(template, input.Title, input.Description, extras.String())
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return formattedContent.String()
}
