package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
)

var _ ports.PromptGenerator = (*TemplateGenerator)(nil)

// TemplateModelName es el identificador que queda en model_used cuando no se
// usa un modelo generativo.
const TemplateModelName = "template"

// TemplateGenerator es el modo básico: un prompt determinístico armado solo
// con el título y la descripción del PR. No hace llamadas de red.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) GeneratePrompt(_ context.Context, input models.PromptInput) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Address the pull request %q (%s).", input.Title, input.URL)

	description := strings.TrimSpace(input.Description)
	if description != "" {
		fmt.Fprintf(&b, " Context: %s", firstLine(description))
	}

	return b.String(), nil
}

func (g *TemplateGenerator) ModelName() string {
	return TemplateModelName
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return s
}
