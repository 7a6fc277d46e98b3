package ports

import (
	"context"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// PromptGenerator produce el texto del prompt para un PR. Hay dos
// implementaciones: el template determinístico y el generador con IA.
type PromptGenerator interface {
	GeneratePrompt(ctx context.Context, input models.PromptInput) (string, error)
	ModelName() string
}
