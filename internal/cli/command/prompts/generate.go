package prompts

import (
	"context"
	"fmt"
	"io"

	cfg "github.com/Tomas-vilte/MatePR/internal/config"
	domainerrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/ai"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/storage"
	"github.com/Tomas-vilte/MatePR/internal/logger"
	"github.com/Tomas-vilte/MatePR/internal/services"
	"github.com/Tomas-vilte/MatePR/internal/ui"
	"github.com/urfave/cli/v3"
)

type GeneratePromptsCommand struct{}

func NewGeneratePromptsCommand() *GeneratePromptsCommand {
	return &GeneratePromptsCommand{}
}

func (c *GeneratePromptsCommand) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "generate-prompts",
		Aliases: []string{"gp"},
		Usage:   t.GetMessage("prompts_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input-file",
				Aliases: []string{"i"},
				Usage:   t.GetMessage("prompts_input_usage", 0, nil),
				Value:   "pr_data.json",
			},
			&cli.StringFlag{
				Name:    "output-file",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("prompts_output_usage", 0, nil),
				Value:   "pr_prompts.json",
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("prompts_model_usage", 0, nil),
				Value:   config.DefaultModel,
			},
			&cli.BoolFlag{
				Name:    "enhanced",
				Aliases: []string{"e"},
				Usage:   t.GetMessage("prompts_enhanced_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: t.GetMessage("flag_verbose_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: t.GetMessage("flag_debug_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: t.GetMessage("flag_lang_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))

			if lang := cmd.String("lang"); lang != "" {
				if err := t.SetLanguage(lang); err != nil {
					return domainerrors.NewConfigError("lang", err.Error(), nil)
				}
				// el template de Gemini también sigue el idioma pedido
				config.Language = lang
			}

			inputFile := cmd.String("input-file")
			outputFile := cmd.String("output-file")
			enhanced := cmd.Bool("enhanced")

			document, err := storage.ReadResultDocument(inputFile)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.read_input", 0, map[string]interface{}{
					"Path": inputFile,
				}), err)
			}

			generator, err := c.buildGenerator(ctx, cmd, config, t, enhanced)
			if err != nil {
				return err
			}
			if closer, ok := generator.(io.Closer); ok {
				defer func() {
					_ = closer.Close()
				}()
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("ui.generating", 0, map[string]interface{}{
				"Count": document.Len(),
			}))
			spinner.Start()

			service := services.NewPromptService(generator, t, enhanced)
			result := service.GeneratePrompts(ctx, document, func(msg string) {
				spinner.UpdateMessage(msg)
			})

			if err := storage.WriteDocument(outputFile, result.Document); err != nil {
				spinner.Error(t.GetMessage("error.write_output", 0, map[string]interface{}{
					"Path": outputFile,
				}))
				return err
			}

			spinner.Success(t.GetMessage("ui.prompts_done", 0, map[string]interface{}{
				"Generated": result.Generated,
				"Total":     document.Len(),
				"Path":      outputFile,
			}))

			if result.Skipped > 0 {
				fmt.Printf("%s %s\n", ui.WarningEmoji, t.GetMessage("ui.prompts_skipped", result.Skipped, map[string]interface{}{
					"Count": result.Skipped,
				}))
			}

			return nil
		},
	}
}

// buildGenerator elige la implementación: Gemini en modo enhanced, template
// determinístico si no. Pedir enhanced sin API key es un error de
// configuración, no un fallback silencioso.
func (c *GeneratePromptsCommand) buildGenerator(ctx context.Context, cmd *cli.Command, config *cfg.Config, t *i18n.Translations, enhanced bool) (ports.PromptGenerator, error) {
	if !enhanced {
		return ai.NewTemplateGenerator(), nil
	}

	if config.GeminiAPIKey == "" {
		return nil, domainerrors.NewConfigError(cfg.EnvGeminiAPIKey, t.GetMessage("error.missing_gemini_key", 0, nil), nil)
	}

	generator, err := gemini.NewGeminiPromptGenerator(ctx, config.GeminiAPIKey, cmd.String("model"), config.Language, t)
	if err != nil {
		return nil, err
	}
	return generator, nil
}
