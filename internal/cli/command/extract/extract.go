package extract

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MatePR/internal/config"
	domainerrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/input"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/storage"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MatePR/internal/logger"
	"github.com/Tomas-vilte/MatePR/internal/services"
	"github.com/Tomas-vilte/MatePR/internal/ui"
	"github.com/urfave/cli/v3"
)

type ExtractCommand struct{}

func NewExtractCommand() *ExtractCommand {
	return &ExtractCommand{}
}

func (c *ExtractCommand) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "extract",
		Aliases: []string{"x"},
		Usage:   t.GetMessage("extract_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input-file",
				Aliases: []string{"i"},
				Usage:   t.GetMessage("extract_input_usage", 0, nil),
				Value:   "prs_to_extract.csv",
			},
			&cli.StringFlag{
				Name:    "output-file",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("extract_output_usage", 0, nil),
				Value:   "pr_data.json",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: t.GetMessage("extract_verify_usage", 0, nil),
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
			}

			// sin token no se hace ninguna llamada de red
			if config.GithubToken == "" {
				return domainerrors.NewConfigError(cfg.EnvGithubToken, t.GetMessage("error.missing_github_token", 0, nil), nil)
			}

			inputFile := cmd.String("input-file")
			outputFile := cmd.String("output-file")

			source := input.NewCSVReferenceSource(inputFile)
			references, err := source.ReadReferences()
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.read_input", 0, map[string]interface{}{
					"Path": inputFile,
				}), err)
			}

			client, err := github.NewGitHubClient(github.ClientOptions{
				Token:     config.GithubToken,
				BaseURL:   config.GithubBaseURL,
				VerifyTLS: cmd.Bool("verify"),
			}, t)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("error.github_client", 0, nil), err)
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("ui.extracting", 0, map[string]interface{}{
				"Count": len(references),
			}))
			spinner.Start()

			service := services.NewExtractService(client, t)
			result := service.Extract(ctx, references, func(msg string) {
				spinner.UpdateMessage(msg)
			})

			if err := storage.WriteDocument(outputFile, result.Document); err != nil {
				spinner.Error(t.GetMessage("error.write_output", 0, map[string]interface{}{
					"Path": outputFile,
				}))
				return err
			}

			spinner.Success(t.GetMessage("ui.extract_done", 0, map[string]interface{}{
				"Extracted": result.Extracted,
				"Total":     len(references),
				"Path":      outputFile,
			}))

			if result.Skipped > 0 {
				fmt.Printf("%s %s\n", ui.WarningEmoji, t.GetMessage("ui.extract_skipped", result.Skipped, map[string]interface{}{
					"Count": result.Skipped,
				}))
			}

			return nil
		},
	}
}
