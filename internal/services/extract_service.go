package services

import (
	"context"
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/logger"
	"github.com/Tomas-vilte/MatePR/internal/regex"
)

// noDescription reemplaza la descripción cuando el PR no tiene cuerpo,
// igual que hacía el flujo original.
const noDescription = "No description provided"

type ExtractService struct {
	vcsClient ports.VCSClient
	trans     *i18n.Translations
}

// ExtractResult es el documento agrupado más los contadores de la corrida.
type ExtractResult struct {
	Document  *models.ResultDocument
	Extracted int
	Skipped   int
}

func NewExtractService(vcsClient ports.VCSClient, trans *i18n.Translations) *ExtractService {
	return &ExtractService{
		vcsClient: vcsClient,
		trans:     trans,
	}
}

// Extract procesa las referencias en orden y arma el documento agrupado por
// repositorio. Una fila que falla (URL malformada, error de red o de
// autorización) se registra y se saltea: nunca aborta la corrida.
func (s *ExtractService) Extract(ctx context.Context, references []models.PullRequestReference, progress func(msg string)) *ExtractResult {
	result := &ExtractResult{
		Document: models.NewResultDocument(),
	}

	for _, ref := range references {
		if progress != nil {
			progress(s.trans.GetMessage("ui.extracting_pr", 0, map[string]interface{}{
				"URL": ref.PRURL,
			}))
		}

		owner, repo, number, err := ParsePullRequestURL(ref.PRURL)
		if err != nil {
			logger.Warn(ctx, "referencia salteada", "pr_url", ref.PRURL, "error", err)
			result.Skipped++
			continue
		}

		record, err := s.vcsClient.GetPullRequest(ctx, owner, repo, number)
		if err != nil {
			logger.Warn(ctx, "referencia salteada", "pr_url", ref.PRURL, "error", err)
			result.Skipped++
			continue
		}

		// el documento conserva la URL tal cual vino en el CSV
		record.URL = ref.PRURL
		if record.Description == "" {
			record.Description = noDescription
		}
		if record.Comments == nil {
			record.Comments = []models.CommentRecord{}
		}

		result.Document.Append(s.repoKey(ref, repo), record)
		result.Extracted++
	}

	return result
}

// repoKey elige la clave de agrupación: el repo_name del CSV si vino,
// después el nombre derivado del repo_url y por último el parseado de la URL
// del PR.
func (s *ExtractService) repoKey(ref models.PullRequestReference, parsedRepo string) string {
	if ref.RepoName != "" {
		return ref.RepoName
	}
	if ref.RepoURL != "" {
		if match := regex.HTTPSRepo.FindStringSubmatch(strings.TrimSuffix(ref.RepoURL, "/")); match != nil {
			return match[3]
		}
	}
	return parsedRepo
}
