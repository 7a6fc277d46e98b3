package ports

import (
	"context"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// VCSClient abstrae al proveedor de hosting (GitHub o una instancia
// enterprise). Devuelve el PR con su hilo de comentarios ya ordenado.
type VCSClient interface {
	GetPullRequest(ctx context.Context, owner, repo string, number int) (models.PullRequestRecord, error)
}
