package ports

import "github.com/Tomas-vilte/MatePR/internal/domain/models"

// ReferenceSource entrega las referencias de PR a extraer, en el orden del
// archivo de entrada.
type ReferenceSource interface {
	ReadReferences() ([]models.PullRequestReference, error)
}
