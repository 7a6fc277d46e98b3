package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	domainerrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
)

var _ ports.ReferenceSource = (*CSVReferenceSource)(nil)

// Columnas del CSV de entrada. Solo pr_url es obligatoria.
const (
	columnPRURL    = "pr_url"
	columnRepoName = "repo_name"
	columnRepoURL  = "repo_url"
)

// CSVReferenceSource lee las referencias de PR de un CSV con fila de
// encabezado, en el orden del archivo.
type CSVReferenceSource struct {
	path string
}

func NewCSVReferenceSource(path string) *CSVReferenceSource {
	return &CSVReferenceSource{path: path}
}

func (s *CSVReferenceSource) ReadReferences() ([]models.PullRequestReference, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, domainerrors.NewConfigError("input-file", fmt.Sprintf("no se pudo abrir %s", s.path), err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domainerrors.NewConfigError("input-file", "no se pudo leer la fila de encabezado", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	urlIdx, ok := columns[columnPRURL]
	if !ok {
		return nil, domainerrors.NewConfigError("input-file", fmt.Sprintf("falta la columna obligatoria %q", columnPRURL), nil)
	}
	nameIdx, hasName := columns[columnRepoName]
	repoURLIdx, hasRepoURL := columns[columnRepoURL]

	var references []models.PullRequestReference
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domainerrors.NewConfigError("input-file", "fila de CSV inválida", err)
		}

		ref := models.PullRequestReference{
			PRURL: strings.TrimSpace(row[urlIdx]),
		}
		if hasName && nameIdx < len(row) {
			ref.RepoName = strings.TrimSpace(row[nameIdx])
		}
		if hasRepoURL && repoURLIdx < len(row) {
			ref.RepoURL = strings.TrimSpace(row[repoURLIdx])
		}
		references = append(references, ref)
	}

	return references, nil
}
