package services

import (
	"strconv"
	"strings"

	domainerrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/Tomas-vilte/MatePR/internal/regex"
)

// ParsePullRequestURL extrae owner, repo y número de PR de una URL.
// Acepta URLs de github.com, de instancias enterprise y las formas cortas
// "owner/repo/pull/123" y "owner/repo#123".
func ParsePullRequestURL(prURL string) (owner, repo string, number int, err error) {
	trimmed := strings.TrimSpace(prURL)

	for _, pattern := range regex.PRURLPatterns {
		match := pattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}

		groups := match[1:]
		var numberStr string
		if len(groups) == 4 {
			// el primer grupo es el host enterprise, no interesa
			owner, repo, numberStr = groups[1], groups[2], groups[3]
		} else {
			owner, repo, numberStr = groups[0], groups[1], groups[2]
		}

		number, err = strconv.Atoi(numberStr)
		if err != nil {
			return "", "", 0, domainerrors.NewRequestError(prURL, "número de PR inválido", err)
		}
		return owner, repo, number, nil
	}

	return "", "", 0, domainerrors.NewRequestError(prURL, "formato de URL de PR inválido", nil)
}
