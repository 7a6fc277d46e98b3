package regex

import "regexp"

var (
	// PR URL patterns: se prueban en orden, de la más específica a la más
	// permisiva. Las de 4 grupos capturan el host enterprise primero.
	PRURLPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)/pull/(\d+)`),
		regexp.MustCompile(`^https://([^/]+\.github\.com)/([^/]+)/([^/]+)/pull/(\d+)`),
		regexp.MustCompile(`^https://([^/]+)/([^/]+)/([^/]+)/pull/(\d+)`),
		regexp.MustCompile(`^github\.com/([^/]+)/([^/]+)/pull/(\d+)`),
		regexp.MustCompile(`^([^/]+)/([^/]+)/pull/(\d+)`),
		regexp.MustCompile(`^([^/]+)/([^/]+)#(\d+)`),
	}

	// Markdown patterns
	FencedCodeBlock = regexp.MustCompile("(?s)```[a-zA-Z0-9_+-]*\n?(.*?)```")

	// Repo patterns
	HTTPSRepo = regexp.MustCompile(`^https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)
)
