package models

type (
	// PullRequestReference es una fila del CSV de entrada. Solo la URL es
	// obligatoria para poder hacer el fetch.
	PullRequestReference struct {
		RepoName string
		RepoURL  string
		PRURL    string
	}

	// PullRequestRecord contiene la información extraída de una Pull Request,
	// inmutable una vez agregada al documento de salida.
	PullRequestRecord struct {
		URL         string          `json:"url"`
		Title       string          `json:"title"`
		Description string          `json:"description"`
		State       string          `json:"state"`
		CreatedAt   string          `json:"created_at"`
		UpdatedAt   string          `json:"updated_at"`
		Comments    []CommentRecord `json:"comments"`
	}

	// CommentRecord representa un comentario del hilo del PR. Los comentarios
	// de review llevan además el archivo, la línea y el tipo.
	CommentRecord struct {
		Author    string `json:"author"`
		Body      string `json:"body"`
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
		File      string `json:"file,omitempty"`
		Line      int    `json:"line,omitempty"`
		Type      string `json:"type,omitempty"`
	}

	// PRSummary es el resumen mínimo del PR que acompaña a cada prompt generado.
	PRSummary struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	}

	// PromptRecord es el resultado de generar un prompt para un PR.
	PromptRecord struct {
		OriginalPR      PRSummary `json:"original_pr"`
		GeneratedPrompt string    `json:"generated_prompt"`
		Timestamp       string    `json:"timestamp"`
		ModelUsed       string    `json:"model_used"`
	}

	// PromptInput es el contexto que recibe el generador de prompts.
	// CodeSnippets y ReviewComments solo se completan en modo enhanced.
	PromptInput struct {
		Title          string
		Description    string
		URL            string
		CodeSnippets   []string
		ReviewComments []string
	}
)

// Estados posibles de un PR en el documento de salida.
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateMerged = "merged"
)

// CommentTypeReview marca los comentarios hechos sobre el diff.
const CommentTypeReview = "review_comment"
