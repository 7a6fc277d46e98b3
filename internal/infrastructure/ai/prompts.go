package ai

// Templates para la generación de prompts con IA
const (
	generationPromptTemplateEN = `Generate a concise, one-sentence prompt for an AI coding assistant to address the following pull request.
The prompt should be a clear, actionable instruction. Reply with the prompt only, no preamble.

**Title:** %s
**Description:** %s
%s`

	generationPromptTemplateES = `Generá un prompt conciso, de una sola oración, para que un asistente de código con IA encare el siguiente pull request.
El prompt tiene que ser una instrucción clara y accionable. Respondé solo con el prompt, sin preámbulos.

**Título:** %s
**Descripción:** %s
%s`
)

// Secciones extra del modo enhanced
const (
	codeContextHeaderEN   = "**Relevant code from the discussion:**"
	codeContextHeaderES   = "**Código relevante de la discusión:**"
	reviewContextHeaderEN = "**Review comments:**"
	reviewContextHeaderES = "**Comentarios de review:**"
)

// GetGenerationPromptTemplate retorna el template del prompt según el idioma
func GetGenerationPromptTemplate(lang string) string {
	if lang == "es" {
		return generationPromptTemplateES
	}
	return generationPromptTemplateEN
}

func GetCodeContextHeader(lang string) string {
	if lang == "es" {
		return codeContextHeaderES
	}
	return codeContextHeaderEN
}

func GetReviewContextHeader(lang string) string {
	if lang == "es" {
		return reviewContextHeaderES
	}
	return reviewContextHeaderEN
}
