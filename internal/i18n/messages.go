package i18n

var defaultMessagesEN = `
	[app_usage]
	other = "Extract GitHub PR discussions and turn them into prompts for AI coding assistants"

	[app_description]
	other = "mate-pr reads PR references from a CSV file, pulls each PR's metadata and comment thread from the GitHub API, and groups everything by repository. A second command turns that document into natural-language prompts, either with a deterministic template or with Gemini."

	[help_command_usage]
	other = "Show help"

	[extract_command_usage]
	other = "Fetch PR data for every reference in the input CSV and write the grouped JSON document"

	[extract_input_usage]
	other = "Path to the input CSV file (requires a pr_url column)"

	[extract_output_usage]
	other = "Path to the output JSON file (fully replaced on each run)"

	[extract_verify_usage]
	other = "Enable TLS certificate verification (disabled by default for proxies with self-signed certs)"

	[prompts_command_usage]
	other = "Generate one prompt per extracted PR and write the annotated JSON document"

	[prompts_input_usage]
	other = "Path to the extraction JSON document"

	[prompts_output_usage]
	other = "Path to the output JSON file with the generated prompts"

	[prompts_model_usage]
	other = "Gemini model to use in enhanced mode"

	[prompts_enhanced_usage]
	other = "Use the generative model with code snippets and review context instead of the plain template"

	[flag_verbose_usage]
	other = "Show informational logs"

	[flag_debug_usage]
	other = "Show debug logs"

	[flag_lang_usage]
	other = "Output language (en/es)"

	[error.missing_github_token]
	other = "GITHUB_TOKEN not found. Set it in your environment before running extract"

	[error.missing_gemini_key]
	other = "GEMINI_API_KEY not found. Set it or drop the --enhanced flag to use the template"

	[error.read_input]
	other = "Could not read input file {{.Path}}"

	[error.write_output]
	other = "Could not write output file {{.Path}}"

	[error.github_client]
	other = "Could not create the GitHub client"

	[error.gemini_client]
	other = "Could not create the Gemini client"

	[error.get_pr]
	other = "Could not fetch PR #{{.Number}} from {{.Owner}}/{{.Repo}}"

	[error.get_comments]
	other = "Could not fetch the comment thread for PR #{{.Number}}"

	[ui.extracting]
	other = "Extracting {{.Count}} pull requests..."

	[ui.extracting_pr]
	other = "Fetching {{.URL}}"

	[ui.extract_done]
	other = "Extracted {{.Extracted}} of {{.Total}} pull requests into {{.Path}}"

	[ui.extract_skipped]
	one = "{{.Count}} reference was skipped, check the logs"
	other = "{{.Count}} references were skipped, check the logs"

	[ui.generating]
	other = "Generating prompts for {{.Count}} pull requests..."

	[ui.generating_prompt]
	other = "Generating prompt for {{.URL}}"

	[ui.prompts_done]
	other = "Generated {{.Generated}} of {{.Total}} prompts into {{.Path}}"

	[ui.prompts_skipped]
	one = "{{.Count}} record was skipped, check the logs"
	other = "{{.Count}} records were skipped, check the logs"

	[factory_already_registered]
	other = "Factory '{{.FactoryName}}' is already registered"
	`

var defaultMessagesES = `
	[app_usage]
	other = "Extraé discusiones de PRs de GitHub y convertilas en prompts para asistentes de código"

	[app_description]
	other = "mate-pr lee referencias de PRs desde un CSV, trae los metadatos y el hilo de comentarios de cada PR desde la API de GitHub y agrupa todo por repositorio. Un segundo comando convierte ese documento en prompts en lenguaje natural, con un template determinístico o con Gemini."

	[help_command_usage]
	other = "Mostrar ayuda"

	[extract_command_usage]
	other = "Trae los datos de cada PR del CSV de entrada y escribe el documento JSON agrupado"

	[extract_input_usage]
	other = "Ruta del CSV de entrada (necesita una columna pr_url)"

	[extract_output_usage]
	other = "Ruta del JSON de salida (se reemplaza completo en cada corrida)"

	[extract_verify_usage]
	other = "Habilita la verificación de certificados TLS (deshabilitada por defecto para proxies con certs autofirmados)"

	[prompts_command_usage]
	other = "Genera un prompt por cada PR extraído y escribe el documento JSON anotado"

	[prompts_input_usage]
	other = "Ruta del documento JSON de extracción"

	[prompts_output_usage]
	other = "Ruta del JSON de salida con los prompts generados"

	[prompts_model_usage]
	other = "Modelo de Gemini a usar en modo enhanced"

	[prompts_enhanced_usage]
	other = "Usa el modelo generativo con snippets de código y contexto de review en vez del template"

	[flag_verbose_usage]
	other = "Mostrar logs informativos"

	[flag_debug_usage]
	other = "Mostrar logs de debug"

	[flag_lang_usage]
	other = "Idioma de salida (en/es)"

	[error.missing_github_token]
	other = "No se encontró GITHUB_TOKEN. Configuralo en tu entorno antes de correr extract"

	[error.missing_gemini_key]
	other = "No se encontró GEMINI_API_KEY. Configurala o sacá el flag --enhanced para usar el template"

	[error.read_input]
	other = "No se pudo leer el archivo de entrada {{.Path}}"

	[error.write_output]
	other = "No se pudo escribir el archivo de salida {{.Path}}"

	[error.github_client]
	other = "No se pudo crear el cliente de GitHub"

	[error.gemini_client]
	other = "No se pudo crear el cliente de Gemini"

	[error.get_pr]
	other = "No se pudo traer el PR #{{.Number}} de {{.Owner}}/{{.Repo}}"

	[error.get_comments]
	other = "No se pudo traer el hilo de comentarios del PR #{{.Number}}"

	[ui.extracting]
	other = "Extrayendo {{.Count}} pull requests..."

	[ui.extracting_pr]
	other = "Trayendo {{.URL}}"

	[ui.extract_done]
	other = "Se extrajeron {{.Extracted}} de {{.Total}} pull requests en {{.Path}}"

	[ui.extract_skipped]
	one = "Se salteó {{.Count}} referencia, revisá los logs"
	other = "Se saltearon {{.Count}} referencias, revisá los logs"

	[ui.generating]
	other = "Generando prompts para {{.Count}} pull requests..."

	[ui.generating_prompt]
	other = "Generando prompt para {{.URL}}"

	[ui.prompts_done]
	other = "Se generaron {{.Generated}} de {{.Total}} prompts en {{.Path}}"

	[ui.prompts_skipped]
	one = "Se salteó {{.Count}} registro, revisá los logs"
	other = "Se saltearon {{.Count}} registros, revisá los logs"

	[factory_already_registered]
	other = "La factory '{{.FactoryName}}' ya está registrada"
	`
