package errors

import "fmt"

// ConfigError representa un error de configuración. Es fatal: aborta la
// ejecución antes de cualquier llamada de red.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// RequestError representa un fallo al procesar una referencia: URL malformada,
// error HTTP o de autorización. Se registra y se saltea la fila, la corrida
// continúa con el resto.
type RequestError struct {
	URL    string
	Reason string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request error [%s]: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("request error [%s]: %s", e.URL, e.Reason)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError crea un nuevo error de request
func NewRequestError(url, reason string, err error) *RequestError {
	return &RequestError{
		URL:    url,
		Reason: reason,
		Err:    err,
	}
}

// GenerationError representa un fallo del modelo generativo para un PR
// (cuota, red, respuesta malformada). Se registra y se saltea el registro.
type GenerationError struct {
	PRURL string
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation error [%s] modelo %s: %v", e.PRURL, e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError crea un nuevo error de generación
func NewGenerationError(prURL, model string, err error) *GenerationError {
	return &GenerationError{
		PRURL: prURL,
		Model: model,
		Err:   err,
	}
}
