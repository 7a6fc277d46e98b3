package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResultDocument agrupa los PRs extraídos por nombre de repositorio.
// Un map común no sirve acá: el orden de los repos tiene que seguir el orden
// de primera aparición en el CSV, y encoding/json ordena las claves
// alfabéticamente. Por eso el documento guarda la lista de claves aparte y
// serializa a mano.
type ResultDocument struct {
	order  []string
	groups map[string][]PullRequestRecord
}

func NewResultDocument() *ResultDocument {
	return &ResultDocument{
		groups: make(map[string][]PullRequestRecord),
	}
}

// Append agrega un registro al grupo del repositorio, creando el grupo si no
// existía. El orden dentro del grupo es el orden de inserción.
func (d *ResultDocument) Append(repoName string, record PullRequestRecord) {
	if _, exists := d.groups[repoName]; !exists {
		d.order = append(d.order, repoName)
	}
	d.groups[repoName] = append(d.groups[repoName], record)
}

// Repos devuelve los nombres de repositorio en orden de primera aparición.
func (d *ResultDocument) Repos() []string {
	repos := make([]string, len(d.order))
	copy(repos, d.order)
	return repos
}

// Records devuelve los registros de un repositorio en orden de inserción.
func (d *ResultDocument) Records(repoName string) []PullRequestRecord {
	return d.groups[repoName]
}

// Len es la cantidad total de PRs en el documento.
func (d *ResultDocument) Len() int {
	total := 0
	for _, records := range d.groups {
		total += len(records)
	}
	return total
}

func (d *ResultDocument) MarshalJSON() ([]byte, error) {
	return marshalOrdered(d.order, func(repo string) (any, error) {
		return d.groups[repo], nil
	})
}

func (d *ResultDocument) UnmarshalJSON(data []byte) error {
	d.order = nil
	d.groups = make(map[string][]PullRequestRecord)
	return unmarshalOrdered(data, func(repo string, dec *json.Decoder) error {
		var records []PullRequestRecord
		if err := dec.Decode(&records); err != nil {
			return err
		}
		d.order = append(d.order, repo)
		d.groups[repo] = records
		return nil
	})
}

// PromptDocument agrupa los prompts generados por nombre de repositorio,
// con la misma semántica de orden que ResultDocument.
type PromptDocument struct {
	order  []string
	groups map[string][]PromptRecord
}

func NewPromptDocument() *PromptDocument {
	return &PromptDocument{
		groups: make(map[string][]PromptRecord),
	}
}

func (d *PromptDocument) Append(repoName string, record PromptRecord) {
	if _, exists := d.groups[repoName]; !exists {
		d.order = append(d.order, repoName)
	}
	d.groups[repoName] = append(d.groups[repoName], record)
}

func (d *PromptDocument) Repos() []string {
	repos := make([]string, len(d.order))
	copy(repos, d.order)
	return repos
}

func (d *PromptDocument) Records(repoName string) []PromptRecord {
	return d.groups[repoName]
}

func (d *PromptDocument) Len() int {
	total := 0
	for _, records := range d.groups {
		total += len(records)
	}
	return total
}

func (d *PromptDocument) MarshalJSON() ([]byte, error) {
	return marshalOrdered(d.order, func(repo string) (any, error) {
		return d.groups[repo], nil
	})
}

func (d *PromptDocument) UnmarshalJSON(data []byte) error {
	d.order = nil
	d.groups = make(map[string][]PromptRecord)
	return unmarshalOrdered(data, func(repo string, dec *json.Decoder) error {
		var records []PromptRecord
		if err := dec.Decode(&records); err != nil {
			return err
		}
		d.order = append(d.order, repo)
		d.groups[repo] = records
		return nil
	})
}

func marshalOrdered(order []string, value func(key string) (any, error)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')

		v, err := value(key)
		if err != nil {
			return nil, err
		}
		encodedValue, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// unmarshalOrdered recorre el objeto JSON con el decoder de tokens para
// conservar el orden de las claves, que json.Unmarshal sobre un map pierde.
func unmarshalOrdered(data []byte, entry func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("se esperaba un objeto JSON, se encontró %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("clave inválida en el documento: %v", keyTok)
		}
		if err := entry(key, dec); err != nil {
			return err
		}
	}

	// consume el '}' de cierre
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
