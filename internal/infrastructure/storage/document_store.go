package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// WriteDocument serializa el documento con indentación y reemplaza por
// completo lo que hubiera en path. No hay merge entre corridas.
func WriteDocument(path string, document any) error {
	data, err := json.MarshalIndent(document, "", "    ")
	if err != nil {
		return fmt.Errorf("error al codificar el documento: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error al escribir %s: %w", path, err)
	}

	return nil
}

// ReadResultDocument carga el documento de extracción conservando el orden
// de los repositorios.
func ReadResultDocument(path string) (*models.ResultDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error al leer %s: %w", path, err)
	}

	document := models.NewResultDocument()
	if err := json.Unmarshal(data, document); err != nil {
		return nil, fmt.Errorf("error al decodificar %s: %w", path, err)
	}

	return document, nil
}
