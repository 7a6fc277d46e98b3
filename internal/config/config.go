package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	Language      string `json:"language"`
	DefaultModel  string `json:"default_model"`
	GithubBaseURL string `json:"github_base_url,omitempty"`
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`
	PathFile      string `json:"path_file"`

	// GithubToken nunca se persiste, solo viene del entorno.
	GithubToken string `json:"-"`
}

const (
	defaultLang  = "en"
	defaultModel = "gemini-1.5-flash"

	// Variables de entorno, mismas que usaba el flujo con .env
	EnvGithubToken   = "GITHUB_TOKEN"
	EnvGithubBaseURL = "GITHUB_BASE_URL"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".mate-pr")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	config.ApplyEnv()

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:     defaultLang,
		DefaultModel: defaultModel,
		PathFile:     path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	config.ApplyEnv()

	return config, nil
}

// ApplyEnv pisa la configuración persistida con las variables de entorno.
// El token de GitHub solo existe acá.
func (c *Config) ApplyEnv() {
	if token := os.Getenv(EnvGithubToken); token != "" {
		c.GithubToken = token
	}
	if baseURL := os.Getenv(EnvGithubBaseURL); baseURL != "" {
		c.GithubBaseURL = baseURL
	}
	if apiKey := os.Getenv(EnvGeminiAPIKey); apiKey != "" {
		c.GeminiAPIKey = apiKey
	}
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.DefaultModel == "" {
		config.DefaultModel = defaultModel
	}
	if config.Language != "en" && config.Language != "es" {
		return fmt.Errorf("idioma no soportado: %s", config.Language)
	}
	return nil
}
