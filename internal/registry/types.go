// Package registry implements the client and batch operations for managing
// model configuration entries on a remote model registry service.
package registry

// ModelType classifies what a registered model serves.
type ModelType string

const (
	ModelTypeLLM       ModelType = "llm"
	ModelTypeEmbedding ModelType = "embedding"
	ModelTypeVLM       ModelType = "vlm"
	ModelTypeRerank    ModelType = "rerank"
	ModelTypeSTT       ModelType = "stt"
	ModelTypeTTS       ModelType = "tts"
)

// SupportedModelTypes returns the model types the registry accepts.
func SupportedModelTypes() []ModelType {
	return []ModelType{
		ModelTypeLLM,
		ModelTypeEmbedding,
		ModelTypeVLM,
		ModelTypeRerank,
		ModelTypeSTT,
		ModelTypeTTS,
	}
}

// IsValid reports whether the model type is one the registry accepts.
func (t ModelType) IsValid() bool {
	for _, known := range SupportedModelTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// DefaultModelFactory is the provider compatibility tag assumed when a
// record does not name one.
const DefaultModelFactory = "OpenAI-API-Compatible"

// ModelConfig describes one model endpoint to register.
type ModelConfig struct {
	ModelName    string    `json:"model_name"`
	ModelType    ModelType `json:"model_type"`
	BaseURL      string    `json:"base_url"`
	APIKey       string    `json:"api_key,omitempty"`
	DisplayName  string    `json:"display_name,omitempty"`
	ModelFactory string    `json:"model_factory,omitempty"`
	MaxTokens    int       `json:"max_tokens,omitempty"`
}

// Label returns the human-facing name for the model.
func (m ModelConfig) Label() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.ModelName
}

// RemoteModel is a model entry as reported by the registry's list endpoint.
type RemoteModel struct {
	ModelName    string `json:"model_name"`
	ModelType    string `json:"model_type"`
	DisplayName  string `json:"display_name"`
	ModelFactory string `json:"model_factory"`
	BaseURL      string `json:"base_url"`
}

// Label returns the human-facing name for the remote model entry.
func (m RemoteModel) Label() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.ModelName
}
