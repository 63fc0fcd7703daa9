package config

// LLMTransport selects which wire protocol pkg/llmclient speaks to the
// configured model endpoint. HTTP (OpenAI-compatible chat completions) is
// the only supported transport.
type LLMTransport string

const (
	// LLMTransportHTTP speaks the OpenAI-compatible chat completions API.
	LLMTransportHTTP LLMTransport = "http"
)

// IsValid reports whether the transport name is recognized.
func (t LLMTransport) IsValid() bool {
	return t == LLMTransportHTTP
}

// ModelRole names one of the roles the pipeline assigns to a concrete
// model: the large analyst, the small reviewer, embeddings, or
// translation/localization.
type ModelRole string

const (
	ModelRoleLarge       ModelRole = "large"
	ModelRoleSmall       ModelRole = "small"
	ModelRoleEmbedding   ModelRole = "embedding"
	ModelRoleTranslation ModelRole = "translation"
)

// IsValid reports whether the role name is recognized.
func (r ModelRole) IsValid() bool {
	switch r {
	case ModelRoleLarge, ModelRoleSmall, ModelRoleEmbedding, ModelRoleTranslation:
		return true
	default:
		return false
	}
}
