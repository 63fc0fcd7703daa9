package config

// VectorSearchConfig tunes the vector-store query used to filter
// document-link candidates.
type VectorSearchConfig struct {
	Enabled  bool    `yaml:"enabled"`
	TopK     int     `yaml:"top_k" validate:"omitempty,min=1,max=100"`
	MinScore float64 `yaml:"min_score" validate:"omitempty,min=0,max=1"`
}

// DefaultVectorSearchConfig returns sane defaults for semantic document
// linking.
func DefaultVectorSearchConfig() *VectorSearchConfig {
	return &VectorSearchConfig{
		Enabled:  true,
		TopK:     5,
		MinScore: 0.75,
	}
}
