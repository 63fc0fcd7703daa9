package config

// PipelineConfig toggles which LLM-driven stages the orchestrator runs. A
// disabled stage is skipped, but the state machine still advances its tag
// as if done. OCR is never toggled off; it is the pipeline's entry
// point.
type PipelineConfig struct {
	Summary        bool `yaml:"summary"`
	SchemaAnalysis bool `yaml:"schema_analysis"`
	Title          bool `yaml:"title"`
	Correspondent  bool `yaml:"correspondent"`
	DocumentType   bool `yaml:"document_type"`
	Tags           bool `yaml:"tags"`
	CustomFields   bool `yaml:"custom_fields"`
	DocumentLinks  bool `yaml:"document_links"`
}

// DefaultPipelineConfig enables every optional stage.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		Summary:        true,
		SchemaAnalysis: true,
		Title:          true,
		Correspondent:  true,
		DocumentType:   true,
		Tags:           true,
		CustomFields:   true,
		DocumentLinks:  true,
	}
}

// EnabledCount reports how many optional stages are enabled, for startup
// logging.
func (p *PipelineConfig) EnabledCount() int {
	n := 0
	for _, enabled := range []bool{
		p.Summary, p.SchemaAnalysis, p.Title, p.Correspondent,
		p.DocumentType, p.Tags, p.CustomFields, p.DocumentLinks,
	} {
		if enabled {
			n++
		}
	}
	return n
}
