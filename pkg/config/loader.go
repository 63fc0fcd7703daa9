package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// CorvidYAMLConfig represents the complete corvid.yaml file structure.
type CorvidYAMLConfig struct {
	System         *SystemYAMLConfig   `yaml:"system"`
	Defaults       *Defaults           `yaml:"defaults"`
	Pipeline       *PipelineConfig     `yaml:"pipeline"`
	Tags           *WorkflowTagConfig  `yaml:"tags"`
	Confirmation   *ConfirmationConfig `yaml:"confirmation"`
	Queue          *QueueConfig        `yaml:"auto_processing"`
	VectorSearch   *VectorSearchConfig `yaml:"vector_search"`
	Retention      *RetentionConfig    `yaml:"retention"`
	Debug          *DebugConfig        `yaml:"debug"`
	CustomFields   *CustomFieldRegistry `yaml:"custom_fields"`
	PromptLanguage string              `yaml:"prompt_language"`
}

// SystemYAMLConfig is an alias kept distinct from SystemConfig so that
// corvid.yaml's "system" key maps 1:1 onto the connection-settings struct.
type SystemYAMLConfig = SystemConfig

// PromptsYAMLConfig represents the complete prompts.yaml file structure.
type PromptsYAMLConfig struct {
	ReferenceLanguage string                    `yaml:"reference_language"`
	Templates         map[string]PromptTemplate `yaml:"templates"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load corvid.yaml and prompts.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in defaults with user-defined overrides
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("configuration initialized",
		"stages_enabled", stats.StagesEnabled,
		"custom_fields", stats.CustomFields,
		"prompts", stats.Prompts)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	corvidYAML, err := loader.loadCorvidYAML()
	if err != nil {
		return nil, NewLoadError("corvid.yaml", err)
	}

	promptsYAML, err := loader.loadPromptsYAML()
	if err != nil {
		return nil, NewLoadError("prompts.yaml", err)
	}

	defaults := corvidYAML.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}

	pipeline := DefaultPipelineConfig()
	if corvidYAML.Pipeline != nil {
		if err := mergo.Merge(pipeline, corvidYAML.Pipeline, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge pipeline config: %w", err)
		}
	}

	tags := DefaultWorkflowTagConfig()
	if corvidYAML.Tags != nil {
		if err := mergo.Merge(tags, corvidYAML.Tags, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge tags config: %w", err)
		}
	}
	tags.resolveReuse()

	confirmation := DefaultConfirmationConfig()
	if corvidYAML.Confirmation != nil {
		if err := mergo.Merge(confirmation, corvidYAML.Confirmation, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge confirmation config: %w", err)
		}
	}

	queue := DefaultQueueConfig()
	if corvidYAML.Queue != nil {
		if err := mergo.Merge(queue, corvidYAML.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge auto_processing config: %w", err)
		}
	}

	vectorSearch := DefaultVectorSearchConfig()
	if corvidYAML.VectorSearch != nil {
		if err := mergo.Merge(vectorSearch, corvidYAML.VectorSearch, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge vector_search config: %w", err)
		}
	}

	retention := DefaultRetentionConfig()
	if corvidYAML.Retention != nil {
		if err := mergo.Merge(retention, corvidYAML.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	debug := DefaultDebugConfig()
	if corvidYAML.Debug != nil {
		if err := mergo.Merge(debug, corvidYAML.Debug, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge debug config: %w", err)
		}
	}

	customFields := corvidYAML.CustomFields
	if customFields == nil {
		customFields = &CustomFieldRegistry{Fields: map[string]models.CustomFieldDef{}}
	}

	system := corvidYAML.System

	promptLanguage := corvidYAML.PromptLanguage
	if promptLanguage == "" {
		promptLanguage = promptsYAML.ReferenceLanguage
	}

	return &Config{
		configDir:      configDir,
		System:         system,
		Defaults:       defaults,
		Pipeline:       pipeline,
		Tags:           tags,
		Confirmation:   confirmation,
		Queue:          queue,
		VectorSearch:   vectorSearch,
		Retention:      retention,
		Debug:          debug,
		CustomFields:   customFields,
		Prompts: &PromptRegistry{
			ReferenceLanguage: promptsYAML.ReferenceLanguage,
			Templates:         promptsYAML.Templates,
		},
		PromptLanguage: promptLanguage,
	}, nil
}

func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadCorvidYAML() (*CorvidYAMLConfig, error) {
	var cfg CorvidYAMLConfig
	if err := l.loadYAML("corvid.yaml", &cfg); err != nil {
		return nil, err
	}
	if cfg.System == nil {
		cfg.System = DefaultSystemConfig()
	}
	return &cfg, nil
}

func (l *configLoader) loadPromptsYAML() (*PromptsYAMLConfig, error) {
	var cfg PromptsYAMLConfig
	cfg.Templates = make(map[string]PromptTemplate)
	if err := l.loadYAML("prompts.yaml", &cfg); err != nil {
		return nil, err
	}
	if cfg.ReferenceLanguage == "" {
		cfg.ReferenceLanguage = "en"
	}
	return &cfg, nil
}
