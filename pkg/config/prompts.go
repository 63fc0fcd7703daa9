package config

import (
	"bytes"
	"fmt"
	"text/template"
)

// PromptTemplate is one named, localized prompt. Vars documents the
// expected template variables for operator-facing validation errors; it is
// not enforced at render time beyond what text/template itself requires.
type PromptTemplate struct {
	Vars         []string          `yaml:"vars,omitempty"`
	Translations map[string]string `yaml:"translations"`
}

// PromptRegistry holds every named prompt template used by the stage
// engines (analyst + reviewer prompts per stage, schema-analysis prompt,
// summary prompt), each with per-language bodies.
type PromptRegistry struct {
	ReferenceLanguage string                    `yaml:"reference_language"`
	Templates         map[string]PromptTemplate `yaml:"templates"`
}

// Render executes the named template in the requested language, falling
// back to the registry's reference language when no translation exists
// for lang.
func (r *PromptRegistry) Render(name, lang string, data any) (string, error) {
	tmpl, ok := r.Templates[name]
	if !ok {
		return "", fmt.Errorf("%w: prompt template %q", ErrNotFound, name)
	}
	body, ok := tmpl.Translations[lang]
	if !ok {
		body, ok = tmpl.Translations[r.ReferenceLanguage]
		if !ok {
			return "", fmt.Errorf("%w: prompt template %q has no %q or reference-language body", ErrNotFound, name, lang)
		}
	}
	parsed, err := template.New(name).Parse(body)
	if err != nil {
		return "", fmt.Errorf("parsing prompt template %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := parsed.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering prompt template %q: %w", name, err)
	}
	return buf.String(), nil
}

// Names used across the stage engines; kept centralized so callers never
// hand-type template keys.
const (
	PromptTitleAnalyst           = "title.analyst"
	PromptTitleReviewer          = "title.reviewer"
	PromptCorrespondentAnalyst   = "correspondent.analyst"
	PromptCorrespondentReviewer  = "correspondent.reviewer"
	PromptDocumentTypeAnalyst    = "document_type.analyst"
	PromptDocumentTypeReviewer   = "document_type.reviewer"
	PromptTagsAnalyst            = "tags.analyst"
	PromptTagsReviewer           = "tags.reviewer"
	PromptCustomFieldsAnalyst    = "custom_fields.analyst"
	PromptCustomFieldsReviewer   = "custom_fields.reviewer"
	PromptDocumentLinksAnalyst   = "document_links.analyst"
	PromptDocumentLinksReviewer  = "document_links.reviewer"
	PromptSchemaAnalysis         = "schema_analysis.analyst"
	PromptSummary                = "summary.analyst"
)
