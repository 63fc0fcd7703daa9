package config

import "github.com/codeready-toolchain/corvid/pkg/workflow"

// WorkflowTagConfig is the user-configurable mapping from stage name to
// DMS tag name. SchemaAnalysisDone and
// SchemaReview may reuse OCRDone's tag name when left blank; resolveReuse
// fills that in.
type WorkflowTagConfig struct {
	Pending            string `yaml:"pending"`
	OCRDone            string `yaml:"ocr_done"`
	SummaryDone        string `yaml:"summary_done"`
	SchemaReview       string `yaml:"schema_review,omitempty"`
	SchemaAnalysisDone string `yaml:"schema_analysis_done,omitempty"`
	TitleDone          string `yaml:"title_done"`
	CorrespondentDone  string `yaml:"correspondent_done"`
	DocumentTypeDone   string `yaml:"document_type_done"`
	TagsDone           string `yaml:"tags_done"`
	CustomFieldsDone   string `yaml:"custom_fields_done"`
	DocumentLinksDone  string `yaml:"document_links_done"`
	Processed          string `yaml:"processed"`
	ManualReview       string `yaml:"manual_review"`
	Failed             string `yaml:"failed"`
}

// DefaultWorkflowTagConfig mirrors the names used throughout spec
// scenarios ("llm-ocr-done", "llm-title-done", ...).
func DefaultWorkflowTagConfig() *WorkflowTagConfig {
	return &WorkflowTagConfig{
		Pending:            "llm-pending",
		OCRDone:            "llm-ocr-done",
		SummaryDone:        "llm-summary-done",
		SchemaReview:       "",
		SchemaAnalysisDone: "",
		TitleDone:          "llm-title-done",
		CorrespondentDone:  "llm-correspondent-done",
		DocumentTypeDone:   "llm-document-type-done",
		TagsDone:           "llm-tags-done",
		CustomFieldsDone:   "llm-custom-fields-done",
		DocumentLinksDone:  "llm-document-links-done",
		Processed:          "llm-processed",
		ManualReview:       "llm-manual-review",
		Failed:             "llm-failed",
	}
}

// resolveReuse fills SchemaAnalysisDone/SchemaReview from OCRDone when left
// unconfigured.
func (t *WorkflowTagConfig) resolveReuse() {
	if t.SchemaAnalysisDone == "" {
		t.SchemaAnalysisDone = t.OCRDone
	}
	if t.SchemaReview == "" {
		t.SchemaReview = t.OCRDone
	}
}

// ToTagNames converts the configuration into the map workflow.Derive
// consumes.
func (t *WorkflowTagConfig) ToTagNames() workflow.TagNames {
	t.resolveReuse()
	return workflow.TagNames{
		workflow.StageOCRDone:            t.OCRDone,
		workflow.StageSummaryDone:        t.SummaryDone,
		workflow.StageSchemaReview:       t.SchemaReview,
		workflow.StageSchemaAnalysisDone: t.SchemaAnalysisDone,
		workflow.StageTitleDone:          t.TitleDone,
		workflow.StageCorrespondentDone:  t.CorrespondentDone,
		workflow.StageDocumentTypeDone:   t.DocumentTypeDone,
		workflow.StageTagsDone:           t.TagsDone,
		workflow.StageCustomFieldsDone:   t.CustomFieldsDone,
		workflow.StageDocumentLinksDone:  t.DocumentLinksDone,
		workflow.StageProcessed:          t.Processed,
	}
}
