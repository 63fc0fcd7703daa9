// Package workflow implements the document-enrichment pipeline's state
// machine vocabulary: the ordered Stage enumeration and the tag-name
// mapping used to derive a document's current stage from its tag set.
package workflow

// Stage is a step in the document-enrichment pipeline, in pipeline order.
type Stage string

const (
	StagePending            Stage = "pending"
	StageOCRDone            Stage = "ocr_done"
	StageSummaryDone        Stage = "summary_done"
	StageSchemaReview       Stage = "schema_review"
	StageSchemaAnalysisDone Stage = "schema_analysis_done"
	StageTitleDone          Stage = "title_done"
	StageCorrespondentDone  Stage = "correspondent_done"
	StageDocumentTypeDone   Stage = "document_type_done"
	StageTagsDone           Stage = "tags_done"
	StageCustomFieldsDone   Stage = "custom_fields_done"
	StageDocumentLinksDone  Stage = "document_links_done"
	StageProcessed          Stage = "processed"
)

// Sideband tags are not part of the ordered pipeline; they can be present
// alongside (or instead of) a stage-done tag.
const (
	SidebandManualReview = "manual_review"
	SidebandFailed       = "failed"
)

// Ordered is every Stage in pipeline order, pending first. Reverse order
// is used when deriving the current stage from a tag set: the latest
// matching stage-done tag wins.
var Ordered = []Stage{
	StagePending,
	StageOCRDone,
	StageSummaryDone,
	StageSchemaReview,
	StageSchemaAnalysisDone,
	StageTitleDone,
	StageCorrespondentDone,
	StageDocumentTypeDone,
	StageTagsDone,
	StageCustomFieldsDone,
	StageDocumentLinksDone,
	StageProcessed,
}

// TagNames maps each Stage to its configured workflow tag name. Built from
// config.WorkflowTagConfig; StagePending has no tag (absence of any
// workflow tag means pending).
type TagNames map[Stage]string

// Derive computes the current Stage of a document from the set of tag
// names it carries, by scanning Ordered in reverse and returning the first
// stage whose configured tag name is present. No match implies pending.
//
// schema_analysis_done and schema_review may reuse ocr_done's tag name
// when not distinctly configured; Derive is agnostic to that reuse since
// it just matches tag names, and the reused name will resolve to whichever
// of those stages is later in Ordered (schema_analysis_done), which is
// the idempotent, safe resolution per the Schema Analysis stage's own
// re-derivation of actual progress from tags.
func Derive(tagNames TagNames, present map[string]bool) Stage {
	for i := len(Ordered) - 1; i >= 0; i-- {
		stage := Ordered[i]
		if stage == StagePending {
			continue
		}
		name, ok := tagNames[stage]
		if !ok || name == "" {
			continue
		}
		if present[name] {
			return stage
		}
	}
	return StagePending
}

// Next returns the Stage that immediately follows the given stage in
// pipeline order, and false if stage is the terminal stage.
func Next(stage Stage) (Stage, bool) {
	for i, s := range Ordered {
		if s == stage && i+1 < len(Ordered) {
			return Ordered[i+1], true
		}
	}
	return "", false
}

// IsTerminal reports whether stage is the final pipeline stage.
func IsTerminal(stage Stage) bool {
	return stage == StageProcessed
}
