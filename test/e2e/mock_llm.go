package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/llmclient"
)

// Rule scripts one canned response: the first rule whose Marker appears in
// the rendered prompt (and whose Role matches, if set) is consumed.
// Repeat-capable rules (Sticky) are never consumed and answer every
// matching call, which is how a reviewer that always rejects is scripted.
type Rule struct {
	Marker   string
	Role     config.ModelRole
	Response string
	Sticky   bool
}

// MockLLM serves scripted responses to the stage engines. The prompt
// templates in the test registry embed stable markers ("TITLE_ANALYST",
// "TAGS_REVIEWER", ...) so rules match regardless of document content.
type MockLLM struct {
	mu    sync.Mutex
	rules []Rule
	calls []string
}

// NewMockLLM builds a mock with the given script.
func NewMockLLM(rules ...Rule) *MockLLM {
	return &MockLLM{rules: rules}
}

// Generate implements stageengine.LLM.
func (m *MockLLM) Generate(_ context.Context, role config.ModelRole, prompt string, _ llmclient.Options) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, rule := range m.rules {
		if rule.Role != "" && rule.Role != role {
			continue
		}
		if !strings.Contains(prompt, rule.Marker) {
			continue
		}
		m.calls = append(m.calls, rule.Marker)
		if !rule.Sticky {
			m.rules = append(m.rules[:i], m.rules[i+1:]...)
		}
		return rule.Response, nil
	}
	return "", fmt.Errorf("mockllm: no scripted response for role %s prompt %.80q", role, prompt)
}

// Calls returns the markers of every rule that fired, in order.
func (m *MockLLM) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many scripted responses fired.
func (m *MockLLM) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// testPromptRegistry builds a registry whose rendered prompts carry stable
// per-stage markers, plus the template variables the engines feed in, so
// MockLLM rules can key off the stage rather than the content.
func testPromptRegistry() *config.PromptRegistry {
	body := func(marker string) config.PromptTemplate {
		return config.PromptTemplate{
			Translations: map[string]string{
				"en": marker + "\n{{.feedback}}\n{{.document_content}}",
			},
		}
	}
	reviewerBody := func(marker string) config.PromptTemplate {
		return config.PromptTemplate{
			Translations: map[string]string{
				"en": marker + "\nvalue: {{.suggested_value}}\n{{.excerpt}}",
			},
		}
	}
	return &config.PromptRegistry{
		ReferenceLanguage: "en",
		Templates: map[string]config.PromptTemplate{
			config.PromptTitleAnalyst:          body("TITLE_ANALYST"),
			config.PromptTitleReviewer:         reviewerBody("TITLE_REVIEWER"),
			config.PromptCorrespondentAnalyst:  body("CORRESPONDENT_ANALYST"),
			config.PromptCorrespondentReviewer: reviewerBody("CORRESPONDENT_REVIEWER"),
			config.PromptDocumentTypeAnalyst:   body("DOCUMENT_TYPE_ANALYST"),
			config.PromptDocumentTypeReviewer:  reviewerBody("DOCUMENT_TYPE_REVIEWER"),
			config.PromptTagsAnalyst:           body("TAGS_ANALYST"),
			config.PromptTagsReviewer:          reviewerBody("TAGS_REVIEWER"),
			config.PromptCustomFieldsAnalyst:   body("CUSTOM_FIELDS_ANALYST"),
			config.PromptCustomFieldsReviewer:  reviewerBody("CUSTOM_FIELDS_REVIEWER"),
			config.PromptDocumentLinksAnalyst:  body("DOCUMENT_LINKS_ANALYST"),
			config.PromptDocumentLinksReviewer: reviewerBody("DOCUMENT_LINKS_REVIEWER"),
			config.PromptSchemaAnalysis: {
				Translations: map[string]string{
					"en": "SCHEMA_ANALYSIS\n{{.document_content}}",
				},
			},
			config.PromptSummary: {
				Translations: map[string]string{
					"en": "SUMMARY\n{{.document_content}}",
				},
			},
		},
	}
}
