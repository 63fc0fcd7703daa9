package masking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceMasksAPIKeysAndEmails(t *testing.T) {
	s := NewService(Config{Enabled: true, PatternGroup: "all"})

	out := s.Mask("contact jane.doe@example.com, api_key: \"sk-ABCDEFGHIJKLMNOPQ\"")

	assert.NotContains(t, out, "jane.doe@example.com")
	assert.NotContains(t, out, "sk-ABCDEFGHIJKLMNOPQ")
	assert.True(t, strings.Contains(out, "MASKED_EMAIL") && strings.Contains(out, "MASKED_API_KEY"))
}

func TestServiceDisabledIsNoop(t *testing.T) {
	s := NewService(Config{Enabled: false})
	in := "api_key: \"sk-ABCDEFGHIJKLMNOPQ\""
	assert.Equal(t, in, s.Mask(in))
}

func TestServiceUnknownGroupFallsBackToAll(t *testing.T) {
	s := NewService(Config{Enabled: true, PatternGroup: "nonsense"})
	out := s.Mask("jane.doe@example.com")
	assert.NotContains(t, out, "jane.doe@example.com")
}

func TestServiceEmptyContent(t *testing.T) {
	s := NewService(Config{Enabled: true})
	assert.Equal(t, "", s.Mask(""))
}
