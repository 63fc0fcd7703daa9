package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	goslack "github.com/slack-go/slack"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Corvid-Doc-42", "corvid-doc-42"},
		{"collapses whitespace", "corvid  doc\n42", "corvid doc 42"},
		{"trims", "  corvid-doc-42  ", "corvid-doc-42"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeText(tt.in))
		})
	}
}

func TestCollectMessageText(t *testing.T) {
	msg := goslack.Message{}
	msg.Text = "Review needed"
	msg.Attachments = []goslack.Attachment{
		{Text: "corvid-doc-42", Fallback: "fallback text"},
	}
	got := collectMessageText(msg)
	assert.Contains(t, got, "Review needed")
	assert.Contains(t, got, "corvid-doc-42")
	assert.Contains(t, got, "fallback text")
}

func TestDocFingerprintIsStable(t *testing.T) {
	assert.Equal(t, "corvid-doc-42", docFingerprint(42))
	assert.Equal(t, docFingerprint(7), docFingerprint(7))
}
