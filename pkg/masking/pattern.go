package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPattern is the declarative form a CompiledPattern is compiled from.
type builtinPattern struct {
	pattern     string
	replacement string
	description string
}

// builtinPatterns covers the secret/PII shapes most likely to appear in
// scanned document content before it is ever sent to an LLM or written to
// a log line: API keys/tokens, emails, and payment-card-like digit runs.
// Grouped so operators can opt into a narrower set than "all", but
// self-contained — this package has no per-server registry to consult.
var builtinPatterns = map[string]builtinPattern{
	"api_key": {
		pattern:     `(?i)\b(api[_-]?key|secret|token)\b\s*[:=]\s*['"]?[A-Za-z0-9_\-]{16,}['"]?`,
		replacement: "***MASKED_API_KEY***",
		description: "API key / secret / token assignments",
	},
	"bearer_token": {
		pattern:     `(?i)\bBearer\s+[A-Za-z0-9_\-.+/=]{16,}`,
		replacement: "Bearer ***MASKED_TOKEN***",
		description: "HTTP Bearer authorization headers",
	},
	"email": {
		pattern:     `[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`,
		replacement: "***MASKED_EMAIL***",
		description: "Email addresses",
	},
	"credit_card": {
		pattern:     `\b(?:\d[ -]*?){13,19}\b`,
		replacement: "***MASKED_CARD***",
		description: "Payment-card-like digit runs",
	},
	"iban": {
		pattern:     `\b[A-Z]{2}\d{2}[A-Z0-9]{10,30}\b`,
		replacement: "***MASKED_IBAN***",
		description: "IBAN-shaped bank account numbers",
	},
}

// patternGroups names subsets of builtinPatterns an operator can select via
// config.MaskingDefaults.PatternGroup. "all" (the default) applies every
// built-in pattern.
var patternGroups = map[string][]string{
	"all":       {"api_key", "bearer_token", "email", "credit_card", "iban"},
	"secrets":   {"api_key", "bearer_token"},
	"financial": {"credit_card", "iban"},
	"pii":       {"email"},
}

func compileBuiltinPatterns() map[string]*CompiledPattern {
	compiled := make(map[string]*CompiledPattern, len(builtinPatterns))
	for name, p := range builtinPatterns {
		re, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("masking: failed to compile built-in pattern, skipping", "pattern", name, "error", err)
			continue
		}
		compiled[name] = &CompiledPattern{
			Name:        name,
			Regex:       re,
			Replacement: p.replacement,
			Description: p.description,
		}
	}
	return compiled
}
