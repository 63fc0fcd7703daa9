package stageengine

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// ValidateFieldValue checks an LLM-proposed value against a custom field's
// declared type, returning the value normalized to the shape the DMS
// accepts. Values arrive as JSON-decoded any (string/float64/bool) since
// they were parsed out of a model response.
func ValidateFieldValue(fieldType models.CustomFieldType, value any) (any, error) {
	switch fieldType {
	case models.CustomFieldString, models.CustomFieldSelect:
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("expected non-empty string, got %T", value)
		}
		return strings.TrimSpace(s), nil

	case models.CustomFieldURL:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected URL string, got %T", value)
		}
		u, err := url.Parse(strings.TrimSpace(s))
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("not an absolute URL: %q", s)
		}
		return u.String(), nil

	case models.CustomFieldDate:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected date string, got %T", value)
		}
		s = strings.TrimSpace(s)
		for _, layout := range []string{"2006-01-02", time.RFC3339, "02.01.2006", "01/02/2006"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01-02"), nil
			}
		}
		return nil, fmt.Errorf("unparseable date: %q", s)

	case models.CustomFieldBoolean:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(strings.ToLower(v)))
			if err != nil {
				return nil, fmt.Errorf("not a boolean: %q", v)
			}
			return b, nil
		default:
			return nil, fmt.Errorf("expected boolean, got %T", value)
		}

	case models.CustomFieldInteger:
		switch v := value.(type) {
		case float64:
			if v != float64(int64(v)) {
				return nil, fmt.Errorf("not an integer: %v", v)
			}
			return int64(v), nil
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("not an integer: %q", v)
			}
			return n, nil
		default:
			return nil, fmt.Errorf("expected integer, got %T", value)
		}

	case models.CustomFieldFloat, models.CustomFieldMonetary:
		switch v := value.(type) {
		case float64:
			return v, nil
		case string:
			s := strings.TrimSpace(v)
			if fieldType == models.CustomFieldMonetary {
				s = strings.TrimLeft(s, "€$£ ")
				s = strings.ReplaceAll(s, ",", ".")
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("not a number: %q", v)
			}
			return f, nil
		default:
			return nil, fmt.Errorf("expected number, got %T", value)
		}

	case models.CustomFieldDocumentLink:
		ids, err := documentIDList(value)
		if err != nil {
			return nil, err
		}
		return ids, nil

	default:
		return nil, fmt.Errorf("unknown custom field type %q", fieldType)
	}
}

// documentIDList coerces a documentlink value — a JSON array of IDs, a
// single number, or a comma-separated string — into []int.
func documentIDList(value any) ([]int, error) {
	switch v := value.(type) {
	case []any:
		out := make([]int, 0, len(v))
		for _, item := range v {
			f, ok := item.(float64)
			if !ok || f != float64(int(f)) || f <= 0 {
				return nil, fmt.Errorf("not a document ID: %v", item)
			}
			out = append(out, int(f))
		}
		return out, nil
	case float64:
		if v != float64(int(v)) || v <= 0 {
			return nil, fmt.Errorf("not a document ID: %v", v)
		}
		return []int{int(v)}, nil
	case string:
		parts := splitCSV(v)
		out := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("not a document ID: %q", p)
			}
			out = append(out, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected document ID list, got %T", value)
	}
}
