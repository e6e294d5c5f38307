package providers

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// resultKeys are searched in order when a provider returns a key/value map.
var resultKeys = []string{"text", "result", "output", "caption", "ocr_result"}

// Normalize reduces a provider's raw output to a single trimmed string.
// Providers return heterogeneous shapes: plain strings, Gradio-style data
// lists, or key/value maps with no agreed-on field name.
func Normalize(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []any:
		if len(v) == 0 {
			return ""
		}
		return strings.TrimSpace(stringify(v[0]))
	case map[string]any:
		for _, key := range resultKeys {
			if val, ok := v[key]; ok {
				return strings.TrimSpace(stringify(val))
			}
		}
		return strings.TrimSpace(stringify(v))
	default:
		return strings.TrimSpace(stringify(raw))
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// imageDataURI encodes raw image bytes as a base64 JPEG data URI, the
// payload form every remote provider accepts.
func imageDataURI(image []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
}
