package genai

import "strings"

// StripFence removes a surrounding markdown code fence from text, if present.
// Models asked for JSON often wrap it in ```json ... ``` or ``` ... ``` even
// when told not to. The result is trimmed of surrounding whitespace.
//
// StripFence is idempotent and total: unfenced input passes through unchanged
// (modulo trimming).
func StripFence(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
