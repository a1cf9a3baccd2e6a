// Package jsonx recovers JSON from noisy LLM output: code fences,
// leading prose, trailing commentary. Extraction never errors; callers
// get ok=false and treat the batch as empty.
package jsonx

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractObject pulls the first JSON object or array out of raw text.
func ExtractObject(raw string) (gjson.Result, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return gjson.Result{}, false
	}

	// Whole payload is already valid JSON.
	if gjson.Valid(s) {
		return gjson.Parse(s), true
	}

	// Markdown code fence, with or without a language tag.
	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := s[idx+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			// Drop the language tag line ("json", "JSON", or empty).
			firstLine := strings.TrimSpace(rest[:nl])
			if firstLine == "" || strings.EqualFold(firstLine, "json") {
				rest = rest[nl+1:]
			}
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		if candidate := strings.TrimSpace(rest); gjson.Valid(candidate) {
			return gjson.Parse(candidate), true
		}
	}

	// Outermost braces/brackets inside surrounding prose.
	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := strings.IndexByte(s, pair[0])
		end := strings.LastIndexByte(s, pair[1])
		if start >= 0 && end > start {
			candidate := s[start : end+1]
			if gjson.Valid(candidate) {
				return gjson.Parse(candidate), true
			}
		}
	}

	return gjson.Result{}, false
}
