package ocrtext

import "regexp"

// Ollama output is comparatively clean; it just pads section breaks with
// very long dash runs.
var reDashRun = regexp.MustCompile(`-{10,}`)

func ollamaPass(s string) string {
	return reDashRun.ReplaceAllString(s, "--------")
}
