//go:build nomagic
// +build nomagic

// Stub function for GuessMimeType, for builds on machines that
// don't have libmagic. Callers should check MimeDetectionEnabled
// before trusting the result.
package platform

var MimeDetectionEnabled = false

func GuessMimeType(absPath string) (mimeType string, err error) {
	return "mime type disabled", nil
}
