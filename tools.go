//go:build tools

package tools

// CLI tools are pinned with `tool` directives in go.mod:
// - github.com/pressly/goose/v3/cmd/goose (run as `go tool goose`)
//
// Test doubles in *_mock_test.go files follow github.com/matryer/moq output.
