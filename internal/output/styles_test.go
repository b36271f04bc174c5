package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("done"), "done")
	assert.Contains(t, FormatCheckmark("done"), "✔")
}

func TestFormatNextSteps(t *testing.T) {
	out := FormatNextSteps([]string{"cd my-app", "npm run dev"})
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "cd my-app")
	assert.Contains(t, out, "2. ")
	assert.Contains(t, out, "npm run dev")
}

func TestFormatWarnings(t *testing.T) {
	out := FormatWarnings([]string{"git failed"})
	assert.Contains(t, out, "  - ")
	assert.Contains(t, out, "git failed")
	assert.Empty(t, FormatWarnings(nil))
}

func TestNewLoggerVerbosity(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewLogger(&buf, false)
	quiet.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	buf.Reset()
	loud := NewLogger(&buf, true)
	loud.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
