package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/recipe/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	// Test that NO_COLOR forces Ascii profile
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(&bytes.Buffer{}), "NO_COLOR should force Ascii profile")

	// A buffer is not a terminal
	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile(&bytes.Buffer{})
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNewRenderer(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := output.NewRenderer(&buf)
	assert.NotNil(t, r)
	assert.Equal(t, "heading", r.NewStyle().Bold(true).Render("heading"))
}

func TestNewRenderer_Nil(t *testing.T) {
	// Should default to stdout, we just check it doesn't panic
	assert.NotNil(t, output.NewRenderer(nil))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	// Should default to stderr, we just check it doesn't panic
	assert.NotNil(t, output.New(nil))
}
