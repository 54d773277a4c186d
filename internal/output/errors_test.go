package output

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCLIError(t *testing.T) {
	err := NewCLIError(ExitUsage, "no url given")
	assert.Equal(t, ExitUsage, err.ExitCode)
	assert.Equal(t, "no url given", err.Message)
	assert.Empty(t, err.Hint)
}

func TestCLIErrorWithHint(t *testing.T) {
	err := NewCLIError(ExitConfigError, "failed to read config")
	result := err.WithHint("Create browserselector.json")

	// Fluent builder returns same pointer
	assert.Same(t, err, result)
	assert.Equal(t, "Create browserselector.json", err.Hint)
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("invalid url")
	err := Wrap(ExitUsage, cause)

	assert.Equal(t, "invalid url", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestReport(t *testing.T) {
	t.Run("cli error with hint", func(t *testing.T) {
		var stderr bytes.Buffer
		f := &plainFormatter{out: &bytes.Buffer{}, errOut: &stderr}

		code := Report(f, NewCLIError(ExitConfigError, "bad config").WithHint("check the file"))

		assert.Equal(t, ExitConfigError, code)
		assert.Equal(t, "error: bad config\nhint: check the file\n", stderr.String())
	})

	t.Run("joined cli error", func(t *testing.T) {
		var stderr bytes.Buffer
		f := &plainFormatter{out: &bytes.Buffer{}, errOut: &stderr}

		cause := errors.New(`Failed to run xdg-open ["https://a.com"]: not found`)
		code := Report(f, errors.Join(Wrap(ExitLaunchError, cause).WithHint("check --opener-path")))

		assert.Equal(t, ExitLaunchError, code)
		assert.Equal(t, "error: "+cause.Error()+"\nhint: check --opener-path\n", stderr.String())
	})

	t.Run("wrapped cli error", func(t *testing.T) {
		var stderr bytes.Buffer
		f := &plainFormatter{out: &bytes.Buffer{}, errOut: &stderr}

		code := Report(f, fmt.Errorf("run: %w", NewCLIError(ExitUsage, "no url given")))

		assert.Equal(t, ExitUsage, code)
		assert.Equal(t, "error: no url given\n", stderr.String())
	})

	t.Run("plain error", func(t *testing.T) {
		var stderr bytes.Buffer
		f := &plainFormatter{out: &bytes.Buffer{}, errOut: &stderr}

		code := Report(f, errors.New("boom"))

		assert.Equal(t, ExitGeneral, code)
		assert.Equal(t, "error: boom\n", stderr.String())
	})
}
