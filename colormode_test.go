package ansimage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var colorEnvVars = []string{
	"COLORTERM", "TERM", "TERM_PROGRAM", "KITTY_WINDOW_ID", "WT_SESSION", "ConEmuANSI",
}

// withEnv runs fn with exactly the given color-relevant environment,
// restoring the original state afterwards.
func withEnv(t *testing.T, env map[string]string, fn func()) {
	t.Helper()

	original := make(map[string]string)
	for _, k := range colorEnvVars {
		if v, ok := os.LookupEnv(k); ok {
			original[k] = v
		}
		os.Unsetenv(k)
	}
	defer func() {
		for _, k := range colorEnvVars {
			os.Unsetenv(k)
		}
		for k, v := range original {
			os.Setenv(k, v)
		}
	}()

	for k, v := range env {
		os.Setenv(k, v)
	}
	fn()
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected ColorMode
	}{
		{
			name:     "COLORTERM truecolor",
			envVars:  map[string]string{"COLORTERM": "truecolor"},
			expected: TrueColor,
		},
		{
			name:     "COLORTERM 24bit",
			envVars:  map[string]string{"COLORTERM": "24bit"},
			expected: TrueColor,
		},
		{
			name:     "COLORTERM case insensitive",
			envVars:  map[string]string{"COLORTERM": "TrueColor"},
			expected: TrueColor,
		},
		{
			name:     "TERM direct color",
			envVars:  map[string]string{"TERM": "xterm-direct"},
			expected: TrueColor,
		},
		{
			name:     "kitty via TERM",
			envVars:  map[string]string{"TERM": "xterm-kitty"},
			expected: TrueColor,
		},
		{
			name:     "iTerm2",
			envVars:  map[string]string{"TERM_PROGRAM": "iTerm.app"},
			expected: TrueColor,
		},
		{
			name:     "WezTerm",
			envVars:  map[string]string{"TERM_PROGRAM": "WezTerm"},
			expected: TrueColor,
		},
		{
			name:     "Windows Terminal",
			envVars:  map[string]string{"WT_SESSION": "some-guid"},
			expected: TrueColor,
		},
		{
			name:     "plain 256-color xterm falls back",
			envVars:  map[string]string{"TERM": "xterm-256color"},
			expected: Palette8Bit,
		},
		{
			name:     "empty environment falls back",
			envVars:  map[string]string{},
			expected: Palette8Bit,
		},
		{
			name:     "COLORTERM other value falls back",
			envVars:  map[string]string{"COLORTERM": "yes"},
			expected: Palette8Bit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, tt.envVars, func() {
				assert.Equal(t, tt.expected, DetectColorMode())
			})
		})
	}
}

func TestParseColorMode(t *testing.T) {
	mode, err := ParseColorMode("truecolor")
	require.NoError(t, err)
	assert.Equal(t, TrueColor, mode)

	mode, err = ParseColorMode("256")
	require.NoError(t, err)
	assert.Equal(t, Palette8Bit, mode)

	_, err = ParseColorMode("16million")
	assert.Error(t, err)

	// auto defers to detection; just ensure it doesn't error
	withEnv(t, map[string]string{"COLORTERM": "truecolor"}, func() {
		mode, err := ParseColorMode("auto")
		require.NoError(t, err)
		assert.Equal(t, TrueColor, mode)
	})
}

func TestColorModeString(t *testing.T) {
	assert.Equal(t, "truecolor", TrueColor.String())
	assert.Equal(t, "256", Palette8Bit.String())
}
