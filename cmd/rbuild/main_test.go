package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		config       string
		args         []string
		expectedExit int
	}{
		{
			name: "check with valid project",
			config: `project: demo
modules:
  - name: tool
    files: [main.c]
`,
			args:         []string{"rbuild", "check"},
			expectedExit: 0,
		},
		{
			name: "rebuild runs the stale module",
			config: `modules:
  - name: tool
    files: [main.c]
    command: ["touch", "tool"]
`,
			args:         []string{"rbuild", "rebuild", "-j", "1"},
			expectedExit: 0,
		},
		{
			name: "failing command",
			config: `modules:
  - name: tool
    files: [main.c]
    command: ["false"]
`,
			args:         []string{"rbuild", "rebuild"},
			expectedExit: 2,
		},
		{
			name:         "invalid project",
			config:       "modules:\n  - name: a\n    dependencies: [b]\n",
			args:         []string{"rbuild", "check"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "rbuild.yaml"), []byte(tt.config), 0o600))
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "main.c"), []byte("int main(void) { return 0; }\n"), 0o600))

			t.Chdir(tmpDir)
			os.Args = tt.args

			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
