package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rbuild/internal/adapters/config"
	"go.trai.ch/rbuild/internal/adapters/fs"
	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newLoader(t *testing.T, env map[string]string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	l := config.NewLoader(fs.NewOSFS(), fs.NewGlobber(), log)
	l.LookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return l
}

const projectYAML = `
project: reactos
include: [include]
modules:
  - name: hal
    type: kernelmodedll
    path: hal
    files: [hal.c]
  - name: ntoskrnl
    type: Kernel
    path: ntoskrnl
    output: output/ntoskrnl.exe
    include: [inc]
    dependencies: [hal]
    command: ["make", "ntoskrnl"]
    files:
      - name: ke/main.c
        first: true
      - ex/*.c
      - name: ntoskrnl.def
        automatic: false
`

func TestLoad_Success(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProjectFileName), projectYAML)
	writeFile(t, filepath.Join(root, "ntoskrnl", "ex", "b.c"), "")
	writeFile(t, filepath.Join(root, "ntoskrnl", "ex", "a.c"), "")

	project, err := newLoader(t, nil).Load(filepath.Join(root, domain.ProjectFileName))
	require.NoError(t, err)

	assert.Equal(t, "reactos", project.Name)
	assert.Equal(t, root, project.BaseDir)
	assert.Equal(t, domain.DefaultScanner, project.Scanner)
	assert.Equal(t, []string{filepath.Join(root, "include")}, project.IncludeDirs)
	require.Len(t, project.Modules, 2)

	hal := project.Modules[0]
	assert.Equal(t, domain.ModuleTypeKernelModeDLL, hal.Type)
	assert.Equal(t, filepath.Join("hal", "hal.dll"), hal.OutputPath())

	nt := project.Modules[1]
	assert.Equal(t, domain.ModuleTypeKernel, nt.Type)
	assert.Equal(t, filepath.Join("output", "ntoskrnl.exe"), nt.OutputPath())
	assert.Equal(t, []string{filepath.Join(root, "ntoskrnl", "inc")}, nt.IncludeDirs)
	assert.Equal(t, []string{"hal"}, nt.Dependencies)
	assert.Equal(t, []string{"make", "ntoskrnl"}, nt.Command)

	dir := filepath.Join(root, "ntoskrnl")
	assert.Equal(t, []domain.File{
		{Name: filepath.Join(dir, "ke", "main.c"), First: true},
		{Name: filepath.Join(dir, "ex", "a.c")},
		{Name: filepath.Join(dir, "ex", "b.c")},
		{Name: filepath.Join(dir, "ntoskrnl.def"), NonAutomatic: true},
	}, nt.Files)
}

func TestLoad_DiscoversProjectFileInParents(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProjectFileName), "modules: []\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	project, err := newLoader(t, nil).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, root, project.BaseDir)
	assert.Equal(t, filepath.Base(root), project.Name)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := newLoader(t, nil).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, domain.ErrProjectFileNotFound)
}

func TestLoad_EnvOverrides(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProjectFileName), "scanner: lexical\ninclude: [include]\n")
	writeFile(t, filepath.Join(root, domain.EnvFileName), "RBUILD_SCANNER=syntax\nRBUILD_INCLUDE=sdk/include\n")

	project, err := newLoader(t, nil).Load(root)
	require.NoError(t, err)
	assert.Equal(t, "syntax", project.Scanner)
	assert.Equal(t, []string{
		filepath.Join(root, "include"),
		filepath.Join(root, "sdk", "include"),
	}, project.IncludeDirs)

	project, err = newLoader(t, map[string]string{config.EnvScanner: "lexical"}).Load(root)
	require.NoError(t, err)
	assert.Equal(t, "lexical", project.Scanner, "process environment wins over .env")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
		key     string
		value   any
	}{
		{
			name:    "missing dependency",
			content: "modules:\n  - name: a\n    dependencies: [b]\n",
			want:    domain.ErrMissingDependency,
			key:     "dependency",
			value:   "b",
		},
		{
			name:    "cycle",
			content: "modules:\n  - name: a\n    dependencies: [b]\n  - name: b\n    dependencies: [a]\n",
			want:    domain.ErrCycleDetected,
		},
		{
			name:    "duplicate module",
			content: "modules:\n  - name: a\n  - name: a\n",
			want:    domain.ErrModuleAlreadyExists,
			key:     "module",
			value:   "a",
		},
		{
			name:    "unknown type",
			content: "modules:\n  - name: a\n    type: spaceship\n",
			want:    domain.ErrUnknownModuleType,
			key:     "type",
			value:   "spaceship",
		},
		{
			name:    "invalid name",
			content: "modules:\n  - name: a b\n",
			want:    domain.ErrInvalidProject,
			key:     "module",
			value:   "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, domain.ProjectFileName), tt.content)

			_, err := newLoader(t, nil).Load(root)
			require.ErrorIs(t, err, tt.want)
			if tt.key == "" {
				return
			}
			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.value, zErr.Metadata()[tt.key])
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProjectFileName), "modules: [")

	_, err := newLoader(t, nil).Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse project file")
}

func TestLoad_ExpandsFilesInModuleDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProjectFileName), "modules:\n  - name: hal\n    path: hal\n    files: [\"*.c\"]\n")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	expander := mocks.NewMockFileExpander(ctrl)
	halDir := filepath.Join(root, "hal")

	expander.EXPECT().Expand([]string{"*.c"}, halDir).Return([]string{
		filepath.Join(halDir, "a.c"),
		filepath.Join(halDir, "b.c"),
	}, nil)
	project, err := config.NewLoader(fs.NewOSFS(), expander, log).Load(root)
	require.NoError(t, err)
	require.Len(t, project.Modules[0].Files, 2)
	assert.Equal(t, filepath.Join(halDir, "b.c"), project.Modules[0].Files[1].Name)

	expander.EXPECT().Expand(gomock.Any(), gomock.Any()).Return(nil, zerr.New("pattern matched no files"))
	_, err = config.NewLoader(fs.NewOSFS(), expander, log).Load(root)
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "hal", zErr.Metadata()["module"])
}
