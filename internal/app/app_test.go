package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rbuild/internal/adapters/cas"
	"go.trai.ch/rbuild/internal/adapters/config"
	"go.trai.ch/rbuild/internal/adapters/fs"
	"go.trai.ch/rbuild/internal/adapters/scanner"
	"go.trai.ch/rbuild/internal/adapters/telemetry/progrock"
	"go.trai.ch/rbuild/internal/app"
	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/rbuild/internal/core/ports"
	"go.trai.ch/rbuild/internal/core/ports/mocks"
	"go.trai.ch/rbuild/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

var base = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func write(t *testing.T, path, content string, minutes int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	mtime := base.Add(time.Duration(minutes) * time.Minute)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

const projectYAML = `
project: mini
include: [include]
modules:
  - name: hal
    type: staticlibrary
    path: hal
    files: [hal.c]
    command: ["make", "hal"]
  - name: kernel
    type: kernel
    path: kernel
    dependencies: [hal]
    files: [main.c]
    command: ["make", "kernel"]
`

// fixture lays out a project where hal.c includes a header younger than hal.a.
func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write(t, filepath.Join(root, domain.ProjectFileName), projectYAML, 0)
	write(t, filepath.Join(root, "include", "hal.h"), "#pragma once\n", 30)
	write(t, filepath.Join(root, "include", "ke.h"), "#include <hal.h>\n", 5)
	write(t, filepath.Join(root, "hal", "hal.c"), "#include \"hal.h\"\n", 1)
	write(t, filepath.Join(root, "hal", "hal.a"), "", 10)
	write(t, filepath.Join(root, "kernel", "main.c"), "#include <ke.h>\n", 1)
	write(t, filepath.Join(root, "kernel", "kernel.exe"), "", 60)
	return root
}

func newApp(t *testing.T, exec *mocks.MockExecutor) *app.App {
	t.Helper()
	return newAppWith(t, exec, nil, nil)
}

// newAppWith builds an App on real adapters. A nil loader or store selects the real one.
func newAppWith(t *testing.T, exec *mocks.MockExecutor, loader ports.ProjectLoader, store ports.FragmentStore) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	work := t.TempDir()
	osfs := fs.NewOSFS()
	syntax, err := scanner.NewSyntax()
	require.NoError(t, err)
	telemetry := progrock.New()

	if exec == nil {
		exec = mocks.NewMockExecutor(ctrl)
	}
	if loader == nil {
		loader = config.NewLoader(osfs, fs.NewGlobber(), log)
	}
	if store == nil {
		store = cas.NewFragmentStoreAt(filepath.Join(work, "deps"), fs.NewHasher())
	}
	return app.New(
		loader,
		osfs,
		scanner.NewRegistry(scanner.NewLexical(), syntax),
		fs.NewIncludeResolver(osfs),
		cas.NewScanCacheAt(filepath.Join(work, "scan.json.zst")),
		store,
		telemetry,
		scheduler.NewScheduler(exec, telemetry, log),
		log,
	)
}

func TestApp_Check(t *testing.T) {
	root := fixture(t)
	a := newApp(t, nil)

	verdicts, err := a.Check(context.Background(), app.CheckOptions{Options: app.Options{Project: root}})
	require.NoError(t, err)
	require.Len(t, verdicts, 2)

	hal := verdicts[0]
	assert.Equal(t, "hal", hal.Module)
	assert.True(t, hal.Stale)
	assert.Equal(t, filepath.Join("include", "hal.h"), hal.YoungestFile)

	kernel := verdicts[1]
	assert.Equal(t, "kernel", kernel.Module)
	assert.False(t, kernel.Stale)
	assert.Equal(t, filepath.Join("include", "hal.h"), kernel.YoungestFile)
	assert.Equal(t, []string{
		filepath.Join("kernel", "main.c"),
		filepath.Join("include", "ke.h"),
		filepath.Join("include", "hal.h"),
	}, kernel.Chain)
}

func TestApp_CheckFileAndModule(t *testing.T) {
	root := fixture(t)
	a := newApp(t, nil)
	opts := app.Options{Project: root}

	verdicts, err := a.Check(context.Background(), app.CheckOptions{Options: opts, Module: "hal", File: "hal/hal.c"})
	require.NoError(t, err)
	require.Len(t, verdicts, 1)
	assert.Equal(t, filepath.Join("hal", "hal.c"), verdicts[0].File)
	assert.True(t, verdicts[0].Stale)

	verdicts, err = a.Check(context.Background(), app.CheckOptions{Options: opts, Module: "kernel"})
	require.NoError(t, err)
	require.Len(t, verdicts, 1)
	assert.Equal(t, "kernel", verdicts[0].Module)

	_, err = a.Check(context.Background(), app.CheckOptions{Options: opts, Module: "missing"})
	require.ErrorIs(t, err, domain.ErrModuleNotFound)

	_, err = a.Check(context.Background(), app.CheckOptions{Options: opts, Module: "hal", File: "kernel/main.c"})
	require.ErrorIs(t, err, domain.ErrFileNotDeclared)
}

func TestApp_Deps(t *testing.T) {
	root := fixture(t)
	a := newApp(t, nil)

	deps, err := a.Deps(context.Background(), app.DepsOptions{Options: app.Options{Project: root}, Write: true})
	require.NoError(t, err)
	require.Len(t, deps, 2)

	assert.Equal(t, filepath.Join("hal", "hal.c"), deps[0].File)
	assert.Equal(t, filepath.Join(root, "include", "hal.h"), deps[0].Text)
	assert.True(t, deps[0].Changed)

	assert.Equal(t, filepath.Join(root, "include", "hal.h")+" "+filepath.Join(root, "include", "ke.h"), deps[1].Text)

	deps, err = a.Deps(context.Background(), app.DepsOptions{Options: app.Options{Project: root}, Module: "hal", Write: true})
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.False(t, deps[0].Changed, "unchanged fragment is not rewritten")
}

func TestApp_Rebuild(t *testing.T) {
	root := fixture(t)
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	gomock.InOrder(
		exec.EXPECT().Execute(gomock.Any(), gomock.Any(), filepath.Join(root, "hal")).Return(nil),
		exec.EXPECT().Execute(gomock.Any(), gomock.Any(), filepath.Join(root, "kernel")).Return(nil),
	)
	a := newApp(t, exec)

	verdicts, err := a.Rebuild(context.Background(), app.RebuildOptions{Options: app.Options{Project: root}, Jobs: 1})
	require.NoError(t, err)
	require.Len(t, verdicts, 2)

	statuses := a.Statuses()
	assert.Equal(t, domain.VertexStatusCompleted, statuses["hal"])
	assert.Equal(t, domain.VertexStatusCompleted, statuses["kernel"], "dependents of a rebuilt module run too")
}

func TestApp_LoadError(t *testing.T) {
	a := newApp(t, nil)
	_, err := a.Check(context.Background(), app.CheckOptions{Options: app.Options{Project: filepath.Join(t.TempDir(), "nope.yaml")}})
	require.ErrorIs(t, err, domain.ErrProjectFileNotFound)
}

func TestApp_DepsVerify(t *testing.T) {
	root := fixture(t)
	a := newApp(t, nil)
	opts := app.DepsOptions{Options: app.Options{Project: root}, Verify: true}

	deps, err := a.Deps(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.True(t, deps[0].Changed, "missing fragment is out of date")
	assert.True(t, deps[1].Changed)

	_, err = a.Deps(context.Background(), app.DepsOptions{Options: app.Options{Project: root}, Write: true})
	require.NoError(t, err)

	deps, err = a.Deps(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, deps[0].Changed)
	assert.False(t, deps[1].Changed)
}

func TestApp_DepsStoreError(t *testing.T) {
	root := fixture(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockFragmentStore(ctrl)
	diskErr := errors.New("disk full")
	store.EXPECT().Put("hal", filepath.Join(root, "hal", "hal.c"), gomock.Any()).Return(false, diskErr)

	a := newAppWith(t, nil, nil, store)
	_, err := a.Deps(context.Background(), app.DepsOptions{Options: app.Options{Project: root}, Write: true})
	require.ErrorIs(t, err, diskErr)
}

func TestApp_DepsPrimaryFileFirst(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a.c"), "", 0)
	write(t, filepath.Join(root, "b.c"), "", 0)

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockProjectLoader(ctrl)
	loader.EXPECT().Load(root).Return(&domain.Project{
		BaseDir: root,
		Modules: []domain.Module{{
			Name:  "m",
			Files: []domain.File{{Name: "a.c"}, {Name: "b.c", First: true}},
		}},
	}, nil)

	a := newAppWith(t, nil, loader, nil)
	deps, err := a.Deps(context.Background(), app.DepsOptions{Options: app.Options{Project: root, NoCache: true}})
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "b.c", deps[0].File)
	assert.Equal(t, "a.c", deps[1].File)
}

func TestApp_LoaderErrorKeepsCause(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockProjectLoader(ctrl)
	loader.EXPECT().Load("proj").Return(nil, domain.ErrInvalidProject)

	a := newAppWith(t, nil, loader, nil)
	_, err := a.Rebuild(context.Background(), app.RebuildOptions{Options: app.Options{Project: "proj"}})
	require.ErrorIs(t, err, domain.ErrInvalidProject)
}

func TestApp_UnknownScanner(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockProjectLoader(ctrl)
	loader.EXPECT().Load(".").Return(&domain.Project{Scanner: "clang"}, nil)
	scanners := mocks.NewMockScannerSet(ctrl)
	scanners.EXPECT().Scanner("clang").Return(nil, domain.ErrUnknownScanner)

	a := app.New(loader, nil, scanners, nil, nil, nil, nil, nil, mocks.NewMockLogger(ctrl))
	_, err := a.Check(context.Background(), app.CheckOptions{})
	require.ErrorIs(t, err, domain.ErrUnknownScanner)
}
