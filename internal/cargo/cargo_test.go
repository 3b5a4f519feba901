package cargo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	stdout []byte
	code   int
	err    error

	dir  string
	name string
	args []string
}

func (f *fakeRunner) Output(dir, name string, args ...string) ([]byte, int, error) {
	f.dir = dir
	f.name = name
	f.args = args
	return f.stdout, f.code, f.err
}

func TestQuery(t *testing.T) {
	t.Run("standalone", func(t *testing.T) {
		t.Setenv("CARGO", "")

		_, err := Query(&fakeRunner{}, ".")
		assert.ErrorIs(t, err, ErrStandalone)
	})

	t.Run("extracts target directory", func(t *testing.T) {
		t.Setenv("CARGO", "/usr/bin/cargo")
		runner := &fakeRunner{stdout: []byte(`{"target_directory": "/src/app/target"}`)}

		metadata, err := Query(runner, "/src/app")
		require.NoError(t, err)
		assert.Equal(t, "/src/app/target", metadata.TargetDirectory)

		assert.Equal(t, "/src/app", runner.dir)
		assert.Equal(t, "/usr/bin/cargo", runner.name)
		assert.Equal(t, []string{"metadata", "--format-version", "1", "--no-deps"}, runner.args)
	})

	t.Run("exec failure", func(t *testing.T) {
		t.Setenv("CARGO", "/usr/bin/cargo")
		boom := errors.New("no such file")
		runner := &fakeRunner{err: boom}

		_, err := Query(runner, ".")

		var execErr *ExecError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "/usr/bin/cargo", execErr.Bin)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nonzero exit", func(t *testing.T) {
		t.Setenv("CARGO", "/usr/bin/cargo")
		runner := &fakeRunner{code: 101}

		_, err := Query(runner, ".")
		assert.ErrorIs(t, err, ErrFailed)
	})

	t.Run("invalid unicode", func(t *testing.T) {
		t.Setenv("CARGO", "/usr/bin/cargo")
		runner := &fakeRunner{stdout: []byte{0xff, 0xfe}}

		_, err := Query(runner, ".")
		assert.ErrorIs(t, err, ErrUnicode)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Setenv("CARGO", "/usr/bin/cargo")
		runner := &fakeRunner{stdout: []byte(`{"target_directory":`)}

		_, err := Query(runner, ".")
		assert.ErrorIs(t, err, ErrJSON)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Setenv("CARGO", "/usr/bin/cargo")
		runner := &fakeRunner{stdout: []byte(`{"workspace_root": "/src/app"}`)}

		_, err := Query(runner, ".")
		assert.ErrorIs(t, err, ErrData)
	})
}
