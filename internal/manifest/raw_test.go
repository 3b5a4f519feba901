package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	t.Run("parses minimal document", func(t *testing.T) {
		raw, err := ParseString("version = 1")
		require.NoError(t, err)
		assert.Equal(t, uint32(1), raw.Version)
		assert.Nil(t, raw.Application)
		assert.Empty(t, raw.Platform)
	})

	t.Run("accepts unknown versions at the raw layer", func(t *testing.T) {
		raw, err := ParseString("version = 12345678")
		require.NoError(t, err)
		assert.Equal(t, uint32(12345678), raw.Version)
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		raw, err := ParseString(`
version = 1
future-field = "whatever"

[application]
id = "app"
another-future-field = 7
`)
		require.NoError(t, err)
		require.NotNil(t, raw.Application)
		assert.Equal(t, "app", *raw.Application.ID)
	})

	t.Run("rejects scalar type mismatch", func(t *testing.T) {
		_, err := ParseString(`version = "1"`)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("rejects malformed syntax", func(t *testing.T) {
		_, err := ParseString("version = ")
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("decodes nested tables and table arrays", func(t *testing.T) {
		raw, err := ParseString(`
version = 1

[application]
id = "test"
path = "."

[[platform]]
id = "android"
path = "./platform/foobar"

[platform.android]
application-id = "com.example.app"
namespace = "com.example"
min-sdk = 21
sdk-path = "./some/path"
`)
		require.NoError(t, err)
		require.NotNil(t, raw.Application)
		assert.Equal(t, ".", *raw.Application.Path)

		require.Len(t, raw.Platform, 1)
		assert.Equal(t, "./platform/foobar", *raw.Platform[0].Path)

		android := raw.Platform[0].Android()
		require.NotNil(t, android)
		assert.Equal(t, "com.example.app", *android.ApplicationID)
		assert.Equal(t, "com.example", *android.Namespace)
		assert.Equal(t, uint32(21), *android.MinSDK)
		assert.Equal(t, "./some/path", *android.SDKPath)
		assert.Nil(t, android.TargetSDK)
	})
}

func TestRawPlatformByID(t *testing.T) {
	raw, err := ParseString(`
version = 1

[[platform]]
id = "android"

[[platform]]
id = "other"
`)
	require.NoError(t, err)

	t.Run("finds matching entry", func(t *testing.T) {
		p := raw.PlatformByID("other")
		require.NotNil(t, p)
		assert.Equal(t, "other", p.ID)
	})

	t.Run("returns nil for unknown id", func(t *testing.T) {
		assert.Nil(t, raw.PlatformByID("ios"))
	})
}

func TestRawPlatformPathOrDefault(t *testing.T) {
	path := "./somewhere"

	t.Run("returns configured path", func(t *testing.T) {
		p := RawPlatform{ID: "android", Path: &path}
		assert.Equal(t, "./somewhere", p.PathOrDefault())
	})

	t.Run("defaults to ./platform/<id>", func(t *testing.T) {
		p := RawPlatform{ID: "android"}
		assert.Equal(t, "./platform/android", p.PathOrDefault())
	})
}

func TestRawPlatformConfiguration(t *testing.T) {
	t.Run("returns android variant", func(t *testing.T) {
		p := RawPlatform{ID: "android", AndroidConfig: &RawPlatformAndroid{}}
		cfg := p.Configuration()
		require.NotNil(t, cfg)
		_, ok := cfg.(*RawPlatformAndroid)
		assert.True(t, ok)
	})

	t.Run("returns nil without configuration", func(t *testing.T) {
		p := RawPlatform{ID: "bare"}
		assert.Nil(t, p.Configuration())
		assert.Nil(t, p.Android())
	})
}

func TestParsePath(t *testing.T) {
	t.Run("parses manifest from file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "osiris-platform.toml")
		require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0o644))

		m, err := ParsePath(path)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), m.Raw.Version)
	})

	t.Run("reports missing file as parse error with path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nonexistent.toml")

		_, err := ParsePath(path)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, path, perr.Path)
		assert.Contains(t, err.Error(), path)
	})
}
