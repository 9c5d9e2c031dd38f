package catalog

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shadersig/internal/chunks"
)

// newTestCatalog creates a temporary catalog for testing.
func newTestCatalog(t *testing.T) (*Catalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".shadersig", "catalog.db")
	cat, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { cat.Close() })
	return cat, path
}

func TestPutGet(t *testing.T) {
	cat, _ := newTestCatalog(t)

	chunk := chunks.Extract("transform.glsl", "vec4 f(vec4);\nvec4 transform(vec4 pos) {\n}\n")
	chunk.ModTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, cat.Put(chunk))

	got, err := cat.Get("transform.glsl")
	require.NoError(t, err)
	assert.Equal(t, chunk.Path, got.Path)
	assert.True(t, chunk.ModTime.Equal(got.ModTime))
	require.NotNil(t, got.Definition)
	assert.Equal(t, *chunk.Definition, *got.Definition)
	assert.Equal(t, chunk.Prototypes, got.Prototypes)
}

func TestGetMissing(t *testing.T) {
	cat, _ := newTestCatalog(t)

	_, err := cat.Get("missing.glsl")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestChunkWithoutDefinition(t *testing.T) {
	cat, _ := newTestCatalog(t)

	chunk := chunks.Extract("protos.glsl", "float noise(vec2);\n")
	require.NoError(t, cat.Put(chunk))

	got, err := cat.Get("protos.glsl")
	require.NoError(t, err)
	assert.Nil(t, got.Definition)
	assert.Equal(t, chunk.Err, got.Err)
	assert.Len(t, got.Prototypes, 1)
}

func TestDefinitionsNamed(t *testing.T) {
	cat, _ := newTestCatalog(t)

	require.NoError(t, cat.Put(chunks.Extract("b.glsl", "vec4 shade(vec4 c) {\n}")))
	require.NoError(t, cat.Put(chunks.Extract("a.glsl", "vec3 shade(vec3 c) {\n}")))
	require.NoError(t, cat.Put(chunks.Extract("c.glsl", "float other(float x) {\n}")))

	paths, err := cat.DefinitionsNamed("shade")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.glsl", "b.glsl"}, paths)

	paths, err = cat.DefinitionsNamed("missing")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestPutReplacesIndex(t *testing.T) {
	cat, _ := newTestCatalog(t)

	require.NoError(t, cat.Put(chunks.Extract("a.glsl", "vec4 first(vec4 c) {\n}")))
	require.NoError(t, cat.Put(chunks.Extract("a.glsl", "vec4 second(vec4 c) {\n}")))

	paths, err := cat.DefinitionsNamed("first")
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = cat.DefinitionsNamed("second")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.glsl"}, paths)
}

func TestDelete(t *testing.T) {
	cat, _ := newTestCatalog(t)

	require.NoError(t, cat.Put(chunks.Extract("a.glsl", "vec4 first(vec4 c) {\n}")))
	require.NoError(t, cat.Delete("a.glsl"))

	_, err := cat.Get("a.glsl")
	assert.ErrorIs(t, err, ErrNotFound)

	paths, err := cat.DefinitionsNamed("first")
	require.NoError(t, err)
	assert.Empty(t, paths)

	// Deleting an unknown path is not an error.
	assert.NoError(t, cat.Delete("never.glsl"))
}

func TestListAndClear(t *testing.T) {
	cat, _ := newTestCatalog(t)

	for _, p := range []string{"c.glsl", "a.glsl", "b.glsl"} {
		require.NoError(t, cat.Put(chunks.Extract(p, "int f(int x) {\n}")))
	}

	list, err := cat.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a.glsl", list[0].Path)
	assert.Equal(t, "b.glsl", list[1].Path)
	assert.Equal(t, "c.glsl", list[2].Path)

	require.NoError(t, cat.Clear())

	list, err = cat.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	paths, err := cat.DefinitionsNamed("f")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestReopen(t *testing.T) {
	cat, path := newTestCatalog(t)

	require.NoError(t, cat.Put(chunks.Extract("a.glsl", "int f(int x) {\n}")))
	require.NoError(t, cat.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("a.glsl")
	require.NoError(t, err)
	require.NotNil(t, got.Definition)
	assert.Equal(t, "int f(int x)", got.Definition.String())
}

func TestResolveFromCatalog(t *testing.T) {
	cat, _ := newTestCatalog(t)

	require.NoError(t, cat.Put(chunks.Extract("main.glsl", "vec4 light(vec3, vec3);\nvec4 main_color(vec3 n) {\n}")))
	require.NoError(t, cat.Put(chunks.Extract("light.glsl", "vec4 light(vec3 n, vec3 l) {\n}")))

	list, err := cat.List()
	require.NoError(t, err)

	links := chunks.Resolve(list)
	require.Len(t, links, 1)
	assert.Equal(t, "main.glsl", links[0].From)
	assert.Equal(t, []string{"light.glsl"}, links[0].Providers)
}
