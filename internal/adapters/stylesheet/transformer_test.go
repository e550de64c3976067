package stylesheet_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpbuild/internal/adapters/stylesheet"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestTransformer_Mirror(t *testing.T) {
	tr := stylesheet.New()

	out, err := tr.Mirror(readFixture(t, "mirror_input.css"))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "mirror", out)
}

func TestTransformer_MirrorKeepsLineCount(t *testing.T) {
	tr := stylesheet.New()
	src := readFixture(t, "mirror_input.css")

	out, err := tr.Mirror(src)
	require.NoError(t, err)
	assert.Equal(t, bytes.Count(src, []byte("\n")), bytes.Count(out, []byte("\n")))
}

func TestTransformer_MirrorLeavesSlashRadiusAlone(t *testing.T) {
	tr := stylesheet.New()
	src := []byte(".a{border-radius:1px 2px 3px 4px / 5px;margin:1px 2px}")

	out, err := tr.Mirror(src)
	require.NoError(t, err)
	assert.Equal(t, string(src), string(out))
}

func TestTransformer_MergeMediaQueries(t *testing.T) {
	tr := stylesheet.New()

	out, err := tr.MergeMediaQueries(readFixture(t, "media_input.css"))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "media", out)
}

func TestTransformer_MergeMediaQueriesWithoutMedia(t *testing.T) {
	tr := stylesheet.New()
	src := []byte("@charset \"UTF-8\";\n.a { color: red; }\n")

	out, err := tr.MergeMediaQueries(src)
	require.NoError(t, err)
	assert.Equal(t, string(src), string(out))
}

func TestTransformer_MinifyCSS(t *testing.T) {
	tr := stylesheet.New()

	out, err := tr.MinifyCSS([]byte("a {\n  color: red;\n}\n"))
	require.NoError(t, err)
	assert.Equal(t, "a{color:red}", string(out))
}
