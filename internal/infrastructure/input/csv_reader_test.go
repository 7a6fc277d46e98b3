package input

import (
	"os"
	"path/filepath"
	"testing"

	domainerrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVReferenceSource_ReadReferences(t *testing.T) {
	t.Run("should read references in file order", func(t *testing.T) {
		path := writeCSV(t, "pr_url\nhttps://github.com/a/b/pull/1\nhttps://github.com/a/b/pull/2\n")

		refs, err := NewCSVReferenceSource(path).ReadReferences()

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "https://github.com/a/b/pull/1", refs[0].PRURL)
		assert.Equal(t, "https://github.com/a/b/pull/2", refs[1].PRURL)
	})

	t.Run("should read the optional columns", func(t *testing.T) {
		path := writeCSV(t, "repo_name,repo_url,pr_url\nmi-repo,https://github.com/a/b,https://github.com/a/b/pull/1\n")

		refs, err := NewCSVReferenceSource(path).ReadReferences()

		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, "mi-repo", refs[0].RepoName)
		assert.Equal(t, "https://github.com/a/b", refs[0].RepoURL)
		assert.Equal(t, "https://github.com/a/b/pull/1", refs[0].PRURL)
	})

	t.Run("should fail when the pr_url column is missing", func(t *testing.T) {
		path := writeCSV(t, "repo_name,url\nx,https://github.com/a/b/pull/1\n")

		_, err := NewCSVReferenceSource(path).ReadReferences()

		require.Error(t, err)
		var cfgErr *domainerrors.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "input-file", cfgErr.Field)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		_, err := NewCSVReferenceSource(filepath.Join(t.TempDir(), "no-existe.csv")).ReadReferences()

		require.Error(t, err)
		var cfgErr *domainerrors.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("should return no references for a header-only file", func(t *testing.T) {
		path := writeCSV(t, "pr_url\n")

		refs, err := NewCSVReferenceSource(path).ReadReferences()

		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("should keep blank rows so the pipeline can report them", func(t *testing.T) {
		path := writeCSV(t, "pr_url\n\"\"\nhttps://github.com/a/b/pull/1\n")

		refs, err := NewCSVReferenceSource(path).ReadReferences()

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Empty(t, refs[0].PRURL)
	})
}
