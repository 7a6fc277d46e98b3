package services

import (
	"testing"

	domainerrors "github.com/Tomas-vilte/MatePR/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePullRequestURL(t *testing.T) {
	t.Run("should parse a github.com URL", func(t *testing.T) {
		owner, repo, number, err := ParsePullRequestURL("https://github.com/golang/go/pull/12345")

		require.NoError(t, err)
		assert.Equal(t, "golang", owner)
		assert.Equal(t, "go", repo)
		assert.Equal(t, 12345, number)
	})

	t.Run("should parse an enterprise subdomain URL", func(t *testing.T) {
		owner, repo, number, err := ParsePullRequestURL("https://empresa.github.com/equipo/backend/pull/7")

		require.NoError(t, err)
		assert.Equal(t, "equipo", owner)
		assert.Equal(t, "backend", repo)
		assert.Equal(t, 7, number)
	})

	t.Run("should parse a self-hosted URL", func(t *testing.T) {
		owner, repo, number, err := ParsePullRequestURL("https://git.interno.com/equipo/servicio/pull/42")

		require.NoError(t, err)
		assert.Equal(t, "equipo", owner)
		assert.Equal(t, "servicio", repo)
		assert.Equal(t, 42, number)
	})

	t.Run("should parse a URL without scheme", func(t *testing.T) {
		owner, repo, number, err := ParsePullRequestURL("github.com/golang/go/pull/99")

		require.NoError(t, err)
		assert.Equal(t, "golang", owner)
		assert.Equal(t, "go", repo)
		assert.Equal(t, 99, number)
	})

	t.Run("should parse the short owner/repo/pull form", func(t *testing.T) {
		owner, repo, number, err := ParsePullRequestURL("golang/go/pull/3")

		require.NoError(t, err)
		assert.Equal(t, "golang", owner)
		assert.Equal(t, "go", repo)
		assert.Equal(t, 3, number)
	})

	t.Run("should parse the owner/repo#number form", func(t *testing.T) {
		owner, repo, number, err := ParsePullRequestURL("golang/go#15")

		require.NoError(t, err)
		assert.Equal(t, "golang", owner)
		assert.Equal(t, "go", repo)
		assert.Equal(t, 15, number)
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		owner, repo, number, err := ParsePullRequestURL("  https://github.com/golang/go/pull/1\n")

		require.NoError(t, err)
		assert.Equal(t, "golang", owner)
		assert.Equal(t, "go", repo)
		assert.Equal(t, 1, number)
	})

	t.Run("should fail on a URL without pull number", func(t *testing.T) {
		_, _, _, err := ParsePullRequestURL("https://github.com/golang/go")

		require.Error(t, err)
		var reqErr *domainerrors.RequestError
		assert.ErrorAs(t, err, &reqErr)
	})

	t.Run("should fail on an empty URL", func(t *testing.T) {
		_, _, _, err := ParsePullRequestURL("")

		require.Error(t, err)
		var reqErr *domainerrors.RequestError
		assert.ErrorAs(t, err, &reqErr)
	})
}
