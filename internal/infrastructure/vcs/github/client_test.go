package github

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, pr *MockPRService, issues *MockIssuesService) *GitHubClient {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewGitHubClientWithServices(pr, issues, trans)
}

func ts(value string) *github.Timestamp {
	parsed, _ := time.Parse(time.RFC3339, value)
	return &github.Timestamp{Time: parsed}
}

func TestGitHubClient_GetPullRequest(t *testing.T) {
	t.Run("should map the PR fields", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockPR.On("Get", mock.Anything, "acme", "repo", 7).
			Return(&github.PullRequest{
				HTMLURL:   github.Ptr("https://github.com/acme/repo/pull/7"),
				Title:     github.Ptr("fix: parser"),
				Body:      github.Ptr("descripción"),
				State:     github.Ptr("open"),
				CreatedAt: ts("2024-01-02T10:00:00Z"),
				UpdatedAt: ts("2024-01-03T11:30:00Z"),
			}, &github.Response{}, nil)
		mockIssues.On("ListComments", mock.Anything, "acme", "repo", 7, mock.Anything).
			Return([]*github.IssueComment{}, &github.Response{}, nil)
		mockPR.On("ListComments", mock.Anything, "acme", "repo", 7, mock.Anything).
			Return([]*github.PullRequestComment{}, &github.Response{}, nil)

		record, err := client.GetPullRequest(context.Background(), "acme", "repo", 7)

		require.NoError(t, err)
		assert.Equal(t, "https://github.com/acme/repo/pull/7", record.URL)
		assert.Equal(t, "fix: parser", record.Title)
		assert.Equal(t, "descripción", record.Description)
		assert.Equal(t, models.StateOpen, record.State)
		assert.Equal(t, "2024-01-02T10:00:00Z", record.CreatedAt)
		assert.Equal(t, "2024-01-03T11:30:00Z", record.UpdatedAt)
		assert.Empty(t, record.Comments)
	})

	t.Run("should serialize a comment-less PR with an empty comments array", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockPR.On("Get", mock.Anything, "acme", "repo", 9).
			Return(&github.PullRequest{State: github.Ptr("open")}, &github.Response{}, nil)
		mockIssues.On("ListComments", mock.Anything, "acme", "repo", 9, mock.Anything).
			Return([]*github.IssueComment{}, &github.Response{}, nil)
		mockPR.On("ListComments", mock.Anything, "acme", "repo", 9, mock.Anything).
			Return([]*github.PullRequestComment{}, &github.Response{}, nil)

		record, err := client.GetPullRequest(context.Background(), "acme", "repo", 9)

		require.NoError(t, err)
		require.NotNil(t, record.Comments)

		data, err := json.Marshal(record)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"comments":[]`)
		assert.NotContains(t, string(data), `"comments":null`)
	})

	t.Run("should report merged PRs as merged, not closed", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockPR.On("Get", mock.Anything, "acme", "repo", 1).
			Return(&github.PullRequest{
				State:    github.Ptr("closed"),
				Merged:   github.Ptr(true),
				MergedAt: ts("2024-02-01T00:00:00Z"),
			}, &github.Response{}, nil)
		mockIssues.On("ListComments", mock.Anything, "acme", "repo", 1, mock.Anything).
			Return([]*github.IssueComment{}, &github.Response{}, nil)
		mockPR.On("ListComments", mock.Anything, "acme", "repo", 1, mock.Anything).
			Return([]*github.PullRequestComment{}, &github.Response{}, nil)

		record, err := client.GetPullRequest(context.Background(), "acme", "repo", 1)

		require.NoError(t, err)
		assert.Equal(t, models.StateMerged, record.State)
	})

	t.Run("should merge issue and review comments sorted by created_at", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockPR.On("Get", mock.Anything, "acme", "repo", 2).
			Return(&github.PullRequest{State: github.Ptr("open")}, &github.Response{}, nil)

		mockIssues.On("ListComments", mock.Anything, "acme", "repo", 2, mock.Anything).
			Return([]*github.IssueComment{
				{
					User:      &github.User{Login: github.Ptr("ana")},
					Body:      github.Ptr("primer comentario"),
					CreatedAt: ts("2024-03-01T10:00:00Z"),
					UpdatedAt: ts("2024-03-01T10:00:00Z"),
				},
				{
					User:      &github.User{Login: github.Ptr("leo")},
					Body:      github.Ptr("tercer comentario"),
					CreatedAt: ts("2024-03-03T10:00:00Z"),
					UpdatedAt: ts("2024-03-03T10:00:00Z"),
				},
			}, &github.Response{}, nil)

		mockPR.On("ListComments", mock.Anything, "acme", "repo", 2, mock.Anything).
			Return([]*github.PullRequestComment{
				{
					User:      &github.User{Login: github.Ptr("mia")},
					Body:      github.Ptr("comentario de review"),
					Path:      github.Ptr("parser.go"),
					Line:      github.Ptr(42),
					CreatedAt: ts("2024-03-02T10:00:00Z"),
					UpdatedAt: ts("2024-03-02T10:00:00Z"),
				},
			}, &github.Response{}, nil)

		record, err := client.GetPullRequest(context.Background(), "acme", "repo", 2)

		require.NoError(t, err)
		require.Len(t, record.Comments, 3)
		assert.Equal(t, "ana", record.Comments[0].Author)
		assert.Equal(t, "mia", record.Comments[1].Author)
		assert.Equal(t, "leo", record.Comments[2].Author)

		review := record.Comments[1]
		assert.Equal(t, "parser.go", review.File)
		assert.Equal(t, 42, review.Line)
		assert.Equal(t, models.CommentTypeReview, review.Type)

		issue := record.Comments[0]
		assert.Empty(t, issue.File)
		assert.Empty(t, issue.Type)
	})

	t.Run("should page through the comment list", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockPR.On("Get", mock.Anything, "acme", "repo", 3).
			Return(&github.PullRequest{State: github.Ptr("open")}, &github.Response{}, nil)

		firstPage := []*github.IssueComment{{
			User:      &github.User{Login: github.Ptr("ana")},
			Body:      github.Ptr("página uno"),
			CreatedAt: ts("2024-03-01T10:00:00Z"),
		}}
		secondPage := []*github.IssueComment{{
			User:      &github.User{Login: github.Ptr("ana")},
			Body:      github.Ptr("página dos"),
			CreatedAt: ts("2024-03-01T11:00:00Z"),
		}}

		mockIssues.On("ListComments", mock.Anything, "acme", "repo", 3, mock.MatchedBy(func(opts *github.IssueListCommentsOptions) bool {
			return opts.Page == 0
		})).Return(firstPage, &github.Response{NextPage: 2}, nil).Once()
		mockIssues.On("ListComments", mock.Anything, "acme", "repo", 3, mock.MatchedBy(func(opts *github.IssueListCommentsOptions) bool {
			return opts.Page == 2
		})).Return(secondPage, &github.Response{}, nil).Once()

		mockPR.On("ListComments", mock.Anything, "acme", "repo", 3, mock.Anything).
			Return([]*github.PullRequestComment{}, &github.Response{}, nil)

		record, err := client.GetPullRequest(context.Background(), "acme", "repo", 3)

		require.NoError(t, err)
		require.Len(t, record.Comments, 2)
		assert.Equal(t, "página uno", record.Comments[0].Body)
		assert.Equal(t, "página dos", record.Comments[1].Body)
		mockIssues.AssertExpectations(t)
	})

	t.Run("should propagate a fetch error", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockPR.On("Get", mock.Anything, "acme", "repo", 4).
			Return(nil, nil, errors.New("404 Not Found"))

		_, err := client.GetPullRequest(context.Background(), "acme", "repo", 4)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404 Not Found")
	})

	t.Run("should propagate a comment listing error", func(t *testing.T) {
		mockPR := &MockPRService{}
		mockIssues := &MockIssuesService{}
		client := newTestClient(t, mockPR, mockIssues)

		mockPR.On("Get", mock.Anything, "acme", "repo", 5).
			Return(&github.PullRequest{State: github.Ptr("open")}, &github.Response{}, nil)
		mockIssues.On("ListComments", mock.Anything, "acme", "repo", 5, mock.Anything).
			Return(nil, nil, errors.New("403 rate limit"))

		_, err := client.GetPullRequest(context.Background(), "acme", "repo", 5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "403 rate limit")
	})
}

func TestNewGitHubClient(t *testing.T) {
	t.Run("should reject an invalid enterprise base URL", func(t *testing.T) {
		trans, err := i18n.NewTranslations("en", "")
		require.NoError(t, err)

		_, err = NewGitHubClient(ClientOptions{
			Token:   "token",
			BaseURL: "://no-es-una-url",
		}, trans)

		assert.Error(t, err)
	})

	t.Run("should build a client for github.com", func(t *testing.T) {
		trans, err := i18n.NewTranslations("en", "")
		require.NoError(t, err)

		client, err := NewGitHubClient(ClientOptions{Token: "token", VerifyTLS: true}, trans)

		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
