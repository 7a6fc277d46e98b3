package github

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListComments(ctx context.Context, owner, repo string, number int, opts *github.PullRequestListCommentsOptions) ([]*github.PullRequestComment, *github.Response, error)
}

type IssuesService interface {
	ListComments(ctx context.Context, owner, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	trans         *i18n.Translations
}

// ClientOptions controla cómo se construye el cliente HTTP subyacente.
// BaseURL apunta a una instancia enterprise; VerifyTLS deshabilitado permite
// pasar por proxies corporativos con certificados autofirmados.
type ClientOptions struct {
	Token     string
	BaseURL   string
	VerifyTLS bool
}

func NewGitHubClient(opts ClientOptions, trans *i18n.Translations) (*GitHubClient, error) {
	httpClient := &http.Client{}
	if !opts.VerifyTLS {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	if opts.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	if opts.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("base URL inválida %q: %w", opts.BaseURL, err)
		}
	}

	return &GitHubClient{
		prService:     client.PullRequests,
		issuesService: client.Issues,
		trans:         trans,
	}, nil
}

func NewGitHubClientWithServices(prService PullRequestsService, issuesService IssuesService, trans *i18n.Translations) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		trans:         trans,
	}
}

// GetPullRequest trae los metadatos del PR y el hilo completo de comentarios
// (de issue y de review), mezclados y ordenados por fecha de creación.
func (ghc *GitHubClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (models.PullRequestRecord, error) {
	pr, _, err := ghc.prService.Get(ctx, owner, repo, number)
	if err != nil {
		return models.PullRequestRecord{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_pr", 0, map[string]interface{}{
			"Number": number,
			"Owner":  owner,
			"Repo":   repo,
		}), err)
	}

	comments, err := ghc.listIssueComments(ctx, owner, repo, number)
	if err != nil {
		return models.PullRequestRecord{}, err
	}

	reviewComments, err := ghc.listReviewComments(ctx, owner, repo, number)
	if err != nil {
		return models.PullRequestRecord{}, err
	}

	comments = append(comments, reviewComments...)
	// orden estable: dentro de una misma fecha se conserva el orden de la API
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt < comments[j].CreatedAt
	})

	return models.PullRequestRecord{
		URL:         pr.GetHTMLURL(),
		Title:       pr.GetTitle(),
		Description: pr.GetBody(),
		State:       prState(pr),
		CreatedAt:   formatTime(pr.GetCreatedAt()),
		UpdatedAt:   formatTime(pr.GetUpdatedAt()),
		Comments:    comments,
	}, nil
}

func (ghc *GitHubClient) listIssueComments(ctx context.Context, owner, repo string, number int) ([]models.CommentRecord, error) {
	// nunca nil: un PR sin comentarios serializa "comments": []
	records := []models.CommentRecord{}
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		comments, resp, err := ghc.issuesService.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_comments", 0, map[string]interface{}{
				"Number": number,
			}), err)
		}

		for _, comment := range comments {
			records = append(records, models.CommentRecord{
				Author:    comment.GetUser().GetLogin(),
				Body:      comment.GetBody(),
				CreatedAt: formatTime(comment.GetCreatedAt()),
				UpdatedAt: formatTime(comment.GetUpdatedAt()),
			})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return records, nil
}

func (ghc *GitHubClient) listReviewComments(ctx context.Context, owner, repo string, number int) ([]models.CommentRecord, error) {
	var records []models.CommentRecord
	opts := &github.PullRequestListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		comments, resp, err := ghc.prService.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_comments", 0, map[string]interface{}{
				"Number": number,
			}), err)
		}

		for _, comment := range comments {
			records = append(records, models.CommentRecord{
				Author:    comment.GetUser().GetLogin(),
				Body:      comment.GetBody(),
				CreatedAt: formatTime(comment.GetCreatedAt()),
				UpdatedAt: formatTime(comment.GetUpdatedAt()),
				File:      comment.GetPath(),
				Line:      comment.GetLine(),
				Type:      models.CommentTypeReview,
			})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return records, nil
}

// prState mapea el estado de la API al trío open/closed/merged. GitHub
// reporta los PRs mergeados como "closed", el merge se detecta por merged_at.
func prState(pr *github.PullRequest) string {
	if pr.GetMerged() || !pr.GetMergedAt().Time.IsZero() {
		return models.StateMerged
	}
	if pr.GetState() == "closed" {
		return models.StateClosed
	}
	return models.StateOpen
}

func formatTime(ts github.Timestamp) string {
	if ts.Time.IsZero() {
		return ""
	}
	return ts.Time.UTC().Format(time.RFC3339)
}
