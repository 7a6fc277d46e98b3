package services

import (
	"context"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (models.PullRequestRecord, error) {
	args := m.Called(ctx, owner, repo, number)
	return args.Get(0).(models.PullRequestRecord), args.Error(1)
}

type MockPromptGenerator struct {
	mock.Mock
}

func (m *MockPromptGenerator) GeneratePrompt(ctx context.Context, input models.PromptInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockPromptGenerator) ModelName() string {
	args := m.Called()
	return args.String(0)
}
