package service

import (
	"context"
	"testing"

	"devmatch/internal/domain"

	"github.com/stretchr/testify/require"
)

type mockTxManager struct{}

func (f *mockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

const (
	validTitle       = "Open Source Tracker"
	validDescription = "A collaborative tool for tracking open source contributions across teams"
	validMotivation  = "I would love to join and help build the backend"
)

func intPtr(v int) *int { return &v }

func validDraft(maxTeamSize *int) domain.ProjectDraft {
	return domain.ProjectDraft{
		Title:       validTitle,
		Description: validDescription,
		Status:      domain.ProjectStatusOpen,
		MaxTeamSize: maxTeamSize,
		IsPublic:    true,
	}
}

func newTestProject(t *testing.T, id, ownerID int64, maxTeamSize *int) domain.Project {
	t.Helper()

	p, err := domain.NewProject(ownerID, validDraft(maxTeamSize))
	require.NoError(t, err)
	p.ID = id
	return p
}

func newTestApplication(t *testing.T, id, projectID, userID int64) domain.Application {
	t.Helper()

	a, err := domain.NewApplication(projectID, userID, validMotivation)
	require.NoError(t, err)
	a.ID = id
	return a
}
