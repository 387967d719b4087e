package service

import (
	"context"
	"testing"

	"devmatch/internal/domain"
	"devmatch/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type applicationMocks struct {
	projects     *mocks.ProjectStorage
	members      *mocks.MemberStorage
	applications *mocks.ApplicationStorage
	users        *mocks.UserStorage
}

func newApplicationService(t *testing.T) (*ApplicationService, applicationMocks) {
	m := applicationMocks{
		projects:     mocks.NewProjectStorage(t),
		members:      mocks.NewMemberStorage(t),
		applications: mocks.NewApplicationStorage(t),
		users:        mocks.NewUserStorage(t),
	}
	svc := NewApplicationService(m.projects, m.members, m.applications, m.users, &mockTxManager{}, zap.NewNop())
	return svc, m
}

func TestApplicationService_ApplyToProject_Success(t *testing.T) {
	ctx := context.Background()
	svc, m := newApplicationService(t)

	project := newTestProject(t, 10, 1, intPtr(3))

	m.projects.On("GetProjectByID", ctx, int64(10)).Return(project, nil).Once()
	m.users.On("GetUserByID", ctx, int64(2)).Return(&domain.User{ID: 2, Username: "alice"}, nil).Once()
	m.members.On("CountActiveMembers", ctx, int64(10)).Return(0, nil).Once()
	m.applications.On("ApplicationExists", ctx, int64(10), int64(2)).Return(false, nil).Once()
	m.applications.
		On("CreateApplication", ctx, mock.MatchedBy(func(a domain.Application) bool {
			return a.ProjectID == 10 && a.UserID == 2 && a.IsPending() && a.IsActive() && !a.SeenByOwner
		})).
		Return(func(_ context.Context, a domain.Application) (domain.Application, error) {
			a.ID = 100
			return a, nil
		}).Once()

	got, err := svc.ApplyToProject(ctx, 10, 2, validMotivation)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.ID)
	assert.Equal(t, domain.ApplicationStatusPending, got.Status)
	assert.Equal(t, validMotivation, got.Motivation.String())
	assert.Nil(t, got.ResolvedAt)
}

func TestApplicationService_ApplyToProject_Rejected(t *testing.T) {
	ctx := context.Background()

	closed := newTestProject(t, 10, 1, nil).UpdateStatus(domain.ProjectStatusInProgress)
	full := newTestProject(t, 10, 1, intPtr(1))
	open := newTestProject(t, 10, 1, intPtr(5))

	tests := []struct {
		name    string
		userID  int64
		setup   func(m applicationMocks)
		wantErr error
	}{
		{
			name:   "project not open",
			userID: 2,
			setup: func(m applicationMocks) {
				m.projects.On("GetProjectByID", ctx, int64(10)).Return(closed, nil).Once()
				m.users.On("GetUserByID", ctx, int64(2)).Return(&domain.User{ID: 2}, nil).Once()
			},
			wantErr: domain.ErrProjectClosed,
		},
		{
			name:   "project full",
			userID: 2,
			setup: func(m applicationMocks) {
				m.projects.On("GetProjectByID", ctx, int64(10)).Return(full, nil).Once()
				m.users.On("GetUserByID", ctx, int64(2)).Return(&domain.User{ID: 2}, nil).Once()
				m.members.On("CountActiveMembers", ctx, int64(10)).Return(1, nil).Once()
			},
			wantErr: domain.ErrProjectFull,
		},
		{
			name:   "owner applies",
			userID: 1,
			setup: func(m applicationMocks) {
				m.projects.On("GetProjectByID", ctx, int64(10)).Return(open, nil).Once()
				m.users.On("GetUserByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil).Once()
				m.members.On("CountActiveMembers", ctx, int64(10)).Return(0, nil).Once()
			},
			wantErr: domain.ErrOwnerCannotApply,
		},
		{
			name:   "already applied",
			userID: 2,
			setup: func(m applicationMocks) {
				m.projects.On("GetProjectByID", ctx, int64(10)).Return(open, nil).Once()
				m.users.On("GetUserByID", ctx, int64(2)).Return(&domain.User{ID: 2}, nil).Once()
				m.members.On("CountActiveMembers", ctx, int64(10)).Return(0, nil).Once()
				m.applications.On("ApplicationExists", ctx, int64(10), int64(2)).Return(true, nil).Once()
			},
			wantErr: domain.ErrAlreadyApplied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newApplicationService(t)
			tt.setup(m)

			_, err := svc.ApplyToProject(ctx, 10, tt.userID, validMotivation)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrOperationNotAllowed)
			m.applications.AssertNotCalled(t, "CreateApplication", mock.Anything, mock.Anything)
		})
	}
}

func TestApplicationService_ApplyToProject_NotFound(t *testing.T) {
	ctx := context.Background()

	t.Run("project", func(t *testing.T) {
		svc, m := newApplicationService(t)
		m.projects.On("GetProjectByID", ctx, int64(10)).Return(domain.Project{}, domain.ErrProjectNotFound).Once()

		_, err := svc.ApplyToProject(ctx, 10, 2, validMotivation)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("user", func(t *testing.T) {
		svc, m := newApplicationService(t)
		m.projects.On("GetProjectByID", ctx, int64(10)).Return(newTestProject(t, 10, 1, nil), nil).Once()
		m.users.On("GetUserByID", ctx, int64(2)).Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.ApplyToProject(ctx, 10, 2, validMotivation)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestApplicationService_ApplyToProject_InvalidMotivation(t *testing.T) {
	ctx := context.Background()
	svc, m := newApplicationService(t)

	m.projects.On("GetProjectByID", ctx, int64(10)).Return(newTestProject(t, 10, 1, nil), nil).Once()
	m.users.On("GetUserByID", ctx, int64(2)).Return(&domain.User{ID: 2}, nil).Once()
	m.members.On("CountActiveMembers", ctx, int64(10)).Return(0, nil).Once()
	m.applications.On("ApplicationExists", ctx, int64(10), int64(2)).Return(false, nil).Once()

	_, err := svc.ApplyToProject(ctx, 10, 2, "too short")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

// Two pending applicants, one slot: the second accept must hit the live member count.
func TestApplicationService_AcceptApplication_LastSlot(t *testing.T) {
	ctx := context.Background()
	svc, m := newApplicationService(t)

	project := newTestProject(t, 10, 1, intPtr(1))
	appA := newTestApplication(t, 100, 10, 2)
	appB := newTestApplication(t, 101, 10, 3)

	m.projects.On("GetProjectByIDForUpdate", ctx, int64(10)).Return(project, nil).Twice()
	m.applications.On("GetApplicationByIDForUpdate", ctx, int64(100)).Return(appA, nil).Once()
	m.members.On("CountActiveMembers", ctx, int64(10)).Return(0, nil).Once()
	m.applications.
		On("UpdateApplication", ctx, mock.MatchedBy(func(a domain.Application) bool {
			return a.ID == 100 && a.IsAccepted() && a.ResolvedAt != nil
		})).
		Return(nil).Once()
	m.members.
		On("AddMember", ctx, mock.MatchedBy(func(mb domain.Member) bool {
			return mb.ProjectID == 10 && mb.UserID == 2 && mb.Role == domain.RoleDeveloper && mb.IsActive() && !mb.IsOwner
		})).
		Return(domain.Member{ID: 1, ProjectID: 10, UserID: 2, Role: domain.RoleDeveloper}, nil).Once()

	accepted, err := svc.AcceptApplication(ctx, 10, 100, 1)
	require.NoError(t, err)
	assert.True(t, accepted.IsAccepted())
	assert.NotNil(t, accepted.ResolvedAt)

	m.applications.On("GetApplicationByIDForUpdate", ctx, int64(101)).Return(appB, nil).Once()
	m.members.On("CountActiveMembers", ctx, int64(10)).Return(1, nil).Once()

	_, err = svc.AcceptApplication(ctx, 10, 101, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProjectFull)
	assert.ErrorIs(t, err, domain.ErrOperationNotAllowed)
	m.members.AssertNumberOfCalls(t, "AddMember", 1)
}

func TestApplicationService_AcceptApplication_Guards(t *testing.T) {
	ctx := context.Background()

	project := newTestProject(t, 10, 1, nil)

	t.Run("not owner", func(t *testing.T) {
		svc, m := newApplicationService(t)
		m.projects.On("GetProjectByIDForUpdate", ctx, int64(10)).Return(project, nil).Once()

		_, err := svc.AcceptApplication(ctx, 10, 100, 99)
		assert.ErrorIs(t, err, domain.ErrNotProjectOwner)
	})

	t.Run("application of another project", func(t *testing.T) {
		svc, m := newApplicationService(t)
		m.projects.On("GetProjectByIDForUpdate", ctx, int64(10)).Return(project, nil).Once()
		m.applications.On("GetApplicationByIDForUpdate", ctx, int64(100)).
			Return(newTestApplication(t, 100, 77, 2), nil).Once()

		_, err := svc.AcceptApplication(ctx, 10, 100, 1)
		assert.ErrorIs(t, err, domain.ErrApplicationMismatch)
	})

	t.Run("already accepted", func(t *testing.T) {
		svc, m := newApplicationService(t)
		accepted, err := newTestApplication(t, 100, 10, 2).Accept()
		require.NoError(t, err)

		m.projects.On("GetProjectByIDForUpdate", ctx, int64(10)).Return(project, nil).Once()
		m.applications.On("GetApplicationByIDForUpdate", ctx, int64(100)).Return(accepted, nil).Once()

		_, err = svc.AcceptApplication(ctx, 10, 100, 1)
		assert.ErrorIs(t, err, domain.ErrApplicationNotPending)
	})

	t.Run("cancelled", func(t *testing.T) {
		svc, m := newApplicationService(t)
		cancelled, err := newTestApplication(t, 100, 10, 2).Cancel()
		require.NoError(t, err)

		m.projects.On("GetProjectByIDForUpdate", ctx, int64(10)).Return(project, nil).Once()
		m.applications.On("GetApplicationByIDForUpdate", ctx, int64(100)).Return(cancelled, nil).Once()

		_, err = svc.AcceptApplication(ctx, 10, 100, 1)
		assert.ErrorIs(t, err, domain.ErrApplicationNotPending)
	})

	t.Run("missing application", func(t *testing.T) {
		svc, m := newApplicationService(t)
		m.projects.On("GetProjectByIDForUpdate", ctx, int64(10)).Return(project, nil).Once()
		m.applications.On("GetApplicationByIDForUpdate", ctx, int64(100)).
			Return(domain.Application{}, domain.ErrApplicationNotFound).Once()

		_, err := svc.AcceptApplication(ctx, 10, 100, 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestApplicationService_RejectApplication(t *testing.T) {
	ctx := context.Background()
	svc, m := newApplicationService(t)

	m.projects.On("GetProjectByID", ctx, int64(10)).Return(newTestProject(t, 10, 1, nil), nil).Once()
	m.applications.On("GetApplicationByIDForUpdate", ctx, int64(100)).
		Return(newTestApplication(t, 100, 10, 2), nil).Once()
	m.applications.
		On("UpdateApplication", ctx, mock.MatchedBy(func(a domain.Application) bool {
			return a.IsRejected() && a.ResolvedAt != nil
		})).
		Return(nil).Once()

	got, err := svc.RejectApplication(ctx, 10, 100, 1)
	require.NoError(t, err)
	assert.True(t, got.IsRejected())
	m.members.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
}

func TestApplicationService_CancelApplication_Twice(t *testing.T) {
	ctx := context.Background()
	svc, m := newApplicationService(t)

	pending := newTestApplication(t, 100, 10, 2)

	m.applications.On("GetApplicationByIDForUpdate", ctx, int64(100)).Return(pending, nil).Once()
	m.applications.
		On("UpdateApplication", ctx, mock.MatchedBy(func(a domain.Application) bool {
			return !a.IsActive() && a.IsPending()
		})).
		Return(nil).Once()

	cancelled, err := svc.CancelApplication(ctx, 100, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, cancelled.Status)
	assert.False(t, cancelled.IsActive())
	assert.False(t, cancelled.CanBeCancelled())

	m.applications.On("GetApplicationByIDForUpdate", ctx, int64(100)).Return(cancelled, nil).Once()

	_, err = svc.CancelApplication(ctx, 100, 2)
	assert.ErrorIs(t, err, domain.ErrCannotCancel)
	assert.ErrorIs(t, err, domain.ErrOperationNotAllowed)
}

func TestApplicationService_CancelApplication_NotApplicant(t *testing.T) {
	ctx := context.Background()
	svc, m := newApplicationService(t)

	m.applications.On("GetApplicationByIDForUpdate", ctx, int64(100)).
		Return(newTestApplication(t, 100, 10, 2), nil).Once()

	_, err := svc.CancelApplication(ctx, 100, 3)
	assert.ErrorIs(t, err, domain.ErrNotApplicant)
	m.applications.AssertNotCalled(t, "UpdateApplication", mock.Anything, mock.Anything)
}

func TestApplicationService_GetProjectApplications_MarksSeen(t *testing.T) {
	ctx := context.Background()
	svc, m := newApplicationService(t)

	unseen := newTestApplication(t, 100, 10, 2)
	seen := newTestApplication(t, 101, 10, 3).MarkAsSeen()

	m.projects.On("GetProjectByID", ctx, int64(10)).Return(newTestProject(t, 10, 1, nil), nil).Once()
	m.applications.On("ListApplicationsByProject", ctx, int64(10)).
		Return([]domain.Application{unseen, seen}, nil).Once()
	m.applications.On("MarkApplicationSeen", ctx, int64(100)).Return(nil).Once()

	got, err := svc.GetProjectApplications(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, a := range got {
		assert.True(t, a.SeenByOwner)
	}
	m.applications.AssertNumberOfCalls(t, "MarkApplicationSeen", 1)
}

// The listed rows may be stale by the time they are marked; the full row must
// never be written back or a concurrent cancel would be undone.
func TestApplicationService_GetProjectApplications_KeepsConcurrentCancel(t *testing.T) {
	ctx := context.Background()
	svc, m := newApplicationService(t)

	snapshot := newTestApplication(t, 100, 10, 2)

	m.projects.On("GetProjectByID", ctx, int64(10)).Return(newTestProject(t, 10, 1, nil), nil).Once()
	m.applications.On("ListApplicationsByProject", ctx, int64(10)).
		Return([]domain.Application{snapshot}, nil).Once()
	m.applications.On("MarkApplicationSeen", ctx, int64(100)).Return(nil).Once()

	_, err := svc.GetProjectApplications(ctx, 10, 1)
	require.NoError(t, err)
	m.applications.AssertNotCalled(t, "UpdateApplication", mock.Anything, mock.Anything)
}

func TestApplicationService_GetProjectApplications_NotOwner(t *testing.T) {
	ctx := context.Background()
	svc, m := newApplicationService(t)

	m.projects.On("GetProjectByID", ctx, int64(10)).Return(newTestProject(t, 10, 1, nil), nil).Once()

	_, err := svc.GetProjectApplications(ctx, 10, 2)
	assert.ErrorIs(t, err, domain.ErrNotProjectOwner)
	m.applications.AssertNotCalled(t, "ListApplicationsByProject", mock.Anything, mock.Anything)
}

func TestApplicationService_GetUserApplications(t *testing.T) {
	ctx := context.Background()
	svc, m := newApplicationService(t)

	apps := []domain.Application{newTestApplication(t, 100, 10, 2)}

	m.users.On("GetUserByID", ctx, int64(2)).Return(&domain.User{ID: 2}, nil).Once()
	m.applications.On("ListApplicationsByUser", ctx, int64(2)).Return(apps, nil).Once()

	got, err := svc.GetUserApplications(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, apps, got)
}
