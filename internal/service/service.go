package service

import (
	"context"

	"devmatch/internal/domain"
)

type ProjectStorage interface {
	GetProjectByID(ctx context.Context, projectID int64) (domain.Project, error)
	GetProjectByIDForUpdate(ctx context.Context, projectID int64) (domain.Project, error)
	CreateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
	ListProjectsByOwner(ctx context.Context, ownerID int64) ([]domain.Project, error)
	ListPublicProjects(ctx context.Context, limit, offset int) ([]domain.Project, error)
	CountProjectsByOwner(ctx context.Context, ownerID int64) (int, error)
	LockOwner(ctx context.Context, ownerID int64) error
}

type MemberStorage interface {
	CountActiveMembers(ctx context.Context, projectID int64) (int, error)
	AddMember(ctx context.Context, member domain.Member) (domain.Member, error)
	ListActiveMembers(ctx context.Context, projectID int64) ([]domain.Member, error)
	GetActiveMember(ctx context.Context, projectID, userID int64) (domain.Member, error)
	UpdateMember(ctx context.Context, member domain.Member) error
}

type ApplicationStorage interface {
	GetApplicationByID(ctx context.Context, applicationID int64) (domain.Application, error)
	GetApplicationByIDForUpdate(ctx context.Context, applicationID int64) (domain.Application, error)
	CreateApplication(ctx context.Context, application domain.Application) (domain.Application, error)
	UpdateApplication(ctx context.Context, application domain.Application) error
	MarkApplicationSeen(ctx context.Context, applicationID int64) error
	ListApplicationsByProject(ctx context.Context, projectID int64) ([]domain.Application, error)
	ListApplicationsByUser(ctx context.Context, userID int64) ([]domain.Application, error)
	ApplicationExists(ctx context.Context, projectID, userID int64) (bool, error)
}

// UserStorage is the query port onto the external user aggregate.
type UserStorage interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

type txManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
