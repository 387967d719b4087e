package service

import (
	"context"
	"fmt"

	"devmatch/internal/domain"

	"go.uber.org/zap"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ProjectService manages projects and their teams.
type ProjectService struct {
	projectStore ProjectStorage
	memberStore  MemberStorage
	userStore    UserStorage
	tx           txManager
	log          *zap.Logger
}

func NewProjectService(
	projectStore ProjectStorage,
	memberStore MemberStorage,
	userStore UserStorage,
	tx txManager,
	log *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectStore: projectStore,
		memberStore:  memberStore,
		userStore:    userStore,
		tx:           tx,
		log:          log,
	}
}

// CreateProject serializes creations per owner so the quota cannot be overrun.
func (s *ProjectService) CreateProject(ctx context.Context, ownerID int64, draft domain.ProjectDraft) (domain.Project, error) {
	var created domain.Project

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.userStore.GetUserByID(ctx, ownerID); err != nil {
			return err
		}
		if err := s.projectStore.LockOwner(ctx, ownerID); err != nil {
			return err
		}

		count, err := s.projectStore.CountProjectsByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		if err := domain.ValidateProjectCreation(ownerID, count); err != nil {
			return err
		}

		project, err := domain.NewProject(ownerID, draft)
		if err != nil {
			return err
		}

		created, err = s.projectStore.CreateProject(ctx, project)
		return err
	})
	if err != nil {
		return domain.Project{}, err
	}

	s.log.Info("project created",
		zap.Int64("project_id", created.ID),
		zap.Int64("owner_id", ownerID),
	)
	return created, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, projectID, userID int64, draft domain.ProjectDraft) (domain.Project, error) {
	var result domain.Project

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		project, err := s.editableProject(ctx, projectID, userID)
		if err != nil {
			return err
		}

		edited, err := project.Edit(draft)
		if err != nil {
			return err
		}

		if edited.MaxTeamSize != nil {
			members, err := s.memberStore.CountActiveMembers(ctx, projectID)
			if err != nil {
				return err
			}
			if edited.MaxTeamSize.Value() < members {
				return fmt.Errorf("%w: project %d has %d members", domain.ErrTeamSizeBelowMembers, projectID, members)
			}
		}

		if err := s.projectStore.UpdateProject(ctx, edited); err != nil {
			return err
		}
		result = edited
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}

	s.log.Info("project updated", zap.Int64("project_id", projectID))
	return result, nil
}

func (s *ProjectService) ChangeStatus(ctx context.Context, projectID, userID int64, status string) (domain.Project, error) {
	st, err := domain.ParseProjectStatus(status)
	if err != nil {
		return domain.Project{}, err
	}

	project, err := s.transition(ctx, projectID, userID, func(p domain.Project) domain.Project {
		return p.UpdateStatus(st)
	})
	if err != nil {
		return domain.Project{}, err
	}

	s.log.Info("project status changed",
		zap.Int64("project_id", projectID),
		zap.String("status", string(st)),
	)
	return project, nil
}

func (s *ProjectService) ChangeVisibility(ctx context.Context, projectID, userID int64, isPublic bool) (domain.Project, error) {
	project, err := s.transition(ctx, projectID, userID, func(p domain.Project) domain.Project {
		return p.UpdateVisibility(isPublic)
	})
	if err != nil {
		return domain.Project{}, err
	}

	s.log.Info("project visibility changed",
		zap.Int64("project_id", projectID),
		zap.Bool("public", isPublic),
	)
	return project, nil
}

func (s *ProjectService) Deactivate(ctx context.Context, projectID, userID int64) (domain.Project, error) {
	project, err := s.transition(ctx, projectID, userID, domain.Project.Deactivate)
	if err != nil {
		return domain.Project{}, err
	}

	s.log.Info("project deactivated", zap.Int64("project_id", projectID))
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, projectID, userID int64) error {
	if _, err := s.transition(ctx, projectID, userID, domain.Project.SoftDelete); err != nil {
		return err
	}

	s.log.Info("project deleted", zap.Int64("project_id", projectID))
	return nil
}

// Restore needs ownership only: a deleted project is never editable. A deleted
// project counts against the owner quota again once restored.
func (s *ProjectService) Restore(ctx context.Context, projectID, userID int64) (domain.Project, error) {
	var result domain.Project

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		project, err := s.projectStore.GetProjectByIDForUpdate(ctx, projectID)
		if err != nil {
			return err
		}
		if !project.IsOwner(userID) {
			return fmt.Errorf("%w: user %d, project %d", domain.ErrNotProjectOwner, userID, projectID)
		}

		if project.IsDeleted() {
			if err := s.projectStore.LockOwner(ctx, project.OwnerID); err != nil {
				return err
			}
			count, err := s.projectStore.CountProjectsByOwner(ctx, project.OwnerID)
			if err != nil {
				return err
			}
			if err := domain.ValidateProjectCreation(project.OwnerID, count); err != nil {
				return err
			}
		}

		restored := project.Restore()
		if err := s.projectStore.UpdateProject(ctx, restored); err != nil {
			return err
		}
		result = restored
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}

	s.log.Info("project restored", zap.Int64("project_id", projectID))
	return result, nil
}

func (s *ProjectService) GetProject(ctx context.Context, projectID, userID int64) (domain.Project, error) {
	project, err := s.projectStore.GetProjectByID(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if project.IsDeleted() && !project.IsOwner(userID) {
		return domain.Project{}, fmt.Errorf("%w: %d", domain.ErrProjectNotFound, projectID)
	}
	if !project.IsVisibleTo(userID) {
		return domain.Project{}, fmt.Errorf("%w: user %d, project %d", domain.ErrProjectNotVisible, userID, projectID)
	}
	return project, nil
}

func (s *ProjectService) GetPublicProject(ctx context.Context, projectID int64) (domain.Project, error) {
	project, err := s.projectStore.GetProjectByID(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if !project.IsPublic || !project.IsActive() {
		return domain.Project{}, fmt.Errorf("%w: project %d", domain.ErrProjectNotPublic, projectID)
	}
	return project, nil
}

func (s *ProjectService) ListPublicProjects(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.projectStore.ListPublicProjects(ctx, limit, offset)
}

// ListOwnerProjects returns every non-deleted project to the owner and only
// public active ones to anybody else.
func (s *ProjectService) ListOwnerProjects(ctx context.Context, ownerID, callerID int64) ([]domain.Project, error) {
	projects, err := s.projectStore.ListProjectsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.IsDeleted() {
			continue
		}
		if ownerID != callerID && (!p.IsPublic || !p.IsActive()) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetProjectMembers enriches active memberships with user data. A failed
// user lookup degrades to a placeholder name instead of failing the listing.
func (s *ProjectService) GetProjectMembers(ctx context.Context, projectID, userID int64) ([]domain.MemberView, error) {
	if _, err := s.GetProject(ctx, projectID, userID); err != nil {
		return nil, err
	}

	members, err := s.memberStore.ListActiveMembers(ctx, projectID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.MemberView, 0, len(members))
	for _, m := range members {
		view := domain.MemberView{
			UserID:   m.UserID,
			Username: domain.FallbackUsername(m.UserID),
			Role:     m.Role,
			IsOwner:  m.IsOwner,
		}

		user, err := s.userStore.GetUserByID(ctx, m.UserID)
		if err != nil {
			s.log.Warn("member user lookup failed",
				zap.Int64("project_id", projectID),
				zap.Int64("user_id", m.UserID),
				zap.Error(err),
			)
		} else if user != nil {
			view.Username = user.Username
			view.ProfileType = user.PrimaryProfileType()
		}

		views = append(views, view)
	}
	return views, nil
}

func (s *ProjectService) RemoveMember(ctx context.Context, projectID, memberUserID, ownerID int64) error {
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		project, err := s.ownedProject(ctx, projectID, ownerID)
		if err != nil {
			return err
		}
		if project.IsOwner(memberUserID) {
			return fmt.Errorf("%w: project %d", domain.ErrCannotRemoveOwner, projectID)
		}

		member, err := s.memberStore.GetActiveMember(ctx, projectID, memberUserID)
		if err != nil {
			return err
		}
		left, err := member.Leave()
		if err != nil {
			return err
		}
		return s.memberStore.UpdateMember(ctx, left)
	})
	if err != nil {
		return err
	}

	s.log.Info("member removed",
		zap.Int64("project_id", projectID),
		zap.Int64("user_id", memberUserID),
	)
	return nil
}

func (s *ProjectService) ChangeMemberRole(ctx context.Context, projectID, memberUserID int64, role string, ownerID int64) (domain.Member, error) {
	var result domain.Member

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.ownedProject(ctx, projectID, ownerID); err != nil {
			return err
		}

		member, err := s.memberStore.GetActiveMember(ctx, projectID, memberUserID)
		if err != nil {
			return err
		}
		changed, err := member.ChangeRole(role)
		if err != nil {
			return err
		}
		if err := s.memberStore.UpdateMember(ctx, changed); err != nil {
			return err
		}
		result = changed
		return nil
	})
	if err != nil {
		return domain.Member{}, err
	}

	s.log.Info("member role changed",
		zap.Int64("project_id", projectID),
		zap.Int64("user_id", memberUserID),
		zap.String("role", result.Role),
	)
	return result, nil
}

// transition applies fn to an editable project inside a transaction and saves the result.
func (s *ProjectService) transition(ctx context.Context, projectID, userID int64, fn func(domain.Project) domain.Project) (domain.Project, error) {
	var result domain.Project

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		project, err := s.editableProject(ctx, projectID, userID)
		if err != nil {
			return err
		}

		changed := fn(project)
		if err := s.projectStore.UpdateProject(ctx, changed); err != nil {
			return err
		}
		result = changed
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}
	return result, nil
}

func (s *ProjectService) editableProject(ctx context.Context, projectID, userID int64) (domain.Project, error) {
	project, err := s.projectStore.GetProjectByIDForUpdate(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if !project.CanBeEditedBy(userID) {
		return domain.Project{}, fmt.Errorf("%w: user %d, project %d", domain.ErrProjectNotEditable, userID, projectID)
	}
	return project, nil
}

func (s *ProjectService) ownedProject(ctx context.Context, projectID, ownerID int64) (domain.Project, error) {
	project, err := s.projectStore.GetProjectByIDForUpdate(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if !project.IsOwner(ownerID) {
		return domain.Project{}, fmt.Errorf("%w: user %d, project %d", domain.ErrNotProjectOwner, ownerID, projectID)
	}
	return project, nil
}
