package service

import (
	"context"
	"fmt"

	"devmatch/internal/domain"

	"go.uber.org/zap"
)

// ApplicationService runs the apply / review / cancel pipeline.
type ApplicationService struct {
	projectStore     ProjectStorage
	memberStore      MemberStorage
	applicationStore ApplicationStorage
	userStore        UserStorage
	tx               txManager
	log              *zap.Logger
}

func NewApplicationService(
	projectStore ProjectStorage,
	memberStore MemberStorage,
	applicationStore ApplicationStorage,
	userStore UserStorage,
	tx txManager,
	log *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		projectStore:     projectStore,
		memberStore:      memberStore,
		applicationStore: applicationStore,
		userStore:        userStore,
		tx:               tx,
		log:              log,
	}
}

func (s *ApplicationService) ApplyToProject(ctx context.Context, projectID, userID int64, motivation string) (domain.Application, error) {
	var created domain.Application

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		project, err := s.projectStore.GetProjectByID(ctx, projectID)
		if err != nil {
			return err
		}

		if _, err := s.userStore.GetUserByID(ctx, userID); err != nil {
			return err
		}

		if !project.IsOpenForApplications() {
			return fmt.Errorf("%w: project %d", domain.ErrProjectClosed, projectID)
		}

		teamSize, err := s.memberStore.CountActiveMembers(ctx, projectID)
		if err != nil {
			return err
		}
		if project.IsFull(teamSize) {
			return fmt.Errorf("%w: project %d", domain.ErrProjectFull, projectID)
		}

		if project.IsOwner(userID) {
			return fmt.Errorf("%w: project %d", domain.ErrOwnerCannotApply, projectID)
		}

		exists, err := s.applicationStore.ApplicationExists(ctx, projectID, userID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: user %d, project %d", domain.ErrAlreadyApplied, userID, projectID)
		}

		application, err := domain.NewApplication(projectID, userID, motivation)
		if err != nil {
			return err
		}

		created, err = s.applicationStore.CreateApplication(ctx, application)
		return err
	})
	if err != nil {
		return domain.Application{}, err
	}

	s.log.Info("application submitted",
		zap.Int64("application_id", created.ID),
		zap.Int64("project_id", projectID),
		zap.Int64("user_id", userID),
	)
	return created, nil
}

// GetProjectApplications lists a project's applications for its owner. The
// first owner view marks each unseen application as seen. Only the flag is
// written, so a cancel or resolution committed after the list read survives.
func (s *ApplicationService) GetProjectApplications(ctx context.Context, projectID, ownerID int64) ([]domain.Application, error) {
	project, err := s.projectStore.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsOwner(ownerID) {
		return nil, fmt.Errorf("%w: user %d, project %d", domain.ErrNotProjectOwner, ownerID, projectID)
	}

	applications, err := s.applicationStore.ListApplicationsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Application, 0, len(applications))
	for _, application := range applications {
		if !application.SeenByOwner {
			if err := s.applicationStore.MarkApplicationSeen(ctx, application.ID); err != nil {
				return nil, err
			}
			application = application.MarkAsSeen()
		}
		out = append(out, application)
	}

	return out, nil
}

func (s *ApplicationService) GetUserApplications(ctx context.Context, userID int64) ([]domain.Application, error) {
	if _, err := s.userStore.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.applicationStore.ListApplicationsByUser(ctx, userID)
}

// AcceptApplication locks the project row before counting members, so
// concurrent accepts racing for the last slot are serialized.
func (s *ApplicationService) AcceptApplication(ctx context.Context, projectID, applicationID, ownerID int64) (domain.Application, error) {
	var result domain.Application

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		project, err := s.projectStore.GetProjectByIDForUpdate(ctx, projectID)
		if err != nil {
			return err
		}
		if !project.IsOwner(ownerID) {
			return fmt.Errorf("%w: user %d, project %d", domain.ErrNotProjectOwner, ownerID, projectID)
		}

		application, err := s.applicationOfProject(ctx, projectID, applicationID)
		if err != nil {
			return err
		}
		if !application.CanBeAccepted() {
			return fmt.Errorf("%w: application %d", domain.ErrApplicationNotPending, applicationID)
		}

		teamSize, err := s.memberStore.CountActiveMembers(ctx, projectID)
		if err != nil {
			return err
		}
		if project.IsFull(teamSize) {
			return fmt.Errorf("%w: project %d", domain.ErrProjectFull, projectID)
		}

		accepted, err := application.Accept()
		if err != nil {
			return err
		}
		if err := s.applicationStore.UpdateApplication(ctx, accepted); err != nil {
			return err
		}

		member, err := domain.NewMember(projectID, accepted.UserID, domain.RoleDeveloper)
		if err != nil {
			return err
		}
		if _, err := s.memberStore.AddMember(ctx, member); err != nil {
			return err
		}

		result = accepted
		return nil
	})
	if err != nil {
		return domain.Application{}, err
	}

	s.log.Info("application accepted",
		zap.Int64("application_id", applicationID),
		zap.Int64("project_id", projectID),
		zap.Int64("user_id", result.UserID),
	)
	return result, nil
}

func (s *ApplicationService) RejectApplication(ctx context.Context, projectID, applicationID, ownerID int64) (domain.Application, error) {
	var result domain.Application

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		project, err := s.projectStore.GetProjectByID(ctx, projectID)
		if err != nil {
			return err
		}
		if !project.IsOwner(ownerID) {
			return fmt.Errorf("%w: user %d, project %d", domain.ErrNotProjectOwner, ownerID, projectID)
		}

		application, err := s.applicationOfProject(ctx, projectID, applicationID)
		if err != nil {
			return err
		}
		if !application.CanBeRejected() {
			return fmt.Errorf("%w: application %d", domain.ErrApplicationNotPending, applicationID)
		}

		rejected, err := application.Reject()
		if err != nil {
			return err
		}
		if err := s.applicationStore.UpdateApplication(ctx, rejected); err != nil {
			return err
		}

		result = rejected
		return nil
	})
	if err != nil {
		return domain.Application{}, err
	}

	s.log.Info("application rejected",
		zap.Int64("application_id", applicationID),
		zap.Int64("project_id", projectID),
	)
	return result, nil
}

func (s *ApplicationService) CancelApplication(ctx context.Context, applicationID, userID int64) (domain.Application, error) {
	var result domain.Application

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		application, err := s.applicationStore.GetApplicationByIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		if application.UserID != userID {
			return fmt.Errorf("%w: user %d, application %d", domain.ErrNotApplicant, userID, applicationID)
		}
		if !application.CanBeCancelled() {
			return fmt.Errorf("%w: application %d", domain.ErrCannotCancel, applicationID)
		}

		cancelled, err := application.Cancel()
		if err != nil {
			return err
		}
		if err := s.applicationStore.UpdateApplication(ctx, cancelled); err != nil {
			return err
		}

		result = cancelled
		return nil
	})
	if err != nil {
		return domain.Application{}, err
	}

	s.log.Info("application cancelled",
		zap.Int64("application_id", applicationID),
		zap.Int64("user_id", userID),
	)
	return result, nil
}

// applicationOfProject loads the application row for update and checks it
// belongs to the project.
func (s *ApplicationService) applicationOfProject(ctx context.Context, projectID, applicationID int64) (domain.Application, error) {
	application, err := s.applicationStore.GetApplicationByIDForUpdate(ctx, applicationID)
	if err != nil {
		return domain.Application{}, err
	}
	if application.ProjectID != projectID {
		return domain.Application{}, fmt.Errorf("%w: application %d, project %d",
			domain.ErrApplicationMismatch, applicationID, projectID)
	}
	return application, nil
}
