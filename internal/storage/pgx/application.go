package pgx

import (
	"context"
	"errors"

	"devmatch/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) GetApplicationByID(ctx context.Context, applicationID int64) (domain.Application, error) {
	query := `SELECT` + applicationColumns + `
		  FROM project_applications
		 WHERE id = $1;
	`
	return s.getApplication(ctx, query, applicationID)
}

func (s *Storage) GetApplicationByIDForUpdate(ctx context.Context, applicationID int64) (domain.Application, error) {
	query := `SELECT` + applicationColumns + `
		  FROM project_applications
		 WHERE id = $1
		 FOR UPDATE;
	`
	return s.getApplication(ctx, query, applicationID)
}

func (s *Storage) getApplication(ctx context.Context, query string, applicationID int64) (domain.Application, error) {
	var dao applicationDAO
	err := s.getExecutor(ctx).QueryRow(ctx, query, applicationID).Scan(dao.scanArgs()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Application{}, domain.ErrApplicationNotFound
		}
		return domain.Application{}, err
	}
	return applicationDAOToDomain(dao)
}

func (s *Storage) CreateApplication(ctx context.Context, application domain.Application) (domain.Application, error) {
	const query = `
		INSERT INTO project_applications (
		    project_id, user_id, motivation_message, status, seen_by_owner,
		    submitted_at, lifecycle, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`

	err := s.getExecutor(ctx).QueryRow(ctx, query,
		application.ProjectID,
		application.UserID,
		application.Motivation.String(),
		string(application.Status),
		application.SeenByOwner,
		application.SubmittedAt,
		string(application.Lifecycle),
		application.CreatedAt,
	).Scan(&application.ID)
	if err != nil {
		if isUniqueViolation(err, "uq_project_applications_project_user") {
			return domain.Application{}, domain.ErrAlreadyApplied
		}
		return domain.Application{}, err
	}

	return application, nil
}

func (s *Storage) UpdateApplication(ctx context.Context, application domain.Application) error {
	const query = `
		UPDATE project_applications
		   SET status        = $2,
		       seen_by_owner = $3,
		       resolved_at   = $4,
		       lifecycle     = $5,
		       updated_at    = $6
		 WHERE id = $1;
	`

	cmd, err := s.getExecutor(ctx).Exec(ctx, query,
		application.ID,
		string(application.Status),
		application.SeenByOwner,
		application.ResolvedAt,
		string(application.Lifecycle),
		application.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrApplicationNotFound
	}

	return nil
}

// MarkApplicationSeen sets only the seen flag. An already seen row is left
// untouched and is not an error.
func (s *Storage) MarkApplicationSeen(ctx context.Context, applicationID int64) error {
	const query = `
		UPDATE project_applications
		   SET seen_by_owner = TRUE,
		       updated_at    = now()
		 WHERE id = $1
		   AND NOT seen_by_owner;
	`

	_, err := s.getExecutor(ctx).Exec(ctx, query, applicationID)
	return err
}

func (s *Storage) ListApplicationsByProject(ctx context.Context, projectID int64) ([]domain.Application, error) {
	query := `SELECT` + applicationColumns + `
		  FROM project_applications
		 WHERE project_id = $1
		 ORDER BY submitted_at, id;
	`
	return s.listApplications(ctx, query, projectID)
}

func (s *Storage) ListApplicationsByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	query := `SELECT` + applicationColumns + `
		  FROM project_applications
		 WHERE user_id = $1
		 ORDER BY submitted_at DESC, id DESC;
	`
	return s.listApplications(ctx, query, userID)
}

func (s *Storage) listApplications(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := s.getExecutor(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Application, 0)
	for rows.Next() {
		var dao applicationDAO
		if err := rows.Scan(dao.scanArgs()...); err != nil {
			return nil, err
		}
		a, err := applicationDAOToDomain(dao)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Storage) ApplicationExists(ctx context.Context, projectID, userID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
		    SELECT 1
		      FROM project_applications
		     WHERE project_id = $1
		       AND user_id = $2
		);
	`

	var exists bool
	if err := s.getExecutor(ctx).QueryRow(ctx, query, projectID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
