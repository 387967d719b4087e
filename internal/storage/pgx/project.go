package pgx

import (
	"context"
	"errors"

	"devmatch/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) GetProjectByID(ctx context.Context, projectID int64) (domain.Project, error) {
	query := `SELECT` + projectColumns + `
		  FROM projects
		 WHERE id = $1;
	`
	return s.getProject(ctx, query, projectID)
}

func (s *Storage) GetProjectByIDForUpdate(ctx context.Context, projectID int64) (domain.Project, error) {
	query := `SELECT` + projectColumns + `
		  FROM projects
		 WHERE id = $1
		 FOR UPDATE;
	`
	return s.getProject(ctx, query, projectID)
}

func (s *Storage) getProject(ctx context.Context, query string, projectID int64) (domain.Project, error) {
	var dao projectDAO
	err := s.getExecutor(ctx).QueryRow(ctx, query, projectID).Scan(dao.scanArgs()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return projectDAOToDomain(dao)
}

func (s *Storage) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	const query = `
		INSERT INTO projects (
		    title, description, status, owner_id, repo_url, cover_image_url,
		    estimated_duration_weeks, max_team_size, is_public, lifecycle, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`

	row := projectToRow(project)
	err := s.getExecutor(ctx).QueryRow(ctx, query,
		project.Title.String(),
		project.Description.String(),
		string(project.Status),
		project.OwnerID,
		row.repoURL,
		row.coverImageURL,
		row.duration,
		row.maxTeamSize,
		project.IsPublic,
		string(project.Lifecycle),
		project.CreatedAt,
	).Scan(&project.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Project{}, domain.ErrUserNotFound
		}
		return domain.Project{}, err
	}

	return project, nil
}

func (s *Storage) UpdateProject(ctx context.Context, project domain.Project) error {
	const query = `
		UPDATE projects
		   SET title                    = $2,
		       description              = $3,
		       status                   = $4,
		       repo_url                 = $5,
		       cover_image_url          = $6,
		       estimated_duration_weeks = $7,
		       max_team_size            = $8,
		       is_public                = $9,
		       lifecycle                = $10,
		       updated_at               = $11
		 WHERE id = $1;
	`

	row := projectToRow(project)
	cmd, err := s.getExecutor(ctx).Exec(ctx, query,
		project.ID,
		project.Title.String(),
		project.Description.String(),
		string(project.Status),
		row.repoURL,
		row.coverImageURL,
		row.duration,
		row.maxTeamSize,
		project.IsPublic,
		string(project.Lifecycle),
		project.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

func (s *Storage) ListProjectsByOwner(ctx context.Context, ownerID int64) ([]domain.Project, error) {
	query := `SELECT` + projectColumns + `
		  FROM projects
		 WHERE owner_id = $1
		 ORDER BY created_at DESC, id DESC;
	`
	return s.listProjects(ctx, query, ownerID)
}

func (s *Storage) ListPublicProjects(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	query := `SELECT` + projectColumns + `
		  FROM projects
		 WHERE is_public
		   AND lifecycle = 'ACTIVE'
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2;
	`
	return s.listProjects(ctx, query, limit, offset)
}

func (s *Storage) listProjects(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := s.getExecutor(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0)
	for rows.Next() {
		var dao projectDAO
		if err := rows.Scan(dao.scanArgs()...); err != nil {
			return nil, err
		}
		p, err := projectDAOToDomain(dao)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// CountProjectsByOwner counts projects towards the owner quota. Deleted
// projects do not count.
func (s *Storage) CountProjectsByOwner(ctx context.Context, ownerID int64) (int, error) {
	const query = `
		SELECT count(*)
		  FROM projects
		 WHERE owner_id = $1
		   AND lifecycle <> 'DELETED';
	`

	var n int
	if err := s.getExecutor(ctx).QueryRow(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// LockOwner takes a transaction scoped advisory lock keyed by the owner id.
// Outside a transaction the lock is released immediately, so call it inside WithTx.
func (s *Storage) LockOwner(ctx context.Context, ownerID int64) error {
	const query = `SELECT pg_advisory_xact_lock($1);`

	_, err := s.getExecutor(ctx).Exec(ctx, query, ownerID)
	return err
}
