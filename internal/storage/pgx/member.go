package pgx

import (
	"context"
	"errors"

	"devmatch/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) CountActiveMembers(ctx context.Context, projectID int64) (int, error) {
	const query = `
		SELECT count(*)
		  FROM project_members
		 WHERE project_id = $1
		   AND lifecycle = 'ACTIVE';
	`

	var n int
	if err := s.getExecutor(ctx).QueryRow(ctx, query, projectID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Storage) AddMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	const query = `
		INSERT INTO project_members (
		    project_id, user_id, member_role, is_owner, joined_at, lifecycle, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`

	err := s.getExecutor(ctx).QueryRow(ctx, query,
		member.ProjectID,
		member.UserID,
		member.Role,
		member.IsOwner,
		member.JoinedAt,
		string(member.Lifecycle),
		member.CreatedAt,
	).Scan(&member.ID)
	if err != nil {
		if isUniqueViolation(err, "uq_project_members_active") {
			return domain.Member{}, domain.ErrAlreadyMember
		}
		return domain.Member{}, err
	}

	return member, nil
}

func (s *Storage) ListActiveMembers(ctx context.Context, projectID int64) ([]domain.Member, error) {
	query := `SELECT` + memberColumns + `
		  FROM project_members
		 WHERE project_id = $1
		   AND lifecycle = 'ACTIVE'
		 ORDER BY joined_at, id;
	`

	rows, err := s.getExecutor(ctx).Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Member, 0)
	for rows.Next() {
		var dao memberDAO
		if err := rows.Scan(dao.scanArgs()...); err != nil {
			return nil, err
		}
		m, err := memberDAOToDomain(dao)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Storage) GetActiveMember(ctx context.Context, projectID, userID int64) (domain.Member, error) {
	query := `SELECT` + memberColumns + `
		  FROM project_members
		 WHERE project_id = $1
		   AND user_id = $2
		   AND lifecycle = 'ACTIVE'
		 FOR UPDATE;
	`

	var dao memberDAO
	err := s.getExecutor(ctx).QueryRow(ctx, query, projectID, userID).Scan(dao.scanArgs()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Member{}, domain.ErrMemberNotFound
		}
		return domain.Member{}, err
	}
	return memberDAOToDomain(dao)
}

func (s *Storage) UpdateMember(ctx context.Context, member domain.Member) error {
	const query = `
		UPDATE project_members
		   SET member_role = $2,
		       left_at     = $3,
		       lifecycle   = $4,
		       updated_at  = $5
		 WHERE id = $1;
	`

	cmd, err := s.getExecutor(ctx).Exec(ctx, query,
		member.ID,
		member.Role,
		member.LeftAt,
		string(member.Lifecycle),
		member.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}
