package db

import "context"

type IsOrganizationMemberParams struct {
	OrganizationID int64
	UserID         int64
}

func (q *Queries) IsOrganizationMember(ctx context.Context, arg IsOrganizationMemberParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, `
		SELECT count(*) FROM organization_members
		WHERE organization_id = $1 AND user_id = $2`,
		arg.OrganizationID, arg.UserID,
	).Scan(&count)
	return count, err
}

func (q *Queries) GetProfile(ctx context.Context, id int64) (Profile, error) {
	var p Profile
	err := q.db.QueryRow(ctx, `
		SELECT id, email, full_name, password_hash, created_at, updated_at
		FROM profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Email, &p.FullName, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (q *Queries) ListOrganizationMembers(ctx context.Context, organizationID int64) ([]OrganizationMember, error) {
	rows, err := q.db.Query(ctx, `
		SELECT organization_id, user_id, role, created_at
		FROM organization_members
		WHERE organization_id = $1
		ORDER BY created_at`,
		organizationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]OrganizationMember, 0)
	for rows.Next() {
		var m OrganizationMember
		if err := rows.Scan(&m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
