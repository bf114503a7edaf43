package db

import "context"

func (q *Queries) GetPasswordResetByToken(ctx context.Context, token string) (PasswordResetRequest, error) {
	var r PasswordResetRequest
	err := q.db.QueryRow(ctx, `
		SELECT id, user_id, token, expires_at, consumed_at, created_at
		FROM password_reset_requests
		WHERE token = $1`,
		token,
	).Scan(&r.ID, &r.UserID, &r.Token, &r.ExpiresAt, &r.ConsumedAt, &r.CreatedAt)
	return r, err
}

func (q *Queries) ConsumePasswordReset(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, `
		UPDATE password_reset_requests SET consumed_at = now() WHERE id = $1`,
		id,
	)
	return err
}

type UpdateProfilePasswordParams struct {
	UserID       int64
	PasswordHash string
}

func (q *Queries) UpdateProfilePassword(ctx context.Context, arg UpdateProfilePasswordParams) error {
	_, err := q.db.Exec(ctx, `
		UPDATE profiles SET password_hash = $2, updated_at = now() WHERE id = $1`,
		arg.UserID, arg.PasswordHash,
	)
	return err
}
