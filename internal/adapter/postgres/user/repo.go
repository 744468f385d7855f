// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/Berlkot/django-proj-kek-2025/internal/adapter/postgres"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `u.id, u.email, u.username, u.region_id, u.role_id, u.is_staff, u.created_at`

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	RegionID  *int64    `db:"region_id"`
	RoleID    *int64    `db:"role_id"`
	IsStaff   bool      `db:"is_staff"`
	CreatedAt time.Time `db:"created_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Username:  r.Username,
		RegionID:  r.RegionID,
		RoleID:    r.RoleID,
		IsStaff:   r.IsStaff,
		CreatedAt: r.CreatedAt,
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	err := postgres.Get(ctx, q, &row, `SELECT `+userColumns+` FROM users u WHERE u.id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

type actorRow struct {
	ID           uuid.UUID `db:"id"`
	IsStaff      bool      `db:"is_staff"`
	RoleID       *int64    `db:"role_id"`
	RoleName     *string   `db:"role_name"`
	Capabilities []string  `db:"capabilities"`
}

const getActorSQL = `
SELECT u.id, u.is_staff, r.id AS role_id, r.name AS role_name, r.capabilities
FROM users u
LEFT JOIN roles r ON r.id = u.role_id
WHERE u.id = $1`

// GetActor loads the authorization identity of a user: staff flag and role capabilities.
func (r *Repo) GetActor(ctx context.Context, id uuid.UUID) (domain.Actor, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row actorRow
	if err := postgres.Get(ctx, q, &row, getActorSQL, id); err != nil {
		return domain.Actor{}, postgres.MapError(err, "user", id)
	}

	actor := domain.Actor{UserID: row.ID, IsStaff: row.IsStaff}
	if row.RoleID != nil {
		caps, err := domain.ParseCapabilitySet(row.Capabilities)
		if err != nil {
			return domain.Actor{}, fmt.Errorf("role %d: %w", *row.RoleID, err)
		}
		actor.Role = &domain.Role{ID: *row.RoleID, Name: deref(row.RoleName), Capabilities: caps}
	}
	return actor, nil
}

// StaffEmails returns the non-empty emails of staff users, sorted.
func (r *Repo) StaffEmails(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	emails := []string{}
	err := postgres.Select(ctx, q, &emails,
		`SELECT email FROM users WHERE is_staff AND email <> '' ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("select staff emails: %w", err)
	}
	return emails, nil
}

// CountJoinedSince counts users created at or after since.
func (r *Repo) CountJoinedSince(ctx context.Context, since time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM users WHERE created_at >= $1`, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// AssignRoleWhereMissing gives roleID to every user without a role and returns the count.
func (r *Repo) AssignRoleWhereMissing(ctx context.Context, roleID int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET role_id = $1 WHERE role_id IS NULL`, roleID)
	if err != nil {
		return 0, postgres.MapError(err, "role", roleID)
	}
	return tag.RowsAffected(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
