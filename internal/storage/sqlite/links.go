package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound means no live share link exists for the slug.
var ErrNotFound = errors.New("sqlite: share link not found")

// ShareLink is an issued share slug plus the frozen analysis it points at.
// Share links are collaborator glue around the pipeline, not part of it.
type ShareLink struct {
	Slug       string
	Sport      string
	Home       string
	Away       string
	League     string
	MatchDate  string
	ResultJSON string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

const upsertLinkSQL = `
INSERT INTO share_links (slug, sport, home, away, league, match_date, result_json, created_at, expires_at)
VALUES (?,?,?,?,?,?,?,?,?)
ON CONFLICT(slug) DO UPDATE SET
	result_json=excluded.result_json,
	created_at=excluded.created_at,
	expires_at=excluded.expires_at;
`

// UpsertShareLink stores or refreshes a share link. Re-sharing the same
// fixture refreshes the expiry rather than erroring.
func (s *Store) UpsertShareLink(ctx context.Context, link *ShareLink) error {
	if link == nil || link.Slug == "" {
		return errors.New("sqlite: share link slug is required")
	}
	_, err := s.db.ExecContext(ctx, upsertLinkSQL,
		link.Slug,
		link.Sport,
		link.Home,
		link.Away,
		link.League,
		link.MatchDate,
		link.ResultJSON,
		link.CreatedAt.UTC().Format(time.RFC3339Nano),
		link.ExpiresAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// GetShareLink returns the live link for a slug, or ErrNotFound when the
// slug is unknown or expired.
func (s *Store) GetShareLink(ctx context.Context, slug string) (*ShareLink, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT slug, sport, home, away, league, match_date, result_json, created_at, expires_at
		FROM share_links WHERE slug = ?;`, slug)

	var link ShareLink
	var createdAt, expiresAt string
	var league, matchDate sql.NullString
	err := row.Scan(&link.Slug, &link.Sport, &link.Home, &link.Away, &league, &matchDate,
		&link.ResultJSON, &createdAt, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	link.League = league.String
	link.MatchDate = matchDate.String
	if link.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, err
	}
	if link.ExpiresAt, err = time.Parse(time.RFC3339Nano, expiresAt); err != nil {
		return nil, err
	}
	if time.Now().UTC().After(link.ExpiresAt) {
		return nil, ErrNotFound
	}
	return &link, nil
}

// DeleteExpired prunes dead links and returns how many were removed.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM share_links WHERE expires_at < ?;`,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
