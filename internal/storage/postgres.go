// internal/storage/postgres.go
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"tenantnotes/internal/model"
)

type Storage struct {
	DB *sql.DB
}

func NewStorage(dsn string) (*Storage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return &Storage{DB: db}, nil
}

// EnsureSchema creates all tables if they do not exist. Invoked once by
// the process entry point.
func (s *Storage) EnsureSchema() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS tenants (
			slug         TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			subscription TEXT NOT NULL DEFAULT 'free',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL,
			tenant_slug   TEXT NOT NULL REFERENCES tenants(slug),
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS notes (
			id          UUID PRIMARY KEY,
			tenant_slug TEXT NOT NULL,
			user_id     UUID NOT NULL,
			title       TEXT NOT NULL,
			content     TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS notes_tenant_slug_idx ON notes (tenant_slug);
		CREATE TABLE IF NOT EXISTS invoices (
			id             UUID PRIMARY KEY,
			tenant_slug    TEXT NOT NULL,
			date           TIMESTAMPTZ NOT NULL,
			description    TEXT NOT NULL,
			amount         NUMERIC(10,2) NOT NULL,
			status         TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			name           TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS audit_events (
			id          UUID PRIMARY KEY,
			tenant_slug TEXT NOT NULL,
			actor_id    TEXT NOT NULL,
			event_type  TEXT NOT NULL,
			subject_id  TEXT NOT NULL DEFAULT '',
			detail      TEXT NOT NULL DEFAULT '',
			occurred_at TIMESTAMPTZ NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// ResetAll clears every table. Only the seed endpoint uses this.
func (s *Storage) ResetAll() error {
	_, err := s.DB.Exec(`TRUNCATE tenants, users, notes, invoices, audit_events`)
	if err != nil {
		return fmt.Errorf("failed to reset tables: %w", err)
	}
	return nil
}

func (s *Storage) CreateTenant(t *model.Tenant) error {
	_, err := s.DB.Exec(`
		INSERT INTO tenants (slug, name, subscription)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`, t.Slug, t.Name, t.Subscription)
	return err
}

// GetTenant returns (nil, nil) when no tenant has the slug.
func (s *Storage) GetTenant(slug string) (*model.Tenant, error) {
	var t model.Tenant
	err := s.DB.QueryRow(`
		SELECT slug, name, subscription, created_at
		FROM tenants
		WHERE slug = $1
	`, slug).Scan(&t.Slug, &t.Name, &t.Subscription, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpgradeTenant flips the subscription to pro. The transition is
// one-directional; there is no downgrade.
func (s *Storage) UpgradeTenant(slug string) error {
	_, err := s.DB.Exec(`
		UPDATE tenants
		SET subscription = $1
		WHERE slug = $2
	`, model.PlanPro, slug)
	return err
}

func (s *Storage) CreateUser(u *model.User) error {
	_, err := s.DB.Exec(`
		INSERT INTO users (id, email, password_hash, role, tenant_slug)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Email, u.PasswordHash, u.Role, u.TenantSlug)
	return err
}

// GetUserByEmail returns (nil, nil) when no user has the email.
func (s *Storage) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	err := s.DB.QueryRow(`
		SELECT id, email, password_hash, role, tenant_slug, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.TenantSlug, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
