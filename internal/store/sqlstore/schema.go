package sqlstore

import (
	"context"
	"fmt"
)

// migrations is an ordered list of migrations, each a list of single
// statements so they run on drivers without multi-statement support.
// Each migration runs exactly once, tracked by the schema_version table.
// The DDL is the common subset of MySQL 8 and SQLite.
var migrations = [][]string{
	// Migration 1: Initial schema
	{
		`CREATE TABLE IF NOT EXISTS categories (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	slug VARCHAR(255) NOT NULL,
	CONSTRAINT uq_categories_name UNIQUE (name),
	CONSTRAINT uq_categories_slug UNIQUE (slug)
)`,
		`CREATE TABLE IF NOT EXISTS users (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	name VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	created_at BIGINT NOT NULL,
	CONSTRAINT uq_users_email UNIQUE (email)
)`,
		`CREATE TABLE IF NOT EXISTS articles (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	slug VARCHAR(255) NOT NULL,
	author VARCHAR(255) NOT NULL,
	category_id VARCHAR(36) NOT NULL,
	tags TEXT NOT NULL,
	content TEXT NOT NULL,
	experience_level VARCHAR(32) NOT NULL,
	meta_description TEXT NULL,
	image VARCHAR(512) NULL,
	status VARCHAR(16) NOT NULL,
	featured BOOLEAN NOT NULL DEFAULT 0,
	published_at BIGINT NOT NULL,
	updated_at BIGINT NULL,
	owner_id VARCHAR(36) NOT NULL,
	like_count INTEGER NOT NULL DEFAULT 0,
	like_rng INTEGER NOT NULL DEFAULT 0,
	CONSTRAINT uq_articles_title UNIQUE (title),
	CONSTRAINT uq_articles_slug UNIQUE (slug),
	CONSTRAINT uq_articles_image UNIQUE (image)
)`,
		`CREATE INDEX idx_articles_category_published ON articles (category_id, published_at)`,
		`CREATE INDEX idx_articles_published ON articles (published_at)`,
		`CREATE TABLE IF NOT EXISTS featured (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	article_id VARCHAR(36) NOT NULL,
	title VARCHAR(255) NOT NULL,
	slug VARCHAR(255) NOT NULL,
	author VARCHAR(255) NOT NULL,
	category_name VARCHAR(255) NOT NULL,
	image VARCHAR(512) NULL,
	published_at BIGINT NOT NULL,
	featured_at BIGINT NOT NULL,
	CONSTRAINT uq_featured_article_id UNIQUE (article_id)
)`,
	},
	// Future migrations go here.
}

// Migrate brings the schema up to date.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL PRIMARY KEY
		)
	`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	var currentVersion int
	if err := s.db.GetContext(ctx, &currentVersion, `SELECT COALESCE(MAX(version), 0) FROM schema_version`); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for i := currentVersion; i < len(migrations); i++ {
		for j, stmt := range migrations[i] {
			if _, err := s.db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration %d statement %d failed: %w", i+1, j+1, err)
			}
		}
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, i+1); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", i+1, err)
		}
	}

	return nil
}
