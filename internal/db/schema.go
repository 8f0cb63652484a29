package db

import "context"

// EnsureSchema - 부팅 시 전체 테이블/인덱스 생성 (이미 있으면 무시)
//
// logs/deployments의 external_id는 GitHub 이벤트 dedup 키.
// details JSON 안을 문자열 검색하는 대신 유니크 부분 인덱스로 DB가 중복을 막는다.
func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS system_config (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL DEFAULT ''
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS logs (
			id BIGSERIAL PRIMARY KEY,
			level TEXT NOT NULL DEFAULT 'info',
			category TEXT NOT NULL DEFAULT 'system',
			message TEXT NOT NULL DEFAULT '',
			details JSONB,
			external_id TEXT NOT NULL DEFAULT '',
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS deployments (
			id BIGSERIAL PRIMARY KEY,
			project TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'success',
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			details JSONB,
			external_id TEXT NOT NULL DEFAULT ''
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS incidents (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			impact TEXT NOT NULL DEFAULT '',
			root_cause TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'resolved',
			learning TEXT NOT NULL DEFAULT '',
			timeline JSONB NOT NULL DEFAULT '[]'
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS visitors (
			ip TEXT PRIMARY KEY,
			user_agent TEXT NOT NULL DEFAULT '',
			first_seen TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS profile_photos (
			id BIGSERIAL PRIMARY KEY,
			image_data BYTEA NOT NULL,
			mime_type TEXT NOT NULL DEFAULT 'image/jpeg',
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE UNIQUE INDEX IF NOT EXISTS logs_external_id_idx ON logs(external_id) WHERE external_id != ''`,
		`CREATE UNIQUE INDEX IF NOT EXISTS deployments_external_id_idx ON deployments(external_id) WHERE external_id != ''`,
		`CREATE INDEX IF NOT EXISTS logs_timestamp_idx ON logs(timestamp DESC)`,
		`CREATE INDEX IF NOT EXISTS logs_category_idx ON logs(category)`,
		`CREATE INDEX IF NOT EXISTS deployments_timestamp_idx ON deployments(timestamp DESC)`,
		`CREATE INDEX IF NOT EXISTS incidents_date_idx ON incidents(date DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
