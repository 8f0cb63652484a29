package db

import "context"

// TrackVisitor - 처음 보는 IP만 기록 (재방문은 무시)
func (db *Postgres) TrackVisitor(ctx context.Context, ip, userAgent string) error {
	query := `
		INSERT INTO visitors (ip, user_agent, first_seen)
		VALUES ($1, $2, NOW())
		ON CONFLICT (ip) DO NOTHING
	`
	_, err := db.Pool.Exec(ctx, query, ip, userAgent)
	return err
}

// CountVisitors - 지금까지 본 고유 방문자 수
func (db *Postgres) CountVisitors(ctx context.Context) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM visitors`).Scan(&count)
	return count, err
}
