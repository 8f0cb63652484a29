package db

import (
	"context"
	"time"

	"github.com/ops-console/backend/internal/model"
)

// InsertLog - 로그 한 건 추가. external_id가 이미 있으면 조용히 무시
// (유니크 부분 인덱스 + ON CONFLICT로 sync pass 중복 실행에도 안전)
func (db *Postgres) InsertLog(ctx context.Context, entry model.LogEntry) error {
	query := `
		INSERT INTO logs (level, category, message, details, external_id, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (external_id) WHERE external_id != '' DO NOTHING
	`
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := db.Pool.Exec(ctx, query,
		entry.Level,
		entry.Category,
		entry.Message,
		entry.Details,
		entry.ExternalID,
		ts,
	)
	return err
}

// HasLogWithExternalID - dedup 키로 이미 처리한 이벤트인지 확인
func (db *Postgres) HasLogWithExternalID(ctx context.Context, externalID string) (bool, error) {
	var exists bool
	err := db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM logs WHERE external_id = $1)`, externalID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetLogs - 필터 적용 최신순 조회
func (db *Postgres) GetLogs(ctx context.Context, filter model.LogFilter) ([]model.LogEntry, error) {
	query := `
		SELECT id, level, category, message, details, external_id, timestamp
		FROM logs
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR level = $2)
		ORDER BY timestamp DESC
		LIMIT $3
	`
	rows, err := db.Pool.Query(ctx, query, filter.Category, filter.Level, filter.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.LogEntry
	for rows.Next() {
		var l model.LogEntry
		if err := rows.Scan(&l.ID, &l.Level, &l.Category, &l.Message, &l.Details, &l.ExternalID, &l.Timestamp); err != nil {
			return nil, err
		}
		list = append(list, l)
	}

	if list == nil {
		list = []model.LogEntry{}
	}
	return list, rows.Err()
}

// CountLogsSince - since 이후 전체 로그 수 (24h activity 지표)
func (db *Postgres) CountLogsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM logs WHERE timestamp >= $1`, since,
	).Scan(&count)
	return count, err
}

// CountErrorLogsSince - since 이후 error/warn 레벨 로그 수
func (db *Postgres) CountErrorLogsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM logs WHERE timestamp >= $1 AND level IN ('error', 'warn')`, since,
	).Scan(&count)
	return count, err
}

// DeleteAllLogs - seed 도구 전용
func (db *Postgres) DeleteAllLogs(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM logs`)
	return err
}
