package db

import (
	"context"
	"time"

	"github.com/ops-console/backend/internal/model"
)

// InsertDeployment - 배포 한 건 추가. external_id 중복이면 조용히 무시
func (db *Postgres) InsertDeployment(ctx context.Context, entry model.DeploymentEntry) error {
	query := `
		INSERT INTO deployments (project, status, timestamp, details, external_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (external_id) WHERE external_id != '' DO NOTHING
	`
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := db.Pool.Exec(ctx, query,
		entry.Project,
		entry.Status,
		ts,
		entry.Details,
		entry.ExternalID,
	)
	return err
}

// GetDeployments - 최신순 전체 조회
func (db *Postgres) GetDeployments(ctx context.Context) ([]model.DeploymentEntry, error) {
	query := `
		SELECT id, project, status, timestamp, details, external_id
		FROM deployments
		ORDER BY timestamp DESC
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.DeploymentEntry
	for rows.Next() {
		var d model.DeploymentEntry
		if err := rows.Scan(&d.ID, &d.Project, &d.Status, &d.Timestamp, &d.Details, &d.ExternalID); err != nil {
			return nil, err
		}
		list = append(list, d)
	}

	if list == nil {
		list = []model.DeploymentEntry{}
	}
	return list, rows.Err()
}

// GetLastDeploymentTime - 가장 최근 배포 시각 (없으면 found=false)
func (db *Postgres) GetLastDeploymentTime(ctx context.Context) (time.Time, bool, error) {
	var ts time.Time
	err := db.Pool.QueryRow(ctx,
		`SELECT timestamp FROM deployments ORDER BY timestamp DESC LIMIT 1`,
	).Scan(&ts)
	if err != nil {
		if IsNoRows(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return ts, true, nil
}

// CountDeploymentsSince - since 이후 배포 수
func (db *Postgres) CountDeploymentsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM deployments WHERE timestamp >= $1`, since,
	).Scan(&count)
	return count, err
}

// DeleteAllDeployments - seed 도구 전용
func (db *Postgres) DeleteAllDeployments(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM deployments`)
	return err
}
