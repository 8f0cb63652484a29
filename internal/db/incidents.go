package db

import (
	"context"

	"github.com/ops-console/backend/internal/model"
)

// GetIncidents - 최신순 전체 조회
func (db *Postgres) GetIncidents(ctx context.Context) ([]model.Incident, error) {
	query := `
		SELECT id, title, date, impact, root_cause, status, learning, timeline
		FROM incidents
		ORDER BY date DESC
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Incident
	for rows.Next() {
		var i model.Incident
		if err := rows.Scan(&i.ID, &i.Title, &i.Date, &i.Impact, &i.RootCause, &i.Status, &i.Learning, &i.Timeline); err != nil {
			return nil, err
		}
		list = append(list, i)
	}

	if list == nil {
		list = []model.Incident{}
	}
	return list, rows.Err()
}

// CreateIncident - seed/admin 도구에서만 호출
func (db *Postgres) CreateIncident(ctx context.Context, incident model.Incident) error {
	query := `
		INSERT INTO incidents (id, title, date, impact, root_cause, status, learning, timeline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := db.Pool.Exec(ctx, query,
		incident.ID,
		incident.Title,
		incident.Date,
		incident.Impact,
		incident.RootCause,
		incident.Status,
		incident.Learning,
		incident.Timeline,
	)
	return err
}

// DeleteAllIncidents - seed 도구 전용
func (db *Postgres) DeleteAllIncidents(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM incidents`)
	return err
}
