package db

import "context"

// GetConfigMap - system_config 전체를 key→value 맵으로 조회
func (db *Postgres) GetConfigMap(ctx context.Context) (map[string]string, error) {
	rows, err := db.Pool.Query(ctx, `SELECT key, value FROM system_config`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		configs[key] = value
	}
	return configs, rows.Err()
}

// UpsertConfig - 키가 있으면 갱신, 없으면 생성 (latest write wins)
func (db *Postgres) UpsertConfig(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO system_config (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	_, err := db.Pool.Exec(ctx, query, key, value)
	return err
}

// DeleteAllConfig - seed 도구 전용
func (db *Postgres) DeleteAllConfig(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM system_config`)
	return err
}
