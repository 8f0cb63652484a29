package db

import (
	"context"

	"github.com/ops-console/backend/internal/model"
)

// GetLatestProfilePhoto - 가장 최근 업로드된 사진 (없으면 pgx.ErrNoRows)
func (db *Postgres) GetLatestProfilePhoto(ctx context.Context) (*model.ProfilePhoto, error) {
	query := `
		SELECT id, image_data, mime_type, uploaded_at
		FROM profile_photos
		ORDER BY uploaded_at DESC
		LIMIT 1
	`
	var photo model.ProfilePhoto
	err := db.Pool.QueryRow(ctx, query).Scan(
		&photo.ID,
		&photo.ImageData,
		&photo.MimeType,
		&photo.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ReplaceProfilePhoto - 기존 사진을 모두 지우고 새 사진 저장
func (db *Postgres) ReplaceProfilePhoto(ctx context.Context, imageData []byte, mimeType string) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM profile_photos`); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO profile_photos (image_data, mime_type, uploaded_at)
		VALUES ($1, $2, NOW())
	`, imageData, mimeType); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
