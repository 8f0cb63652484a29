package db

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres - 모든 저장소 메서드가 붙는 핸들. main에서 한 번 만들어
// 각 서비스에 명시적으로 주입한다 (전역 싱글턴 없음).
type Postgres struct {
	Pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{Pool: pool}
}

func IsNoRows(err error) bool {
	return err == pgx.ErrNoRows
}
