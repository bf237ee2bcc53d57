package db

import (
	"context"
	"fmt"
	"taskTracker/internal"
	"taskTracker/internal/repository/snapshot"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Снапшот лежит одной строкой, как и файл - перезаписывается целиком.
const snapshotRowID = 1

// Storage - Persister, который держит снапшот в Postgres.
// *pgx.Conn не потокобезопасен, но Save вызывается только под блокировкой
// inmemory.Storage, а Load - один раз при старте.
type Storage struct {
	db PgxIface
}

// PgxIface - общий интерфейс для мока/адаптера.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close(ctx context.Context) error
}

func NewStorage(connStr string) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), internal.SecFive)
	defer cancel()

	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, errors.Wrap(err, "connect to postgres")
	}

	return &Storage{db: conn}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}

func (s *Storage) Load() (snapshot.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), internal.SecFive)
	defer cancel()

	var body []byte
	err := s.db.QueryRow(ctx, "SELECT body FROM snapshots WHERE id = $1", snapshotRowID).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return snapshot.Snapshot{}, snapshot.ErrNotFound
		}
		return snapshot.Snapshot{}, errors.Wrap(err, "select snapshot")
	}

	snap, err := snapshot.Decode(body)
	if err != nil {
		return snapshot.Snapshot{}, errors.Wrap(err, "decode snapshot")
	}
	return snap, nil
}

func (s *Storage) Save(snap snapshot.Snapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), internal.SecFive)
	defer cancel()

	body, err := snapshot.Encode(snap)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO snapshots (id, version, body, saved_at) VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET version = EXCLUDED.version, body = EXCLUDED.body, saved_at = now()`,
		snapshotRowID,
		snap.Version,
		string(body),
	)
	return errors.Wrap(err, "upsert snapshot")
}

func Migrations(dsn string, migratePath string) error {
	mPath := fmt.Sprintf("file://%s", migratePath)
	m, err := migrate.New(mPath, dsn)
	if err != nil {
		return errors.Wrap(err, "init migrations")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("db", dbErr).Msg("failed to close migrator")
		}
	}()

	if err = m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return errors.Wrap(err, "apply migrations")
		}
		log.Info().Msg("DB is already up to date")
		return nil
	}

	log.Info().Msg("Migration complete")

	return nil
}
