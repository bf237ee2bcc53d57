package db

import (
	"errors"
	"taskTracker/internal/domain/task/taskmodels"
	"taskTracker/internal/domain/user/usermodels"
	"taskTracker/internal/repository/snapshot"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Load(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		queryErr  error
		wantUsers int
		wantErr   error
		anyErr    bool
	}{
		{
			name:      "success",
			body:      `{"version":1,"users":[{"id":"u1","email":"a@b.com","passwordHash":"h","createdAt":"2024-01-01T00:00:00Z"}],"tasks":[]}`,
			wantUsers: 1,
		},
		{
			name:     "no row yet",
			queryErr: pgx.ErrNoRows,
			wantErr:  snapshot.ErrNotFound,
		},
		{
			name:     "query failure",
			queryErr: errors.New("connection reset"),
			anyErr:   true,
		},
		{
			name:    "wrong version",
			body:    `{"version":42}`,
			wantErr: snapshot.ErrUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			s := &Storage{db: mock}

			query := mock.ExpectQuery("SELECT body FROM snapshots").WithArgs(snapshotRowID)
			if tt.queryErr != nil {
				query.WillReturnError(tt.queryErr)
			} else {
				query.WillReturnRows(pgxmock.NewRows([]string{"body"}).AddRow([]byte(tt.body)))
			}

			snap, err := s.Load()
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Len(t, snap.Users, tt.wantUsers)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStorage_Save(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
	}{
		{name: "success"},
		{name: "exec failure", execErr: errors.New("disk full")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			s := &Storage{db: mock}

			snap := snapshot.Empty()
			snap.Users = append(snap.Users, usermodels.User{UUID: "u1", Email: "a@b.com", PasswordHash: "h"})
			snap.Tasks = append(snap.Tasks, taskmodels.Task{ID: "t1", UserID: "u1", Title: "x", Status: taskmodels.StatusPending})

			exec := mock.ExpectExec("INSERT INTO snapshots").
				WithArgs(snapshotRowID, snapshot.Version, pgxmock.AnyArg())
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			err = s.Save(snap)
			if tt.execErr != nil {
				require.ErrorIs(t, err, tt.execErr)
			} else {
				require.NoError(t, err)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStorage_Close(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	s := &Storage{db: mock}

	mock.ExpectClose()
	require.NoError(t, s.Close(t.Context()))
	require.NoError(t, mock.ExpectationsWereMet())
}
