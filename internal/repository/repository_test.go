package repository_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/tempobook/backend/internal/config"
	"github.com/tempobook/backend/internal/repository"
)

func newTestRepository(t *testing.T) (*repository.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5

	return repository.NewRepository(cfg, db), dbMock
}
