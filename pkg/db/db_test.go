package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/pkg/db"
)

func TestConnect_Validation(t *testing.T) {
	t.Parallel()

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()

		pool, err := db.Connect(context.Background(), db.Config{})
		require.ErrorIs(t, err, db.ErrEmptyConnectionURL)
		require.Nil(t, pool)
	})

	t.Run("unparseable url", func(t *testing.T) {
		t.Parallel()

		pool, err := db.Connect(context.Background(), db.Config{URL: "postgres://%zz"})
		require.ErrorIs(t, err, db.ErrFailedToParseDBConfig)
		require.Nil(t, pool)
	})
}

func TestHealthcheck_NilPool(t *testing.T) {
	t.Parallel()

	err := db.Healthcheck(nil)(context.Background())
	require.ErrorIs(t, err, db.ErrHealthcheckFailed)
}
