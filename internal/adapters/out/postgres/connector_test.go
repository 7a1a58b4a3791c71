package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnector_Connect(t *testing.T) {
	t.Run("should return connection on first successful attempt", func(t *testing.T) {
		want := &gorm.DB{}
		attempts := 0

		connector := postgres.NewConnector(
			postgres.WithOpenFunc(func(_ string) (*gorm.DB, error) {
				attempts++
				return want, nil
			}),
			postgres.WithInitialInterval(time.Millisecond),
		)

		db, err := connector.Connect(t.Context(), "dsn")

		require.NoError(t, err)
		assert.Same(t, want, db)
		assert.Equal(t, 1, attempts)
	})

	t.Run("should retry until the store comes up and return that connection", func(t *testing.T) {
		want := &gorm.DB{}
		attempts := 0

		connector := postgres.NewConnector(
			postgres.WithOpenFunc(func(_ string) (*gorm.DB, error) {
				attempts++
				if attempts < 3 {
					return nil, errors.New("connection refused")
				}
				return want, nil
			}),
			postgres.WithInitialInterval(time.Millisecond),
			postgres.WithMaxInterval(2*time.Millisecond),
		)

		db, err := connector.Connect(t.Context(), "dsn")

		require.NoError(t, err)
		assert.Same(t, want, db)
		assert.Equal(t, 3, attempts)
	})

	t.Run("should give up after the retry budget is exhausted", func(t *testing.T) {
		attempts := 0

		connector := postgres.NewConnector(
			postgres.WithOpenFunc(func(_ string) (*gorm.DB, error) {
				attempts++
				return nil, errors.New("connection refused")
			}),
			postgres.WithInitialInterval(time.Millisecond),
			postgres.WithMaxInterval(2*time.Millisecond),
			postgres.WithMaxRetries(4),
		)

		db, err := connector.Connect(t.Context(), "dsn")

		require.ErrorIs(t, err, postgres.ErrStoreUnavailable)
		assert.Nil(t, db)
		assert.Equal(t, 5, attempts)
	})

	t.Run("should stop retrying when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())

		connector := postgres.NewConnector(
			postgres.WithOpenFunc(func(_ string) (*gorm.DB, error) {
				cancel()
				return nil, errors.New("connection refused")
			}),
			postgres.WithInitialInterval(10*time.Millisecond),
		)

		_, err := connector.Connect(ctx, "dsn")

		require.Error(t, err)
		require.ErrorIs(t, err, postgres.ErrStoreUnavailable)
	})
}
