package tx_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"phonebookd/pkg/platform/tx"
)

func TestWithTx(t *testing.T) {
	t.Run("nil transaction leaves the context untouched", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, tx.WithTx(ctx, nil))

		_, ok := tx.From(ctx)
		assert.False(t, ok)
	})

	t.Run("executor falls back to the database", func(t *testing.T) {
		db := &sql.DB{}
		exec := tx.ExecutorFrom(context.Background(), db)
		assert.Same(t, db, exec)
	})
}
