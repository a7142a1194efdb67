package postgresql

import (
	"context"
	"testing"

	"github.com/attendlyhq/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	pgx.Tx
}

func TestGetQuerier_TransactionFromContext(t *testing.T) {
	db := &database.DB{}
	tx := &stubTx{}

	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))

	querier := GetQuerier(ctx, db)
	assert.Same(t, tx, querier)
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{}

	querier := GetQuerier(context.Background(), db)
	assert.Equal(t, db.Pool, querier)
}
