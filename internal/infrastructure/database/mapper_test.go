package database

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestFilterNumbersPlaceholders(t *testing.T) {
	f := newFilter("p.active").add("c.slug = ?", "chairs").add("p.price < ?", 100)
	assert.Equal(t, " WHERE p.active AND c.slug = $1 AND p.price < $2", f.where())
	assert.Equal(t, []any{"chairs", 100}, f.args)

	limit, args := f.page(8, 16)
	assert.Equal(t, " LIMIT $3 OFFSET $4", limit)
	assert.Equal(t, []any{"chairs", 100, 8, 16}, args)
	assert.Len(t, f.args, 2, "page must not grow the count arguments")
}

func TestActiveProductFilter(t *testing.T) {
	all := activeProductFilter("")
	assert.Equal(t, " WHERE p.active", all.where())
	assert.Empty(t, all.args)

	limit, args := all.page(8, 0)
	assert.Equal(t, " LIMIT $1 OFFSET $2", limit)
	assert.Equal(t, []any{8, 0}, args)

	chairs := activeProductFilter("chairs")
	assert.Equal(t, " WHERE p.active AND c.slug = $1", chairs.where())
	assert.Equal(t, []any{"chairs"}, chairs.args)
}

func TestPublishedPostFilter(t *testing.T) {
	f := publishedPostFilter("design")
	assert.Contains(t, f.where(), "$1")
	assert.Equal(t, []any{"design"}, f.args)
}

func TestPgtypeTimestamptzToTime(t *testing.T) {
	assert.True(t, pgtypeTimestamptzToTime(pgtype.Timestamptz{}).IsZero())

	at := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, at, pgtypeTimestamptzToTime(pgtype.Timestamptz{Time: at, Valid: true}))
}
