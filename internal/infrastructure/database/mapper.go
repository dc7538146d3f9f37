package database

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// filter builds a WHERE clause that is shared verbatim by a listing's count
// and data queries, so both see the same rows.
type filter struct {
	preds []string
	args  []any
}

func newFilter(base string) *filter {
	return &filter{preds: []string{base}}
}

// add appends a predicate; the "?" in pred becomes the next $n placeholder.
func (f *filter) add(pred string, arg any) *filter {
	f.args = append(f.args, arg)
	f.preds = append(f.preds, strings.Replace(pred, "?", "$"+strconv.Itoa(len(f.args)), 1))
	return f
}

func (f *filter) where() string {
	return " WHERE " + strings.Join(f.preds, " AND ")
}

// page returns LIMIT/OFFSET placeholders numbered after the filter arguments
// and the full argument list.
func (f *filter) page(limit, offset int) (string, []any) {
	n := len(f.args)
	args := append(slices.Clone(f.args), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), args
}
