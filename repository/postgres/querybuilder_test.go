package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskhub/backend/repository"
)

func TestQueryBuilder_NoFilters(t *testing.T) {
	qb := newQueryBuilder()

	require.Equal(t, "", qb.where())
	require.Empty(t, qb.whereArgs())

	clause, args := qb.paginate(repository.ListParams{Page: 1, Limit: 10})
	require.Equal(t, "LIMIT $1 OFFSET $2", clause)
	require.Equal(t, []any{10, 0}, args)
}

func TestQueryBuilder_FiltersAreANDed(t *testing.T) {
	qb := newQueryBuilder()
	qb.filter("project_id", int64(7))
	qb.filter("status", "todo")
	qb.filter("priority", "high")

	require.Equal(t, "WHERE project_id = $1 AND status = $2 AND priority = $3", qb.where())
	require.Equal(t, []any{int64(7), "todo", "high"}, qb.whereArgs())
}

func TestQueryBuilder_CountAndSelectShareClause(t *testing.T) {
	qb := newQueryBuilder()
	qb.filter("status", "active")

	whereForCount := qb.where()
	argsForCount := qb.whereArgs()

	clause, args := qb.paginate(repository.ListParams{Page: 3, Limit: 20})

	// The SELECT side reuses the identical fragment with pagination appended.
	require.Equal(t, whereForCount, qb.where())
	require.Equal(t, "LIMIT $2 OFFSET $3", clause)
	require.Equal(t, argsForCount, args[:len(argsForCount)])
	require.Equal(t, []any{"active", 20, 40}, args)
}

func TestQueryBuilder_OffsetArithmetic(t *testing.T) {
	qb := newQueryBuilder()

	_, args := qb.paginate(repository.ListParams{Page: 5, Limit: 25})
	require.Equal(t, []any{25, 100}, args)
}

func TestSetBuilder_OnlySuppliedColumns(t *testing.T) {
	sb := newSetBuilder()
	require.True(t, sb.empty())

	sb.set("title", "T")
	sb.set("priority", "low")

	require.False(t, sb.empty())
	require.Equal(t, "title = $1, priority = $2", sb.clause())
	require.Equal(t, []any{"T", "low"}, sb.args)
	require.Equal(t, 3, sb.next())
}

func TestTaskOrder_RanksHighBeforeMediumBeforeLow(t *testing.T) {
	// The rank ordering is fixed SQL; guard against accidental edits.
	require.Contains(t, taskOrder, "WHEN 'high' THEN 1")
	require.Contains(t, taskOrder, "WHEN 'medium' THEN 2")
	require.Contains(t, taskOrder, "WHEN 'low' THEN 3")
	require.Contains(t, taskOrder, "due_date ASC NULLS LAST")
	require.Contains(t, taskOrder, "created_at DESC")
}
