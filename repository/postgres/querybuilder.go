package postgres

import (
	"fmt"
	"strings"

	"github.com/taskhub/backend/repository"
)

// queryBuilder assembles a parameterized WHERE fragment shared by the COUNT
// and SELECT sides of a listing, so the two can never drift apart. Values
// are always bound through placeholders, never interpolated.
type queryBuilder struct {
	conds []string
	args  []any
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{}
}

// filter adds an equality condition. Callers decide presence; the builder
// only records what it is given.
func (b *queryBuilder) filter(column string, value any) *queryBuilder {
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", column, len(b.args)))
	return b
}

// where returns the full WHERE fragment, or an empty string when no filter
// was supplied.
func (b *queryBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// args returns the positional parameters matching the WHERE fragment.
func (b *queryBuilder) whereArgs() []any {
	return b.args
}

// paginate returns the LIMIT/OFFSET fragment and the complete parameter list
// for the SELECT side: filter args followed by limit and offset.
func (b *queryBuilder) paginate(params repository.ListParams) (string, []any) {
	n := len(b.args)
	clause := fmt.Sprintf("LIMIT $%d OFFSET $%d", n+1, n+2)
	args := make([]any, 0, n+2)
	args = append(args, b.args...)
	args = append(args, params.Limit, params.Offset())
	return clause, args
}

// setBuilder assembles the SET clause of a partial update, holding only the
// columns the caller actually supplied.
type setBuilder struct {
	sets []string
	args []any
}

func newSetBuilder() *setBuilder {
	return &setBuilder{}
}

func (s *setBuilder) set(column string, value any) {
	s.args = append(s.args, value)
	s.sets = append(s.sets, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

func (s *setBuilder) empty() bool {
	return len(s.sets) == 0
}

// clause joins the accumulated assignments; updated_at is appended by the
// caller so it refreshes on every real write.
func (s *setBuilder) clause() string {
	return strings.Join(s.sets, ", ")
}

// next returns the placeholder index following the accumulated args,
// typically used for the WHERE id bind.
func (s *setBuilder) next() int {
	return len(s.args) + 1
}
