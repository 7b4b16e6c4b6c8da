package repository

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListParams holds offset pagination inputs shared by every list operation.
type ListParams struct {
	Page  int
	Limit int
}

// Normalize floors the page at 1 and clamps the limit to [1, MaxLimit].
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset computes the row offset for the normalized page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
