package contract

const (
	DefaultPageOffset = 0
	DefaultPageLimit  = 100
	MaxPageLimit      = 1000
)

type Pagination struct {
	Offset int
	Limit  int
}

func DefaultPagination() Pagination {
	return Pagination{Offset: DefaultPageOffset, Limit: DefaultPageLimit}
}
