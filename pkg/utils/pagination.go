package utils

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Page is one window over a listing: its 1-based number and size.
type Page struct {
	Number  int
	PerPage int
}

// NewPage normalises raw query values. A missing or negative page becomes
// the first one and PerPage is clamped to [1, MaxPerPage].
func NewPage(number, perPage int) Page {
	if number < 1 {
		number = 1
	}
	switch {
	case perPage < 1:
		perPage = DefaultPerPage
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	}
	return Page{Number: number, PerPage: perPage}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// TotalPages counts how many pages of this size cover total rows.
func (p Page) TotalPages(total int64) int {
	if p.PerPage <= 0 || total <= 0 {
		return 0
	}
	size := int64(p.PerPage)
	return int((total + size - 1) / size)
}
