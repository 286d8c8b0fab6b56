package service

import (
	"strconv"

	"github.com/msomdec/notekeeper/internal/domain"
)

// NotesPageSize is the fixed number of notes shown per page.
const NotesPageSize = 10

// Page is one window of a user's notes plus the metadata the listing needs.
type Page struct {
	Notes      []domain.Note
	Number     int // 1-indexed
	Size       int
	TotalItems int
	TotalPages int
}

func (p *Page) HasPrev() bool {
	return p.Number > 1
}

func (p *Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p *Page) PrevNumber() int {
	return p.Number - 1
}

func (p *Page) NextNumber() int {
	return p.Number + 1
}

// ParsePageNumber reads the page query parameter. Anything that is not an
// integer selects the first page.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}

// clampPage resolves a requested page number against the item count. A
// number outside 1..last resolves to the last page; an empty list still has
// one (empty) page.
func clampPage(number, totalItems, size int) (page, totalPages int) {
	totalPages = (totalItems + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if number < 1 || number > totalPages {
		return totalPages, totalPages
	}
	return number, totalPages
}
