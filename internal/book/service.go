package book

import (
	"context"
)

// SearchRequest is a normalized search: filters, sort and the raw paging
// parameters, whitelisted and coerced at the HTTP boundary.
type SearchRequest struct {
	Conditions []Condition
	SortBy     SortField
	Direction  Direction
	Page       string
	PerPage    string
}

// Service implements the book operations over an injected Repository.
type Service struct {
	repo           Repository
	defaultPerPage int
	maxPerPage     int
}

// NewService creates a book service. defaultPerPage is used when a search
// does not specify a page size; maxPerPage caps whatever it does specify.
func NewService(repo Repository, defaultPerPage, maxPerPage int) *Service {
	return &Service{repo: repo, defaultPerPage: defaultPerPage, maxPerPage: maxPerPage}
}

// Create validates the candidate record and inserts it. The store assigns
// the id; any id in the submitted fields is ignored.
func (s *Service) Create(ctx context.Context, p Patch) (Book, error) {
	var b Book
	p.ApplyTo(&b)

	if err := Validate(b); err != nil {
		return Book{}, err
	}

	id, err := s.repo.Insert(ctx, b)
	if err != nil {
		return Book{}, err
	}
	b.ID = id
	return b, nil
}

// Search counts the matching rows, resolves the pagination window against
// the total, and fetches the page. An empty result is ErrNoBooksFound.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]Book, Window, error) {
	total, err := s.repo.Count(ctx, req.Conditions)
	if err != nil {
		return nil, Window{}, err
	}

	w := NewWindow(req.Page, req.PerPage, total, s.defaultPerPage, s.maxPerPage)

	books, err := s.repo.Search(ctx, req.Conditions, req.SortBy, req.Direction, w.PerPage, w.Offset)
	if err != nil {
		return nil, Window{}, err
	}
	if len(books) == 0 {
		return nil, Window{}, ErrNoBooksFound
	}
	return books, w, nil
}

// GetByID returns a single record or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges the submitted fields over the stored record, pins the id to
// the one addressed by the request, revalidates and persists the full row.
// Fields the client omitted keep their stored values.
func (s *Service) Update(ctx context.Context, id int64, p Patch) (Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Book{}, err
	}

	p.ApplyTo(&b)
	// The body must not be able to move the record to another id.
	b.ID = id

	if err := Validate(b); err != nil {
		return Book{}, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return Book{}, err
	}
	return b, nil
}
