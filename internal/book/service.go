package book

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service provides book-related business logic.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used for insertedAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how new book ids are produced.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a new book service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		now:   time.Now,
		newID: newBookID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newBookID() string {
	return "book-" + uuid.NewString()
}

// Add validates in, stores a new book and returns its id.
func (s *Service) Add(ctx context.Context, in Input) (string, error) {
	if err := validateInput(actionAdd, in); err != nil {
		return "", err
	}

	now := Timestamp(s.now().UTC())
	b := Book{
		ID:         s.newID(),
		Name:       in.Name,
		Year:       in.Year,
		Author:     in.Author,
		Summary:    in.Summary,
		Publisher:  in.Publisher,
		PageCount:  in.PageCount,
		ReadPage:   in.ReadPage,
		Finished:   in.ReadPage == in.PageCount,
		Reading:    in.Reading != nil && *in.Reading,
		InsertedAt: now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, b); err != nil {
		return "", err
	}
	return b.ID, nil
}

// ListFiltered returns summaries of the books matching f, in insertion order.
func (s *Service) ListFiltered(ctx context.Context, f Filter) ([]Summary, error) {
	books, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(books))
	for _, b := range books {
		out = append(out, b.Brief())
	}
	return out, nil
}

// GetByID returns the full book record.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.Get(ctx, id)
}

// Update replaces the mutable fields of an existing book.
// An unknown id wins over invalid input; invalid input leaves the book untouched.
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	return s.repo.Update(ctx, id, func(b *Book) error {
		if err := validateInput(actionUpdate, in); err != nil {
			return err
		}

		b.Name = in.Name
		b.Year = in.Year
		b.Author = in.Author
		b.Summary = in.Summary
		b.Publisher = in.Publisher
		b.PageCount = in.PageCount
		b.ReadPage = in.ReadPage
		b.Finished = in.ReadPage == in.PageCount
		if in.Reading != nil {
			b.Reading = *in.Reading
		}
		b.UpdatedAt = Timestamp(s.now().UTC())
		return nil
	})
}

// Delete removes a book.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
