package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"reviewrelay/internal/store"
)

const defaultRating = 5

// dateLayout renders UTC times as "2006-01-02T15:04:05.000Z".
const dateLayout = "2006-01-02T15:04:05.000Z07:00"

// Service implements the three collection operations, each as one full
// read-modify-write cycle against a single store key. The store has no
// transactions, so two concurrent writers race and the last write wins;
// that lost-update window is a documented limitation of the backend, not
// something this service papers over.
type Service struct {
	store store.Store
	key   string
	now   func() time.Time
}

func NewService(st store.Store, key string) *Service {
	return &Service{store: st, key: key, now: time.Now}
}

func seedReviews() []Review {
	return []Review{
		{Name: "Jennifer D.", Text: "Absolutely wonderful, would recommend to anyone!", Rating: defaultRating},
		{Name: "Anonymous", Text: "Great experience from start to finish.", Rating: defaultRating},
		{Name: "Anonymous", Text: "Five stars, no notes.", Rating: defaultRating},
	}
}

// List returns the full collection, newest first. An absent, undecodable,
// or empty collection is initialized with the three seed records, and the
// seed is persisted before returning so a second call does not reseed.
func (s *Service) List(ctx context.Context) ([]Review, error) {
	reviews, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if len(reviews) > 0 {
		return reviews, nil
	}

	seeds := seedReviews()
	if err := s.write(ctx, seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}

// Append validates the candidate, stamps the server date, and prepends it
// so the newest review sits at position 0. Duplicates are allowed.
func (s *Service) Append(ctx context.Context, req CreateReviewRequest) (*Review, error) {
	if req.Name == "" || req.Text == "" {
		return nil, ErrInvalidRequest
	}

	rating := defaultRating
	if req.Rating != nil {
		rating = *req.Rating
	}

	rec := Review{
		Name:   req.Name,
		Text:   req.Text,
		Rating: rating,
		Date:   s.now().UTC().Format(dateLayout),
	}

	reviews, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	updated := append([]Review{rec}, reviews...)
	if err := s.write(ctx, updated); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteByName removes every record whose name equals the query after
// lowercasing both sides. Whole-string compare, no trimming, no substring
// matching. Zero matches means ErrNotFound and no write.
func (s *Service) DeleteByName(ctx context.Context, name string) (int, error) {
	if name == "" {
		return 0, ErrInvalidRequest
	}

	reviews, err := s.read(ctx)
	if err != nil {
		return 0, err
	}

	target := strings.ToLower(name)
	kept := make([]Review, 0, len(reviews))
	for _, rv := range reviews {
		if strings.ToLower(rv.Name) != target {
			kept = append(kept, rv)
		}
	}

	removed := len(reviews) - len(kept)
	if removed == 0 {
		return 0, ErrNotFound
	}

	if err := s.write(ctx, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// read fetches and decodes the collection; absent or undecodable values
// come back as an empty list, store failures propagate.
func (s *Service) read(ctx context.Context) ([]Review, error) {
	value, err := s.store.Get(ctx, s.key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	reviews, ok := decodeReviews(value)
	if !ok {
		return nil, nil
	}
	return reviews, nil
}

func (s *Service) write(ctx context.Context, reviews []Review) error {
	value, err := encodeReviews(reviews)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, s.key, value)
}
