// Package home aggregates the data behind the landing screen: upcoming
// matches, open tournaments, and featured products.
package home

import (
	"context"

	"go.uber.org/multierr"

	"github.com/spikemate/mobile-core/pkg/logger"
	"github.com/spikemate/mobile-core/pkg/models"
)

type matchLister interface {
	List(ctx context.Context) ([]models.Match, error)
}

type tournamentLister interface {
	List(ctx context.Context) ([]models.Tournament, error)
}

type productLister interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type Service struct {
	matches     matchLister
	tournaments tournamentLister
	catalog     productLister
	logg        *logger.Logger
}

func NewService(matches matchLister, tournaments tournamentLister, catalog productLister, logg *logger.Logger) *Service {
	return &Service{matches: matches, tournaments: tournaments, catalog: catalog, logg: logg}
}

// Feed is everything the landing screen renders. Sections that failed to
// load are nil; the rest are populated.
type Feed struct {
	Matches     []models.Match
	Tournaments []models.Tournament
	Products    []models.Product
}

// Load fetches all three sections. A section failing does not blank the
// others: the feed carries whatever loaded, and the combined error reports
// every failure so the caller can decide what to retry.
func (s *Service) Load(ctx context.Context) (*Feed, error) {
	feed := &Feed{}
	var errs error

	matches, err := s.matches.List(ctx)
	if err != nil {
		s.logg.Error(ctx, "loading matches section", err)
		errs = multierr.Append(errs, err)
	} else {
		feed.Matches = matches
	}

	tournaments, err := s.tournaments.List(ctx)
	if err != nil {
		s.logg.Error(ctx, "loading tournaments section", err)
		errs = multierr.Append(errs, err)
	} else {
		feed.Tournaments = tournaments
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.logg.Error(ctx, "loading products section", err)
		errs = multierr.Append(errs, err)
	} else {
		feed.Products = products
	}

	return feed, errs
}
