package home

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	pkgerrors "github.com/spikemate/mobile-core/pkg/errors"
	"github.com/spikemate/mobile-core/pkg/logger"
	"github.com/spikemate/mobile-core/pkg/models"
)

type stubMatches struct {
	matches []models.Match
	err     error
}

func (s *stubMatches) List(context.Context) ([]models.Match, error) {
	return s.matches, s.err
}

type stubTournaments struct {
	tournaments []models.Tournament
	err         error
}

func (s *stubTournaments) List(context.Context) ([]models.Tournament, error) {
	return s.tournaments, s.err
}

type stubCatalog struct {
	products []models.Product
	err      error
}

func (s *stubCatalog) ListProducts(context.Context) ([]models.Product, error) {
	return s.products, s.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{
		ServiceName: "home-test",
		Level:       zerolog.Disabled,
		Output:      &bytes.Buffer{},
	})
}

func TestLoadAllSections(t *testing.T) {
	svc := NewService(
		&stubMatches{matches: []models.Match{{ID: "m1"}}},
		&stubTournaments{tournaments: []models.Tournament{{ID: "t1"}}},
		&stubCatalog{products: []models.Product{{ID: "p1"}, {ID: "p2"}}},
		testLogger(),
	)

	feed, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(feed.Matches) != 1 || len(feed.Tournaments) != 1 || len(feed.Products) != 2 {
		t.Fatalf("unexpected feed: %+v", feed)
	}
}

func TestLoadToleratesPartialFailure(t *testing.T) {
	netErr := pkgerrors.New(pkgerrors.CodeNetwork, "matches unreachable")
	svc := NewService(
		&stubMatches{err: netErr},
		&stubTournaments{tournaments: []models.Tournament{{ID: "t1"}}},
		&stubCatalog{products: []models.Product{{ID: "p1"}}},
		testLogger(),
	)

	feed, err := svc.Load(context.Background())
	if err == nil {
		t.Fatal("expected an error for the failed section")
	}
	if feed == nil {
		t.Fatal("feed must carry the sections that loaded")
	}
	if feed.Matches != nil {
		t.Fatalf("failed section must stay nil, got %+v", feed.Matches)
	}
	if len(feed.Tournaments) != 1 || len(feed.Products) != 1 {
		t.Fatalf("surviving sections lost: %+v", feed)
	}
	if errs := multierr.Errors(err); len(errs) != 1 || pkgerrors.CodeOf(errs[0]) != pkgerrors.CodeNetwork {
		t.Fatalf("unexpected combined error: %v", err)
	}
}

func TestLoadReportsEveryFailure(t *testing.T) {
	svc := NewService(
		&stubMatches{err: pkgerrors.New(pkgerrors.CodeNetwork, "down")},
		&stubTournaments{err: pkgerrors.New(pkgerrors.CodeServer, "boom")},
		&stubCatalog{err: pkgerrors.New(pkgerrors.CodeServer, "boom")},
		testLogger(),
	)

	feed, err := svc.Load(context.Background())
	if feed == nil {
		t.Fatal("feed must never be nil")
	}
	if got := len(multierr.Errors(err)); got != 3 {
		t.Fatalf("expected 3 combined errors, got %d: %v", got, err)
	}
}
