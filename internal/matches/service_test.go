package matches

import (
	"context"
	"testing"

	pkgerrors "github.com/spikemate/mobile-core/pkg/errors"
	"github.com/spikemate/mobile-core/pkg/models"
)

type stubAPI struct {
	calls    int
	lastPath string
	lastBody any
}

func (s *stubAPI) Get(context.Context, string, any) error { s.calls++; return nil }

func (s *stubAPI) Post(_ context.Context, path string, body, _ any) error {
	s.calls++
	s.lastPath = path
	s.lastBody = body
	return nil
}

func (s *stubAPI) Put(_ context.Context, path string, body, _ any) error {
	s.calls++
	s.lastPath = path
	s.lastBody = body
	return nil
}

func (s *stubAPI) Delete(_ context.Context, path string, _ any) error {
	s.calls++
	s.lastPath = path
	return nil
}

type stubSession struct{ authed bool }

func (s *stubSession) IsAuthenticated() bool { return s.authed }

func validInput() CreateInput {
	return CreateInput{
		IsPublic:    true,
		Team1:       "64a1f0c2e4b0a1b2c3d4e5f6",
		TerrainType: models.TerrainBeach,
		MaxSets:     3,
		Date:        "2026-09-12",
		Time:        "18:30",
		Location:    "Plage du Prado",
	}
}

func TestCreateRequiresSession(t *testing.T) {
	api := &stubAPI{}
	svc := NewService(api, &stubSession{authed: false})

	_, err := svc.Create(context.Background(), validInput())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if api.calls != 0 {
		t.Fatalf("anonymous create must not reach the network, saw %d calls", api.calls)
	}
}

func TestCreateValidatesBeforeNetwork(t *testing.T) {
	api := &stubAPI{}
	svc := NewService(api, &stubSession{authed: true})

	input := validInput()
	input.MaxSets = 4

	_, err := svc.Create(context.Background(), input)
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if api.calls != 0 {
		t.Fatalf("invalid create must not reach the network, saw %d calls", api.calls)
	}
}

func TestCreatePostsQuickMatch(t *testing.T) {
	api := &stubAPI{}
	svc := NewService(api, &stubSession{authed: true})

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if api.lastPath != "/api/matches/quick-matches" {
		t.Fatalf("unexpected path %q", api.lastPath)
	}
}

func TestJoinTargetsMatchPath(t *testing.T) {
	api := &stubAPI{}
	svc := NewService(api, &stubSession{authed: true})

	if err := svc.Join(context.Background(), "m1", "team-a"); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if api.lastPath != "/api/matches/quick-matches/m1/join" {
		t.Fatalf("unexpected path %q", api.lastPath)
	}
	body, ok := api.lastBody.(map[string]string)
	if !ok || body["teamId"] != "team-a" {
		t.Fatalf("unexpected body %+v", api.lastBody)
	}
}
