package platform

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mj1618/ymsp/internal/model"
)

// recorder is a Service that records every message it is sent.
type recorder struct {
	sent []Message
}

func (r *recorder) Windows(context.Context) ([]model.Window, error)    { return nil, nil }
func (r *recorder) Displays(context.Context) ([]model.Display, error)  { return nil, nil }
func (r *recorder) FocusedDisplay(context.Context) (model.Display, error) {
	return model.Display{}, nil
}
func (r *recorder) Spaces(context.Context) ([]model.Space, error)      { return nil, nil }
func (r *recorder) FocusedSpace(context.Context) (model.Space, error) { return model.Space{}, nil }
func (r *recorder) LeftPadding(context.Context) (float64, error)     { return 0, nil }

func (r *recorder) Send(_ context.Context, msg Message) error {
	r.sent = append(r.sent, msg)
	return nil
}

type staticOwner struct {
	owned bool
	err   error
}

func (o staticOwner) Owned() (bool, error) { return o.owned, o.err }

func quietLogger() *log.Logger { return log.New(io.Discard) }

func withProviderFunc(t *testing.T, svc Service) {
	t.Helper()
	orig := NewProviderFunc
	NewProviderFunc = func(Options) (*Provider, error) { return &Provider{Service: svc}, nil }
	t.Cleanup(func() { NewProviderFunc = orig })
}

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider(Options{})
	if err == nil {
		t.Fatal("expected error without a registered backend")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestNewProvider_DryRunDropsWrites(t *testing.T) {
	rec := &recorder{}
	withProviderFunc(t, rec)

	p, err := NewProvider(Options{DryRun: true, Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := p.Service.Send(ctx, Warp(WindowID(1), West)); err != nil {
		t.Fatal(err)
	}
	if err := p.Service.Send(ctx, GetConfig("left_padding")); err != nil {
		t.Fatal(err)
	}
	if len(rec.sent) != 1 || rec.sent[0].Kind != KindConfig {
		t.Errorf("expected only the read message to pass through, got %v", rec.sent)
	}
}

func TestNewProvider_GuardRejectsWritesWithoutLock(t *testing.T) {
	rec := &recorder{}
	withProviderFunc(t, rec)

	p, err := NewProvider(Options{Owner: staticOwner{owned: false}, Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}
	err = p.Service.Send(context.Background(), ToggleSplit(WindowID(3)))
	if !errors.Is(err, ErrLockLost) {
		t.Fatalf("expected ErrLockLost, got %v", err)
	}
	if len(rec.sent) != 0 {
		t.Errorf("write should not reach the backend, got %v", rec.sent)
	}
}

func TestGuarded_AllowsWritesWhileOwned(t *testing.T) {
	rec := &recorder{}
	g := NewGuarded(rec, staticOwner{owned: true})
	if err := g.Send(context.Background(), FocusWindow(First)); err != nil {
		t.Fatal(err)
	}
	if len(rec.sent) != 1 {
		t.Errorf("expected 1 message, got %d", len(rec.sent))
	}
}

func TestGuarded_PropagatesOwnerError(t *testing.T) {
	boom := errors.New("boom")
	g := NewGuarded(&recorder{}, staticOwner{err: boom})
	if err := g.Send(context.Background(), CloseWindow(nil)); !errors.Is(err, boom) {
		t.Errorf("expected owner error, got %v", err)
	}
}

func TestGuarded_ReadsSkipOwnerCheck(t *testing.T) {
	rec := &recorder{}
	g := NewGuarded(rec, staticOwner{owned: false})
	if err := g.Send(context.Background(), QueryWindows()); err != nil {
		t.Errorf("read should pass without lock, got %v", err)
	}
}
