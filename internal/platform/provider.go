package platform

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
)

// Provider bundles the window manager backend for the current OS.
type Provider struct {
	Service Service
}

// Options configures provider construction.
type Options struct {
	YabaiPath string
	Logger    *log.Logger

	// DryRun drops write messages instead of sending them.
	DryRun bool

	// Owner, when set, is checked before every write message.
	Owner Owner
}

// ErrUnsupported is returned when no backend registered itself.
var ErrUnsupported = fmt.Errorf("ymsp has no window manager backend on %s/%s", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by backend packages via init().
// See internal/platform/yabai/init.go for the yabai registration.
var NewProviderFunc func(opts Options) (*Provider, error)

// NewProvider returns a Provider wrapped with the decorators opts asks for.
func NewProvider(opts Options) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	p, err := NewProviderFunc(opts)
	if err != nil {
		return nil, err
	}
	if opts.Owner != nil {
		p.Service = NewGuarded(p.Service, opts.Owner)
	}
	if opts.DryRun {
		p.Service = NewDryRun(p.Service, opts.Logger)
	}
	return p, nil
}
