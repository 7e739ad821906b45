package yabai

import (
	"fmt"
	"os/exec"

	"github.com/mj1618/ymsp/internal/platform"
)

func init() {
	platform.NewProviderFunc = func(opts platform.Options) (*platform.Provider, error) {
		path := opts.YabaiPath
		if path == "" {
			path = DefaultPath
		}
		if _, err := exec.LookPath(path); err != nil {
			return nil, fmt.Errorf("yabai not found at %s: %w", path, err)
		}
		return &platform.Provider{Service: New(path, opts.Logger)}, nil
	}
}
