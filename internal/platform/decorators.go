package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrLockLost is returned when a write is attempted after the exclusivity
// lock stopped naming this process.
var ErrLockLost = errors.New("lock file no longer owned by this process")

// Owner reports whether this process still holds the exclusivity lock.
type Owner interface {
	Owned() (bool, error)
}

// DryRun forwards queries and logs write messages instead of sending them.
type DryRun struct {
	Service
	logger *log.Logger
}

func NewDryRun(svc Service, logger *log.Logger) *DryRun {
	return &DryRun{Service: svc, logger: logger}
}

func (d *DryRun) Send(ctx context.Context, msg Message) error {
	if msg.IsWrite() {
		d.logger.Warn("dry run, not sending", "command", msg.String())
		return nil
	}
	return d.Service.Send(ctx, msg)
}

// Guarded refuses write messages once the lock is no longer held.
type Guarded struct {
	Service
	owner Owner
}

func NewGuarded(svc Service, owner Owner) *Guarded {
	return &Guarded{Service: svc, owner: owner}
}

func (g *Guarded) Send(ctx context.Context, msg Message) error {
	if msg.IsWrite() {
		owned, err := g.owner.Owned()
		if err != nil {
			return fmt.Errorf("check lock before %s: %w", msg.Kind, err)
		}
		if !owned {
			return fmt.Errorf("%s: %w", msg, ErrLockLost)
		}
	}
	return g.Service.Send(ctx, msg)
}
