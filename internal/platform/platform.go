// Package platform picks the OS integration behind the overlay.
package platform

import (
	"github.com/Norgate-AV/ovly/internal/interfaces"
	"github.com/Norgate-AV/ovly/internal/logger"
)

// Options configures New.
type Options struct {
	// FollowTarget moves the overlay onto the target's bounds as they change.
	FollowTarget bool
	Log          logger.Logger
}

// Services bundles the OS pieces the command wires into the overlay.
type Services struct {
	Backend    interfaces.Backend
	FindTarget func(query string) (interfaces.TargetTracker, error)
	// Relay is nil when the host's own relay should be used.
	Relay   interfaces.InputRelay
	Alerter interfaces.Alerter
}

func (o Options) logger() logger.Logger {
	if o.Log == nil {
		return logger.Discard()
	}
	return o.Log
}
