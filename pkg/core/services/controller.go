// Package services orchestrates backend calls against the entity store: which
// collections must be refetched after which mutation, and in what order, so a
// dependent collection never observes a stale prior one.
package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ekaraca/shiftdash/pkg/core/model"
	"github.com/ekaraca/shiftdash/pkg/core/store"
)

// Backend is the remote shift-plan service as the controller consumes it.
// planclient.Client implements it; tests substitute fakes.
type Backend interface {
	Members(ctx context.Context) ([]model.Member, error)
	CreateMember(ctx context.Context, name string) (*model.Member, error)
	DeleteMember(ctx context.Context, id int) error
	Shifts(ctx context.Context, startKey, endKey string) ([]model.Shift, error)
	GenerateShifts(ctx context.Context, startKey, endKey string) ([]model.Shift, error)
	ClearShifts(ctx context.Context) error
	ReassignShift(ctx context.Context, dateKey string, memberID int) error
	Holidays(ctx context.Context) (model.Holidays, error)
	Stats(ctx context.Context) ([]model.Stat, error)
	LeaveDays(ctx context.Context, startKey, endKey string) ([]model.LeaveDay, error)
	CreateLeaveDays(ctx context.Context, memberID int, startKey, endKey string) ([]model.LeaveDay, error)
	DeleteLeaveDay(ctx context.Context, id int) error
	Logout(ctx context.Context) error
}

// Controller translates user-initiated mutations into backend calls plus the
// ordered set of collection refetches each one invalidates.
type Controller struct {
	backend Backend
	store   *store.Store
	logger  *zap.Logger

	// onUnauthorized runs exactly once, the first time any call reports a
	// rejected credential. It is injected so the core stays testable
	// without a real credential store.
	onUnauthorized func()
	unauthOnce     sync.Once
	sessionDead    atomic.Bool
}

// NewController wires the controller to its collaborators
func NewController(backend Backend, st *store.Store, logger *zap.Logger, onUnauthorized func()) *Controller {
	if onUnauthorized == nil {
		onUnauthorized = func() {}
	}
	return &Controller{
		backend:        backend,
		store:          st,
		logger:         logger,
		onUnauthorized: onUnauthorized,
	}
}

// Store exposes the entity store for subscribers and projections
func (c *Controller) Store() *store.Store {
	return c.store
}

// handleUnauthorized latches the dead-session state. An Unauthorized result
// takes precedence over any concurrently settling success: once latched,
// every further fetch short-circuits.
func (c *Controller) handleUnauthorized() {
	c.sessionDead.Store(true)
	c.unauthOnce.Do(func() {
		c.logger.Warn("session invalidated by backend")
		c.onUnauthorized()
	})
}

// fetchStep is one refetch inside an invalidation group
type fetchStep struct {
	collection store.Collection
	run        func(ctx context.Context) error
}

// runGroup executes the steps in order. A failing step resets its collection
// to the empty value and the group continues; an Unauthorized result aborts
// the remainder. The combined error carries one SyncError per failed step.
func (c *Controller) runGroup(ctx context.Context, steps ...fetchStep) error {
	var errs []error
	for _, step := range steps {
		if err := c.runStep(ctx, step); err != nil {
			if errors.Is(err, ErrUnauthorized) {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// runParallel executes steps with no ordering dependency between them. All
// steps run to completion unless the session dies.
func (c *Controller) runParallel(ctx context.Context, steps ...fetchStep) error {
	var wg sync.WaitGroup
	results := make([]error, len(steps))

	for i, step := range steps {
		wg.Add(1)
		go func(i int, step fetchStep) {
			defer wg.Done()
			results[i] = c.runStep(ctx, step)
		}(i, step)
	}
	wg.Wait()

	var errs []error
	for _, err := range results {
		if err == nil {
			continue
		}
		if errors.Is(err, ErrUnauthorized) {
			return err
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Controller) runStep(ctx context.Context, step fetchStep) error {
	if c.sessionDead.Load() {
		return ErrUnauthorized
	}
	if err := step.run(ctx); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			c.handleUnauthorized()
			return ErrUnauthorized
		}
		c.logger.Warn("fetch failed, collection reset",
			zap.String("collection", string(step.collection)),
			zap.Error(err))
		return &SyncError{Collection: step.collection, Cause: err}
	}
	return nil
}
