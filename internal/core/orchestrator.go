package core

import (
	"context"
	"errors"
	"sync"

	"github.com/wanderbot/trip-cli/internal/trip"
)

type PlanState string

const (
	StateIdle    PlanState = "idle"
	StateLoading PlanState = "loading"
	StateReady   PlanState = "ready"
	StateError   PlanState = "error"
)

// User-facing retryable messages. Soft means the planner answered but
// declined; hard means the request itself failed.
const (
	MsgSoftFailure = "Unable to generate recommendations"
	MsgHardFailure = "Failed to generate AI recommendations"
)

// Orchestrator owns the lifecycle of one trip plan: idle until opened,
// loading while a request is in flight, then ready or error. A close keeps
// the plan so a reopen renders it without a new request. Every settled
// request releases the loading flag, whatever the outcome.
//
// Overlapping generations are guarded by a request sequence: a response
// belonging to a superseded request is discarded. AllowStaleResults in the
// config removes the guard, restoring last-response-wins.
type Orchestrator struct {
	mu         sync.Mutex
	router     *Router
	allowStale bool

	visible bool
	state   PlanState
	plan    *trip.Plan
	errMsg  string
	loading bool
	seq     uint64
	settled chan struct{}
}

func NewOrchestrator(router *Router) *Orchestrator {
	settled := make(chan struct{})
	close(settled)
	return &Orchestrator{
		router:     router,
		allowStale: router.cfg.AllowStaleResults,
		state:      StateIdle,
		settled:    settled,
	}
}

// Open shows the plan view. A first open with no plan yet triggers
// generation; reopening with a cached plan does not.
func (o *Orchestrator) Open(ctx context.Context, req trip.PlanRequest) {
	o.mu.Lock()
	o.visible = true
	trigger := o.plan == nil && !o.loading
	o.mu.Unlock()

	if trigger {
		o.Generate(ctx, req)
	}
}

// Close hides the plan view without discarding the stored plan.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	o.visible = false
	o.mu.Unlock()
}

// Generate requests a plan. With an empty destination it refuses silently:
// no request is issued and no state changes. Prior errors are cleared on
// entry to loading; a prior plan is kept until a new one arrives.
func (o *Orchestrator) Generate(ctx context.Context, req trip.PlanRequest) {
	if req.Destination == "" {
		return
	}

	o.mu.Lock()
	adapters := o.router.ActivePlanAdapters()
	o.seq++
	seq := o.seq
	done := make(chan struct{})
	o.settled = done
	o.loading = true
	o.state = StateLoading
	o.errMsg = ""
	o.mu.Unlock()

	if len(adapters) == 0 {
		o.finish(seq, done, nil, errors.New("no active plan providers for current mode"))
		return
	}
	adapter := adapters[0]

	go func() {
		resp, err := adapter.GeneratePlan(ctx, req)
		o.finish(seq, done, resp, err)
	}()
}

// Regenerate is a manual retry: it re-issues the request regardless of the
// current state, even over an existing plan.
func (o *Orchestrator) Regenerate(ctx context.Context, req trip.PlanRequest) {
	o.Generate(ctx, req)
}

func (o *Orchestrator) finish(seq uint64, done chan struct{}, resp *trip.PlanResponse, err error) {
	defer close(done)

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.allowStale && seq != o.seq {
		// A newer request owns the state now.
		return
	}

	o.loading = false
	switch {
	case err != nil:
		o.state = StateError
		o.errMsg = MsgHardFailure
	case resp == nil || !resp.Success || resp.Plan == nil:
		o.state = StateError
		o.errMsg = MsgSoftFailure
	default:
		o.plan = resp.Plan
		o.state = StateReady
		o.errMsg = ""
	}
}

// Wait blocks until the most recent request settles or ctx is done. It
// returns immediately when nothing is in flight.
func (o *Orchestrator) Wait(ctx context.Context) error {
	o.mu.Lock()
	done := o.settled
	o.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o *Orchestrator) State() PlanState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) Plan() *trip.Plan {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.plan
}

func (o *Orchestrator) Err() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errMsg
}

func (o *Orchestrator) Loading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

func (o *Orchestrator) Visible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}
