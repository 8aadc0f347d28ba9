package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderbot/trip-cli/internal/config"
	"github.com/wanderbot/trip-cli/internal/trip"
)

type planResult struct {
	resp *trip.PlanResponse
	err  error
}

type plannerCall struct {
	req   trip.PlanRequest
	reply chan planResult
}

// scriptedPlanner blocks each GeneratePlan until the test replies, so tests
// control exactly when and in what order requests settle.
type scriptedPlanner struct {
	calls chan plannerCall
}

func newScriptedPlanner() *scriptedPlanner {
	return &scriptedPlanner{calls: make(chan plannerCall, 4)}
}

func (s *scriptedPlanner) Name() string               { return "mock_scripted" }
func (s *scriptedPlanner) Tier() ProviderTier         { return TierEasySignup }
func (s *scriptedPlanner) Capabilities() []Capability { return []Capability{CapPlanGenerate} }
func (s *scriptedPlanner) Available() (bool, string)  { return true, "" }

func (s *scriptedPlanner) GeneratePlan(ctx context.Context, req trip.PlanRequest) (*trip.PlanResponse, error) {
	call := plannerCall{req: req, reply: make(chan planResult)}
	s.calls <- call
	r := <-call.reply
	return r.resp, r.err
}

func (s *scriptedPlanner) nextCall(t *testing.T) plannerCall {
	t.Helper()
	select {
	case c := <-s.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("expected a plan request, got none")
		return plannerCall{}
	}
}

func (s *scriptedPlanner) assertNoCall(t *testing.T) {
	t.Helper()
	time.Sleep(50 * time.Millisecond)
	select {
	case c := <-s.calls:
		t.Fatalf("unexpected plan request for %s", c.req.Destination)
	default:
	}
}

func newTestOrchestrator(allowStale bool) (*Orchestrator, *scriptedPlanner) {
	cfg := &config.Config{Mode: config.ModeMock, AllowStaleResults: allowStale}
	planner := newScriptedPlanner()
	router := NewRouter(cfg)
	router.RegisterPlanner(planner)
	return NewOrchestrator(router), planner
}

func planFor(dest string) *trip.PlanResponse {
	return &trip.PlanResponse{Success: true, Plan: &trip.Plan{Destination: dest, NumDays: 3}}
}

func reqFor(dest string) trip.PlanRequest {
	return trip.PlanRequest{
		Destination:     dest,
		TravelType:      trip.DefaultTravelType,
		HotelPreference: trip.DefaultHotelPreference,
		NumDays:         3,
		NumPeople:       2,
		Budget:          1500,
	}
}

func TestGenerate_EmptyDestination_StaysIdle(t *testing.T) {
	orch, planner := newTestOrchestrator(false)

	orch.Generate(context.Background(), trip.PlanRequest{})

	planner.assertNoCall(t)
	assert.Equal(t, StateIdle, orch.State())
	assert.False(t, orch.Loading())
}

func TestGenerate_Success(t *testing.T) {
	orch, planner := newTestOrchestrator(false)

	orch.Generate(context.Background(), reqFor("Paris"))
	assert.Equal(t, StateLoading, orch.State())
	assert.True(t, orch.Loading())

	call := planner.nextCall(t)
	assert.Equal(t, "Paris", call.req.Destination)
	call.reply <- planResult{resp: planFor("Paris")}

	require.NoError(t, orch.Wait(context.Background()))
	assert.Equal(t, StateReady, orch.State())
	assert.False(t, orch.Loading())
	assert.Empty(t, orch.Err())
	require.NotNil(t, orch.Plan())
	assert.Equal(t, "Paris", orch.Plan().Destination)
}

func TestGenerate_SoftFailure(t *testing.T) {
	orch, planner := newTestOrchestrator(false)

	orch.Generate(context.Background(), reqFor("Paris"))
	planner.nextCall(t).reply <- planResult{resp: &trip.PlanResponse{Success: false}}

	require.NoError(t, orch.Wait(context.Background()))
	assert.Equal(t, StateError, orch.State())
	assert.Equal(t, MsgSoftFailure, orch.Err())
	assert.False(t, orch.Loading())
}

func TestGenerate_HardFailure(t *testing.T) {
	orch, planner := newTestOrchestrator(false)

	orch.Generate(context.Background(), reqFor("Paris"))
	planner.nextCall(t).reply <- planResult{err: errors.New("connection refused")}

	require.NoError(t, orch.Wait(context.Background()))
	assert.Equal(t, StateError, orch.State())
	assert.Equal(t, MsgHardFailure, orch.Err())
	assert.False(t, orch.Loading())
}

func TestGenerate_SoftFailureKeepsPriorPlan(t *testing.T) {
	orch, planner := newTestOrchestrator(false)
	ctx := context.Background()

	orch.Generate(ctx, reqFor("Paris"))
	planner.nextCall(t).reply <- planResult{resp: planFor("Paris")}
	require.NoError(t, orch.Wait(ctx))

	orch.Regenerate(ctx, reqFor("Paris"))
	planner.nextCall(t).reply <- planResult{resp: &trip.PlanResponse{Success: false}}
	require.NoError(t, orch.Wait(ctx))

	assert.Equal(t, StateError, orch.State())
	require.NotNil(t, orch.Plan())
	assert.Equal(t, "Paris", orch.Plan().Destination)
}

func TestOpen_TriggersGenerate(t *testing.T) {
	orch, planner := newTestOrchestrator(false)

	orch.Open(context.Background(), reqFor("Rome"))

	assert.True(t, orch.Visible())
	call := planner.nextCall(t)
	assert.Equal(t, "Rome", call.req.Destination)
	call.reply <- planResult{resp: planFor("Rome")}
	require.NoError(t, orch.Wait(context.Background()))
}

func TestCloseThenOpen_ReusesPlanWithoutRequest(t *testing.T) {
	orch, planner := newTestOrchestrator(false)
	ctx := context.Background()

	orch.Open(ctx, reqFor("Rome"))
	planner.nextCall(t).reply <- planResult{resp: planFor("Rome")}
	require.NoError(t, orch.Wait(ctx))

	orch.Close()
	assert.False(t, orch.Visible())
	require.NotNil(t, orch.Plan())

	orch.Open(ctx, reqFor("Rome"))
	planner.assertNoCall(t)
	assert.True(t, orch.Visible())
	assert.Equal(t, StateReady, orch.State())
}

func TestRegenerate_ReissuesOverExistingPlan(t *testing.T) {
	orch, planner := newTestOrchestrator(false)
	ctx := context.Background()

	orch.Generate(ctx, reqFor("Rome"))
	planner.nextCall(t).reply <- planResult{resp: planFor("Rome")}
	require.NoError(t, orch.Wait(ctx))

	orch.Regenerate(ctx, reqFor("Rome"))
	assert.Equal(t, StateLoading, orch.State())
	planner.nextCall(t).reply <- planResult{resp: planFor("Rome")}
	require.NoError(t, orch.Wait(ctx))
	assert.Equal(t, StateReady, orch.State())
}

func TestRegenerate_StaleResponseDiscarded(t *testing.T) {
	orch, planner := newTestOrchestrator(false)
	ctx := context.Background()

	orch.Generate(ctx, reqFor("Paris"))
	first := planner.nextCall(t)

	orch.Regenerate(ctx, reqFor("Rome"))
	second := planner.nextCall(t)

	// The newer request settles first and wins.
	second.reply <- planResult{resp: planFor("Rome")}
	require.NoError(t, orch.Wait(ctx))
	require.NotNil(t, orch.Plan())
	assert.Equal(t, "Rome", orch.Plan().Destination)

	// The stale response settles later and must be dropped.
	first.reply <- planResult{resp: planFor("Paris")}
	assert.Never(t, func() bool {
		return orch.Plan().Destination == "Paris"
	}, 200*time.Millisecond, 20*time.Millisecond)
	assert.Equal(t, StateReady, orch.State())
	assert.False(t, orch.Loading())
}

// With allowStaleResults the guard is off and the last response to settle
// wins, reproducing the original client's race.
func TestRegenerate_AllowStale_LastToSettleWins(t *testing.T) {
	orch, planner := newTestOrchestrator(true)
	ctx := context.Background()

	orch.Generate(ctx, reqFor("Paris"))
	first := planner.nextCall(t)

	orch.Regenerate(ctx, reqFor("Rome"))
	second := planner.nextCall(t)

	second.reply <- planResult{resp: planFor("Rome")}
	require.NoError(t, orch.Wait(ctx))

	first.reply <- planResult{resp: planFor("Paris")}
	assert.Eventually(t, func() bool {
		return orch.Plan().Destination == "Paris"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestGenerate_NoActiveProviders(t *testing.T) {
	cfg := &config.Config{Mode: config.ModeLive} // scripted mock is filtered out
	planner := newScriptedPlanner()
	router := NewRouter(cfg)
	router.RegisterPlanner(planner)
	orch := NewOrchestrator(router)

	orch.Generate(context.Background(), reqFor("Paris"))
	require.NoError(t, orch.Wait(context.Background()))

	planner.assertNoCall(t)
	assert.Equal(t, StateError, orch.State())
	assert.Equal(t, MsgHardFailure, orch.Err())
	assert.False(t, orch.Loading())
}
