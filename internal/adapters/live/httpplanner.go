package live

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/wanderbot/trip-cli/internal/core"
	"github.com/wanderbot/trip-cli/internal/trip"
)

// HTTPPlannerAdapter talks to a plan-generation service over HTTP, such as
// plannerd or any backend honoring the same POST /api/plan contract.
// Set PLANNER_URL (or plannerUrl in the config file) to enable.
type HTTPPlannerAdapter struct {
	endpoint string
	client   *http.Client
}

func NewHTTPPlannerAdapter(endpoint string) *HTTPPlannerAdapter {
	if endpoint == "" {
		endpoint = os.Getenv("PLANNER_URL")
	}
	return &HTTPPlannerAdapter{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (a *HTTPPlannerAdapter) Name() string            { return "planner_http" }
func (a *HTTPPlannerAdapter) Tier() core.ProviderTier { return core.TierEasySignup }
func (a *HTTPPlannerAdapter) Capabilities() []core.Capability {
	return []core.Capability{core.CapPlanGenerate}
}

func (a *HTTPPlannerAdapter) Available() (bool, string) {
	if a.endpoint == "" {
		return false, "set PLANNER_URL to the plan service base URL (e.g. http://localhost:8085)"
	}
	return true, ""
}

func (a *HTTPPlannerAdapter) GeneratePlan(ctx context.Context, req trip.PlanRequest) (*trip.PlanResponse, error) {
	if a.endpoint == "" {
		return nil, fmt.Errorf("planner endpoint not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode plan request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint+"/api/plan", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build plan request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call planner: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, fmt.Errorf("planner returned status %d", httpResp.StatusCode)
	}

	var resp trip.PlanResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode plan response: %w", err)
	}
	return &resp, nil
}
