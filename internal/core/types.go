package core

import (
	"context"

	"github.com/wanderbot/trip-cli/internal/config"
	"github.com/wanderbot/trip-cli/internal/trip"
)

type Capability string

const (
	CapPlanGenerate Capability = "plan.generate"
	CapTravelTypes  Capability = "plan.travelTypes"
)

type ProviderTier string

const (
	TierEasySignup      ProviderTier = "easySignup"
	TierPartnerRequired ProviderTier = "partnerRequired"
	TierEnterpriseOnly  ProviderTier = "enterpriseOnly"
)

// PlanAdapter is a plan-generation provider. GeneratePlan returning an
// error is a hard failure; a response with Success false is a soft one.
type PlanAdapter interface {
	Name() string
	Tier() ProviderTier
	Capabilities() []Capability
	Available() (bool, string)
	GeneratePlan(ctx context.Context, req trip.PlanRequest) (*trip.PlanResponse, error)
}

type ProviderInfo struct {
	Name         string       `json:"name"`
	Capabilities []Capability `json:"capabilities"`
	Tier         ProviderTier `json:"tier"`
	Status       string       `json:"status"`
	Reason       string       `json:"reason,omitempty"`
}

type DoctorReport struct {
	Mode      config.Mode    `json:"mode"`
	Providers []ProviderInfo `json:"providers"`
	Healthy   bool           `json:"healthy"`
	Summary   string         `json:"summary"`
}
