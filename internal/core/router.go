package core

import (
	"github.com/wanderbot/trip-cli/internal/config"
)

type Router struct {
	cfg          *config.Config
	planAdapters []PlanAdapter
}

func NewRouter(cfg *config.Config) *Router {
	return &Router{cfg: cfg}
}

func (r *Router) RegisterPlanner(a PlanAdapter) {
	r.planAdapters = append(r.planAdapters, a)
}

// ActivePlanAdapters returns the planners usable under the current mode, in
// registration order.
func (r *Router) ActivePlanAdapters() []PlanAdapter {
	var out []PlanAdapter
	for _, a := range r.planAdapters {
		if r.shouldUse(a.Name()) {
			out = append(out, a)
		}
	}
	return out
}

func (r *Router) shouldUse(name string) bool {
	switch r.cfg.Mode {
	case config.ModeMock:
		return isMockProvider(name)
	case config.ModeLive:
		return !isMockProvider(name)
	case config.ModeHybrid:
		if !isMockProvider(name) {
			return r.cfg.ProviderHasCredentials(name)
		}
		return r.noLiveAlternative()
	}
	return false
}

func (r *Router) noLiveAlternative() bool {
	for _, a := range r.planAdapters {
		if !isMockProvider(a.Name()) && r.cfg.ProviderHasCredentials(a.Name()) {
			return false
		}
	}
	return true
}

func isMockProvider(name string) bool {
	return len(name) >= 5 && name[:5] == "mock_"
}

func (r *Router) ProviderInfos() []ProviderInfo {
	var infos []ProviderInfo

	for _, a := range r.planAdapters {
		info := ProviderInfo{
			Name:         a.Name(),
			Capabilities: a.Capabilities(),
			Tier:         a.Tier(),
		}
		if avail, reason := a.Available(); avail {
			info.Status = "active"
		} else {
			info.Status = "no_credentials"
			info.Reason = reason
		}
		if r.cfg.Mode == config.ModeMock && !isMockProvider(a.Name()) {
			info.Status = "inactive"
			info.Reason = "mode is mock"
		}
		infos = append(infos, info)
	}

	return infos
}
