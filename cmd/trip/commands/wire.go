package commands

import (
	"github.com/wanderbot/trip-cli/internal/adapters/live"
	"github.com/wanderbot/trip-cli/internal/adapters/mock"
	"github.com/wanderbot/trip-cli/internal/config"
	"github.com/wanderbot/trip-cli/internal/core"
)

func buildRouter(cfg *config.Config) *core.Router {
	router := core.NewRouter(cfg)

	router.RegisterPlanner(mock.NewMockPlannerAdapter())
	router.RegisterPlanner(live.NewHTTPPlannerAdapter(cfg.PlannerURL))

	return router
}
