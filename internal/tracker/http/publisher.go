package http

import (
	"context"

	"github.com/crewlabs/crewlog/internal/tracker/push"
	"github.com/crewlabs/crewlog/internal/tracker/service"
	"github.com/crewlabs/crewlog/pkg/slogx"
)

// StatsPublisher recomputes the aggregate snapshot and fans it out to every
// open viewer connection. Mutating handlers call Publish after the store
// write; failures never propagate back to the triggering request.
type StatsPublisher struct {
	Hub          *push.Hub
	StatsService *service.StatsService
}

func (p *StatsPublisher) Publish(ctx context.Context) {
	stats, err := p.StatsService.Compute(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("stats recompute failed", "err", err)
		return
	}
	p.Hub.Broadcast(push.StatsFrame(stats))
}
