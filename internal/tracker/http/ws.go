package http

import (
	"io"

	"github.com/crewlabs/crewlog/internal/tracker/push"
	"github.com/crewlabs/crewlog/internal/tracker/service"
	"github.com/crewlabs/crewlog/pkg/slogx"
	"golang.org/x/net/websocket"
)

// PushHandler serves the live-update channel. Each connection gets a
// greeting and a current snapshot on join, then whatever the hub fans out.
type PushHandler struct {
	Hub          *push.Hub
	StatsService *service.StatsService
}

func (r *Router) registerPush() {
	h := &PushHandler{
		Hub:          r.Hub,
		StatsService: r.StatsService,
	}
	r.Mux.Handle("GET /ws", websocket.Handler(h.handleConn))
}

func (h *PushHandler) handleConn(conn *websocket.Conn) {
	defer conn.Close()

	ctx := conn.Request().Context()
	log := slogx.FromContext(ctx)

	peer := push.NewPeer(conn)
	if err := peer.Send(push.InfoFrame("connected to crewlog live stats")); err != nil {
		return
	}

	// A connection opened between two mutations sees the same snapshot the
	// last broadcast carried, so compute fresh on join.
	if stats, err := h.StatsService.Compute(ctx); err != nil {
		log.Error("initial stats snapshot failed", "err", err)
	} else if err := peer.Send(push.StatsFrame(stats)); err != nil {
		return
	}

	h.Hub.Register(peer)
	defer h.Hub.Unregister(peer)

	// No client-to-server messages are defined; block until close so the
	// peer can be unregistered.
	_, _ = io.Copy(io.Discard, conn)
}
