// Package push maintains the set of live viewer connections and fans stats
// snapshots out to all of them. Connections are ephemeral and process-local;
// a send failure means the peer is skipped, never retried or queued.
package push

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/crewlabs/crewlog/internal/tracker/domain"
)

// Frame is the wire shape of every push-channel message.
type Frame struct {
	Type    string        `json:"type"`
	Message string        `json:"message,omitempty"`
	Data    *domain.Stats `json:"data,omitempty"`
}

// InfoFrame builds the greeting sent to each new connection.
func InfoFrame(message string) Frame {
	return Frame{Type: "info", Message: message}
}

// StatsFrame wraps a stats snapshot for the wire.
func StatsFrame(stats domain.Stats) Frame {
	return Frame{Type: "stats", Data: &stats}
}

// Peer is one viewer connection. Writes are serialized because a broadcast
// and a join-time snapshot may target the same connection concurrently.
type Peer struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewPeer wraps a connection's write side.
func NewPeer(w io.Writer) *Peer {
	return &Peer{enc: json.NewEncoder(w)}
}

// Send writes one frame. The error matters only to the hub, which treats it
// as "not ready, skip".
func (p *Peer) Send(frame Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enc.Encode(frame)
}

// Hub is the concurrency-safe registry of open viewer connections.
type Hub struct {
	mu    sync.Mutex
	peers map[*Peer]struct{}
}

func NewHub() *Hub {
	return &Hub{peers: make(map[*Peer]struct{})}
}

// Register adds a connection to the fan-out set.
func (h *Hub) Register(p *Peer) {
	h.mu.Lock()
	h.peers[p] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a connection; call on close.
func (h *Hub) Unregister(p *Peer) {
	h.mu.Lock()
	delete(h.peers, p)
	h.mu.Unlock()
}

// Len reports the number of currently registered connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.peers)
}

// Broadcast sends the same frame to every open connection. Peers whose send
// fails are silently skipped: no error, no retry, no queuing.
func (h *Hub) Broadcast(frame Frame) {
	h.mu.Lock()
	peers := make([]*Peer, 0, len(h.peers))
	for p := range h.peers {
		peers = append(peers, p)
	}
	h.mu.Unlock()

	for _, p := range peers {
		_ = p.Send(frame)
	}
}
