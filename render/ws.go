package render

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/collide-sim/collide-sim/sim"
)

// FrameParticle is the wire form of one particle in a frame.
type FrameParticle struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Radius float64  `json:"radius"`
	Color  [3]uint8 `json:"color"`
}

// Frame is the wire form of one redraw tick.
type Frame struct {
	Time      float64         `json:"time"`
	Particles []FrameParticle `json:"particles"`
}

// WebSocket broadcasts simulation frames to connected WebSocket clients.
// A hub goroutine owns the client set; Render only enqueues frames, so the
// simulation loop never blocks on a slow client (frames are dropped when
// the broadcast buffer is full).
type WebSocket struct {
	mu         sync.RWMutex
	clients    map[*websocket.Conn]bool
	upgrader   websocket.Upgrader
	broadcast  chan Frame
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	wg         sync.WaitGroup

	Pause time.Duration // wall-clock sleep per frame, 0 to run flat out
}

// NewWebSocket creates the broadcaster and starts its hub goroutine.
func NewWebSocket() *WebSocket {
	ws := &WebSocket{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Frame, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The viewer page may be served from anywhere.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	ws.wg.Add(1)
	go ws.run()

	return ws
}

// Render implements sim.Renderer: it converts the snapshot to a wire frame
// and enqueues it for broadcast.
func (ws *WebSocket) Render(t float64, particles []sim.Particle) {
	frame := Frame{Time: t, Particles: make([]FrameParticle, len(particles))}
	for i, p := range particles {
		frame.Particles[i] = FrameParticle{
			X:      p.X,
			Y:      p.Y,
			Radius: p.Radius,
			Color:  [3]uint8{p.Color.R, p.Color.G, p.Color.B},
		}
	}
	select {
	case ws.broadcast <- frame:
	case <-ws.done:
	default:
		// Buffer full: drop the frame rather than stall the event loop.
	}
	if ws.Pause > 0 {
		time.Sleep(ws.Pause)
	}
}

// Handler returns an http.HandlerFunc that upgrades the request and
// registers the connection for frame broadcasts.
func (ws *WebSocket) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.Warnf("websocket upgrade failed: %v", err)
			return
		}
		select {
		case ws.register <- conn:
		case <-ws.done:
			conn.Close()
			return
		}

		// Drain client messages until the connection closes, then
		// unregister.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					break
				}
			}
			select {
			case ws.unregister <- conn:
			case <-ws.done:
			}
		}()
	}
}

// run handles client registration/unregistration and frame broadcasting.
func (ws *WebSocket) run() {
	defer ws.wg.Done()
	for {
		select {
		case <-ws.done:
			return

		case conn := <-ws.register:
			if conn == nil {
				continue
			}
			ws.mu.Lock()
			ws.clients[conn] = true
			ws.mu.Unlock()

		case conn := <-ws.unregister:
			if conn == nil {
				continue
			}
			ws.mu.Lock()
			if _, ok := ws.clients[conn]; ok {
				delete(ws.clients, conn)
				conn.Close()
			}
			ws.mu.Unlock()

		case frame := <-ws.broadcast:
			ws.mu.RLock()
			conns := make([]*websocket.Conn, 0, len(ws.clients))
			for conn := range ws.clients {
				conns = append(conns, conn)
			}
			ws.mu.RUnlock()

			var toRemove []*websocket.Conn
			for _, conn := range conns {
				conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := conn.WriteJSON(frame); err != nil {
					toRemove = append(toRemove, conn)
					conn.Close()
				}
			}

			if len(toRemove) > 0 {
				ws.mu.Lock()
				for _, conn := range toRemove {
					delete(ws.clients, conn)
				}
				ws.mu.Unlock()
			}
		}
	}
}

// Close shuts down the hub and closes all client connections.
func (ws *WebSocket) Close() error {
	close(ws.done)

	ws.mu.Lock()
	for conn := range ws.clients {
		conn.Close()
		delete(ws.clients, conn)
	}
	ws.mu.Unlock()

	ws.wg.Wait()
	return nil
}
