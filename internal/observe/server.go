package observe

// #region imports
import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// #endregion

// #region protocol

// Version is the observer protocol version checked in the handshake.
const Version = 1

// SubscribeMsg is the handshake (and keepalive) message a client sends.
type SubscribeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion int    `json:"protocol_version"`
}

// BootstrapFunc supplies the current snapshot payload for GET /bootstrap.
type BootstrapFunc func() any

// #endregion protocol

// #region server
// Server exposes a read-only loopback feed of the running simulation:
// GET /bootstrap for the current snapshot and /ws for per-turn broadcasts.
// Slow clients are dropped rather than backing up the turn loop.
type Server struct {
	addr      string
	bootstrap BootstrapFunc
	upgrader  websocket.Upgrader

	httpSrv *http.Server
	boundTo string
	nextID  atomic.Uint64

	mu      sync.Mutex
	clients map[uint64]chan []byte
}

// NewServer creates an observer server bound to addr (loopback only).
func NewServer(addr string, bootstrap BootstrapFunc) *Server {
	return &Server{
		addr:      addr,
		bootstrap: bootstrap,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[uint64]chan []byte),
	}
}

// Start begins serving in the background. Returns after the listener binds
// so callers see bind failures synchronously.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("observer listen %s: %w", s.addr, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/bootstrap", s.handleBootstrap)
	mux.HandleFunc("/ws", s.handleWS)
	s.httpSrv = &http.Server{Handler: mux}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("[OBSERVE] serve: %v", err)
		}
	}()
	s.boundTo = ln.Addr().String()
	log.Printf("[OBSERVE] listening on %s", s.boundTo)
	return nil
}

// Addr returns the bound listen address, useful when addr was ":0".
func (s *Server) Addr() string {
	return s.boundTo
}

// Close stops the server and disconnects all clients.
func (s *Server) Close(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	s.mu.Lock()
	for id, ch := range s.clients {
		close(ch)
		delete(s.clients, id)
	}
	s.mu.Unlock()
	return s.httpSrv.Shutdown(ctx)
}

// Broadcast fans one turn record out to every connected client. A client
// whose buffer is full is dropped.
func (s *Server) Broadcast(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[OBSERVE] marshal broadcast: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.clients {
		select {
		case ch <- b:
		default:
			log.Printf("[OBSERVE] dropping slow client %d", id)
			close(ch)
			delete(s.clients, id)
		}
	}
}

// #endregion server

// #region handlers

func (s *Server) handleBootstrap(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rw.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !isLoopbackRemote(r.RemoteAddr) {
		http.Error(rw, "forbidden", http.StatusForbidden)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(rw).Encode(s.bootstrap())
}

func (s *Server) handleWS(rw http.ResponseWriter, r *http.Request) {
	if !isLoopbackRemote(r.RemoteAddr) {
		http.Error(rw, "forbidden", http.StatusForbidden)
		return
	}

	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// Handshake: must send SUBSCRIBE first.
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return
	}
	var sub SubscribeMsg
	if err := json.Unmarshal(msg, &sub); err != nil || sub.Type != "SUBSCRIBE" || sub.ProtocolVersion != Version {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "expected SUBSCRIBE"),
			time.Now().Add(time.Second))
		return
	}

	id := s.nextID.Add(1)
	out := make(chan []byte, 16)
	s.mu.Lock()
	s.clients[id] = out
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		if ch, ok := s.clients[id]; ok {
			close(ch)
			delete(s.clients, id)
		}
		s.mu.Unlock()
	}()

	// Writer goroutine.
	writeErr := make(chan error, 1)
	go func() {
		for b := range out {
			_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				writeErr <- err
				return
			}
		}
		writeErr <- nil
	}()

	// Reader loop: tolerate keepalive SUBSCRIBEs, exit on error or close.
	for {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
		time.Now().Add(time.Second))
	select {
	case <-writeErr:
	case <-time.After(500 * time.Millisecond):
	}
}

// #endregion handlers

// #region loopback

func isLoopbackRemote(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// #endregion loopback
