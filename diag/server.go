package diag

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Handler receives each report pushed by a connected checker.
type Handler func(Report)

// Server is the WebSocket endpoint external checkers push their diagnostics
// to. Malformed payloads are dropped with a log line; a bad checker never
// takes the editor down.
type Server struct {
	upgrader websocket.Upgrader

	mu       sync.Mutex
	handlers []Handler
}

// NewServer creates a diagnostics bridge.
func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Subscribe registers fn for every incoming report.
func (s *Server) Subscribe(fn Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, fn)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("diag: websocket upgrade: %v", err)
		return
	}
	go s.readLoop(conn)
}

func (s *Server) readLoop(conn *websocket.Conn) {
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var report Report
		if err := json.Unmarshal(data, &report); err != nil {
			log.Printf("diag: bad report payload: %v", err)
			continue
		}
		s.dispatch(report)
	}
}

func (s *Server) dispatch(report Report) {
	s.mu.Lock()
	handlers := make([]Handler, len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()
	for _, fn := range handlers {
		fn(report)
	}
}
