package lobby

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

type Player struct {
	Conn     net.Conn
	ID       string
	Name     string
	LastSeen time.Time
}

type Server struct {
	// Players silent for StaleAfter are dropped; the check runs every
	// CleanupPeriod. Set both before Start.
	StaleAfter    time.Duration
	CleanupPeriod time.Duration

	listener    net.Listener
	players     map[string]*Player
	playerConns map[net.Conn]string
	world       *world.World
	mutex       sync.Mutex
	running     atomic.Bool
	done        chan struct{}
}

// NewServer returns a stopped server holding an empty rows x cols world.
func NewServer(rows, cols int) *Server {
	return &Server{
		StaleAfter:    staleAfter,
		CleanupPeriod: cleanupPeriod,
		world:         world.New(rows, cols),
	}
}

// Start listens on addr ("host:port", port 0 picks a free one) and serves
// players until Stop.
func (s *Server) Start(addr string) error {
	if s.running.Load() {
		return ErrRunning
	}
	s.players = make(map[string]*Player)
	s.playerConns = make(map[net.Conn]string)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = ln
	s.done = make(chan struct{})
	s.running.Store(true)
	log.Printf("[Lobby] Listening on %s", ln.Addr())

	go s.cleanupRoutine(s.done)
	go func() {
		for s.running.Load() {
			conn, err := ln.Accept()
			if err != nil {
				if !s.running.Load() {
					break
				}
				continue
			}
			go s.handleClient(conn)
		}
	}()
	return nil
}

// Addr is the address the server listens on, nil when stopped.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.running.Load() {
		return
	}
	s.running.Store(false)
	close(s.done)
	if s.listener != nil {
		s.listener.Close()
	}

	for conn := range s.playerConns {
		conn.Close()
	}
	s.players = make(map[string]*Player)
	s.playerConns = make(map[net.Conn]string)
	log.Printf("[Lobby] Stopped")
}

// View runs fn with the authoritative world locked.
func (s *Server) View(fn func(w *world.World)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	fn(s.world)
}

// Replace runs fn on the locked world, recomputes it and resends the full
// state to every player. Loading a save into a running game goes through
// here.
func (s *Server) Replace(fn func(w *world.World) error) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if err := fn(s.world); err != nil {
		return err
	}
	s.world.RecomputeAll()
	for conn := range s.playerConns {
		s.sendFullState(conn)
	}
	return nil
}

func (s *Server) cleanupRoutine(done <-chan struct{}) {
	ticker := time.NewTicker(s.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}
		s.mutex.Lock()
		now := time.Now()
		for _, player := range s.players {
			if now.Sub(player.LastSeen) > s.StaleAfter {
				log.Printf("[Lobby] Dropping silent player %s", player.Name)
				player.Conn.Close()
			}
		}
		s.mutex.Unlock()
	}
}

func (s *Server) handleClient(conn net.Conn) {
	defer func() {
		s.mutex.Lock()
		if pID, exists := s.playerConns[conn]; exists {
			if player, pExists := s.players[pID]; pExists {
				log.Printf("[Lobby] %s left", player.Name)
				s.broadcastToOthers(line(msgDisconnect, pID), conn)
			}
			delete(s.players, pID)
			delete(s.playerConns, conn)
		}
		s.mutex.Unlock()
		conn.Close()
	}()

	reader := bufio.NewReader(conn)
	leftover := ""
	for s.running.Load() {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		raw, err := reader.ReadString('\n')
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				leftover += raw
				continue
			}
			return
		}
		msg := strings.TrimSpace(leftover + raw)
		leftover = ""
		if msg == "" {
			continue
		}
		s.handleMessage(msg, conn)
	}
}

func (s *Server) handleMessage(msg string, conn net.Conn) {
	parts := strings.Split(msg, ":")
	msgType := parts[0]

	s.mutex.Lock()
	defer s.mutex.Unlock()

	playerID, joined := s.playerConns[conn]
	if joined {
		if player, exists := s.players[playerID]; exists {
			player.LastSeen = time.Now()
		}
	}

	switch msgType {
	case msgPing:
		return
	case msgJoin:
		if len(parts) != 3 || joined {
			return
		}
		playerID, playerName := parts[1], cleanName(parts[2])
		s.players[playerID] = &Player{Conn: conn, ID: playerID, Name: playerName, LastSeen: time.Now()}
		s.playerConns[conn] = playerID
		log.Printf("[Lobby] %s joined", playerName)
		s.sendFullState(conn)
		return
	}

	// Everything else acts as the player bound to this connection, whatever
	// id the message carries.
	if !joined {
		return
	}
	switch msgType {
	case msgCursor:
		if len(parts) != 4 {
			return
		}
		if player, exists := s.players[playerID]; exists {
			s.broadcastToOthers(line(msgCursor, player.ID, player.Name, parts[2], parts[3]), conn)
		}
	case msgTile:
		if len(parts) == 5 {
			s.placeTile(playerID, parts[2:])
		}
	case msgBuilding:
		if len(parts) == 5 {
			s.placeBuilding(playerID, parts[2:])
		}
	case msgDelete:
		if len(parts) == 4 {
			s.deleteAt(playerID, parts[2:])
		}
	}
}

func (s *Server) placeTile(playerID string, fields []string) {
	v, ok := atois(fields[:2])
	if !ok {
		return
	}
	kind, ok := tile.ParseKind(fields[2])
	if !ok {
		s.broadcastToPlayer(playerID, "Unknown tile type!")
		return
	}
	if !s.world.Place(v[0], v[1], kind) {
		s.broadcastToPlayer(playerID, fmt.Sprintf("%s does not fit here!", kind))
		return
	}
	s.broadcastToAll(line(msgTile, playerID, itoa(v[0]), itoa(v[1]), itoa(int(kind))))
}

func (s *Server) placeBuilding(playerID string, fields []string) {
	v, ok := atois(fields)
	if !ok || v[2] <= 0 || v[2] >= int(world.BuildingKindCount) {
		s.broadcastToPlayer(playerID, "Unknown building type!")
		return
	}
	b := world.NewBuilding(world.BuildingKind(v[2]), v[0], v[1])
	if !s.world.AddBuilding(b) {
		s.broadcastToPlayer(playerID, fmt.Sprintf("%s does not fit here!", b.Kind))
		return
	}
	s.broadcastToAll(line(msgBuilding, playerID, itoa(b.X), itoa(b.Y), itoa(int(b.Kind)), b.ID))
}

func (s *Server) deleteAt(playerID string, fields []string) {
	v, ok := atois(fields)
	if !ok {
		return
	}
	b, found := s.world.BuildingAt(v[0], v[1])
	if !found {
		s.broadcastToPlayer(playerID, "No building here.")
		return
	}
	s.world.RemoveBuildingByID(b.ID)
	s.broadcastToAll(line(msgDelete, playerID, b.ID))
}

func (s *Server) sendFullState(conn net.Conn) {
	var sb strings.Builder
	sb.WriteString(line(msgSize, itoa(s.world.Rows()), itoa(s.world.Cols())))
	s.world.Anchors(func(x, y int, c tile.Cell) {
		sb.WriteString(line(msgRawTile, itoa(x), itoa(y), itoa(int(c.Kind)), strconv.Itoa(c.Rotation)))
	})
	for _, b := range s.world.Buildings() {
		sb.WriteString(line(msgRawHouse, itoa(b.X), itoa(b.Y), itoa(int(b.Kind)), b.ID))
	}
	sb.WriteString(line(msgSynced))
	conn.Write([]byte(sb.String()))
}

func (s *Server) broadcastToAll(msg string) {
	for conn := range s.playerConns {
		conn.Write([]byte(msg))
	}
}

func (s *Server) broadcastToOthers(msg string, exclude net.Conn) {
	for conn := range s.playerConns {
		if conn != exclude {
			conn.Write([]byte(msg))
		}
	}
}

func (s *Server) broadcastToPlayer(playerID string, text string) {
	if player, exists := s.players[playerID]; exists {
		player.Conn.Write([]byte(line(msgStatus, text)))
	}
}
