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

	"github.com/google/uuid"

	"Tiletown/internal/pathgraph"
	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

type PlayerCursor struct {
	X, Y float32
	Name string
}

// Client keeps a replica of the server's world and its path graph.
type Client struct {
	conn         net.Conn
	writeMu      sync.Mutex
	mutex        sync.Mutex
	connected    atomic.Bool
	clientID     string
	playerName   string
	otherCursors map[string]PlayerCursor
	world        *world.World
	graph        *pathgraph.Graph
	syncing      bool
	synced       bool
	status       string
}

func NewClient() *Client {
	return &Client{
		world:        world.New(0, 0),
		graph:        pathgraph.New(),
		otherCursors: make(map[string]PlayerCursor),
	}
}

// Connect dials addr and joins as playerName. The world replica fills in
// once the server's state sync arrives.
func (c *Client) Connect(addr, playerName string) error {
	c.clientID = uuid.NewString()
	c.playerName = cleanName(playerName)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	c.mutex.Lock()
	c.conn = conn
	c.otherCursors = make(map[string]PlayerCursor)
	c.synced = false
	c.status = ""
	c.mutex.Unlock()
	c.connected.Store(true)

	if err := c.send(line(msgJoin, c.clientID, c.playerName)); err != nil {
		return err
	}
	log.Printf("[Client] Joined %s as %s", addr, c.playerName)

	go c.listen(conn)
	go func() {
		for c.connected.Load() {
			if err := c.send(line(msgPing)); err != nil {
				return
			}
			time.Sleep(pingInterval)
		}
	}()
	return nil
}

func (c *Client) Disconnect() {
	c.connected.Store(false)
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.conn != nil {
		c.conn.Close()
	}
}

func (c *Client) Connected() bool {
	return c.connected.Load()
}

func (c *Client) ID() string {
	return c.clientID
}

// Synced reports whether the initial state sync has completed.
func (c *Client) Synced() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.synced
}

// Status returns the last STATUS text the server sent.
func (c *Client) Status() string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.status
}

// View runs fn with the replica locked. fn must not keep references past
// its return.
func (c *Client) View(fn func(w *world.World, g *pathgraph.Graph, cursors map[string]PlayerCursor)) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	fn(c.world, c.graph, c.otherCursors)
}

func (c *Client) send(msg string) error {
	if !c.connected.Load() {
		return ErrNotConnected
	}
	c.writeMu.Lock()
	_, err := c.conn.Write([]byte(msg))
	c.writeMu.Unlock()
	if err != nil {
		c.Disconnect()
		return fmt.Errorf("lobby: send: %w", err)
	}
	return nil
}

func (c *Client) SendCursor(x, y float32) error {
	return c.send(line(msgCursor, c.clientID,
		strconv.FormatFloat(float64(x), 'f', 2, 32),
		strconv.FormatFloat(float64(y), 'f', 2, 32)))
}

func (c *Client) SendTile(x, y int, kind tile.Kind) error {
	return c.send(line(msgTile, c.clientID, itoa(x), itoa(y), itoa(int(kind))))
}

func (c *Client) SendBuilding(x, y int, kind world.BuildingKind) error {
	return c.send(line(msgBuilding, c.clientID, itoa(x), itoa(y), itoa(int(kind))))
}

func (c *Client) SendDelete(x, y int) error {
	return c.send(line(msgDelete, c.clientID, itoa(x), itoa(y)))
}

func (c *Client) listen(conn net.Conn) {
	defer c.connected.Store(false)

	reader := bufio.NewReader(conn)
	leftover := ""
	for c.connected.Load() {
		conn.SetReadDeadline(time.Now().Add(clientDeadline))
		raw, err := reader.ReadString('\n')
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				leftover += raw
				continue
			}
			if c.connected.Load() {
				log.Printf("[Client] Connection lost: %v", err)
			}
			return
		}
		msg := strings.TrimSpace(leftover + raw)
		leftover = ""
		if msg == "" {
			continue
		}

		c.mutex.Lock()
		c.handle(strings.Split(msg, ":"))
		c.mutex.Unlock()
	}
}

// handle applies one server message to the replica. Called with c.mutex
// held.
func (c *Client) handle(parts []string) {
	switch parts[0] {
	case msgSize:
		v, ok := atois(parts[1:])
		if !ok || len(v) != 2 {
			return
		}
		c.world = world.New(v[0], v[1])
		c.syncing = true
		c.synced = false
	case msgRawTile:
		v, ok := atois(parts[1:])
		if !ok || len(v) != 4 {
			return
		}
		c.world.SetRaw(v[0], v[1], tile.Kind(v[2]), v[3])
	case msgRawHouse:
		if len(parts) != 5 {
			return
		}
		v, ok := atois(parts[1:4])
		if !ok {
			return
		}
		c.world.RestoreBuilding(world.BuildingKind(v[2]), v[0], v[1], parts[4])
	case msgSynced:
		c.world.RecomputeAll()
		c.syncing = false
		c.synced = true
		c.graph.Build(c.world)
	case msgTile:
		v, ok := atois(parts[2:])
		if !ok || len(v) != 3 {
			return
		}
		c.world.Place(v[0], v[1], tile.Kind(v[2]))
		c.rebuild()
	case msgBuilding:
		if len(parts) != 6 {
			return
		}
		v, ok := atois(parts[2:5])
		if !ok {
			return
		}
		b := world.NewBuilding(world.BuildingKind(v[2]), v[0], v[1])
		b.ID = parts[5]
		c.world.AddBuilding(b)
	case msgDelete:
		if len(parts) == 3 {
			c.world.RemoveBuildingByID(parts[2])
		}
	case msgCursor:
		if len(parts) != 5 {
			return
		}
		x, errX := strconv.ParseFloat(parts[3], 32)
		y, errY := strconv.ParseFloat(parts[4], 32)
		if errX == nil && errY == nil {
			c.otherCursors[parts[1]] = PlayerCursor{X: float32(x), Y: float32(y), Name: parts[2]}
		}
	case msgStatus:
		c.status = strings.Join(parts[1:], ":")
	case msgDisconnect:
		if len(parts) == 2 {
			delete(c.otherCursors, parts[1])
		}
	}
}

func (c *Client) rebuild() {
	if c.syncing {
		return
	}
	c.graph.Build(c.world)
}
