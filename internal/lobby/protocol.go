// Package lobby shares one world between players over a line-based TCP
// protocol. The server owns the authoritative world; every client keeps a
// replica and replays the edits the server accepts.
//
// Messages are colon-separated, one per line:
//
//	client -> server
//	  JOIN:id:name          register
//	  PING                  keep-alive
//	  C:id:x:y              cursor, in cells
//
//	The acting player is the one bound to the connection by JOIN; the id
//	field of later messages is ignored.
//	  T:id:x:y:kind         place a tile; kind is a number or a name, 0 clears
//	  B:id:x:y:kind         place a building
//	  D:id:x:y              remove the building covering x,y
//
//	server -> client
//	  SIZE:rows:cols        start of a full state sync
//	  S:x:y:kind:rotation   raw tile record (sync only)
//	  SB:x:y:kind:bid       raw building record (sync only)
//	  STATE_SYNCED          end of sync
//	  T:id:x:y:kind         accepted tile edit
//	  B:id:x:y:kind:bid     accepted building; replicas keep the server's bid
//	  D:id:bid              building bid was removed
//	  C:id:name:x:y         another player's cursor
//	  STATUS:text           message for this player
//	  DISCONNECT:id         a player left
package lobby

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPort = 7777

	pingInterval   = 5 * time.Second
	staleAfter     = 15 * time.Second
	cleanupPeriod  = 10 * time.Second
	readDeadline   = 5 * time.Second
	clientDeadline = 1 * time.Second
)

var (
	ErrNotConnected = errors.New("lobby: not connected")
	ErrRunning      = errors.New("lobby: server already running")
)

const (
	msgJoin       = "JOIN"
	msgPing       = "PING"
	msgCursor     = "C"
	msgTile       = "T"
	msgBuilding   = "B"
	msgDelete     = "D"
	msgSize       = "SIZE"
	msgRawTile    = "S"
	msgRawHouse   = "SB"
	msgSynced     = "STATE_SYNCED"
	msgStatus     = "STATUS"
	msgDisconnect = "DISCONNECT"
)

func line(fields ...string) string {
	return strings.Join(fields, ":") + "\n"
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// atois parses every field as an int.
func atois(fields []string) ([]int, bool) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// cleanName keeps separators out of a player name.
func cleanName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, ":", ""))
	if name == "" {
		return "Player"
	}
	return name
}
