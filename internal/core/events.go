package core

// EventKind identifies a notable moment in a game session.
type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventPowerUpCollected
	EventHeartAwarded
	EventGameStart
	EventGameOver
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "paddle-hit"
	case EventPowerUpCollected:
		return "power-up"
	case EventHeartAwarded:
		return "heart"
	case EventGameStart:
		return "game-start"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is emitted by a session step. Consumers (audio, logging) treat
// events as fire-and-forget notifications.
type Event struct {
	Kind  EventKind
	Score int // Score at the time of the event
}
