// Package stream provides pull-based, single-pass player stream
// implementations consumed by the online ranking engine.
package stream

import (
	"context"

	"github.com/okian/decile/internal/domain/model"
)

// SliceStream walks a fixed roster once, front to back. The cursor only
// moves forward; there is no peek, seek, or reset.
type SliceStream struct {
	players []model.Player
	pos     int
}

// NewSliceStream creates a stream over players. The slice is not copied;
// the caller must not mutate it while the stream is being consumed.
func NewSliceStream(players []model.Player) *SliceStream {
	return &SliceStream{players: players}
}

// Next returns the next player and advances the cursor.
// Returns ErrExhausted once every player has been pulled.
func (s *SliceStream) Next(_ context.Context) (model.Player, error) {
	if s.pos >= len(s.players) {
		return model.Player{}, ErrExhausted
	}

	p := s.players[s.pos]
	s.pos++
	return p, nil
}

// Remaining reports how many players have not been pulled yet.
func (s *SliceStream) Remaining() int {
	return len(s.players) - s.pos
}
