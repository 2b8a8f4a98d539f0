package roster

import "github.com/devShamim/match-stats-sub000/internal/domain/player"

// Entry links a player to one match and to that match's side record.
type Entry struct {
	ID       string
	MatchID  string
	PlayerID string
	TeamID   string
	Position string
}

// Member is an Entry joined to its player and the name of its match side.
type Member struct {
	Entry    Entry
	Player   player.Player
	TeamName string
}

// EffectivePosition prefers the player's registered position and falls back to the
// position assigned for the match.
func (m Member) EffectivePosition() string {
	if m.Player.Position != "" {
		return m.Player.Position
	}
	return m.Entry.Position
}
