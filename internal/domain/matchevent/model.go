package matchevent

import (
	"fmt"
	"strings"
	"time"
)

const (
	TypeGoal       = "goal"
	TypeOwnGoal    = "own_goal"
	TypeCard       = "card"
	TypeSave       = "save"
	TypeCleanSheet = "clean_sheet"
)

const (
	CardYellow = "yellow"
	CardRed    = "red"
)

// Event is one append-only match log entry.
//
// Player references are stored as ids once resolved. The display-name fields are kept as the
// ingestion format and for rows written before ids were recorded.
type Event struct {
	ID        string
	MatchID   string
	Type      string
	Scorer    string
	ScorerID  string
	Assist    string
	AssistID  string
	Player    string
	PlayerID  string
	CardType  string
	Minute    *int
	CreatedAt time.Time
}

func NormalizeType(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func NormalizeCardType(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Subject returns the reference of the player the event is about.
func (e Event) Subject() (playerID, name string) {
	switch NormalizeType(e.Type) {
	case TypeGoal, TypeOwnGoal:
		return e.ScorerID, e.Scorer
	default:
		return e.PlayerID, e.Player
	}
}

// HasAssist reports whether a goal carries an assist reference.
func (e Event) HasAssist() bool {
	return strings.TrimSpace(e.AssistID) != "" || strings.TrimSpace(e.Assist) != ""
}

// IsResolved reports whether every player reference on the event carries an id.
func (e Event) IsResolved() bool {
	id, _ := e.Subject()
	if strings.TrimSpace(id) == "" {
		return false
	}
	if NormalizeType(e.Type) == TypeGoal && strings.TrimSpace(e.Assist) != "" && strings.TrimSpace(e.AssistID) == "" {
		return false
	}
	return true
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.MatchID) == "" {
		return fmt.Errorf("event match id is required")
	}

	id, name := e.Subject()
	hasSubject := strings.TrimSpace(id) != "" || strings.TrimSpace(name) != ""
	switch NormalizeType(e.Type) {
	case TypeGoal, TypeOwnGoal:
		if !hasSubject {
			return fmt.Errorf("%s event requires a scorer", e.Type)
		}
	case TypeCard:
		if !hasSubject {
			return fmt.Errorf("card event requires a player")
		}
		switch NormalizeCardType(e.CardType) {
		case CardYellow, CardRed:
		default:
			return fmt.Errorf("invalid card type: %s", e.CardType)
		}
	case TypeSave, TypeCleanSheet:
		if !hasSubject {
			return fmt.Errorf("%s event requires a player", e.Type)
		}
	default:
		return fmt.Errorf("invalid event type: %s", e.Type)
	}
	if e.Minute != nil && *e.Minute < 0 {
		return fmt.Errorf("event minute must be >= 0")
	}

	return nil
}
