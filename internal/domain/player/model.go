package player

import (
	"fmt"
	"strings"
)

// Player is a registered footballer. Position is free text ("CB", "Midfielder", ...).
type Player struct {
	ID           string
	DisplayName  string
	Position     string
	JerseyNumber int
	PhotoURL     string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.DisplayName) == "" {
		return fmt.Errorf("player display name is required")
	}
	if p.JerseyNumber < 0 {
		return fmt.Errorf("player jersey number must be >= 0")
	}

	return nil
}
