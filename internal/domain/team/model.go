package team

import (
	"fmt"
	"strings"
)

// Team is a persistent team identity that can enter many tournaments.
// Per-match sides are separate records (see match.Team).
type Team struct {
	ID        string
	Name      string
	CaptainID string
	PlayerIDs []string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// NormalizeName is the comparison key used to match free-text match sides to teams.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IndexByName maps normalized names to team IDs. The first team wins on duplicate names.
func IndexByName(teams []Team) map[string]string {
	out := make(map[string]string, len(teams))
	for _, t := range teams {
		key := NormalizeName(t.Name)
		if key == "" {
			continue
		}
		if _, exists := out[key]; exists {
			continue
		}
		out[key] = t.ID
	}
	return out
}
