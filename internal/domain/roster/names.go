package roster

import (
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrUnknownName   = crerr.New("name is not on the match roster")
	ErrAmbiguousName = crerr.New("name is shared by several players on the match roster")
	ErrUnknownPlayer = crerr.New("player is not on the match roster")
)

// NameIndex resolves display names to player ids within one match roster.
// A name carried by more than one player resolves to nothing.
type NameIndex struct {
	byName    map[string]string
	ambiguous map[string]struct{}
	entries   map[string]string
}

func NewNameIndex(members []Member) *NameIndex {
	idx := &NameIndex{
		byName:    make(map[string]string, len(members)),
		ambiguous: make(map[string]struct{}),
		entries:   make(map[string]string, len(members)),
	}
	for _, m := range members {
		playerID := m.Entry.PlayerID
		if playerID == "" {
			continue
		}
		idx.entries[playerID] = m.Entry.ID

		name := strings.TrimSpace(m.Player.DisplayName)
		if name == "" {
			continue
		}
		if _, dup := idx.ambiguous[name]; dup {
			continue
		}
		if existing, ok := idx.byName[name]; ok && existing != playerID {
			delete(idx.byName, name)
			idx.ambiguous[name] = struct{}{}
			continue
		}
		idx.byName[name] = playerID
	}
	return idx
}

// Resolve maps an exact display name to a player id.
func (x *NameIndex) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if _, dup := x.ambiguous[name]; dup {
		return "", crerr.Wrapf(ErrAmbiguousName, "%q", name)
	}
	playerID, ok := x.byName[name]
	if !ok {
		return "", crerr.Wrapf(ErrUnknownName, "%q", name)
	}
	return playerID, nil
}

// ResolveRef prefers an explicit player id and falls back to the name.
func (x *NameIndex) ResolveRef(playerID, name string) (string, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID != "" {
		if _, ok := x.entries[playerID]; !ok {
			return "", crerr.Wrapf(ErrUnknownPlayer, "%q", playerID)
		}
		return playerID, nil
	}
	return x.Resolve(name)
}

// EntryID returns the roster entry id of a player on this match.
func (x *NameIndex) EntryID(playerID string) (string, bool) {
	entryID, ok := x.entries[playerID]
	return entryID, ok
}

func (x *NameIndex) Ambiguous() []string {
	out := make([]string, 0, len(x.ambiguous))
	for name := range x.ambiguous {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
