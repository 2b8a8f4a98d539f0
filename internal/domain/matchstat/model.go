package matchstat

// DefaultMinutes is credited for a roster entry with no recorded minutes.
const DefaultMinutes = 90

// Row is the per-roster-entry stat record. At most one row exists per roster entry.
type Row struct {
	RosterEntryID string
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
	OwnGoals      int
	MinutesPlayed *int
	Rating        *float64
}

// Line is a Row after defaults are applied.
type Line struct {
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
	OwnGoals    int
	Minutes     int
	Rating      *float64
	Recorded    bool
}

// Resolve applies the read-time default policy. A missing row counts as a full match
// with no recorded events; zero or null minutes count as DefaultMinutes; a null rating
// stays unrated.
func Resolve(row *Row) Line {
	if row == nil {
		return Line{Minutes: DefaultMinutes}
	}

	minutes := DefaultMinutes
	if row.MinutesPlayed != nil && *row.MinutesPlayed > 0 {
		minutes = *row.MinutesPlayed
	}

	var rating *float64
	if row.Rating != nil {
		value := *row.Rating
		rating = &value
	}

	return Line{
		Goals:       row.Goals,
		Assists:     row.Assists,
		YellowCards: row.YellowCards,
		RedCards:    row.RedCards,
		OwnGoals:    row.OwnGoals,
		Minutes:     minutes,
		Rating:      rating,
		Recorded:    true,
	}
}

// ValidRating reports whether r is inside the 0..10 scale.
func ValidRating(r float64) bool {
	return r >= 0 && r <= 10
}
