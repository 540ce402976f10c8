package model

// Mood levels form an ordinal 1..5 scale.
const (
	MoodTerrible = 1
	MoodBad      = 2
	MoodNeutral  = 3
	MoodGood     = 4
	MoodAmazing  = 5
)

var moodLabels = map[int]string{
	MoodTerrible: "Terrible",
	MoodBad:      "Bad",
	MoodNeutral:  "Neutral",
	MoodGood:     "Good",
	MoodAmazing:  "Amazing",
}

// MoodLabel returns the display label for a mood level, or "Unknown" for
// values outside the scale (which save-time validation should prevent).
func MoodLabel(level int) string {
	label, ok := moodLabels[level]
	if !ok {
		return "Unknown"
	}
	return label
}

// ValidMood reports whether level is on the 1..5 scale.
func ValidMood(level int) bool {
	return level >= MoodTerrible && level <= MoodAmazing
}
