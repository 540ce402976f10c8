package model

// Goal is a user-defined recurring habit tracked via daily completion.
type Goal struct {
	ID   string `db:"id" json:"id"`
	Text string `db:"text" json:"text"`
}

// DefaultGoals are seeded once into a store that has never held goals.
// The ids are fixed so that backups taken on different devices line up.
func DefaultGoals() []Goal {
	return []Goal{
		{ID: "g1", Text: "Drink water"},
		{ID: "g2", Text: "Read 10 pages"},
		{ID: "g3", Text: "Meditate"},
	}
}
