package model

// Activity describes one tag from the closed activity catalog. The catalog
// is application configuration, never persisted; entries reference tags by id
// and readers must tolerate ids that are no longer (or never were) in the
// catalog by rendering them without metadata.
type Activity struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// Activities is the fixed catalog, in display order.
var Activities = []Activity{
	{ID: "work", Icon: "Briefcase", Label: "Work"},
	{ID: "relax", Icon: "Coffee", Label: "Relax"},
	{ID: "exercise", Icon: "Dumbbell", Label: "Exercise"},
	{ID: "gaming", Icon: "Gamepad2", Label: "Gaming"},
	{ID: "reading", Icon: "BookOpen", Label: "Reading"},
	{ID: "music", Icon: "Music", Label: "Music"},
	{ID: "sleep", Icon: "Moon", Label: "Sleep"},
	{ID: "outdoors", Icon: "Sun", Label: "Outdoors"},
	{ID: "social", Icon: "Users", Label: "Social"},
	{ID: "food", Icon: "Utensils", Label: "Good Meal"},
	{ID: "shopping", Icon: "ShoppingCart", Label: "Shopping"},
	{ID: "movies", Icon: "Tv", Label: "Movies"},
}

// ActivityByID looks up a catalog tag. The second return is false for
// unknown ids; callers render those with no label.
func ActivityByID(id string) (Activity, bool) {
	for _, a := range Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}
