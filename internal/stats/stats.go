// Package stats computes the derived views shown on the dashboard and the
// statistics screen. Every function is pure: it takes an in-memory snapshot
// of entries and goals and returns plain values, with no I/O and no mutation
// of the snapshot.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/moodtrack/moodtrack/internal/model"
)

const dayLayout = "2006-01-02"

// Day truncates a timestamp to its calendar day (YYYY-MM-DD). Every date
// comparison in this package goes through it: streaks, daily completion and
// chart bucketing must never diverge on how a day is derived.
func Day(t time.Time) string {
	return t.Format(dayLayout)
}

// daysBetween returns the whole calendar days from day b to day a.
func daysBetween(a, b string) int {
	ta, err := time.Parse(dayLayout, a)
	if err != nil {
		return 0
	}
	tb, err := time.Parse(dayLayout, b)
	if err != nil {
		return 0
	}
	return int(ta.Sub(tb).Hours() / 24)
}

// CompletedGoalsOn returns the union of completed goal ids across all
// entries on the given calendar day, excluding at most one entry by id.
// The exclusion supports the entry editor, which needs to know what was
// completed outside the entry being edited.
func CompletedGoalsOn(entries []model.JournalEntry, day string, excludeEntryID string) map[string]bool {
	completed := make(map[string]bool)
	for _, e := range entries {
		if Day(e.Date) != day || e.ID == excludeEntryID {
			continue
		}
		for _, id := range e.CompletedGoalIDs {
			completed[id] = true
		}
	}
	return completed
}

// DailyProgress returns the percentage of goals completed on the given day,
// rounded to the nearest integer. No goals means 0, never a division by zero.
func DailyProgress(entries []model.JournalEntry, goals []model.Goal, day string) int {
	if len(goals) == 0 {
		return 0
	}
	completed := CompletedGoalsOn(entries, day, "")
	// Only count completions that resolve to a current goal; dangling
	// references to deleted goals do not inflate progress.
	count := 0
	for _, g := range goals {
		if completed[g.ID] {
			count++
		}
	}
	return int(math.Round(100 * float64(count) / float64(len(goals))))
}

// TrendPoint is one charted mood value with its weekday label.
type TrendPoint struct {
	Label string
	Mood  int
}

// MoodTrend projects the last 7 entries, ascending by date, to weekday/mood
// pairs for the mood chart.
func MoodTrend(entries []model.JournalEntry) []TrendPoint {
	sorted := make([]model.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	if len(sorted) > 7 {
		sorted = sorted[len(sorted)-7:]
	}

	points := make([]TrendPoint, 0, len(sorted))
	for _, e := range sorted {
		points = append(points, TrendPoint{
			Label: e.Date.Weekday().String()[:3],
			Mood:  e.Mood,
		})
	}
	return points
}

// ActivityCount is an activity tag with its usage count. Tags unknown to the
// catalog keep their id but carry no label or icon.
type ActivityCount struct {
	Activity model.Activity
	Count    int
}

// TopActivities counts every activity tag across all entries and returns the
// three most frequent, descending by count. Ties are broken by catalog
// order; unknown tags rank after catalog tags in first-seen order.
func TopActivities(entries []model.JournalEntry) []ActivityCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, e := range entries {
		for _, id := range e.Activities {
			if counts[id] == 0 {
				firstSeen[id] = order
				order++
			}
			counts[id]++
		}
	}

	// Rank for tie-breaking: catalog index for known tags, then first-seen
	// order for the rest.
	rank := func(id string) int {
		for i, a := range model.Activities {
			if a.ID == id {
				return i
			}
		}
		return len(model.Activities) + firstSeen[id]
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return rank(ids[i]) < rank(ids[j])
	})

	if len(ids) > 3 {
		ids = ids[:3]
	}

	top := make([]ActivityCount, 0, len(ids))
	for _, id := range ids {
		activity, ok := model.ActivityByID(id)
		if !ok {
			activity = model.Activity{ID: id}
		}
		top = append(top, ActivityCount{Activity: activity, Count: counts[id]})
	}
	return top
}

// GoalCount is a goal with the number of entries that completed it.
type GoalCount struct {
	Goal  model.Goal
	Count int
}

// GoalAchievements counts, per goal, the distinct entries whose completed
// set contains it (entries, not days: two same-day entries count twice).
// Results are sorted descending by count, stable on the goal list order.
func GoalAchievements(entries []model.JournalEntry, goals []model.Goal) []GoalCount {
	achievements := make([]GoalCount, 0, len(goals))
	for _, g := range goals {
		count := 0
		for _, e := range entries {
			for _, id := range e.CompletedGoalIDs {
				if id == g.ID {
					count++
					break
				}
			}
		}
		achievements = append(achievements, GoalCount{Goal: g, Count: count})
	}

	sort.SliceStable(achievements, func(i, j int) bool {
		return achievements[i].Count > achievements[j].Count
	})
	return achievements
}

// Streak counts consecutive calendar days with at least one entry, walking
// backward from the most recent entry's day. The streak is broken (0) when
// the most recent entry is older than yesterday. Multiple entries on one day
// cover that day once.
func Streak(entries []model.JournalEntry, today time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	sorted := make([]model.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if daysBetween(Day(today), Day(sorted[0].Date)) > 1 {
		return 0
	}

	streak := 1
	for i := 0; i < len(sorted)-1; i++ {
		diff := daysBetween(Day(sorted[i].Date), Day(sorted[i+1].Date))
		if diff == 1 {
			streak++
		} else if diff > 1 {
			break
		}
		// diff == 0: another entry on the same day, already covered.
	}
	return streak
}

// AverageMood returns the arithmetic mean of all moods, rounded to one
// decimal place. An empty snapshot averages to 0.
func AverageMood(entries []model.JournalEntry) float64 {
	if len(entries) == 0 {
		return 0
	}

	sum := 0
	for _, e := range entries {
		sum += e.Mood
	}
	return math.Round(float64(sum)/float64(len(entries))*10) / 10
}
