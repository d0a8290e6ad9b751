package entities

import (
	"sort"
	"time"
)

// TaskBuckets is the mutually exclusive partition of a task list used by the
// dashboard views.
type TaskBuckets struct {
	Today     []*Task `json:"today"`
	Overdue   []*Task `json:"overdue"`
	ThisWeek  []*Task `json:"this_week"`
	Completed []*Task `json:"completed"`
	Inbox     []*Task `json:"inbox"`
}

// ClassifyTasks partitions tasks into exactly one bucket each, in precedence
// order: completed (has a completion timestamp), today (due on the current
// calendar day), overdue (due before now), this week (due within the current
// Sun-Sat week), inbox (everything else). Today and inbox are ordered by sort
// order ascending with unsorted tasks last; completed is ordered by
// completion timestamp descending. Ties keep the original list order.
func ClassifyTasks(tasks []*Task, now time.Time) TaskBuckets {
	weekStart := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)

	var b TaskBuckets
	for _, t := range tasks {
		switch {
		case t.IsCompleted():
			b.Completed = append(b.Completed, t)
		case t.DueDate != nil && sameDay(*t.DueDate, now):
			b.Today = append(b.Today, t)
		case t.DueDate != nil && t.DueDate.Before(now):
			b.Overdue = append(b.Overdue, t)
		case t.DueDate != nil && !t.DueDate.Before(weekStart) && t.DueDate.Before(weekEnd):
			b.ThisWeek = append(b.ThisWeek, t)
		default:
			b.Inbox = append(b.Inbox, t)
		}
	}

	sortBySortOrder(b.Today)
	sortBySortOrder(b.Inbox)
	sort.SliceStable(b.Completed, func(i, j int) bool {
		return b.Completed[i].CompletionDate.After(*b.Completed[j].CompletionDate)
	})

	return b
}

// sortBySortOrder orders tasks by manual sort order ascending, with tasks
// lacking one placed last. Stable, so ties keep their original order.
func sortBySortOrder(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].SortOrder, tasks[j].SortOrder
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
