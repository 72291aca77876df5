package reminder

import (
	"errors"
	"sort"
	"time"
)

type OrderBy struct {
	v string
}

var (
	OrderByNotSet OrderBy = OrderBy{}
	OrderByIDAsc  OrderBy = OrderBy{v: "id_asc"}
	OrderByIDDesc OrderBy = OrderBy{v: "id_desc"}
)

var ErrParseOrderBy = errors.New("invalid order")

func ParseOrderBy(value string) (OrderBy, error) {
	switch value {
	case "id_asc":
		return OrderByIDAsc, nil
	case "id_desc":
		return OrderByIDDesc, nil
	default:
		return OrderByNotSet, ErrParseOrderBy
	}
}

// SortByUpcoming orders reminders by their next occurrence relative to ref,
// closest first. Ties fall back to ID order so the result is deterministic.
func SortByUpcoming(reminders []Reminder, ref time.Time) {
	sort.SliceStable(reminders, func(i, j int) bool {
		di := reminders[i].DaysLeft(ref)
		dj := reminders[j].DaysLeft(ref)
		if di != dj {
			return di < dj
		}
		return reminders[i].ID < reminders[j].ID
	})
}
