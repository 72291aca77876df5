package reminder

import "strconv"

// LeadDays is the number of days before the occurrence that a notification
// should fire.
type LeadDays int

// LeadDaysCatalog is the fixed set of lead times the sweep evaluates. A
// stored reminder whose lead time is outside the catalog is never selected
// by the sweep.
var LeadDaysCatalog = []LeadDays{1, 3, 7, 14, 30}

func (d LeadDays) InCatalog() bool {
	for _, catalogDays := range LeadDaysCatalog {
		if d == catalogDays {
			return true
		}
	}
	return false
}

func (d LeadDays) String() string {
	return strconv.Itoa(int(d))
}

// ParseLeadDays normalizes a stored lead-time value to a strict integer.
// Legacy records persisted the value as a string.
func ParseLeadDays(value string) (LeadDays, error) {
	days, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrParseLeadDays
	}
	if days < 1 {
		return 0, ErrParseLeadDays
	}
	return LeadDays(days), nil
}
