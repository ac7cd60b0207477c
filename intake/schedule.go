package intake

import (
	"fmt"
	"time"

	"github.com/prabeth/vovos-pedidos-online/models"
)

// Pickup window. Every open day offers the same half-hour slots from opening
// up to (not including) closing.
const (
	openingHour = 9
	closingHour = 18
	slotMinutes = 30
)

const dateLayout = "2006-01-02"

// Slots returns the fixed ordered slot sequence for an open day:
// "09:00", "09:30", ... "17:30".
func Slots() []string {
	var slots []string
	for h := openingHour; h < closingHour; h++ {
		for m := 0; m < 60; m += slotMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}

// SlotValid reports whether s is one of the fixed slots.
func SlotValid(s string) bool {
	for _, slot := range Slots() {
		if slot == s {
			return true
		}
	}
	return false
}

// IsSunday reports whether the ISO date falls on a Sunday. Unparsable dates
// are not Sundays; they fail date validation elsewhere.
func IsSunday(date string) bool {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Sunday
}

// DateSelectable validates a pickup date against the availability map.
// Sundays are always closed no matter what the map says; a day explicitly
// marked sold_out is closed; any other day, including days absent from the
// map, is open.
func DateSelectable(date string, avail map[string]models.DayStatus) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return ErrBadDate
	}
	if IsSunday(date) {
		return ErrSundayClosed
	}
	if avail[date] == models.StatusSoldOut {
		return ErrDaySoldOut
	}
	return nil
}
