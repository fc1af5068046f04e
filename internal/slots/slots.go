package slots

import (
	"time"

	"brandsite/internal/models"
)

// Windows are the three fixed time windows offered on every available day.
var Windows = []string{
	"10:00 AM - 11:00 AM",
	"1:00 PM - 2:00 PM",
	"3:00 PM - 4:00 PM",
}

const dateLayout = "Mon, Jan 2"

// Upcoming generates the offered booking slots: one entry per weekday within
// the next 7 calendar days starting tomorrow, Saturdays and Sundays skipped.
// Purely a function of now; nothing is persisted and the submitted booking is
// not checked against this list.
func Upcoming(now time.Time) []models.Slot {
	var out []models.Slot

	for i := 1; i <= 7; i++ {
		day := now.AddDate(0, 0, i)

		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		out = append(out, models.Slot{
			Date:  day.Format(dateLayout),
			Times: append([]string(nil), Windows...),
		})
	}

	return out
}
