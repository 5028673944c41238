package checkout

import "time"

// dateWindow is how far ahead customers can book a delivery or pickup.
const dateWindow = 14

// AvailableDates returns the selectable delivery/pickup dates: the next 14
// calendar days starting from "from", minus Sundays and Mondays when the
// shop is closed. Fourteen consecutive days always contain two of each,
// so the list is always 10 dates long.
func AvailableDates(from time.Time) []time.Time {
	dates := make([]time.Time, 0, dateWindow)
	for i := 0; i < dateWindow; i++ {
		d := from.AddDate(0, 0, i)
		if wd := d.Weekday(); wd != time.Sunday && wd != time.Monday {
			dates = append(dates, d)
		}
	}
	return dates
}
