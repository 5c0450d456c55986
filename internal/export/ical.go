// Package export renders a saved trip in exchange formats for use outside
// the planner. iCalendar is the interesting one: each day of the itinerary
// becomes one all-day event, with the day's activities listed in the event
// description.
package export

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/lic521/wanderai/internal/domain"
)

// BuildCalendar renders trip as an iCalendar document. The itinerary carries
// day numbers but no absolute dates, so day 1 is anchored at start and each
// following day advances one calendar day.
func BuildCalendar(trip domain.SavedTrip, start time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	day0 := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	stamp := time.UnixMilli(trip.CreatedAt).UTC()

	for _, day := range trip.Data.Days {
		date := day0.AddDate(0, 0, day.DayNumber-1)

		event := cal.AddEvent(fmt.Sprintf("%s-day-%d", trip.ID, day.DayNumber))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s 第%d天：%s", trip.Data.TripTitle, day.DayNumber, day.Theme))
		event.SetDescription(describeDay(day))
		if trip.Data.Destination != "" {
			event.SetLocation(trip.Data.Destination)
		}
	}

	return cal.Serialize()
}

// describeDay flattens a day's activities into the event description, one
// activity per line with its venue, address, and transport instruction.
func describeDay(day domain.DayPlan) string {
	var lines []string
	for _, a := range day.Activities {
		line := strings.TrimSpace(a.Time + " " + a.Activity)
		if a.Location != "" {
			line += "（" + a.Location
			if a.Address != "" {
				line += "，" + a.Address
			}
			line += "）"
		}
		if a.Transport != "" {
			line += " 交通：" + a.Transport
		}
		if a.CostEstimate != "" {
			line += " 费用：" + a.CostEstimate
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
