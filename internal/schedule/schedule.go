// internal/schedule/schedule.go
package schedule

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
)

const rangeSeparator = " – "

// DayKeys is the canonical weekday order for every schedule operation.
var DayKeys = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var dayLabels = map[string]string{
	"monday":    "Mon",
	"tuesday":   "Tue",
	"wednesday": "Wed",
	"thursday":  "Thu",
	"friday":    "Fri",
	"saturday":  "Sat",
	"sunday":    "Sun",
}

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// DayHours is one day's open window in 24-hour HH:mm text.
type DayHours struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Schedule maps lowercase weekday keys to open hours. A nil value or an
// absent key means the day is closed. This is the persisted blob shape on
// leagues and facilities.
type Schedule map[string]*DayHours

// Group is one display row: the days that share an open window and the
// formatted 12-hour range, or "Closed".
type Group struct {
	DayLabels []string `json:"dayLabels"`
	TimeRange string   `json:"timeRange"`
}

// FormDay is the fixed-shape editable record for one day. Blank fields mean
// closed when converted back to canonical form.
type FormDay struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FormState always carries all seven day keys.
type FormState map[string]FormDay

// Parse decodes and validates a persisted schedule blob. An empty blob is a
// fully closed schedule. Explicit nulls in the blob are dropped so a closed
// day is always an absent key, matching the shape Encode was given.
func Parse(raw []byte) (Schedule, error) {
	if len(raw) == 0 {
		return Schedule{}, nil
	}
	var s Schedule
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, apperr.Invalidf("schedule is not valid JSON")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	for key, hours := range s {
		if hours == nil {
			delete(s, key)
		}
	}
	return s, nil
}

// Validate checks day keys, time syntax, and start < end for every open day.
func (s Schedule) Validate() error {
	for key, hours := range s {
		if _, ok := dayLabels[key]; !ok {
			return apperr.Invalidf("unknown day key %q", key)
		}
		if hours == nil {
			continue
		}
		start, err := minutesOf(hours.StartTime)
		if err != nil {
			return apperr.Invalidf("%s startTime %q must be HH:mm", key, hours.StartTime)
		}
		end, err := minutesOf(hours.EndTime)
		if err != nil {
			return apperr.Invalidf("%s endTime %q must be HH:mm", key, hours.EndTime)
		}
		if start >= end {
			return apperr.Invalidf("%s startTime must be before endTime", key)
		}
	}
	return nil
}

// Groups collapses the week into display rows. Days are compared by minute
// value, not raw string, so "9:00" and "09:00" land in the same group; closed
// days share one group. Groups are ordered by the first weekday that belongs
// to them.
func (s Schedule) Groups() []Group {
	type window struct {
		open       bool
		start, end int
	}
	firstDay := make(map[window]int)
	members := make(map[window][]string)
	label := make(map[window]string)

	for i, key := range DayKeys {
		w := window{}
		if hours := s[key]; hours != nil {
			start, errStart := minutesOf(hours.StartTime)
			end, errEnd := minutesOf(hours.EndTime)
			if errStart == nil && errEnd == nil {
				w = window{open: true, start: start, end: end}
			}
			if w.open {
				if _, seen := firstDay[w]; !seen {
					label[w] = to12Hour(hours.StartTime) + rangeSeparator + to12Hour(hours.EndTime)
				}
			}
		}
		if !w.open {
			label[w] = "Closed"
		}
		if _, seen := firstDay[w]; !seen {
			firstDay[w] = i
		}
		members[w] = append(members[w], dayLabels[key])
	}

	groups := make([]Group, 0, len(members))
	for w, days := range members {
		groups = append(groups, Group{DayLabels: days, TimeRange: label[w]})
	}
	// Order by first member day.
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			if dayIndex(groups[j].DayLabels[0]) < dayIndex(groups[i].DayLabels[0]) {
				groups[i], groups[j] = groups[j], groups[i]
			}
		}
	}
	return groups
}

// FormState expands the schedule into the editable record with all seven
// keys present.
func (s Schedule) FormState() FormState {
	form := make(FormState, len(DayKeys))
	for _, key := range DayKeys {
		day := FormDay{}
		if hours := s[key]; hours != nil {
			day.StartTime = hours.StartTime
			day.EndTime = hours.EndTime
		}
		form[key] = day
	}
	return form
}

// FromFormState converts the editable record back to canonical form. A day is
// closed if either field is blank after trimming.
func FromFormState(form FormState) (Schedule, error) {
	s := make(Schedule, len(DayKeys))
	for key := range form {
		if _, ok := dayLabels[key]; !ok {
			return nil, apperr.Invalidf("unknown day key %q", key)
		}
	}
	for _, key := range DayKeys {
		day, ok := form[key]
		if !ok {
			continue
		}
		start := strings.TrimSpace(day.StartTime)
		end := strings.TrimSpace(day.EndTime)
		if start == "" || end == "" {
			continue
		}
		s[key] = &DayHours{StartTime: start, EndTime: end}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode marshals the canonical form for storage. Closed days are written as
// explicit nulls so the persisted blob always carries all seven keys.
func (s Schedule) Encode() ([]byte, error) {
	full := make(map[string]*DayHours, len(DayKeys))
	for _, key := range DayKeys {
		full[key] = s[key]
	}
	data, err := json.Marshal(full)
	if err != nil {
		return nil, fmt.Errorf("encode schedule: %w", err)
	}
	return data, nil
}

func minutesOf(value string) (int, error) {
	if !timePattern.MatchString(value) {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	parsed, err := time.Parse("15:04", normalizeHour(value))
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// normalizeHour pads "9:00" to "09:00" so time.Parse accepts it.
func normalizeHour(value string) string {
	if len(value) == 4 {
		return "0" + value
	}
	return value
}

func to12Hour(value string) string {
	parsed, err := time.Parse("15:04", normalizeHour(value))
	if err != nil {
		return value
	}
	return parsed.Format("3:04 PM")
}

func dayIndex(label string) int {
	for i, key := range DayKeys {
		if dayLabels[key] == label {
			return i
		}
	}
	return len(DayKeys)
}
