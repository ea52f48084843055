package parser

import (
	"path/filepath"
	"sort"
	"strings"
)

// DayKeyFromPath derives the calendar-day key (YYYY-MM-DD) from a rotated log
// file's name. The fixed naming convention is
//
//	<prefix>-<prefix2>-<YYYY>-<MM>-<DD>-<HH:MM:SS>.log
//
// so the date is fields 3-5 when the base name is split on "-". The second
// return value is false for names that do not conform (the current, still
// open log has no date fragment).
func DayKeyFromPath(path string) (string, bool) {
	name := filepath.Base(path)
	fields := strings.Split(name, "-")
	if len(fields) < 6 {
		return "", false
	}

	year, month, day := fields[2], fields[3], fields[4]
	if !allDigits(year) || len(year) != 4 {
		return "", false
	}
	if !allDigits(month) || len(month) != 2 {
		return "", false
	}
	if !allDigits(day) || len(day) != 2 {
		return "", false
	}

	return year + "-" + month + "-" + day, true
}

// GroupByDay assigns each file to its logical day. Files whose names carry no
// date fragment are excluded. Within a day, files are returned in
// lexicographic name order, which matches chronological order because the
// numeric timestamp suffix sorts correctly as text. The correlation step
// depends on this ordering.
func GroupByDay(paths []string) map[string][]string {
	days := make(map[string][]string)

	for _, path := range paths {
		key, ok := DayKeyFromPath(path)
		if !ok {
			continue
		}
		days[key] = append(days[key], path)
	}

	for _, files := range days {
		sort.Strings(files)
	}

	return days
}

// SortedDayKeys returns the day keys in chronological order.
// YYYY-MM-DD compares correctly as text.
func SortedDayKeys(days map[string][]string) []string {
	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
