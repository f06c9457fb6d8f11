package fitlog

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// EntrySummary renders a record's entries as numbered plain-text lines for
// the coaching prompt.
//
// Workout: "1. [Strength] Bench Press — sets=3, reps=8, weight=135 | notes: ..."
// Eating:  "1. [Breakfast] Oatmeal — 300 cal (slow cooked)"
func EntrySummary(cat Category, rec Record) string {
	lines := make([]string, 0, len(rec.Entries))
	for i, e := range rec.Entries {
		if cat == CategoryEating {
			line := fmt.Sprintf("%d. [%s] %s — %s cal", i+1, e.Kind, orNA(e.Name), e.Calories)
			if e.Notes != "" {
				line += " (" + e.Notes + ")"
			}
			lines = append(lines, line)
			continue
		}

		details := joinDetails(e, ", ", func(k, v string) string { return k + "=" + v })
		line := fmt.Sprintf("%d. [%s] %s", i+1, e.Kind, orNA(e.Name))
		if details != "" {
			line += " — " + details
		}
		if e.Notes != "" {
			line += " | notes: " + e.Notes
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RecentSummary renders a short digest of the most recent records in a
// category, newest first, for use as cross-domain context in the other
// category's coaching prompt. Records older than maxDays are skipped and at
// most maxItems records (three entries each) are included. An empty string
// means nothing recent to report.
func RecentSummary(cat Category, records []Record, now time.Time, maxDays, maxItems int) string {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	var items []Record
	for _, rec := range sorted {
		if now.Sub(rec.Date) > time.Duration(maxDays)*24*time.Hour {
			continue
		}
		items = append(items, rec)
		if len(items) == maxItems {
			break
		}
	}
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(items))
	for i, rec := range items {
		day := fmt.Sprintf("%d/%d", rec.Date.Month(), rec.Date.Day())
		bits := recentBits(cat, rec)
		if bits == "" {
			if cat == CategoryEating {
				bits = "no meals logged"
			} else {
				bits = "no details"
			}
		}
		lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, day, bits))
	}
	return strings.Join(lines, "\n")
}

func recentBits(cat Category, rec Record) string {
	entries := rec.Entries
	if len(entries) > 3 {
		entries = entries[:3]
	}

	bits := make([]string, 0, len(entries))
	for _, e := range entries {
		switch {
		case cat == CategoryEating:
			name := e.Name
			if name == "" {
				name = e.Kind
			}
			if name == "" {
				name = "meal"
			}
			bit := name
			if e.Calories != "" {
				bit += " — " + e.Calories + " cal"
			}
			bits = append(bits, bit)
		case e.Sets != "" || e.Reps != "" || e.Weight != "":
			base := exerciseName(e)
			srw := joinNonEmpty(" • ", suffix(e.Sets, " sets"), suffix(e.Reps, " reps"), suffix(e.Weight, " wt"))
			bits = append(bits, joinDash(base, srw))
		case e.Duration != "" || e.Distance != "" || e.Pace != "":
			base := exerciseName(e)
			cdp := joinNonEmpty(" • ", suffix(e.Duration, " min"), suffix(e.Distance, " mi"), suffix(e.Pace, " pace"))
			bits = append(bits, joinDash(base, cdp))
		default:
			bits = append(bits, exerciseName(e))
		}
	}
	return strings.Join(bits, " | ")
}

func exerciseName(e Entry) string {
	if e.Name != "" {
		return e.Name
	}
	if e.Kind != "" {
		return e.Kind
	}
	return "exercise"
}

func joinDetails(e Entry, sep string, format func(k, v string) string) string {
	pairs := []struct{ k, v string }{
		{"sets", e.Sets}, {"reps", e.Reps}, {"weight", e.Weight},
		{"duration", e.Duration}, {"distance", e.Distance}, {"pace", e.Pace},
		{"calories", e.Calories},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if strings.TrimSpace(p.v) != "" {
			parts = append(parts, format(p.k, p.v))
		}
	}
	return strings.Join(parts, sep)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func joinDash(base, detail string) string {
	if detail == "" {
		return base
	}
	return base + " — " + detail
}

func suffix(v, s string) string {
	if v == "" {
		return ""
	}
	return v + s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
