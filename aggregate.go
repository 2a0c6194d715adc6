package main

import "sort"

/* ---------- Weekly aggregation ---------- */

type ProjectTotal struct {
	ProjectID        uint   `json:"projectId"`
	Name             string `json:"name"`
	Color            string `json:"color"`
	TotalMs          int64  `json:"totalMs"`
	Count            int    `json:"count"`
	PercentageOfWeek int    `json:"percentageOfWeek"`
}

type DayGroup struct {
	Key      string       `json:"key"` // YYYY-MM-DD, local time
	Label    string       `json:"label"`
	TotalMs  int64        `json:"totalMs"`
	Sessions []SessionDTO `json:"sessions"`
}

type WeekStats struct {
	TotalMs       int64          `json:"totalMs"`
	SessionsCount int            `json:"sessionsCount"`
	ProjectTotals []ProjectTotal `json:"projectTotals"`
	DayGroups     []DayGroup     `json:"dayGroups"`
}

// aggregateWeek buckets a start-time-ordered list of project-joined
// sessions by project and by calendar day in a single pass. It does no
// time filtering; the caller selects the input window.
//
// Project totals come out sorted descending by time, ties keeping
// first-seen order. Day groups come out ascending by date, sessions
// within a day in input (chronological) order.
func aggregateWeek(sessions []SessionRecord) WeekStats {
	stats := WeekStats{
		ProjectTotals: []ProjectTotal{},
		DayGroups:     []DayGroup{},
	}

	projectIdx := map[uint]int{}
	dayIdx := map[string]int{}

	for _, s := range sessions {
		stats.TotalMs += s.DurationMs
		stats.SessionsCount++

		i, ok := projectIdx[s.ProjectID]
		if !ok {
			i = len(stats.ProjectTotals)
			projectIdx[s.ProjectID] = i
			stats.ProjectTotals = append(stats.ProjectTotals, ProjectTotal{
				ProjectID: s.ProjectID,
				Name:      s.Project.Name,
				Color:     projectColorOrDefault(s.Project.Color),
			})
		}
		stats.ProjectTotals[i].TotalMs += s.DurationMs
		stats.ProjectTotals[i].Count++

		key := dayKey(s.StartTime)
		j, ok := dayIdx[key]
		if !ok {
			j = len(stats.DayGroups)
			dayIdx[key] = j
			stats.DayGroups = append(stats.DayGroups, DayGroup{
				Key:   key,
				Label: dayLabel(s.StartTime),
			})
		}
		stats.DayGroups[j].TotalMs += s.DurationMs
		stats.DayGroups[j].Sessions = append(stats.DayGroups[j].Sessions, toSessionDTO(s))
	}

	// Stable: equal totals keep first-seen order.
	sort.SliceStable(stats.ProjectTotals, func(a, b int) bool {
		return stats.ProjectTotals[a].TotalMs > stats.ProjectTotals[b].TotalMs
	})

	sort.Slice(stats.DayGroups, func(a, b int) bool {
		return stats.DayGroups[a].Key < stats.DayGroups[b].Key
	})

	// Percentages round independently per project; they are not forced
	// to sum to 100.
	for i := range stats.ProjectTotals {
		stats.ProjectTotals[i].PercentageOfWeek = percentageOfWeek(stats.ProjectTotals[i].TotalMs, stats.TotalMs)
	}

	return stats
}

func percentageOfWeek(projectMs, totalMs int64) int {
	if totalMs <= 0 {
		return 0
	}
	return int(float64(projectMs)/float64(totalMs)*100 + 0.5)
}

// roundedMinutes is the export-side rounding rule (nearest minute).
// Note this deliberately differs from formatDuration, which truncates;
// the two may disagree by at most one minute per session.
func roundedMinutes(ms int64) int64 {
	return (ms + 30000) / 60000
}
