package progress

import (
	"math"
	"sort"

	"github.com/factorymaster/mission-control/backend/models"
)

const DefaultUpcomingLimit = 5

// Percentage returns round(100*completed/total), or 0 for an empty total.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// PhaseProgress returns per-phase stats in catalog order. Only identifiers
// that name an existing activity of the phase are counted.
func PhaseProgress(c models.Catalog, set models.CompletionSet) []models.PhaseStats {
	stats := make([]models.PhaseStats, 0, len(c.Phases))
	for _, phase := range c.Phases {
		total := phase.TotalActivities()
		done := completedInPhase(phase, set)
		stats = append(stats, models.PhaseStats{
			PhaseID:     phase.ID,
			Name:        phase.Name(),
			SinhalaName: phase.SinhalaName(),
			Completed:   done,
			Total:       total,
			Percentage:  Percentage(done, total),
		})
	}
	return stats
}

func completedInPhase(phase models.Phase, set models.CompletionSet) int {
	done := 0
	for _, day := range phase.Days {
		for i := range day.Activities {
			if set.Contains(models.NewActivityID(phase.ID, day.ID, i)) {
				done++
			}
		}
	}
	return done
}

// Overall computes whole-catalog stats. Completed counts only identifiers
// that name an activity in c, so ids left over from an edited catalog are
// ignored; for a consistent catalog it equals set.Len().
func Overall(c models.Catalog, set models.CompletionSet) models.OverallStats {
	total := 0
	done := 0
	for _, phase := range c.Phases {
		total += phase.TotalActivities()
		done += completedInPhase(phase, set)
	}
	pct := Percentage(done, total)
	return models.OverallStats{
		TotalActivities: total,
		Completed:       done,
		Remaining:       total - done,
		Percentage:      pct,
		CampaignStatus:  CampaignStatus(pct),
	}
}

func CampaignStatus(percentage int) string {
	switch {
	case percentage > 75:
		return "Excellent"
	case percentage > 50:
		return "On Track"
	default:
		return "In Progress"
	}
}

// Upcoming lists the first limit incomplete activities, phases and days
// taken in ascending id order. The first entry is the one in progress.
func Upcoming(c models.Catalog, set models.CompletionSet, limit int) []models.UpcomingActivity {
	upcoming := []models.UpcomingActivity{}
	if limit <= 0 {
		return upcoming
	}

	for _, phase := range sortedPhases(c) {
		for _, day := range sortedDays(phase) {
			for i, activity := range day.Activities {
				id := models.NewActivityID(phase.ID, day.ID, i)
				if set.Contains(id) {
					continue
				}
				upcoming = append(upcoming, models.UpcomingActivity{
					ID:       id,
					Phase:    phase.Name(),
					Day:      day.Range,
					Activity: activity,
					Priority: priorityAt(len(upcoming)),
					Status:   statusAt(len(upcoming)),
				})
				if len(upcoming) == limit {
					return upcoming
				}
			}
		}
	}
	return upcoming
}

func priorityAt(position int) models.Priority {
	switch {
	case position == 0:
		return models.PriorityHigh
	case position < 3:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

func statusAt(position int) models.ActivityStatus {
	if position == 0 {
		return models.StatusInProgress
	}
	return models.StatusPending
}

func sortedPhases(c models.Catalog) []models.Phase {
	phases := append([]models.Phase(nil), c.Phases...)
	sort.SliceStable(phases, func(i, j int) bool { return phases[i].ID < phases[j].ID })
	return phases
}

func sortedDays(p models.Phase) []models.Day {
	days := append([]models.Day(nil), p.Days...)
	sort.SliceStable(days, func(i, j int) bool { return days[i].ID < days[j].ID })
	return days
}

func Summarize(c models.Catalog, set models.CompletionSet) models.ProgressSummary {
	return models.ProgressSummary{
		Overall:  Overall(c, set),
		Phases:   PhaseProgress(c, set),
		Upcoming: Upcoming(c, set, DefaultUpcomingLimit),
	}
}
