package models

import "fmt"

type Catalog struct {
	Phases []Phase `json:"phases" yaml:"phases"`
}

type Phase struct {
	ID           int    `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	SinhalaTitle string `json:"sinhala_title" yaml:"sinhala_title"`
	Description  string `json:"description" yaml:"description"`
	Days         []Day  `json:"days" yaml:"days"`
}

type Day struct {
	ID         int      `json:"id" yaml:"id"`
	Range      string   `json:"range" yaml:"range"`
	Title      string   `json:"title" yaml:"title"`
	Activities []string `json:"activities" yaml:"activities"`
}

func (p Phase) TotalActivities() int {
	total := 0
	for _, day := range p.Days {
		total += len(day.Activities)
	}
	return total
}

// Name is the label dashboards show for the phase.
func (p Phase) Name() string {
	return fmt.Sprintf("Phase %d", p.ID)
}

func (p Phase) SinhalaName() string {
	return fmt.Sprintf("අදියර %d", p.ID)
}

func (c Catalog) TotalActivities() int {
	total := 0
	for _, phase := range c.Phases {
		total += phase.TotalActivities()
	}
	return total
}

func (c Catalog) Phase(id int) (Phase, bool) {
	for _, phase := range c.Phases {
		if phase.ID == id {
			return phase, true
		}
	}
	return Phase{}, false
}

// Activity resolves an identifier to its activity text and the day it belongs to.
func (c Catalog) Activity(id ActivityID) (string, Day, bool) {
	phase, ok := c.Phase(id.PhaseID)
	if !ok {
		return "", Day{}, false
	}
	for _, day := range phase.Days {
		if day.ID != id.DayID {
			continue
		}
		if id.ActivityIndex < 0 || id.ActivityIndex >= len(day.Activities) {
			return "", Day{}, false
		}
		return day.Activities[id.ActivityIndex], day, true
	}
	return "", Day{}, false
}

// Contains reports whether id points at an activity that exists in the catalog.
func (c Catalog) Contains(id ActivityID) bool {
	_, _, ok := c.Activity(id)
	return ok
}
