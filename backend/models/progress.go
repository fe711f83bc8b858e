package models

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type ActivityStatus string

const (
	StatusInProgress ActivityStatus = "In Progress"
	StatusPending    ActivityStatus = "Pending"
)

type PhaseStats struct {
	PhaseID     int    `json:"phase_id"`
	Name        string `json:"name"`
	SinhalaName string `json:"sinhala_name"`
	Completed   int    `json:"completed"`
	Total       int    `json:"total"`
	Percentage  int    `json:"percentage"`
}

type OverallStats struct {
	TotalActivities int    `json:"total_activities"`
	Completed       int    `json:"completed"`
	Remaining       int    `json:"remaining"`
	Percentage      int    `json:"percentage"`
	CampaignStatus  string `json:"campaign_status"`
}

type UpcomingActivity struct {
	ID       ActivityID     `json:"id"`
	Phase    string         `json:"phase"`
	Day      string         `json:"day"`
	Activity string         `json:"activity"`
	Priority Priority       `json:"priority"`
	Status   ActivityStatus `json:"status"`
}

type ProgressSummary struct {
	Overall  OverallStats       `json:"overall"`
	Phases   []PhaseStats       `json:"phases"`
	Upcoming []UpcomingActivity `json:"upcoming"`
}
