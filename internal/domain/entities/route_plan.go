package entities

// RouteStop is one visit in an optimized day.
type RouteStop struct {
	EntryID          string  `json:"entry_id"`
	JobID            string  `json:"job_id"`
	Order            int     `json:"order"`
	OriginalOrder    int     `json:"original_order"`
	LegMinutes       float64 `json:"leg_minutes"`
	LegKm            float64 `json:"leg_km"`
	LegEstimated     bool    `json:"leg_estimated"`
	ScheduledStart   string  `json:"scheduled_start"`
	EstimatedArrival string  `json:"estimated_arrival"`
	LateMinutes      int     `json:"late_minutes"`
}

// RoutePlan is the optimizer output for one technician day. Degraded means the
// routing provider was unavailable and the input order was returned as is.
type RoutePlan struct {
	BusinessID            string      `json:"business_id"`
	TechID                string      `json:"tech_id"`
	Date                  string      `json:"date"`
	Stops                 []RouteStop `json:"stops"`
	StartsFromLocation    bool        `json:"starts_from_location"`
	OriginalTotalMinutes  float64     `json:"original_total_minutes"`
	OptimizedTotalMinutes float64     `json:"optimized_total_minutes"`
	TimeSavedMinutes      float64     `json:"time_saved_minutes"`
	Iterations            int         `json:"iterations"`
	Degraded              bool        `json:"degraded"`
	Applied               bool        `json:"applied"`
}

// Reordered reports whether the plan differs from the input order.
func (p RoutePlan) Reordered() bool {
	for _, s := range p.Stops {
		if s.Order != s.OriginalOrder {
			return true
		}
	}
	return false
}
