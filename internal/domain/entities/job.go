package entities

// ServiceType is the kind of work a job requires; it maps onto Skills.
type ServiceType string

const (
	ServiceTypeInstall     ServiceType = "install"
	ServiceTypeService     ServiceType = "service"
	ServiceTypeMaintenance ServiceType = "maintenance"
)

// JobDetails is what the external job catalog tells dispatch about a job.
type JobDetails struct {
	ID                     string      `json:"id"`
	BusinessID             string      `json:"business_id"`
	Vertical               Vertical    `json:"vertical"`
	ServiceType            ServiceType `json:"service_type"`
	RequiredCertifications []string    `json:"required_certifications,omitempty"`
	Address                string      `json:"address"`
	Location               *GeoPoint   `json:"location,omitempty"`
	CustomerID             string      `json:"customer_id"`
	PreferredTechID        string      `json:"preferred_tech_id,omitempty"`
	EstimatedHours         float64     `json:"estimated_hours"`
}

// Hours returns the job's estimate, falling back to the vertical default.
func (j JobDetails) Hours() float64 {
	if j.EstimatedHours > 0 {
		return j.EstimatedHours
	}
	return j.Vertical.Capabilities().DefaultJobHours
}

// Certifications merges job-specific and vertical-mandated certifications.
func (j JobDetails) Certifications() []string {
	base := j.Vertical.Capabilities().RequiredCertifications
	out := make([]string, 0, len(base)+len(j.RequiredCertifications))
	seen := map[string]bool{}
	for _, c := range append(append([]string{}, base...), j.RequiredCertifications...) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
