// Package jobfile reads job catalog seeds from YAML.
//
//	jobs:
//	  - id: job-1
//	    business_id: biz-1
//	    vertical: hvac
//	    service_type: service
//	    location: {longitude: -97.74, latitude: 30.27}
package jobfile

import (
	"fmt"
	"os"
	"strings"

	"dispatch_service/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

type document struct {
	Jobs []job `yaml:"jobs"`
}

type job struct {
	ID                     string   `yaml:"id"`
	BusinessID             string   `yaml:"business_id"`
	Vertical               string   `yaml:"vertical"`
	ServiceType            string   `yaml:"service_type"`
	RequiredCertifications []string `yaml:"required_certifications"`
	Address                string   `yaml:"address"`
	Location               *point   `yaml:"location"`
	CustomerID             string   `yaml:"customer_id"`
	PreferredTechID        string   `yaml:"preferred_tech_id"`
	EstimatedHours         float64  `yaml:"estimated_hours"`
}

type point struct {
	Longitude float64 `yaml:"longitude"`
	Latitude  float64 `yaml:"latitude"`
}

// Load reads and validates a job file.
func Load(path string) ([]entities.JobDetails, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]entities.JobDetails, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}

	out := make([]entities.JobDetails, 0, len(doc.Jobs))
	seen := map[string]bool{}
	for i, j := range doc.Jobs {
		d, err := j.toDetails()
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		key := d.BusinessID + "/" + d.ID
		if seen[key] {
			return nil, fmt.Errorf("job %d: duplicate id %q", i, d.ID)
		}
		seen[key] = true
		out = append(out, d)
	}
	return out, nil
}

func (j job) toDetails() (entities.JobDetails, error) {
	if strings.TrimSpace(j.ID) == "" {
		return entities.JobDetails{}, entities.NewValidationError("id", "required")
	}
	if strings.TrimSpace(j.BusinessID) == "" {
		return entities.JobDetails{}, entities.NewValidationError("business_id", "required")
	}
	v := entities.Vertical(strings.ToLower(j.Vertical))
	if !v.Valid() {
		return entities.JobDetails{}, entities.NewValidationError("vertical", "unknown vertical "+j.Vertical)
	}
	if j.EstimatedHours < 0 {
		return entities.JobDetails{}, entities.NewValidationError("estimated_hours", "must not be negative")
	}

	d := entities.JobDetails{
		ID:                     j.ID,
		BusinessID:             j.BusinessID,
		Vertical:               v,
		ServiceType:            entities.ServiceType(strings.ToLower(j.ServiceType)),
		RequiredCertifications: j.RequiredCertifications,
		Address:                j.Address,
		CustomerID:             j.CustomerID,
		PreferredTechID:        j.PreferredTechID,
		EstimatedHours:         j.EstimatedHours,
	}
	if j.Location != nil {
		p := entities.GeoPoint{Longitude: j.Location.Longitude, Latitude: j.Location.Latitude}
		if !p.Valid() {
			return entities.JobDetails{}, entities.NewValidationError("location", "coordinates out of range")
		}
		d.Location = &p
	}
	return d, nil
}
