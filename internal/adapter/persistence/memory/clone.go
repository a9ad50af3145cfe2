// Package memory implements the repository ports in process memory. It backs
// STORAGE_DRIVER=memory and scenario tests. Values are copied on the way in
// and out so callers never share slices with the store.
package memory

import (
	"maps"
	"slices"

	"dispatch_service/internal/domain/entities"
)

func cloneTechnician(t entities.Technician) entities.Technician {
	t.Certifications = slices.Clone(t.Certifications)
	t.Availability = slices.Clone(t.Availability)
	t.WeeklySchedule = maps.Clone(t.WeeklySchedule)
	if t.Location != nil {
		loc := *t.Location
		if loc.Accuracy != nil {
			a := *loc.Accuracy
			loc.Accuracy = &a
		}
		t.Location = &loc
	}
	return t
}

func cloneEntry(e entities.ScheduleEntry) entities.ScheduleEntry {
	e.ConflictsWith = slices.Clone(e.ConflictsWith)
	return e
}

func cloneSuggestion(s entities.DispatchSuggestion) entities.DispatchSuggestion {
	s.AllSuggestions = slices.Clone(s.AllSuggestions)
	for i := range s.AllSuggestions {
		s.AllSuggestions[i].Reasons = slices.Clone(s.AllSuggestions[i].Reasons)
	}
	s.TopRecommendation.Reasons = slices.Clone(s.TopRecommendation.Reasons)
	return s
}
