package usecase

import (
	"errors"
	"fmt"

	"dispatch_service/internal/domain/entities"
)

// Error classes. Handlers switch on these with errors.Is; the specific
// sentinels below wrap exactly one class.
var (
	// ErrNotFound covers unknown ids and ids owned by another business alike.
	ErrNotFound          = errors.New("not found")
	ErrValidation        = entities.ErrValidation
	ErrInvalidTransition = entities.ErrInvalidTransition
	ErrExternalTimeout   = errors.New("external call timed out")
)

var (
	ErrTechnicianNotFound   = fmt.Errorf("technician %w", ErrNotFound)
	ErrEntryNotFound        = fmt.Errorf("schedule entry %w", ErrNotFound)
	ErrSuggestionNotFound   = fmt.Errorf("suggestion %w", ErrNotFound)
	ErrJobNotFound          = fmt.Errorf("job %w", ErrNotFound)
	ErrAvailabilityNotFound = fmt.Errorf("availability entry %w", ErrNotFound)
	// ErrSuggestionAlreadyActioned is NotFound-class so replays of act() look
	// the same as acting on a missing suggestion.
	ErrSuggestionAlreadyActioned = fmt.Errorf("pending suggestion %w", ErrNotFound)

	ErrInvalidBusinessID   = fmt.Errorf("%w: business_id is required", ErrValidation)
	ErrInvalidTechnicianID = fmt.Errorf("%w: tech_id is required", ErrValidation)
	ErrInvalidJobID        = fmt.Errorf("%w: job_id is required", ErrValidation)
	ErrInvalidEntryID      = fmt.Errorf("%w: entry id is required", ErrValidation)
	ErrInvalidSuggestionID = fmt.Errorf("%w: suggestion id is required", ErrValidation)
	ErrInvalidLocation     = fmt.Errorf("%w: coordinates out of range", ErrValidation)
	ErrInvalidOrder        = fmt.Errorf("%w: job ids must match the day's non-cancelled entries exactly", ErrValidation)
	ErrRejectReasonMissing = fmt.Errorf("%w: reject requires a reason", ErrValidation)
	ErrRejectSameAsTopPick = fmt.Errorf("%w: reject must select a different candidate", ErrValidation)
	ErrUnknownCandidate    = fmt.Errorf("%w: selected technician is not a candidate", ErrValidation)
	ErrAcceptNotTopPick    = fmt.Errorf("%w: accept always selects the top recommendation", ErrValidation)
	ErrNoCandidates        = fmt.Errorf("%w: no eligible technicians", ErrValidation)
	ErrInactiveTechnician  = fmt.Errorf("%w: technician is inactive", ErrValidation)
	ErrInvalidDateRange    = fmt.Errorf("%w: from must not be after to", ErrValidation)
	ErrJobAlreadyScheduled = fmt.Errorf("%w: job is already scheduled for this technician on this date", ErrValidation)
)
