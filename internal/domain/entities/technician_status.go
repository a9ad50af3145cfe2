package entities

import "time"

type statusEffect int

const (
	// effectHoldJob sets current_job_id (from the request, or by promoting next).
	effectHoldJob statusEffect = iota
	// effectReleaseJob clears current_job_id and keeps next_job_id.
	effectReleaseJob
	// effectClearJobs clears current_job_id and next_job_id.
	effectClearJobs
)

// technicianTransitions maps (from, to) to the side effect of the move.
// Moves absent from the table are rejected.
var technicianTransitions = map[TechnicianStatus]map[TechnicianStatus]statusEffect{
	TechnicianStatusAvailable: {
		TechnicianStatusAssigned: effectHoldJob,
		TechnicianStatusEnroute:  effectHoldJob,
		TechnicianStatusOffDuty:  effectClearJobs,
	},
	TechnicianStatusAssigned: {
		TechnicianStatusAssigned:  effectHoldJob,
		TechnicianStatusEnroute:   effectHoldJob,
		TechnicianStatusAvailable: effectReleaseJob,
		TechnicianStatusOffDuty:   effectClearJobs,
	},
	TechnicianStatusEnroute: {
		TechnicianStatusEnroute:   effectHoldJob,
		TechnicianStatusOnSite:    effectHoldJob,
		TechnicianStatusAssigned:  effectHoldJob,
		TechnicianStatusAvailable: effectReleaseJob,
		TechnicianStatusOffDuty:   effectClearJobs,
	},
	TechnicianStatusOnSite: {
		TechnicianStatusComplete:  effectReleaseJob,
		TechnicianStatusAvailable: effectReleaseJob,
		TechnicianStatusOffDuty:   effectClearJobs,
	},
	TechnicianStatusComplete: {
		TechnicianStatusAvailable: effectReleaseJob,
		TechnicianStatusAssigned:  effectHoldJob,
		TechnicianStatusEnroute:   effectHoldJob,
		TechnicianStatusOffDuty:   effectClearJobs,
	},
	TechnicianStatusOffDuty: {
		TechnicianStatusAvailable: effectReleaseJob,
	},
}

// ApplyStatus moves the technician to status `to`. jobID is optional and only
// meaningful for statuses that hold a job. changed=false means the request
// matched the current state and nothing was modified.
func (t Technician) ApplyStatus(to TechnicianStatus, jobID string, now time.Time) (Technician, bool, error) {
	if !to.Valid() {
		return t, false, NewValidationError("status", "unknown technician status "+string(to))
	}
	if to == t.Status && (jobID == "" || jobID == t.CurrentJobID || !to.HoldsJob()) {
		return t, false, nil
	}
	effect, ok := technicianTransitions[t.Status][to]
	if !ok {
		return t, false, &TransitionError{Entity: "technician", From: string(t.Status), To: string(to)}
	}

	next := t
	switch effect {
	case effectHoldJob:
		switch {
		case jobID != "":
			if jobID == next.NextJobID {
				next.NextJobID = ""
			}
			next.CurrentJobID = jobID
		case next.CurrentJobID == "" && next.NextJobID != "":
			next.CurrentJobID, next.NextJobID = next.NextJobID, ""
		}
		if next.CurrentJobID == "" {
			return t, false, NewValidationError("job_id", "required for status "+string(to))
		}
	case effectReleaseJob:
		next.CurrentJobID = ""
	case effectClearJobs:
		next.CurrentJobID = ""
		next.NextJobID = ""
	}
	next.Status = to
	next.UpdatedAt = now
	return next, true, nil
}

// LinkJob attaches a newly dispatched job: it becomes the current job of an
// idle technician, otherwise it is queued as next when that slot is free.
// changed=false means both slots are taken and the job lives only on the
// schedule.
func (t Technician) LinkJob(jobID string, now time.Time) (next Technician, changed bool) {
	if jobID == "" || jobID == t.CurrentJobID || jobID == t.NextJobID {
		return t, false
	}
	next = t
	switch {
	case !t.Status.HoldsJob() && t.Status != TechnicianStatusOffDuty:
		next.Status = TechnicianStatusAssigned
		next.CurrentJobID = jobID
	case t.NextJobID == "":
		next.NextJobID = jobID
	default:
		return t, false
	}
	next.UpdatedAt = now
	return next, true
}
