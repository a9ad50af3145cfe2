package interfaces

import (
	"context"

	"dispatch_service/internal/domain/entities"
)

// IJobCatalog resolves jobs owned by the surrounding system. A job of another
// business is returned as the zero value.
type IJobCatalog interface {
	GetJob(ctx context.Context, businessID, jobID string) (entities.JobDetails, error)
}
