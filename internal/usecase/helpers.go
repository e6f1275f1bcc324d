package usecase

import (
	"context"
	"strings"

	"conserta_ja/internal/domain/entities"
	"conserta_ja/internal/usecase/interfaces"
)

func loadJob(ctx context.Context, repo interfaces.IJobRepository, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

// conflictErr re-reads the job after a lost conditional write so the caller
// learns which state actually won the race.
func conflictErr(ctx context.Context, repo interfaces.IJobRepository, jobID string) error {
	j, err := repo.GetByID(ctx, jobID)
	if err != nil || j.ID == "" {
		return ErrConcurrentModification
	}
	return stateErr(ErrConcurrentModification, j)
}
