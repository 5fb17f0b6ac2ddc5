package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"genosplit/api/models"
	"genosplit/api/models/constants"
	rs "genosplit/api/models/constants/run-state"
	csvRepo "genosplit/api/repositories/csv"
	"genosplit/api/services/distributions"
	"genosplit/api/services/invariants"
	"genosplit/api/services/overlap"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type (
	// DatasetLoader supplies the partitions for a validation run
	DatasetLoader func(ctx context.Context, cfg *models.Config) (models.Dataset, error)

	ValidationService struct {
		Initialized bool
		Config      *models.Config
		LoadDataset DatasetLoader

		ValidationRunMap    map[string]*models.ValidationRun
		ValidationRunMapMux sync.RWMutex
		// insertion order of ValidationRunMap
		ValidationRunIds []string

		scheduler *gocron.Scheduler
	}
)

func NewValidationService(cfg *models.Config) *ValidationService {
	vs := &ValidationService{
		Initialized:         false,
		Config:              cfg,
		LoadDataset:         csvRepo.LoadDataset,
		ValidationRunMap:    map[string]*models.ValidationRun{},
		ValidationRunMapMux: sync.RWMutex{},
	}

	return vs
}

func (vs *ValidationService) Init() {
	// safeguard to prevent multiple initilizations
	if vs.Initialized {
		return
	}

	interval := vs.Config.Validation.RevalidationInterval
	if interval > 0 {
		// periodically reload the partition files so edits
		// made on disk show up without restarting the service
		vs.scheduler = gocron.NewScheduler(time.UTC)
		_, err := vs.scheduler.Every(interval).Do(func() {
			fmt.Printf("[%s] - Running scheduled revalidation..\n", time.Now())
			if run, err := vs.Run(context.Background()); err != nil {
				fmt.Printf("[%s] - Scheduled revalidation %s failed : %v\n", time.Now(), run.Id, err)
			}
		})
		if err != nil {
			fmt.Printf("[%s] - Unable to schedule revalidation : %v\n", time.Now(), err)
		} else {
			vs.scheduler.StartAsync()
		}
	}

	vs.Initialized = true
	fmt.Println("Validation Service Initialized ..")
}

func (vs *ValidationService) Stop() {
	if vs.scheduler != nil {
		vs.scheduler.Stop()
	}
}

// Run loads the dataset and validates it, recording the run.
// The returned run is never nil, even on error.
func (vs *ValidationService) Run(ctx context.Context) (*models.ValidationRun, error) {
	now := time.Now().String()
	run := &models.ValidationRun{
		Id:        uuid.New(),
		State:     rs.Queued,
		CreatedAt: now,
		UpdatedAt: now,
	}
	vs.store(run)

	vs.update(run, func(r *models.ValidationRun) { r.State = rs.Running })

	dataset, err := vs.LoadDataset(ctx, vs.Config)
	if err != nil {
		vs.fail(run, err)
		return vs.snapshot(run), err
	}

	result, err := Validate(ctx, dataset, vs.Config.Validation.PartitionConcurrencyLevel, vs.Config.Validation.InvalidLengthSampleSize)
	if ctxErr := ctx.Err(); ctxErr != nil {
		// an interrupted run is not kept for reuse
		vs.fail(run, ctxErr)
		return vs.snapshot(run), ctxErr
	}
	vs.update(run, func(r *models.ValidationRun) {
		r.Overlaps = result.Overlaps
		r.Lengths = result.Lengths
		r.Statistics = result.Statistics
		r.PartitionErrors = result.PartitionErrors
	})
	if err != nil {
		// the healthy partitions and the overlap and length findings stay served
		vs.fail(run, err)
		return vs.snapshot(run), err
	}

	vs.update(run, func(r *models.ValidationRun) {
		r.State = rs.Done
		r.Message = result.Overlaps.Summary
	})
	fmt.Printf("[%s] - Validation run %s done ; overlaps : %d, valid lengths : %t\n",
		time.Now(), run.Id, result.Overlaps.TotalOverlapCount, result.Lengths.Valid)

	return vs.snapshot(run), nil
}

// Latest returns the most recent run, or nil when nothing ran yet
func (vs *ValidationService) Latest() *models.ValidationRun {
	vs.ValidationRunMapMux.RLock()
	defer vs.ValidationRunMapMux.RUnlock()

	if len(vs.ValidationRunIds) == 0 {
		return nil
	}
	copied := *vs.ValidationRunMap[vs.ValidationRunIds[len(vs.ValidationRunIds)-1]]
	return &copied
}

// LatestOrRun returns the latest run that got as far as validating, running
// one if there is none. A run whose dataset failed to load is retried.
func (vs *ValidationService) LatestOrRun(ctx context.Context) (*models.ValidationRun, error) {
	if latest := vs.Latest(); latest != nil && reusable(latest) {
		return latest, nil
	}
	return vs.Run(ctx)
}

// All returns every recorded run, oldest first
func (vs *ValidationService) All() []models.ValidationRun {
	vs.ValidationRunMapMux.RLock()
	defer vs.ValidationRunMapMux.RUnlock()

	runs := make([]models.ValidationRun, 0, len(vs.ValidationRunIds))
	for _, id := range vs.ValidationRunIds {
		runs = append(runs, *vs.ValidationRunMap[id])
	}
	return runs
}

func reusable(run *models.ValidationRun) bool {
	switch run.State {
	case rs.Done:
		return true
	case rs.Error:
		return run.Overlaps != nil && run.Lengths != nil
	}
	return false
}

func (vs *ValidationService) store(run *models.ValidationRun) {
	vs.ValidationRunMapMux.Lock()
	defer vs.ValidationRunMapMux.Unlock()

	vs.ValidationRunMap[run.Id.String()] = run
	vs.ValidationRunIds = append(vs.ValidationRunIds, run.Id.String())
}

func (vs *ValidationService) update(run *models.ValidationRun, mutate func(*models.ValidationRun)) {
	vs.ValidationRunMapMux.Lock()
	defer vs.ValidationRunMapMux.Unlock()

	mutate(run)
	run.UpdatedAt = time.Now().String()
}

func (vs *ValidationService) fail(run *models.ValidationRun, err error) {
	fmt.Printf("[%s] - Validation run %s failed : %v\n", time.Now(), run.Id, err)
	vs.update(run, func(r *models.ValidationRun) {
		r.State = rs.Error
		r.Message = err.Error()
	})
}

func (vs *ValidationService) snapshot(run *models.ValidationRun) *models.ValidationRun {
	vs.ValidationRunMapMux.RLock()
	defer vs.ValidationRunMapMux.RUnlock()

	copied := *run
	return &copied
}

type ValidationResult struct {
	Overlaps        *models.OverlapReport                               `json:"overlaps" yaml:"overlaps"`
	Lengths         *models.LengthReport                                `json:"lengths" yaml:"lengths"`
	Statistics      map[constants.Partition]*models.PartitionStatistics `json:"statistics" yaml:"statistics"`
	PartitionErrors map[constants.Partition]string                      `json:"partitionErrors,omitempty" yaml:"partitionErrors,omitempty"`
}

// Validate runs every check over an in-memory dataset. Partition statistics
// are computed concurrently, at most concurrencyLevel at a time, and each
// partition stands on its own: a partition that cannot be aggregated is
// listed in PartitionErrors while the others keep their statistics. The
// returned error is that of the first failed partition in train, val, test
// order; the result is never nil.
func Validate(ctx context.Context, dataset models.Dataset, concurrencyLevel int, sampleSize int) (*ValidationResult, error) {
	partitions := dataset.Partitions()

	overlapReport := overlap.DetectPartitionOverlaps(dataset)

	invalid := invariants.FindInvalidLengths(partitions...)
	recordCount := 0
	for _, partition := range partitions {
		recordCount += len(partition.Records)
	}
	lengths := &models.LengthReport{
		Valid:             invariants.CheckPartitionLengths(partitions...),
		RecordCount:       recordCount,
		InvalidCount:      len(invalid),
		InvalidLengthRows: invalid,
	}
	if sampleSize >= 0 && len(invalid) > sampleSize {
		lengths.InvalidLengthRows = invalid[:sampleSize]
	}

	statistics := map[constants.Partition]*models.PartitionStatistics{}
	failures := map[constants.Partition]error{}
	var resultsMux sync.Mutex

	var eg errgroup.Group
	if concurrencyLevel > 0 {
		eg.SetLimit(concurrencyLevel)
	}
	for _, partition := range partitions {
		partition := partition
		eg.Go(func() error {
			stats, err := computeStatistics(ctx, partition)

			resultsMux.Lock()
			defer resultsMux.Unlock()
			if err != nil {
				failures[partition.Name] = err
			} else {
				statistics[partition.Name] = stats
			}
			return nil
		})
	}
	_ = eg.Wait()

	result := &ValidationResult{
		Overlaps:   &overlapReport,
		Lengths:    lengths,
		Statistics: statistics,
	}
	if len(failures) == 0 {
		return result, nil
	}

	var first error
	result.PartitionErrors = make(map[constants.Partition]string, len(failures))
	for _, partition := range partitions {
		err, failed := failures[partition.Name]
		if !failed {
			continue
		}
		result.PartitionErrors[partition.Name] = err.Error()
		if first == nil {
			first = err
		}
	}
	return result, first
}

func computeStatistics(ctx context.Context, partition models.Partition) (*models.PartitionStatistics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return distributions.ComputePartitionStatistics(partition)
}
