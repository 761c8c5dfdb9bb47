package dashboard

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lmoretti/respite/internal/domain"
	"github.com/lmoretti/respite/internal/service"
)

// Snapshot is one dashboard load: the stress analysis plus the best-effort
// extras that happened to succeed.
type Snapshot struct {
	Analysis           *domain.StressAnalysis
	TaskCount          int
	CalendarEventCount int
	// CheckinStatus is nil when the status fetch failed; the check-in
	// prompt is simply absent then.
	CheckinStatus *domain.CheckinStatus
}

// NextCheckin returns the next due check-in, or nil when none is due or the
// status fetch failed.
func (s *Snapshot) NextCheckin() *domain.CheckinType {
	if s.CheckinStatus == nil {
		return nil
	}
	return s.CheckinStatus.NextCheckin
}

// Aggregator fans out the dashboard's three backend reads concurrently and
// joins them into one Snapshot. The fetches are not equally critical: the
// stress analysis failing fails the whole load, while task and check-in
// status failures degrade to an empty count and an absent prompt.
type Aggregator struct {
	wellness service.WellnessService
	tasks    service.TaskService
	checkins service.CheckinService
	log      *log.Logger
}

// New creates an Aggregator. logger may be nil.
func New(wellness service.WellnessService, tasks service.TaskService, checkins service.CheckinService, logger *log.Logger) *Aggregator {
	return &Aggregator{wellness: wellness, tasks: tasks, checkins: checkins, log: logger}
}

// Load fetches all three sources concurrently and waits for every fetch to
// settle before deciding the outcome.
func (a *Aggregator) Load(ctx context.Context) (*Snapshot, error) {
	var (
		wg          sync.WaitGroup
		analysis    *domain.StressAnalysis
		analysisErr error
		tasks       *domain.TaskList
		tasksErr    error
		status      *domain.CheckinStatus
		statusErr   error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		analysis, analysisErr = a.wellness.Analyze(ctx)
	}()
	go func() {
		defer wg.Done()
		tasks, tasksErr = a.tasks.List(ctx)
	}()
	go func() {
		defer wg.Done()
		status, statusErr = a.checkins.Status(ctx)
	}()
	wg.Wait()

	if analysisErr != nil {
		return nil, analysisErr
	}

	snap := &Snapshot{
		Analysis:           analysis,
		CalendarEventCount: analysis.DataSources.CalendarEvents,
	}

	if tasksErr != nil {
		a.warn("task fetch failed, degrading to zero", tasksErr)
	} else if tasks != nil {
		snap.TaskCount = tasks.Total
	}

	if statusErr != nil {
		a.warn("check-in status fetch failed, prompt absent", statusErr)
	} else {
		snap.CheckinStatus = status
	}

	return snap, nil
}

func (a *Aggregator) warn(msg string, err error) {
	if a.log != nil {
		a.log.Warn(msg, "error", err)
	}
}
