package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lmoretti/respite/internal/domain"
	"github.com/lmoretti/respite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBreakService records write-through calls and can be told to fail.
type fakeBreakService struct {
	mu          sync.Mutex
	startErr    error
	completeErr error
	skipErr     error
	startCalls  int
	completed   []string
	skipped     []string
	ack         domain.BreakAck
}

func (f *fakeBreakService) Schedule(ctx context.Context, autoInsert bool) (*domain.BreakSchedule, error) {
	return &domain.BreakSchedule{}, nil
}

func (f *fakeBreakService) Start(ctx context.Context, breakID string, breakType domain.BreakType, durationMin int, reason string) (*domain.BreakAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.startCalls++
	if f.startErr != nil {
		return nil, f.startErr
	}
	ack := f.ack
	return &ack, nil
}

func (f *fakeBreakService) Complete(ctx context.Context, breakID, feedback string) (*domain.BreakAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completeErr != nil {
		return nil, f.completeErr
	}
	f.completed = append(f.completed, breakID)
	ack := f.ack
	return &ack, nil
}

func (f *fakeBreakService) Skip(ctx context.Context, breakID, reason string) (*domain.BreakAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.skipErr != nil {
		return nil, f.skipErr
	}
	f.skipped = append(f.skipped, breakID)
	ack := f.ack
	return &ack, nil
}

func (f *fakeBreakService) Current(ctx context.Context) (*domain.CurrentBreak, error) {
	return &domain.CurrentBreak{}, nil
}

func (f *fakeBreakService) Content(ctx context.Context, breakType domain.BreakType) (*domain.BreakContent, error) {
	return &domain.BreakContent{}, nil
}

func (f *fakeBreakService) History(ctx context.Context, days int) (*domain.BreakHistory, error) {
	return &domain.BreakHistory{}, nil
}

func newTrackedSchedule(t *testing.T, svc *fakeBreakService, notify NotifyFunc) (*Tracker, []string) {
	t.Helper()
	tr := New(svc, notify)
	tr.Reset(testutil.NewTestSchedule())
	return tr, tr.IDs()
}

func TestTracker_LifecycleHappyPath(t *testing.T) {
	svc := &fakeBreakService{}
	tr, ids := newTrackedSchedule(t, svc, nil)
	ctx := context.Background()

	assert.Equal(t, domain.BreakUpcoming, tr.StatusOf(ids[0]))

	_, err := tr.Start(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, domain.BreakActive, tr.StatusOf(ids[0]))
	assert.Equal(t, ids[0], tr.ActiveID())

	_, err = tr.Complete(ctx, ids[0], "felt good")
	require.NoError(t, err)
	assert.Equal(t, domain.BreakCompleted, tr.StatusOf(ids[0]))
	assert.Empty(t, tr.ActiveID())
	assert.Equal(t, []string{ids[0]}, svc.completed)
}

func TestTracker_DoubleStartRejected(t *testing.T) {
	svc := &fakeBreakService{}
	tr, ids := newTrackedSchedule(t, svc, nil)
	ctx := context.Background()

	_, err := tr.Start(ctx, ids[0])
	require.NoError(t, err)

	_, err = tr.Start(ctx, ids[0])
	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Reason, "already active")
	// The rejection never reached the backend.
	assert.Equal(t, 1, svc.startCalls)
}

func TestTracker_SingleActiveEnforced(t *testing.T) {
	svc := &fakeBreakService{}
	tr, ids := newTrackedSchedule(t, svc, nil)
	ctx := context.Background()

	_, err := tr.Start(ctx, ids[0])
	require.NoError(t, err)

	_, err = tr.Start(ctx, ids[1])
	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, ids[1], serr.BreakID)
	// The first break is untouched.
	assert.Equal(t, domain.BreakActive, tr.StatusOf(ids[0]))
	assert.Equal(t, domain.BreakUpcoming, tr.StatusOf(ids[1]))
}

func TestTracker_CompleteBeforeStartRejected(t *testing.T) {
	svc := &fakeBreakService{}
	tr, ids := newTrackedSchedule(t, svc, nil)

	_, err := tr.Complete(context.Background(), ids[0], "")
	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Reason, "not started")
	assert.Empty(t, svc.completed)
}

func TestTracker_CompletedIsTerminal(t *testing.T) {
	svc := &fakeBreakService{}
	tr, ids := newTrackedSchedule(t, svc, nil)
	ctx := context.Background()

	_, err := tr.Start(ctx, ids[0])
	require.NoError(t, err)
	_, err = tr.Complete(ctx, ids[0], "")
	require.NoError(t, err)

	_, err = tr.Start(ctx, ids[0])
	assert.Error(t, err)
	_, err = tr.Complete(ctx, ids[0], "")
	assert.Error(t, err)
	_, err = tr.Skip(ctx, ids[0], "")
	assert.Error(t, err)
}

func TestTracker_StartWriteThroughFailureLeavesStateUnchanged(t *testing.T) {
	svc := &fakeBreakService{startErr: errors.New("backend down")}
	tr, ids := newTrackedSchedule(t, svc, nil)
	ctx := context.Background()

	_, err := tr.Start(ctx, ids[0])
	require.Error(t, err)
	assert.Equal(t, domain.BreakUpcoming, tr.StatusOf(ids[0]))
	assert.Empty(t, tr.ActiveID())

	// Retry succeeds once the backend recovers.
	svc.startErr = nil
	_, err = tr.Start(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, domain.BreakActive, tr.StatusOf(ids[0]))
}

func TestTracker_CompleteWriteThroughFailureKeepsActive(t *testing.T) {
	svc := &fakeBreakService{}
	tr, ids := newTrackedSchedule(t, svc, nil)
	ctx := context.Background()

	_, err := tr.Start(ctx, ids[0])
	require.NoError(t, err)

	svc.completeErr = errors.New("backend down")
	_, err = tr.Complete(ctx, ids[0], "")
	require.Error(t, err)
	assert.Equal(t, domain.BreakActive, tr.StatusOf(ids[0]))
	assert.Equal(t, ids[0], tr.ActiveID())

	svc.completeErr = nil
	_, err = tr.Complete(ctx, ids[0], "")
	require.NoError(t, err)
	assert.Equal(t, domain.BreakCompleted, tr.StatusOf(ids[0]))
}

func TestTracker_CompletionNotifies(t *testing.T) {
	var messages []string
	svc := &fakeBreakService{ack: domain.BreakAck{NextRecommendation: "Drink some water."}}
	tr, ids := newTrackedSchedule(t, svc, func(msg string) {
		messages = append(messages, msg)
	})
	ctx := context.Background()

	_, err := tr.Start(ctx, ids[0])
	require.NoError(t, err)
	_, err = tr.Complete(ctx, ids[0], "")
	require.NoError(t, err)

	require.Len(t, messages, 1)
	assert.Equal(t, "Drink some water.", messages[0])
}

func TestTracker_SkipActiveReturnsToUpcoming(t *testing.T) {
	svc := &fakeBreakService{}
	tr, ids := newTrackedSchedule(t, svc, nil)
	ctx := context.Background()

	_, err := tr.Start(ctx, ids[0])
	require.NoError(t, err)

	_, err = tr.Skip(ctx, ids[0], "meeting ran over")
	require.NoError(t, err)
	assert.Equal(t, domain.BreakUpcoming, tr.StatusOf(ids[0]))
	assert.Empty(t, tr.ActiveID())
	assert.Equal(t, []string{ids[0]}, svc.skipped)

	// A skipped break can be started again.
	_, err = tr.Start(ctx, ids[0])
	require.NoError(t, err)
}

func TestTracker_UnknownBreakRejected(t *testing.T) {
	svc := &fakeBreakService{}
	tr, _ := newTrackedSchedule(t, svc, nil)

	_, err := tr.Start(context.Background(), "meditation-99:99-7")
	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 0, svc.startCalls)
}

func TestTracker_ResetDiscardsState(t *testing.T) {
	svc := &fakeBreakService{}
	tr, ids := newTrackedSchedule(t, svc, nil)
	ctx := context.Background()

	_, err := tr.Start(ctx, ids[0])
	require.NoError(t, err)

	tr.Reset(testutil.NewTestSchedule())
	assert.Empty(t, tr.ActiveID())
	assert.Equal(t, domain.BreakUpcoming, tr.StatusOf(ids[0]))
}

func TestTracker_AdoptMarksActive(t *testing.T) {
	svc := &fakeBreakService{}
	tr := New(svc, nil)

	rec := testutil.NewTestRecommendation(domain.BreakWalk)
	require.NoError(t, tr.Adopt("walk-10:30-0", rec))
	assert.Equal(t, domain.BreakActive, tr.StatusOf("walk-10:30-0"))
	assert.Equal(t, "walk-10:30-0", tr.ActiveID())

	// Adopting while another break is active is rejected.
	err := tr.Adopt("stretch-15:30-2", rec)
	var serr *StateError
	require.ErrorAs(t, err, &serr)
}

func TestTracker_StatusReadsDoNotBlockOnInFlightWrites(t *testing.T) {
	release := make(chan struct{})
	svc := &blockingBreakService{release: release, started: make(chan struct{})}
	tr := New(svc, nil)
	tr.Reset(testutil.NewTestSchedule())
	ids := tr.IDs()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = tr.Start(context.Background(), ids[0])
	}()

	// Wait for the write-through to be in flight, then read state.
	<-svc.started
	assert.Equal(t, domain.BreakUpcoming, tr.StatusOf(ids[0]))
	assert.Empty(t, tr.ActiveID())

	close(release)
	<-done
	assert.Equal(t, domain.BreakActive, tr.StatusOf(ids[0]))
}

// blockingBreakService parks Start until released so tests can observe
// tracker state during an in-flight write-through.
type blockingBreakService struct {
	fakeBreakService
	release chan struct{}
	started chan struct{}
	once    sync.Once
}

func (b *blockingBreakService) Start(ctx context.Context, breakID string, breakType domain.BreakType, durationMin int, reason string) (*domain.BreakAck, error) {
	b.once.Do(func() { close(b.started) })
	<-b.release
	return &domain.BreakAck{}, nil
}
