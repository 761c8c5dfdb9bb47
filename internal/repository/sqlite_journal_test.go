package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lmoretti/respite/internal/domain"
	"github.com/lmoretti/respite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalRepo(db)
	ctx := context.Background()

	entry := testutil.NewTestCheckinEntry(domain.CheckinMorning, testutil.WithNote("slow start"))
	require.NoError(t, repo.Create(ctx, entry))

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, fetched.ID)
	assert.Equal(t, domain.JournalCheckin, fetched.Kind)
	assert.Equal(t, domain.CheckinMorning, fetched.CheckinType)
	assert.Equal(t, 6, fetched.Mood)
	assert.Equal(t, "slow start", fetched.Note)
	assert.Equal(t, entry.CreatedAt.Format(time.RFC3339), fetched.CreatedAt.Format(time.RFC3339))
}

func TestJournalRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestJournalRepo_Create_RejectsUnknownKind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalRepo(db)

	entry := testutil.NewTestCheckinEntry(domain.CheckinMorning)
	entry.Kind = domain.JournalKind("nap")
	assert.Error(t, repo.Create(context.Background(), entry))
}

func TestJournalRepo_ListRecent_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	older := testutil.NewTestCheckinEntry(domain.CheckinMorning, testutil.WithCreatedAt(now.Add(-2*time.Hour)))
	newer := testutil.NewTestBreakEntry(domain.BreakWalk, testutil.WithCreatedAt(now.Add(-1*time.Hour)))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	entries, err := repo.ListRecent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].ID)
	assert.Equal(t, older.ID, entries[1].ID)
}

func TestJournalRepo_ListRecent_ExcludesOld(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalRepo(db)
	ctx := context.Background()

	recent := testutil.NewTestCheckinEntry(domain.CheckinEvening)
	stale := testutil.NewTestCheckinEntry(domain.CheckinEvening,
		testutil.WithCreatedAt(time.Now().UTC().AddDate(0, 0, -30)))
	require.NoError(t, repo.Create(ctx, recent))
	require.NoError(t, repo.Create(ctx, stale))

	entries, err := repo.ListRecent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, recent.ID, entries[0].ID)
}

func TestJournalRepo_ListRecentByKind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestCheckinEntry(domain.CheckinMorning)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestBreakEntry(domain.BreakStretch)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestBreakEntry(domain.BreakWalk)))

	breaks, err := repo.ListRecentByKind(ctx, domain.JournalBreak, 7)
	require.NoError(t, err)
	assert.Len(t, breaks, 2)

	checkins, err := repo.ListRecentByKind(ctx, domain.JournalCheckin, 7)
	require.NoError(t, err)
	assert.Len(t, checkins, 1)
}

func TestJournalRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalRepo(db)
	ctx := context.Background()

	entry := testutil.NewTestBreakEntry(domain.BreakMeditation)
	require.NoError(t, repo.Create(ctx, entry))
	require.NoError(t, repo.Delete(ctx, entry.ID))

	_, err := repo.GetByID(ctx, entry.ID)
	assert.Error(t, err)
}
