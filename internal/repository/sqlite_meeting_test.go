package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
	"github.com/alexanderramin/horae/internal/repository"
	"github.com/alexanderramin/horae/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteMeetingRepo_ListByDateInsertionOrder(t *testing.T) {
	repo := repository.NewSQLiteMeetingRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	for i, title := range []string{"Standup", "Review", "1:1"} {
		require.NoError(t, repo.Create(ctx, &domain.Meeting{
			ID:              uuid.NewString(),
			Date:            "2026-08-31",
			Title:           title,
			StartMinutes:    600 + i*60,
			DurationMinutes: 30,
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := repo.ListByDate(ctx, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Standup", got[0].Title)
	assert.Equal(t, "1:1", got[2].Title)

	empty, err := repo.ListByDate(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSQLiteMeetingRepo_ListByDateRange(t *testing.T) {
	repo := repository.NewSQLiteMeetingRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, date := range []string{"2026-08-30", "2026-08-31", "2026-09-04", "2026-09-07"} {
		testutil.MakeMeeting(t, repo, date, "Sync", 600, 30)
	}

	got, err := repo.ListByDateRange(ctx, "2026-08-31", "2026-09-06")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-08-31", got[0].Date)
	assert.Equal(t, "2026-09-04", got[1].Date)
}

func TestSQLiteSessionRepo_LastByProject(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	sessions := repository.NewSQLiteSessionRepo(database)
	ctx := context.Background()

	p := testutil.MakeProject(t, projects, "Alpha", 4)

	got, err := sessions.LastByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "never-worked project has no last session")

	older := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	for _, at := range []time.Time{older, newer} {
		require.NoError(t, sessions.Create(ctx, &domain.WorkSessionLog{
			ID: uuid.NewString(), ProjectID: p.ID, StartedAt: at, Minutes: 45,
			CreatedAt: at,
		}))
	}

	got, err = sessions.LastByProject(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.StartedAt.Equal(newer))
}

func TestSQLiteBriefRepo_StoredVerbatim(t *testing.T) {
	repo := repository.NewSQLiteBriefRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	body := "shipped the draft; tomorrow: follow up with legal @ 10, then heads-down"
	require.NoError(t, repo.Create(ctx, &domain.Brief{
		ID: uuid.NewString(), Date: "2026-08-31", Body: body, CreatedAt: time.Now().UTC(),
	}))

	got, err := repo.ListByDate(ctx, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, body, got[0].Body)
}
