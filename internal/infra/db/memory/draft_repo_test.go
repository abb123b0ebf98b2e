package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icislabs/contract-workbench/internal/domain/drafts"
)

func TestDraftRepositoryListNewestFirst(t *testing.T) {
	repo := NewDraftRepository()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for i, title := range []string{"first", "second", "third"} {
		err := repo.Create(ctx, &drafts.Draft{
			Title:     title,
			Content:   "c",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "first", list[2].Title)

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestDraftRepositoryTiesBreakOnID(t *testing.T) {
	repo := NewDraftRepository()
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &drafts.Draft{Title: "a", Content: "c", CreatedAt: at}))
	require.NoError(t, repo.Create(ctx, &drafts.Draft{Title: "b", Content: "c", CreatedAt: at}))

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Title)
}

func TestDraftRepositoryGetNotFound(t *testing.T) {
	repo := NewDraftRepository()

	_, err := repo.Get(context.Background(), 42)
	assert.ErrorIs(t, err, drafts.ErrNotFound)
}
