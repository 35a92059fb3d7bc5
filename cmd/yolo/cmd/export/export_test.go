package export

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
	"yolo-transcript/internal/app/testutil"
)

func rows(n, from int) []model.Transcription {
	out := make([]model.Transcription, n)
	for i := range out {
		out[i] = model.Transcription{ID: fmt.Sprintf("t-%d", from+i), UserID: "user-1"}
	}
	return out
}

func TestCollect_Pages(t *testing.T) {
	store := testutil.NewMockStore(t)
	base := repository.TranscriptionFilter{UserID: "user-1", Status: model.StatusCompleted, Limit: pageSize}

	first := base
	second := base
	second.Offset = pageSize
	store.On("ListTranscriptions", mock.Anything, first).Return(rows(pageSize, 0), 130, nil)
	store.On("ListTranscriptions", mock.Anything, second).Return(rows(30, pageSize), 130, nil)

	got, err := collect(context.Background(), store, repository.TranscriptionFilter{UserID: "user-1", Status: model.StatusCompleted})

	require.NoError(t, err)
	assert.Len(t, got, 130)
	assert.Equal(t, "t-129", got[129].ID)
	store.AssertExpectations(t)
}

func TestCollect_Error(t *testing.T) {
	store := testutil.NewMockStore(t)
	store.On("ListTranscriptions", mock.Anything, mock.Anything).Return(nil, 0, assert.AnError)

	_, err := collect(context.Background(), store, repository.TranscriptionFilter{UserID: "user-1"})
	assert.ErrorIs(t, err, assert.AnError)
}
