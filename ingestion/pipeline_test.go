package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/storage"
	"github.com/poiesic/answerit/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T, opts ...Option) (*Pipeline, storage.CorpusRepository) {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	pipeline, err := NewPipeline(repo, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { pipeline.Close() })

	return pipeline, repo
}

func TestNewPipeline(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		pipeline, _ := newTestPipeline(t)
		assert.NotNil(t, pipeline)
	})

	t.Run("with options", func(t *testing.T) {
		pipeline, _ := newTestPipeline(t, WithPoolSize(2), WithBatchSize(10))
		assert.NotNil(t, pipeline)
	})

	t.Run("nil corpus repository", func(t *testing.T) {
		_, err := NewPipeline(nil)
		assert.Equal(t, ErrCorpusRepositoryRequired, err)
	})
}

func TestIngestRecords_PreservesOrder(t *testing.T) {
	// Small batch size so ordering must survive batch boundaries
	pipeline, repo := newTestPipeline(t, WithBatchSize(2))

	ctx := context.Background()
	texts := []string{
		"Calibrate pH meter daily using buffer solutions.",
		"Centrifuge tubes must be balanced before spinning.",
		"Store samples at four degrees celsius.",
		"Record all results in the logbook.",
		"Wear gloves when handling reagents.",
	}
	records := make([]*core.Record, len(texts))
	for i, text := range texts {
		records[i] = &core.Record{Text: text}
	}

	stored, err := pipeline.IngestRecords(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, len(texts), stored)

	all, err := repo.GetAllRecords(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(texts))
	for i, record := range all {
		assert.Equal(t, texts[i], record.Text)
	}
}

func TestIngestRecords_DerivesContentIDs(t *testing.T) {
	pipeline, repo := newTestPipeline(t)

	ctx := context.Background()
	_, err := pipeline.IngestRecords(ctx, []*core.Record{
		{Text: "Wear gloves when handling reagents."},
	})
	require.NoError(t, err)

	want := core.IDFromContent("Wear gloves when handling reagents.")
	record, err := repo.GetRecord(ctx, want)
	require.NoError(t, err)
	assert.Equal(t, "Wear gloves when handling reagents.", record.Text)
}

func TestIngestRecords_ValidationFailure(t *testing.T) {
	pipeline, repo := newTestPipeline(t, WithBatchSize(2))

	ctx := context.Background()
	stored, err := pipeline.IngestRecords(ctx, []*core.Record{
		{Id: "a", Text: "First procedure."},
		{Id: "b", Text: "Second procedure."},
		{Id: "c", Text: "   "},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrEmptyText))
	// The first full batch was written before the bad record was reached
	assert.Equal(t, 2, stored)

	count, err := repo.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIngestRecords_DuplicateID(t *testing.T) {
	pipeline, _ := newTestPipeline(t)

	ctx := context.Background()
	_, err := pipeline.IngestRecords(ctx, []*core.Record{
		{Id: "sop1", Text: "First text."},
	})
	require.NoError(t, err)

	_, err = pipeline.IngestRecords(ctx, []*core.Record{
		{Id: "sop1", Text: "Conflicting text."},
	})
	assert.True(t, errors.Is(err, storage.ErrDuplicateKey))
}

func TestIngestRecords_Closed(t *testing.T) {
	pipeline, _ := newTestPipeline(t)
	require.NoError(t, pipeline.Close())

	_, err := pipeline.IngestRecords(context.Background(), []*core.Record{
		{Id: "sop1", Text: "Some text."},
	})
	assert.Equal(t, ErrPipelineClosed, err)
}
