package ports

import (
	"context"
	"testing"

	"github.com/aretw0/dfa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(input *string) *domain.Report {
	q0, q1 := domain.NewState("q0"), domain.NewState("q1")
	return domain.NewReport("contract", input, &domain.Result{
		Accepted: true,
		Consumed: 1,
		Final:    q1,
		Counts:   map[*domain.State]uint64{q0: 1, q1: 1},
	})
}

// RunReportStoreContract runs a suite of tests to verify that a ReportStore implementation
// adheres to the defined interface contract.
func RunReportStoreContract(t *testing.T, store ReportStore) {
	ctx := context.Background()

	t.Run("Save and Load", func(t *testing.T) {
		input := "a"
		report := sampleReport(&input)

		err := store.Save(ctx, report)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, report.ID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, report.ID, loaded.ID)
		assert.Equal(t, "contract", loaded.Automaton)
		require.NotNil(t, loaded.Input)
		assert.Equal(t, "a", *loaded.Input)
		assert.True(t, loaded.Accepted)
		assert.Equal(t, "q1", loaded.Final)
		assert.Equal(t, map[string]uint64{"q0": 1, "q1": 1}, loaded.Counts)
		assert.True(t, report.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Absent Input Round Trip", func(t *testing.T) {
		report := sampleReport(nil)
		require.NoError(t, store.Save(ctx, report))

		loaded, err := store.Load(ctx, report.ID)
		require.NoError(t, err)
		assert.Nil(t, loaded.Input)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-report")
		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		report := sampleReport(nil)
		require.NoError(t, store.Save(ctx, report))

		err := store.Delete(ctx, report.ID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, report.ID)
		assert.ErrorIs(t, err, domain.ErrReportNotFound, "Load after Delete should return ErrReportNotFound")
	})

	t.Run("List", func(t *testing.T) {
		r1, r2 := sampleReport(nil), sampleReport(nil)
		_ = store.Save(ctx, r1)
		_ = store.Save(ctx, r2)

		defer func() {
			_ = store.Delete(ctx, r1.ID)
			_ = store.Delete(ctx, r2.ID)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, r1.ID)
		assert.Contains(t, ids, r2.ID)
	})
}
