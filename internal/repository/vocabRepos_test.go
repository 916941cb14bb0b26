package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyspell/internal/corrector"
)

func newTestRepo(t *testing.T) *VocabRepository {
	t.Helper()
	vr, err := NewVocabRepository("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = vr.Close() })
	return vr
}

func TestVocabRepositoryRoundTrip(t *testing.T) {
	vr := newTestRepo(t)
	ctx := context.Background()

	v := corrector.BuildVocabulary([]string{"ռամ", "դամ", "ասում", "ասում", "Ասում"})
	require.NoError(t, vr.Save(ctx, v.Entries()))

	got, err := vr.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, v.Entries(), got)
}

func TestVocabRepositoryReplacesSnapshot(t *testing.T) {
	vr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, vr.Save(ctx, []corrector.Entry{{Word: "ա", Frequency: 0.5}, {Word: "բ", Frequency: 0.5}}))
	require.NoError(t, vr.Save(ctx, []corrector.Entry{{Word: "գ", Frequency: 1}}))

	got, err := vr.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []corrector.Entry{{Word: "գ", Frequency: 1}}, got)
}

func TestVocabRepositoryKeepsOrderPastTen(t *testing.T) {
	vr := newTestRepo(t)
	ctx := context.Background()

	var entries []corrector.Entry
	for _, w := range []string{"ա", "բ", "գ", "դ", "ե", "զ", "է", "ը", "թ", "ժ", "ի", "լ"} {
		entries = append(entries, corrector.Entry{Word: w, Frequency: 1.0 / 12})
	}
	require.NoError(t, vr.Save(ctx, entries))

	got, err := vr.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestVocabRepositoryEmpty(t *testing.T) {
	_, err := newTestRepo(t).Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}
