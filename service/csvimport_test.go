package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"zealvibe/catalog-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAffirmationCSV_BasicRow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	items := ParseAffirmationCSV("text,category,tags,active\n\"A\",\"Success\",\"x;y\",\"true\"", now)

	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Text)
	assert.Equal(t, "Success", items[0].Category)
	assert.Equal(t, []string{"x", "y"}, items[0].Tags)
	assert.True(t, items[0].IsActive)
	assert.Equal(t, 0, items[0].ViewCount)
	assert.Equal(t, now, items[0].CreatedAt)
	assert.Equal(t, now, items[0].UpdatedAt)
}

func TestParseAffirmationCSV_JapaneseHeaders(t *testing.T) {
	items := ParseAffirmationCSV("テキスト,カテゴリ,タグ,有効\n私は成功している,Success,自信;成功,はい", time.Now())

	require.Len(t, items, 1)
	assert.Equal(t, "私は成功している", items[0].Text)
	assert.Equal(t, "Success", items[0].Category)
	assert.Equal(t, []string{"自信", "成功"}, items[0].Tags)
	assert.True(t, items[0].IsActive)
}

func TestParseAffirmationCSV_ActiveValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"はい", true},
		{"false", false},
		{"0", false},
		{"yes", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			items := ParseAffirmationCSV("text,category,有効\nA,Success,"+tt.value, time.Now())

			require.Len(t, items, 1)
			assert.Equal(t, tt.want, items[0].IsActive)
		})
	}
}

func TestParseAffirmationCSV_ActiveDefaultsTrue(t *testing.T) {
	items := ParseAffirmationCSV("text,category\nA,Success", time.Now())

	require.Len(t, items, 1)
	assert.True(t, items[0].IsActive)
}

func TestParseAffirmationCSV_DropsIncompleteRows(t *testing.T) {
	csv := "text,category\n" +
		"A,Success\n" +
		",Success\n" +
		"B,\n" +
		",\n" +
		"C,Health"

	items := ParseAffirmationCSV(csv, time.Now())

	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEmpty(t, item.Text)
		assert.NotEmpty(t, item.Category)
	}
}

func TestParseAffirmationCSV_IgnoresUnknownHeaders(t *testing.T) {
	items := ParseAffirmationCSV("text,category,bogus\nA,Success,whatever", time.Now())

	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Text)
}

func TestParseAffirmationCSV_SkipsBlankLines(t *testing.T) {
	items := ParseAffirmationCSV("text,category\n\nA,Success\n   \nB,Health\n", time.Now())

	assert.Len(t, items, 2)
}

func TestParseAffirmationCSV_StripsOneQuoteLayer(t *testing.T) {
	items := ParseAffirmationCSV("text,category\n\"\"A\"\",Success", time.Now())

	require.Len(t, items, 1)
	// Only the outer layer comes off
	assert.Equal(t, `"A"`, items[0].Text)
}

func TestParseAffirmationCSV_HeaderOnly(t *testing.T) {
	assert.Empty(t, ParseAffirmationCSV("text,category,tags,active", time.Now()))
	assert.Empty(t, ParseAffirmationCSV("", time.Now()))
}

func TestParseAffirmationCSV_Template(t *testing.T) {
	items := ParseAffirmationCSV(AffirmationTemplate, time.Now())

	require.Len(t, items, 2)
	assert.Equal(t, "私は成功している", items[0].Text)
	assert.Equal(t, "Success", items[0].Category)
	assert.Equal(t, "Health", items[1].Category)
	assert.True(t, items[0].IsActive)
}

type fakeInserter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeInserter) Insert(_ context.Context, _ *model.Affirmation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return "id", f.err
}

func TestImportAffirmations_InsertsEveryValidRow(t *testing.T) {
	ins := &fakeInserter{}

	count, err := ImportAffirmations(context.Background(), ins, "text,category\nA,Success\nB,Health\nC,Love")

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, ins.calls)
}

func TestImportAffirmations_NoValidRows(t *testing.T) {
	ins := &fakeInserter{}

	_, err := ImportAffirmations(context.Background(), ins, "text,category\n,Success\nB,")

	require.ErrorIs(t, err, ErrNoValidRows)
	assert.Zero(t, ins.calls, "no inserts may happen when every row is invalid")
}

func TestImportAffirmations_InsertFailure(t *testing.T) {
	ins := &fakeInserter{err: errors.New("boom")}

	_, err := ImportAffirmations(context.Background(), ins, "text,category\nA,Success\nB,Health")

	require.Error(t, err)
	// Every insert is still attempted, there is no all-or-nothing batch
	assert.Equal(t, 2, ins.calls)
}
