package survey

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_DisplayOrder(t *testing.T) {
	want := []Category{Avoidance, Aggression, Accommodation, Compromise, Collaboration}
	if diff := cmp.Diff(want, Categories()); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}

	// Callers cannot reorder the package copy.
	got := Categories()
	got[0] = Collaboration
	assert.Equal(t, Avoidance, Categories()[0])
}

func TestDefaultMapping_Key(t *testing.T) {
	m := DefaultMapping()
	want := Mapping{
		Avoidance:     {6, 14, 16, 17, 25},
		Aggression:    {3, 7, 8, 15, 24},
		Accommodation: {1, 9, 12, 19, 22},
		Compromise:    {5, 10, 11, 20, 23},
		Collaboration: {2, 4, 14, 18, 21},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("DefaultMapping() mismatch (-want +got):\n%s", diff)
	}
	for c, ordinals := range m {
		assert.Len(t, ordinals, 5, "category %s", c)
	}
}

// Statement 14 is scored twice in the published key. Keep it that way.
func TestDefaultMapping_Statement14CountsTwice(t *testing.T) {
	m := DefaultMapping()
	assert.Equal(t, []int{14}, m.SharedOrdinals())
	assert.Equal(t, []Category{Avoidance, Collaboration}, m.CategoriesFor(14))
}

func TestDefaultMapping_Statement13Unscored(t *testing.T) {
	m := DefaultMapping()
	assert.Equal(t, []int{13}, m.Unmapped())
	assert.Empty(t, m.CategoriesFor(13))
}

func TestMapping_CategoriesFor(t *testing.T) {
	m := DefaultMapping()
	tests := []struct {
		ordinal int
		want    []Category
	}{
		{1, []Category{Accommodation}},
		{2, []Category{Collaboration}},
		{3, []Category{Aggression}},
		{5, []Category{Compromise}},
		{6, []Category{Avoidance}},
		{25, []Category{Avoidance}},
		{0, nil},
		{26, nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.CategoriesFor(tt.ordinal), "ordinal %d", tt.ordinal)
	}
}

func TestStatements(t *testing.T) {
	sts := Statements()
	require.Len(t, sts, StatementCount)
	for i, st := range sts {
		assert.Equal(t, i+1, st.Ordinal)
		assert.NotEmpty(t, st.Text)
	}
	assert.Equal(t, "14. I find conflict stressful and will avoid it any way I can.", sts[13].Text)

	st, ok := StatementByOrdinal(25)
	require.True(t, ok)
	assert.Equal(t, "25. I avoid taking positions that would create controversy.", st.Text)

	_, ok = StatementByOrdinal(0)
	assert.False(t, ok)
	_, ok = StatementByOrdinal(26)
	assert.False(t, ok)
}
