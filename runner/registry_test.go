package runner

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []Entry {
	return []Entry{
		{ID: "alpha", Category: CategoryBasic,
			QuickEnv: map[string]string{"BENCHVS_ITERATIONS": "100"}},
		{ID: "beta", Category: CategoryBasic},
		{ID: "gamma", Category: CategoryAdvanced,
			QuickEnv: map[string]string{"BENCHVS_SIZE": "10"}},
	}
}

func TestSelectCategory(t *testing.T) {
	r := NewRegistry(testEntries())

	entries, err := r.Select(CategoryBasic)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alpha", entries[0].ID)
	assert.Equal(t, "beta", entries[1].ID)
}

func TestSelectAll(t *testing.T) {
	r := NewRegistry(testEntries())

	for _, cat := range []Category{CategoryAll, ""} {
		entries, err := r.Select(cat)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "alpha", entries[0].ID)
		assert.Equal(t, "beta", entries[1].ID)
		assert.Equal(t, "gamma", entries[2].ID)
	}
}

func TestSelectUnknownCategory(t *testing.T) {
	r := NewRegistry(testEntries())

	entries, err := r.Select(CategoryExpert)
	require.Error(t, err)
	assert.Nil(t, entries)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, CategoryExpert, cfgErr.Category)
	assert.Contains(t, err.Error(), `"expert"`)
}

func TestConfigurationErrorListsRegisteredCategories(t *testing.T) {
	// The valid list reflects this registry, not a hardcoded set:
	// expert is not registered here and must not be offered.
	r := NewRegistry(testEntries())

	_, err := r.Select("bogus")
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t,
		[]Category{CategoryBasic, CategoryAdvanced, CategoryAll},
		cfgErr.Valid,
	)
	assert.Contains(t, err.Error(), "valid: basic, advanced, all")
	assert.NotContains(t, err.Error(), "expert")
}

func TestSelectEmptyRegistry(t *testing.T) {
	r := NewRegistry(nil)

	entries, err := r.Select(CategoryAll)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCategoriesOrdered(t *testing.T) {
	r := NewRegistry(testEntries())

	assert.Equal(t,
		[]Category{CategoryBasic, CategoryAdvanced},
		r.Categories(),
	)
}

func TestSelectReturnsCopy(t *testing.T) {
	r := NewRegistry(testEntries())

	entries, err := r.Select(CategoryBasic)
	require.NoError(t, err)

	entries[0].ID = "mutated"

	again, err := r.Select(CategoryBasic)
	require.NoError(t, err)
	assert.Equal(t, "alpha", again[0].ID)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t,
		[]Category{CategoryBasic, CategoryAdvanced, CategoryExpert},
		r.Categories(),
	)
	assert.Equal(t, 21, r.Len())

	basics := r.Entries(CategoryBasic)
	require.NotEmpty(t, basics)

	basicIDs := make([]string, 0, len(basics))
	for _, e := range basics {
		basicIDs = append(basicIDs, e.ID)
	}
	assert.Contains(t, basicIDs, "rowcol")

	experts := r.Entries(CategoryExpert)
	expertIDs := make([]string, 0, len(experts))
	for _, e := range experts {
		expertIDs = append(expertIDs, e.ID)
	}
	assert.Contains(t, expertIDs, "defercost")

	seen := make(map[string]bool)

	for _, cat := range r.Categories() {
		for _, e := range r.Entries(cat) {
			assert.Falsef(t, seen[e.ID], "duplicate id %s", e.ID)
			seen[e.ID] = true

			for k := range e.QuickEnv {
				assert.Truef(t, strings.HasPrefix(k, "BENCHVS_"),
					"quick env %s for %s lacks BENCHVS_ prefix", k, e.ID)
			}
		}
	}
}
