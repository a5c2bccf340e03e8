package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardbinder/cardbinder/pkg/database/models"
)

func strPtr(s string) *string { return &s }

func cardInSet(id string, set *models.Set) *models.Card {
	return &models.Card{ID: id, Name: id, Set: set}
}

func TestGroupByEraAndSet(t *testing.T) {
	classic := &models.SetEra{ID: 1, Name: "Classic"}
	neo := &models.SetEra{ID: 2, Name: "Neo"}

	base := &models.Set{ID: 10, Name: "Base", Era: classic, ReleaseDate: strPtr("1999/01/09")}
	jungle := &models.Set{ID: 11, Name: "Jungle", Era: classic, ReleaseDate: strPtr("1999/06/16")}
	genesis := &models.Set{ID: 20, Name: "Neo Genesis", Era: neo}

	groups := GroupByEraAndSet([]*models.Card{
		cardInSet("base1-4", base),
		cardInSet("base1-58", base),
		cardInSet("neo1-1", genesis),
		cardInSet("jungle-7", jungle),
	})

	require.Len(t, groups, 2)

	assert.Equal(t, "Classic", groups[0].EraName)
	require.Len(t, groups[0].Sets, 2)
	assert.Equal(t, "Base", groups[0].Sets[0].SetName)
	assert.Equal(t, "Jungle", groups[0].Sets[1].SetName)

	// Card order inside a set follows input order
	require.Len(t, groups[0].Sets[0].Cards, 2)
	assert.Equal(t, "base1-4", groups[0].Sets[0].Cards[0].ID)
	assert.Equal(t, "base1-58", groups[0].Sets[0].Cards[1].ID)

	assert.Equal(t, "Neo", groups[1].EraName)
	require.Len(t, groups[1].Sets, 1)
	assert.Equal(t, "Neo Genesis", groups[1].Sets[0].SetName)
}

func TestGroupByEraAndSetOrphans(t *testing.T) {
	base := &models.Set{ID: 10, Name: "Base", Era: &models.SetEra{ID: 1, Name: "Classic"}}

	groups := GroupByEraAndSet([]*models.Card{
		{ID: "orphan-1"},
		cardInSet("base1-4", base),
		{ID: "orphan-2"},
	})

	// Orphans land in a trailing unnamed group regardless of input position
	require.Len(t, groups, 2)
	assert.Equal(t, "Classic", groups[0].EraName)

	orphans := groups[1]
	assert.Empty(t, orphans.EraName)
	require.Len(t, orphans.Sets, 1)
	require.Len(t, orphans.Sets[0].Cards, 2)
	assert.Equal(t, "orphan-1", orphans.Sets[0].Cards[0].ID)
	assert.Equal(t, "orphan-2", orphans.Sets[0].Cards[1].ID)
}

func TestGroupByEraAndSetSetlessEra(t *testing.T) {
	promo := &models.Set{ID: 30, Name: "Promos"}

	groups := GroupByEraAndSet([]*models.Card{cardInSet("promo-1", promo)})

	// A set without an era still groups, under the zero era
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].EraName)
	assert.Equal(t, "Promos", groups[0].Sets[0].SetName)
}

func TestGroupByEraAndSetEmpty(t *testing.T) {
	groups := GroupByEraAndSet(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestSortSetsByReleaseDate(t *testing.T) {
	sets := []models.Set{
		{ID: 4, Name: "Promos"},
		{ID: 2, Name: "Jungle", ReleaseDate: strPtr("1999/06/16")},
		{ID: 3, Name: "Fossil", ReleaseDate: strPtr("1999/06/16")},
		{ID: 1, Name: "Base", ReleaseDate: strPtr("1999/01/09")},
	}

	SortSetsByReleaseDate(sets)

	assert.Equal(t, "Base", sets[0].Name)
	assert.Equal(t, "Jungle", sets[1].Name)
	assert.Equal(t, "Fossil", sets[2].Name)
	// Unknown release dates sort last
	assert.Equal(t, "Promos", sets[3].Name)
}
