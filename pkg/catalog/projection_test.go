package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardbinder/cardbinder/pkg/database/models"
)

func intPtr(n int) *int { return &n }

func fullCard() *models.Card {
	era := &models.SetEra{ID: 1, Name: "Classic"}
	return &models.Card{
		ID:          "base1-4",
		Name:        "Charizard",
		Supertype:   "Pokémon",
		HP:          intPtr(120),
		EvolvesFrom: strPtr("Charmeleon"),
		Artist:      strPtr("Mitsuhiro Arita"),
		ImagePath:   "cards/base1-4.png",
		Number:      "4/102",
		Set:         &models.Set{ID: 10, Name: "Base", Era: era, ReleaseDate: strPtr("1999/01/09")},
		Rarity:      &models.Rarity{ID: 3, Name: "Rare Holo"},
		Types:       []models.Type{{ID: 1, Name: "Fire"}},
		Subtypes:    []models.Subtype{{ID: 2, Name: "Stage 2"}},
		Attacks: []models.Attack{{
			ID:     1,
			Name:   "Fire Spin",
			Damage: strPtr("100"),
			Text:   strPtr("Discard 2 Energy cards."),
			Costs: []models.AttackCost{
				{CostType: "Fire"},
				{CostType: "Fire"},
				{CostType: "Fire"},
				{CostType: "Fire"},
			},
		}},
		Abilities: []models.Ability{{
			ID:   1,
			Name: "Energy Burn",
			Text: strPtr("All Energy attached to Charizard are Fire Energy."),
			Type: "Pokémon Power",
		}},
		Weaknesses:  []models.CardWeakness{{Type: models.Type{Name: "Water"}, Value: strPtr("×2")}},
		Resistances: []models.CardResistance{{Type: models.Type{Name: "Fighting"}, Value: strPtr("-30")}},
	}
}

func TestProjectCard(t *testing.T) {
	p := ProjectCard(fullCard(), "https://cards.example.com")

	assert.Equal(t, "base1-4", p.ID)
	assert.Equal(t, "Charizard", p.Name)
	assert.Equal(t, 120, *p.HP)
	assert.Equal(t, "Charmeleon", *p.EvolvesFrom)
	assert.Equal(t, "https://cards.example.com/static/cards/base1-4.png", p.ImagePath)
	assert.Equal(t, "4/102", p.Number)

	require.NotNil(t, p.Set)
	assert.Equal(t, "Base", p.Set.Name)
	assert.Equal(t, "Classic", *p.Set.Era)
	assert.Equal(t, "Rare Holo", *p.Rarity)

	assert.Equal(t, []string{"Fire"}, p.Types)
	assert.Equal(t, []string{"Stage 2"}, p.Subtypes)

	require.Len(t, p.Attacks, 1)
	assert.Equal(t, "Fire Spin", p.Attacks[0].Name)
	assert.Equal(t, []string{"Fire", "Fire", "Fire", "Fire"}, p.Attacks[0].Costs)

	require.Len(t, p.Abilities, 1)
	assert.Equal(t, "Energy Burn", p.Abilities[0].Name)

	require.Len(t, p.Weaknesses, 1)
	assert.Equal(t, "Water", p.Weaknesses[0].Type)
	require.Len(t, p.Resistances, 1)
	assert.Equal(t, "Fighting", p.Resistances[0].Type)
}

// Empty relations serialize as [] and absent scalars as null; in_collection
// disappears entirely when unset
func TestProjectCardEmptyRelationsSerialization(t *testing.T) {
	p := ProjectCard(&models.Card{ID: "promo-1", Name: "Pikachu", Supertype: "Pokémon"}, "")

	data, err := json.Marshal(p)
	require.NoError(t, err)

	raw := string(data)
	assert.Contains(t, raw, `"types":[]`)
	assert.Contains(t, raw, `"attacks":[]`)
	assert.Contains(t, raw, `"rules":[]`)
	assert.Contains(t, raw, `"set":null`)
	assert.Contains(t, raw, `"hp":null`)
	assert.NotContains(t, raw, "in_collection")
}

func TestProjectCardRule(t *testing.T) {
	card := &models.Card{
		ID:   "base1-74",
		Name: "Trainer",
		Rule: &models.Rule{CardID: "base1-74", RuleText: "Discard your hand."},
	}
	p := ProjectCard(card, "")
	assert.Equal(t, []string{"Discard your hand."}, p.Rules)
}

func TestResolveImageURL(t *testing.T) {
	assert.Equal(t, "cards/x.png", ResolveImageURL("", "cards/x.png"))
	assert.Equal(t, "https://a.example/static/cards/x.png", ResolveImageURL("https://a.example", "cards/x.png"))
	assert.Equal(t, "https://a.example/static/cards/x.png", ResolveImageURL("https://a.example/", "/cards/x.png"))
}

func TestWithMembershipDoesNotMutateOriginal(t *testing.T) {
	original := ProjectCard(fullCard(), "")

	flagged := original.WithMembership(true)

	require.NotNil(t, flagged.InCollection)
	assert.True(t, *flagged.InCollection)
	assert.Nil(t, original.InCollection)

	unflagged := original.WithMembership(false)
	require.NotNil(t, unflagged.InCollection)
	assert.False(t, *unflagged.InCollection)
}
