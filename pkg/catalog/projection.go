package catalog

import (
	"strings"

	"github.com/cardbinder/cardbinder/pkg/database/models"
)

// CardProjection is the external representation of a card aggregate with
// every relation inlined. InCollection is nil when the endpoint does not
// carry the membership flag at all (e.g. the collection dump, where every
// card is owned by definition).
type CardProjection struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Supertype   string                 `json:"supertype"`
	HP          *int                   `json:"hp"`
	EvolvesFrom *string                `json:"evolvesFrom"`
	Artist      *string                `json:"artist"`
	ImagePath   string                 `json:"image_path"`
	Number      string                 `json:"number"`
	Set         *SetProjection         `json:"set"`
	Rarity      *string                `json:"rarity"`
	Types       []string               `json:"types"`
	Subtypes    []string               `json:"subtypes"`
	Attacks     []AttackProjection     `json:"attacks"`
	Abilities   []AbilityProjection    `json:"abilities"`
	Rules       []string               `json:"rules"`
	Weaknesses  []TypedValueProjection `json:"weaknesses"`
	Resistances []TypedValueProjection `json:"resistances"`

	InCollection *bool `json:"in_collection,omitempty"`
}

// SetProjection inlines a card's set together with its era name
type SetProjection struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	ReleaseDate *string `json:"release_date"`
	Era         *string `json:"era"`
}

// AttackProjection inlines an attack with its ordered energy costs
type AttackProjection struct {
	Name   string   `json:"name"`
	Damage *string  `json:"damage"`
	Text   *string  `json:"text"`
	Costs  []string `json:"costs"`
}

// AbilityProjection inlines an ability
type AbilityProjection struct {
	Name string  `json:"name"`
	Text *string `json:"text"`
	Type string  `json:"type"`
}

// TypedValueProjection inlines a weakness or resistance row
type TypedValueProjection struct {
	Type  string  `json:"type"`
	Value *string `json:"value"`
}

// ProjectCard builds the external representation of a fully loaded card
// aggregate. Every slice is non-nil so empty relations serialize as [] and
// not null. imageBaseURL is the public root the stored image path resolves
// against.
func ProjectCard(card *models.Card, imageBaseURL string) *CardProjection {
	p := &CardProjection{
		ID:          card.ID,
		Name:        card.Name,
		Supertype:   card.Supertype,
		HP:          card.HP,
		EvolvesFrom: card.EvolvesFrom,
		Artist:      card.Artist,
		ImagePath:   ResolveImageURL(imageBaseURL, card.ImagePath),
		Number:      card.Number,
		Types:       make([]string, 0, len(card.Types)),
		Subtypes:    make([]string, 0, len(card.Subtypes)),
		Attacks:     make([]AttackProjection, 0, len(card.Attacks)),
		Abilities:   make([]AbilityProjection, 0, len(card.Abilities)),
		Rules:       make([]string, 0, 1),
		Weaknesses:  make([]TypedValueProjection, 0, len(card.Weaknesses)),
		Resistances: make([]TypedValueProjection, 0, len(card.Resistances)),
	}

	if card.Set != nil {
		p.Set = &SetProjection{
			ID:          card.Set.ID,
			Name:        card.Set.Name,
			ReleaseDate: card.Set.ReleaseDate,
		}
		if card.Set.Era != nil {
			p.Set.Era = &card.Set.Era.Name
		}
	}
	if card.Rarity != nil {
		p.Rarity = &card.Rarity.Name
	}

	for _, t := range card.Types {
		p.Types = append(p.Types, t.Name)
	}
	for _, st := range card.Subtypes {
		p.Subtypes = append(p.Subtypes, st.Name)
	}

	for _, attack := range card.Attacks {
		costs := make([]string, 0, len(attack.Costs))
		for _, cost := range attack.Costs {
			costs = append(costs, cost.CostType)
		}
		p.Attacks = append(p.Attacks, AttackProjection{
			Name:   attack.Name,
			Damage: attack.Damage,
			Text:   attack.Text,
			Costs:  costs,
		})
	}

	for _, ability := range card.Abilities {
		p.Abilities = append(p.Abilities, AbilityProjection{
			Name: ability.Name,
			Text: ability.Text,
			Type: ability.Type,
		})
	}

	if card.Rule != nil {
		p.Rules = append(p.Rules, card.Rule.RuleText)
	}

	for _, weakness := range card.Weaknesses {
		p.Weaknesses = append(p.Weaknesses, TypedValueProjection{
			Type:  weakness.Type.Name,
			Value: weakness.Value,
		})
	}
	for _, resistance := range card.Resistances {
		p.Resistances = append(p.Resistances, TypedValueProjection{
			Type:  resistance.Type.Name,
			Value: resistance.Value,
		})
	}

	return p
}

// ResolveImageURL joins the configured public base URL with a stored
// relative image path, mirroring how the web layer serves static files.
func ResolveImageURL(baseURL, imagePath string) string {
	if baseURL == "" {
		return imagePath
	}
	return strings.TrimSuffix(baseURL, "/") + "/static/" + strings.TrimPrefix(imagePath, "/")
}

// WithMembership returns a shallow copy of the projection carrying the
// membership flag. Cached projections are shared between requests, so the
// flag is never set on the original.
func (p *CardProjection) WithMembership(inCollection bool) *CardProjection {
	clone := *p
	clone.InCollection = &inCollection
	return &clone
}
