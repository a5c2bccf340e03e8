package catalog

import (
	"sort"

	"github.com/cardbinder/cardbinder/pkg/database/models"
)

// CardGroup is one set's worth of cards inside an era group, in input order
type CardGroup struct {
	SetID       uint
	SetName     string
	ReleaseDate *string
	Cards       []*models.Card
}

// EraGroup nests the sets of one era, in first-encounter order
type EraGroup struct {
	EraID   uint
	EraName string
	Sets    []*CardGroup
}

// GroupByEraAndSet turns an ordered card list into the nested
// era → set → cards grouping used by the collection view. Grouping is stable:
// eras and sets appear in the order they are first encountered and the card
// order within each set is preserved. Cards without a set are collected under
// a trailing unnamed group.
func GroupByEraAndSet(cards []*models.Card) []*EraGroup {
	groups := make([]*EraGroup, 0)
	eraIndex := make(map[uint]*EraGroup)
	setIndex := make(map[uint]*CardGroup)

	var orphans *CardGroup

	for _, card := range cards {
		if card.Set == nil {
			if orphans == nil {
				orphans = &CardGroup{}
			}
			orphans.Cards = append(orphans.Cards, card)
			continue
		}

		var eraID uint
		var eraName string
		if card.Set.Era != nil {
			eraID = card.Set.Era.ID
			eraName = card.Set.Era.Name
		}

		era, ok := eraIndex[eraID]
		if !ok {
			era = &EraGroup{EraID: eraID, EraName: eraName}
			eraIndex[eraID] = era
			groups = append(groups, era)
		}

		set, ok := setIndex[card.Set.ID]
		if !ok {
			set = &CardGroup{
				SetID:       card.Set.ID,
				SetName:     card.Set.Name,
				ReleaseDate: card.Set.ReleaseDate,
			}
			setIndex[card.Set.ID] = set
			era.Sets = append(era.Sets, set)
		}
		set.Cards = append(set.Cards, card)
	}

	if orphans != nil {
		groups = append(groups, &EraGroup{Sets: []*CardGroup{orphans}})
	}

	return groups
}

// SortSetsByReleaseDate orders sets by release date ascending with unknown
// dates last, ties broken by id. Used for the era browsing view; release
// dates are lexically sortable strings.
func SortSetsByReleaseDate(sets []models.Set) {
	sort.SliceStable(sets, func(i, j int) bool {
		a, b := sets[i].ReleaseDate, sets[j].ReleaseDate
		switch {
		case a == nil && b == nil:
			return sets[i].ID < sets[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a < *b
		default:
			return sets[i].ID < sets[j].ID
		}
	})
}
