package catalog

import (
	"context"

	"github.com/cardbinder/cardbinder/pkg/database/models"
	"github.com/cardbinder/cardbinder/pkg/logging"
	lru "github.com/hashicorp/golang-lru/v2"
)

// detailCacheSize bounds the card detail projection cache. The catalog is
// read-only at runtime, so cached projections never go stale.
const detailCacheSize = 1024

// CardStore is the catalog read boundary consumed by the service
type CardStore interface {
	SearchCards(ctx context.Context, criteria SearchCriteria) ([]models.Card, int64, error)
	GetCardByID(ctx context.Context, id string) (*models.Card, error)
	ListCardsByIDs(ctx context.Context, ids []string) ([]models.Card, error)
	ListTypes(ctx context.Context) ([]models.Type, error)
	ListSets(ctx context.Context) ([]models.Set, error)
	ListRarities(ctx context.Context) ([]models.Rarity, error)
	ListErasWithSets(ctx context.Context) ([]models.SetEra, error)
	CountCardsBySet(ctx context.Context) (map[uint]int64, error)
}

// MembershipSource answers "which cards does this user own". Implemented by
// the collection service; the catalog only consults it to compute the
// in_collection flag.
type MembershipSource interface {
	ListCardIDs(ctx context.Context, userID uint) ([]string, error)
	IsMember(ctx context.Context, userID uint, cardID string) (bool, error)
}

// Service runs catalog queries and turns card aggregates into their external
// projections
type Service struct {
	store        CardStore
	members      MembershipSource
	imageBaseURL string
	detailCache  *lru.Cache[string, *CardProjection]
	logger       logging.Logger
}

// NewService creates the catalog service. imageBaseURL is the public root
// image paths resolve against.
func NewService(store CardStore, members MembershipSource, imageBaseURL string, logger logging.Logger) *Service {
	cache, err := lru.New[string, *CardProjection](detailCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant
		panic("catalog: failed to create detail cache: " + err.Error())
	}

	return &Service{
		store:        store,
		members:      members,
		imageBaseURL: imageBaseURL,
		detailCache:  cache,
		logger:       logger,
	}
}

// Search returns one page of card projections matching the criteria. The
// viewer, when present, is used to stamp each card with its membership flag
// from a single bulk lookup.
func (s *Service) Search(ctx context.Context, criteria SearchCriteria, viewerID *uint) (*CardPage, error) {
	criteria = criteria.Normalized()

	cards, total, err := s.store.SearchCards(ctx, criteria)
	if err != nil {
		s.logger.Error("card search failed", err, map[string]interface{}{
			"page": criteria.Page,
		})
		return nil, err
	}

	owned, err := s.ownedCardIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	page := &CardPage{
		Cards:      make([]CardProjection, 0, len(cards)),
		Page:       criteria.Page,
		TotalPages: TotalPages(total),
	}
	page.HasNext = criteria.Page < page.TotalPages

	for i := range cards {
		projection := ProjectCard(&cards[i], s.imageBaseURL)
		page.Cards = append(page.Cards, *projection.WithMembership(owned[cards[i].ID]))
	}

	return page, nil
}

// GetCard returns the full projection of a single card, with the membership
// flag for the viewer (false for anonymous viewers). Returns ErrCardNotFound
// for unknown ids.
func (s *Service) GetCard(ctx context.Context, cardID string, viewerID *uint) (*CardProjection, error) {
	projection, ok := s.detailCache.Get(cardID)
	if !ok {
		card, err := s.store.GetCardByID(ctx, cardID)
		if err != nil {
			return nil, err
		}
		projection = ProjectCard(card, s.imageBaseURL)
		s.detailCache.Add(cardID, projection)
	}

	if viewerID == nil {
		return projection.WithMembership(false), nil
	}

	inCollection, err := s.members.IsMember(ctx, *viewerID, cardID)
	if err != nil {
		return nil, err
	}
	return projection.WithMembership(inCollection), nil
}

// CollectionCards returns the flat, catalog-ordered list of the user's owned
// cards. The membership flag is omitted: every card here is owned.
func (s *Service) CollectionCards(ctx context.Context, userID uint) ([]CardProjection, error) {
	ids, err := s.members.ListCardIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	projections := make([]CardProjection, 0, len(ids))
	if len(ids) == 0 {
		return projections, nil
	}

	cards, err := s.store.ListCardsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range cards {
		projections = append(projections, *ProjectCard(&cards[i], s.imageBaseURL))
	}
	return projections, nil
}

// GroupedEra is one era of the nested collection view
type GroupedEra struct {
	Era  string       `json:"era"`
	Sets []GroupedSet `json:"sets"`
}

// GroupedSet is one set of the nested collection view
type GroupedSet struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	ReleaseDate *string          `json:"release_date"`
	Cards       []CardProjection `json:"cards"`
}

// GroupedCollection returns the user's collection grouped era → set → cards,
// preserving the catalog sort order inside each set, plus the total card
// count.
func (s *Service) GroupedCollection(ctx context.Context, userID uint) ([]GroupedEra, int, error) {
	ids, err := s.members.ListCardIDs(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []GroupedEra{}, 0, nil
	}

	cards, err := s.store.ListCardsByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	refs := make([]*models.Card, len(cards))
	for i := range cards {
		refs[i] = &cards[i]
	}

	eras := make([]GroupedEra, 0)
	for _, eraGroup := range GroupByEraAndSet(refs) {
		era := GroupedEra{Era: eraGroup.EraName, Sets: make([]GroupedSet, 0, len(eraGroup.Sets))}
		for _, setGroup := range eraGroup.Sets {
			set := GroupedSet{
				ID:          setGroup.SetID,
				Name:        setGroup.SetName,
				ReleaseDate: setGroup.ReleaseDate,
				Cards:       make([]CardProjection, 0, len(setGroup.Cards)),
			}
			for _, card := range setGroup.Cards {
				set.Cards = append(set.Cards, *ProjectCard(card, s.imageBaseURL))
			}
			era.Sets = append(era.Sets, set)
		}
		eras = append(eras, era)
	}

	return eras, len(cards), nil
}

// NamedOption is a lookup entry for the filter dropdowns
type NamedOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SetSummary is a set entry for browsing views
type SetSummary struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	ReleaseDate *string `json:"release_date"`
	CardCount   int64   `json:"card_count"`
}

// FilterOptions carries the lookup lists backing the search filters
type FilterOptions struct {
	Types    []NamedOption `json:"types"`
	Sets     []SetSummary  `json:"sets"`
	Rarities []NamedOption `json:"rarities"`
}

// Filters returns the lookup lists for the search filter dropdowns
func (s *Service) Filters(ctx context.Context) (*FilterOptions, error) {
	types, err := s.store.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	sets, err := s.store.ListSets(ctx)
	if err != nil {
		return nil, err
	}
	rarities, err := s.store.ListRarities(ctx)
	if err != nil {
		return nil, err
	}

	options := &FilterOptions{
		Types:    make([]NamedOption, 0, len(types)),
		Sets:     make([]SetSummary, 0, len(sets)),
		Rarities: make([]NamedOption, 0, len(rarities)),
	}
	for _, t := range types {
		options.Types = append(options.Types, NamedOption{ID: t.ID, Name: t.Name})
	}
	for _, set := range sets {
		options.Sets = append(options.Sets, SetSummary{ID: set.ID, Name: set.Name, ReleaseDate: set.ReleaseDate})
	}
	for _, r := range rarities {
		options.Rarities = append(options.Rarities, NamedOption{ID: r.ID, Name: r.Name})
	}
	return options, nil
}

// EraView is one era on the browsing index, with its sets in release order
type EraView struct {
	ID   uint         `json:"id"`
	Name string       `json:"name"`
	Sets []SetSummary `json:"sets"`
}

// Eras returns every era with its sets sorted by release date (unknown dates
// last) and per-set card counts.
func (s *Service) Eras(ctx context.Context) ([]EraView, error) {
	eras, err := s.store.ListErasWithSets(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.store.CountCardsBySet(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]EraView, 0, len(eras))
	for _, era := range eras {
		SortSetsByReleaseDate(era.Sets)
		view := EraView{ID: era.ID, Name: era.Name, Sets: make([]SetSummary, 0, len(era.Sets))}
		for _, set := range era.Sets {
			view.Sets = append(view.Sets, SetSummary{
				ID:          set.ID,
				Name:        set.Name,
				ReleaseDate: set.ReleaseDate,
				CardCount:   counts[set.ID],
			})
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) ownedCardIDs(ctx context.Context, viewerID *uint) (map[string]bool, error) {
	owned := make(map[string]bool)
	if viewerID == nil {
		return owned, nil
	}

	ids, err := s.members.ListCardIDs(ctx, *viewerID)
	if err != nil {
		s.logger.Error("failed to load viewer collection", err, map[string]interface{}{
			"user_id": *viewerID,
		})
		return nil, err
	}
	for _, id := range ids {
		owned[id] = true
	}
	return owned, nil
}
