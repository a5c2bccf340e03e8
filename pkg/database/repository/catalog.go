package repository

import (
	"context"
	"errors"

	"github.com/cardbinder/cardbinder/pkg/catalog"
	"github.com/cardbinder/cardbinder/pkg/database/models"
	"gorm.io/gorm"
)

// CatalogRepository handles read access to the catalog store
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// searchQuery applies the conjunctive optional filters; absent criteria
// fields add no constraint
func (r *CatalogRepository) searchQuery(ctx context.Context, criteria catalog.SearchCriteria) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Card{})

	if criteria.Name != "" {
		query = query.Where("cards.name ILIKE ?", "%"+criteria.Name+"%")
	}
	if criteria.TypeID != 0 {
		query = query.
			Joins("JOIN card_types ON card_types.card_id = cards.id").
			Where("card_types.type_id = ?", criteria.TypeID)
	}
	if criteria.SetID != 0 {
		query = query.Where("cards.set_id = ?", criteria.SetID)
	}
	if criteria.RarityID != 0 {
		query = query.Where("cards.rarity_id = ?", criteria.RarityID)
	}

	return query
}

// withAggregate eager-loads the whole card aggregate so no lazy references
// leak past the repository. Attacks and their costs keep insertion order.
func withAggregate(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Set.Era").
		Preload("Rarity").
		Preload("Types").
		Preload("Subtypes").
		Preload("Attacks", func(db *gorm.DB) *gorm.DB {
			return db.Order("attacks.id")
		}).
		Preload("Attacks.Costs", func(db *gorm.DB) *gorm.DB {
			return db.Order("attack_costs.id")
		}).
		Preload("Abilities", func(db *gorm.DB) *gorm.DB {
			return db.Order("abilities.id")
		}).
		Preload("Rule").
		Preload("Weaknesses.Type").
		Preload("Resistances.Type")
}

// catalogOrder sorts by set, then numerically by the leading digits of the
// card number. The SQL expression mirrors catalog.ExtractLeadingNumber.
func catalogOrder(query *gorm.DB) *gorm.DB {
	return query.Order("cards.set_id").Order(catalog.NumberOrderExpr)
}

// SearchCards returns one page of fully loaded card aggregates matching the
// criteria plus the total match count. An out-of-range page yields an empty
// slice, not an error.
func (r *CatalogRepository) SearchCards(ctx context.Context, criteria catalog.SearchCriteria) ([]models.Card, int64, error) {
	var total int64
	if err := r.searchQuery(ctx, criteria).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cards []models.Card
	query := catalogOrder(r.searchQuery(ctx, criteria)).
		Offset((criteria.Page - 1) * catalog.PageSize).
		Limit(catalog.PageSize)
	if err := withAggregate(query).Find(&cards).Error; err != nil {
		return nil, 0, err
	}

	return cards, total, nil
}

// GetCardByID loads one full card aggregate. Returns catalog.ErrCardNotFound
// for unknown ids.
func (r *CatalogRepository) GetCardByID(ctx context.Context, id string) (*models.Card, error) {
	var card models.Card
	err := withAggregate(r.db.WithContext(ctx)).First(&card, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// ListCardsByIDs loads the given cards as full aggregates in catalog order
// (set, then numeric card number)
func (r *CatalogRepository) ListCardsByIDs(ctx context.Context, ids []string) ([]models.Card, error) {
	var cards []models.Card
	query := catalogOrder(r.db.WithContext(ctx).Where("cards.id IN ?", ids))
	if err := withAggregate(query).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// CardExists reports whether a card id exists in the catalog. Used by the
// collection store before inserting a membership row, since the two
// databases cannot enforce the reference themselves.
func (r *CatalogRepository) CardExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Card{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListTypes returns all types ordered by name
func (r *CatalogRepository) ListTypes(ctx context.Context) ([]models.Type, error) {
	var types []models.Type
	if err := r.db.WithContext(ctx).Order("name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// ListSets returns all sets, newest release first, undated sets last
func (r *CatalogRepository) ListSets(ctx context.Context) ([]models.Set, error) {
	var sets []models.Set
	if err := r.db.WithContext(ctx).Order("release_date DESC NULLS LAST").Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

// ListRarities returns all rarities ordered by name
func (r *CatalogRepository) ListRarities(ctx context.Context) ([]models.Rarity, error) {
	var rarities []models.Rarity
	if err := r.db.WithContext(ctx).Order("name").Find(&rarities).Error; err != nil {
		return nil, err
	}
	return rarities, nil
}

// ListErasWithSets returns every era with its sets, eras in id order
func (r *CatalogRepository) ListErasWithSets(ctx context.Context) ([]models.SetEra, error) {
	var eras []models.SetEra
	if err := r.db.WithContext(ctx).Preload("Sets").Order("id").Find(&eras).Error; err != nil {
		return nil, err
	}
	return eras, nil
}

// CountCardsBySet returns the card count per set id. Cards without a set are
// not counted.
func (r *CatalogRepository) CountCardsBySet(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		SetID *uint
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Card{}).
		Select("set_id, COUNT(*) AS count").
		Group("set_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		if row.SetID != nil {
			counts[*row.SetID] = row.Count
		}
	}
	return counts, nil
}
