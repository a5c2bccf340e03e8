package repository

import (
	"context"

	"github.com/cardbinder/cardbinder/pkg/database/models"
	"gorm.io/gorm"
)

// CollectionRepository handles membership rows in the user store. The
// composite unique index on (user_id, card_id) makes Insert the atomic
// arbiter for concurrent duplicate adds.
type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// Insert creates one membership row. A duplicate (user, card) pair surfaces
// as gorm.ErrDuplicatedKey via the unique index.
func (r *CollectionRepository) Insert(ctx context.Context, userID uint, cardID string) error {
	item := models.UserCollection{UserID: userID, CardID: cardID}
	return r.db.WithContext(ctx).Create(&item).Error
}

// Exists reports whether the user already owns the card
func (r *CollectionRepository) Exists(ctx context.Context, userID uint, cardID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserCollection{}).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the membership row and reports whether one existed
func (r *CollectionRepository) Delete(ctx context.Context, userID uint, cardID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Delete(&models.UserCollection{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListCardIDs returns the ids of every card the user owns
func (r *CollectionRepository) ListCardIDs(ctx context.Context, userID uint) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.UserCollection{}).
		Where("user_id = ?", userID).
		Pluck("card_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CountMemberships returns the total number of membership rows across all
// users (stats gauge)
func (r *CollectionRepository) CountMemberships(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserCollection{}).Count(&count).Error
	return count, err
}
