package collection

import (
	"context"
	"errors"

	"github.com/cardbinder/cardbinder/pkg/catalog"
	"github.com/cardbinder/cardbinder/pkg/logging"
	"gorm.io/gorm"
)

// MembershipStore is the user-store boundary for collection rows
type MembershipStore interface {
	Insert(ctx context.Context, userID uint, cardID string) error
	Exists(ctx context.Context, userID uint, cardID string) (bool, error)
	Delete(ctx context.Context, userID uint, cardID string) (bool, error)
	ListCardIDs(ctx context.Context, userID uint) ([]string, error)
}

// CardChecker validates card ids against the catalog store. The catalog and
// the user store are separate databases, so this reference cannot be a
// foreign key.
type CardChecker interface {
	CardExists(ctx context.Context, cardID string) (bool, error)
}

// Service manages per-user collection membership across the two stores
type Service struct {
	store  MembershipStore
	cards  CardChecker
	logger logging.Logger
}

// NewService creates the collection service
func NewService(store MembershipStore, cards CardChecker, logger logging.Logger) *Service {
	return &Service{store: store, cards: cards, logger: logger}
}

// Add records that the user owns the card. The catalog existence check and
// the membership check run first as plain reads; the unique index on the
// membership table turns the remaining check-then-insert race into
// ErrAlreadyInCollection instead of a duplicate row.
func (s *Service) Add(ctx context.Context, userID uint, cardID string) error {
	exists, err := s.cards.CardExists(ctx, cardID)
	if err != nil {
		return err
	}
	if !exists {
		return catalog.ErrCardNotFound
	}

	member, err := s.store.Exists(ctx, userID, cardID)
	if err != nil {
		return err
	}
	if member {
		return ErrAlreadyInCollection
	}

	if err := s.store.Insert(ctx, userID, cardID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyInCollection
		}
		return err
	}

	s.logger.Info("card added to collection", map[string]interface{}{
		"user_id": userID,
		"card_id": cardID,
	})
	return nil
}

// Remove deletes the membership row. Returns ErrNotInCollection when the
// user does not own the card.
func (s *Service) Remove(ctx context.Context, userID uint, cardID string) error {
	deleted, err := s.store.Delete(ctx, userID, cardID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotInCollection
	}

	s.logger.Info("card removed from collection", map[string]interface{}{
		"user_id": userID,
		"card_id": cardID,
	})
	return nil
}

// ListCardIDs returns the ids of every card the user owns; order carries no
// meaning
func (s *Service) ListCardIDs(ctx context.Context, userID uint) ([]string, error) {
	return s.store.ListCardIDs(ctx, userID)
}

// IsMember is the point lookup behind single-card detail views
func (s *Service) IsMember(ctx context.Context, userID uint, cardID string) (bool, error) {
	return s.store.Exists(ctx, userID, cardID)
}
