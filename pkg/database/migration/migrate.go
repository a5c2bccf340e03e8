package migration

import (
	"log"

	"github.com/cardbinder/cardbinder/pkg/database/models"
	"gorm.io/gorm"
)

// RunCatalogMigration creates the catalog schema (lookup tables, cards and
// every owned sub-table). The catalog is populated by an external ingestion
// process, so this only ever needs to run once per database.
func RunCatalogMigration(db *gorm.DB) error {
	log.Println("Running catalog migrations...")

	if err := db.AutoMigrate(
		&models.Type{},
		&models.Subtype{},
		&models.Rarity{},
		&models.SetEra{},
		&models.Set{},
		&models.Card{},
		&models.Attack{},
		&models.AttackCost{},
		&models.Ability{},
		&models.Rule{},
		&models.CardWeakness{},
		&models.CardResistance{},
	); err != nil {
		return err
	}

	log.Println("Catalog migrations completed successfully!")
	return nil
}

// RunUsersMigration creates the user store schema. The composite unique
// index on user_collections(user_id, card_id) comes from the model tags and
// must exist: the collection store depends on it.
func RunUsersMigration(db *gorm.DB) error {
	log.Println("Running user store migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserCollection{},
	); err != nil {
		return err
	}

	log.Println("User store migrations completed successfully!")
	return nil
}
