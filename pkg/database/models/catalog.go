package models

// Type is an energy/elemental type referenced by cards, weaknesses and
// resistances
type Type struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

// Subtype is a card subtype (Stage 1, Item, ...) attached via card_subtypes
type Subtype struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

// Rarity represents a card rarity in the database
type Rarity struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

// SetEra groups sets for collection browsing (not used in filtering)
type SetEra struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`

	// Relationships
	Sets []Set `gorm:"foreignKey:EraID"`
}

// Set represents a card set in the database. ReleaseDate is a
// lexically-sortable date string and may be absent for promo sets.
type Set struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"uniqueIndex;not null"`
	EraID       *uint   `gorm:"index"`
	ReleaseDate *string `gorm:"index"`

	// Relationships
	Era   *SetEra `gorm:"foreignKey:EraID"`
	Cards []Card  `gorm:"foreignKey:SetID"`
}

// Card is the aggregate root of the catalog. The ID is the upstream card
// identifier (e.g. "base1-4"). Number keeps its raw "<n>/<total>" form; the
// numeric sort key is derived from it at query time.
type Card struct {
	ID          string  `gorm:"primaryKey"`
	Name        string  `gorm:"index;not null"`
	Supertype   string  `gorm:"not null"`
	HP          *int    `gorm:"column:hp"`
	EvolvesFrom *string `gorm:"column:evolves_from"`
	Artist      *string
	ImagePath   string `gorm:"not null"`
	Number      string
	SetID       *uint `gorm:"index"`
	RarityID    *uint `gorm:"index"`

	// Relationships
	Set         *Set             `gorm:"foreignKey:SetID"`
	Rarity      *Rarity          `gorm:"foreignKey:RarityID"`
	Types       []Type           `gorm:"many2many:card_types;constraint:OnDelete:CASCADE"`
	Subtypes    []Subtype        `gorm:"many2many:card_subtypes;constraint:OnDelete:CASCADE"`
	Attacks     []Attack         `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Abilities   []Ability        `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Rule        *Rule            `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Weaknesses  []CardWeakness   `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Resistances []CardResistance `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

// Attack is owned by a Card; its costs are ordered for display.
type Attack struct {
	ID     uint    `gorm:"primaryKey"`
	CardID string  `gorm:"index;not null"`
	Name   string  `gorm:"not null"`
	Damage *string
	Text   *string

	// Relationships
	Costs []AttackCost `gorm:"foreignKey:AttackID;constraint:OnDelete:CASCADE"`
}

// AttackCost is a single energy token required by an attack
type AttackCost struct {
	ID       uint   `gorm:"primaryKey"`
	AttackID uint   `gorm:"index;not null"`
	CostType string `gorm:"not null"`
}

// Ability is owned by a Card
type Ability struct {
	ID     uint    `gorm:"primaryKey"`
	CardID string  `gorm:"index;not null"`
	Name   string  `gorm:"not null"`
	Text   *string
	Type   string `gorm:"not null"`
}

// Rule holds the single rule-box text of a card (one row per card at most)
type Rule struct {
	CardID   string `gorm:"primaryKey"`
	RuleText string `gorm:"not null"`
}

// CardWeakness links a card to a type with a damage modifier such as "×2".
// At most one row per (card, type) pair.
type CardWeakness struct {
	CardID string  `gorm:"primaryKey"`
	TypeID uint    `gorm:"primaryKey"`
	Value  *string

	// Relationships
	Type Type `gorm:"foreignKey:TypeID"`
}

// CardResistance links a card to a type with a damage modifier such as "-30"
type CardResistance struct {
	CardID string  `gorm:"primaryKey"`
	TypeID uint    `gorm:"primaryKey"`
	Value  *string

	// Relationships
	Type Type `gorm:"foreignKey:TypeID"`
}

// TableName returns the table name for Type
func (Type) TableName() string {
	return "types"
}

// TableName returns the table name for Subtype
func (Subtype) TableName() string {
	return "subtypes"
}

// TableName returns the table name for Rarity
func (Rarity) TableName() string {
	return "rarities"
}

// TableName returns the table name for SetEra
func (SetEra) TableName() string {
	return "set_eras"
}

// TableName returns the table name for Set
func (Set) TableName() string {
	return "sets"
}

// TableName returns the table name for Card
func (Card) TableName() string {
	return "cards"
}

// TableName returns the table name for Attack
func (Attack) TableName() string {
	return "attacks"
}

// TableName returns the table name for AttackCost
func (AttackCost) TableName() string {
	return "attack_costs"
}

// TableName returns the table name for Ability
func (Ability) TableName() string {
	return "abilities"
}

// TableName returns the table name for Rule
func (Rule) TableName() string {
	return "rules"
}

// TableName returns the table name for CardWeakness
func (CardWeakness) TableName() string {
	return "card_weaknesses"
}

// TableName returns the table name for CardResistance
func (CardResistance) TableName() string {
	return "card_resistances"
}
