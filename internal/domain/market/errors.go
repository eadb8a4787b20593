package market

import "errors"

// Domain errors for the item price catalogue

var (
	// ErrInvalidItemName is returned when an item name is empty
	ErrInvalidItemName = errors.New("invalid item name")

	// ErrInvalidPrice is returned when a price is negative
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidPurchaseLimit is returned when a buy limit is negative
	ErrInvalidPurchaseLimit = errors.New("invalid purchase limit")

	// ErrDuplicateItem is returned when two snapshot entries share a name
	ErrDuplicateItem = errors.New("duplicate item")

	// ErrItemNotFound is returned when a name or id is not in the catalogue
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidTimespan is returned for an unknown price aggregation window
	ErrInvalidTimespan = errors.New("invalid timespan")

	// ErrEmptyCatalogue is returned when a catalogue holds no priced items
	ErrEmptyCatalogue = errors.New("item catalogue is empty")
)
