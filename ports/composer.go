package ports

import "chartdeck/domain/chart"

// DeckComposer defines the interface for producing a serialized presentation
// with a chart inserted at the requested slide position.
type DeckComposer interface {
	// Compose loads template as the base deck (or starts from an empty deck
	// when template is nil), pads the deck with blank slides until position
	// slides exist, and inserts a chart of the given kind built from series
	// into slide position-1. Returns the serialized deck.
	Compose(template []byte, position int, kind chart.Kind, series chart.Series) ([]byte, error)
}
