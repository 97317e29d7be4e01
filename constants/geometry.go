package constants

// Playfield geometry in logical units; the render surface scales these to cells
const (
	DefaultPlayfieldWidth  = 800
	DefaultPlayfieldHeight = 600

	// ItemSize is the width and height of a falling item's bounding box
	ItemSize = 50

	// BasketHeight is the height of the basket band at the bottom of the playfield
	BasketHeight = 50

	// BasketBaseWidth is the basket width at run start
	BasketBaseWidth = 100.0

	// BasketRerollSpan is added on top of BasketBaseWidth when a liquid catch re-rolls the width
	BasketRerollSpan = 500.0

	// BasketMaxWidth bounds the re-rolled basket width
	BasketMaxWidth = BasketBaseWidth + BasketRerollSpan
)
