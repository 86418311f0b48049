package order

import (
	"errors"
	"fmt"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// Line is a single beer reference with a positive quantity. Lines are owned
// exclusively by their order: they are created with it, persisted with it,
// and removed with it. A line references its beer by identifier only; the
// beer's name, style, and UPC are denormalized into read models at query
// time, never stored on the line.
type Line struct {
	id       kernel.UUID
	beerID   kernel.UUID
	quantity int

	version       int
	isConstructed bool
}

// NewLine creates a Line for the given beer with a positive quantity. The
// quantity check is deliberately repeated here even though the transport
// layer validates it first: the aggregate must hold its own invariants.
func NewLine(id, beerID kernel.UUID, quantity int) (Line, error) {
	l := Line{
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setBeerID(beerID),
		l.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

// RestoreLine rehydrates a Line from persistence, including its stored version.
func RestoreLine(id, beerID kernel.UUID, quantity, version int) (Line, error) {
	l, err := NewLine(id, beerID, quantity)
	if err != nil {
		return Line{}, err
	}

	l.version = version
	return l, nil
}

// Validate ensures the Line was created through a constructor.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// BeerID returns the identifier of the referenced beer.
func (l Line) BeerID() kernel.UUID {
	return l.beerID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Version returns the optimistic-concurrency version read from the store.
func (l Line) Version() int {
	return l.version
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setBeerID(beerID kernel.UUID) error {
	if err := beerID.Validate(); err != nil {
		return err
	}
	l.beerID = beerID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderQuantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
