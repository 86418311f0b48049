package beer

import (
	"errors"
	"fmt"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrBeerIsNotConstructed is returned when a Beer instance was not created
// through NewBeer or RestoreBeer.
var ErrBeerIsNotConstructed = errors.New("Beer must be created via NewBeer or RestoreBeer constructor")

// Beer is the product aggregate. Invariants:
//   - valid unique identifier
//   - name, style, and UPC are required
//   - price is a positive decimal
//   - quantity on hand is never negative
type Beer struct {
	id             kernel.UUID
	name           string
	style          string
	upc            string
	price          decimal.Decimal
	quantityOnHand int

	version       int
	isConstructed bool
}

// NewBeer creates a Beer with version zero, validating all fields.
func NewBeer(
	id kernel.UUID, name, style, upc string, price decimal.Decimal, quantityOnHand int,
) (*Beer, error) {
	b := &Beer{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setStyle(style),
		b.setUPC(upc),
		b.setPrice(price),
		b.setQuantityOnHand(quantityOnHand),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBeer rehydrates a Beer from persistence, including its stored version.
func RestoreBeer(
	id kernel.UUID, name, style, upc string, price decimal.Decimal, quantityOnHand, version int,
) (*Beer, error) {
	b, err := NewBeer(id, name, style, upc, price, quantityOnHand)
	if err != nil {
		return nil, err
	}

	b.version = version
	return b, nil
}

// Validate ensures the Beer was created through a constructor.
func (b *Beer) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBeerIsNotConstructed
	}
	return nil
}

// IsEqual compares two beers by identifier.
func (b *Beer) IsEqual(other *Beer) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// Update replaces all mutable fields, validating each. The identifier and
// version are untouched; the repository bumps the version on write.
func (b *Beer) Update(name, style, upc string, price decimal.Decimal, quantityOnHand int) error {
	return errors.Join(
		b.setName(name),
		b.setStyle(style),
		b.setUPC(upc),
		b.setPrice(price),
		b.setQuantityOnHand(quantityOnHand),
	)
}

// ID returns the beer's unique identifier.
func (b *Beer) ID() kernel.UUID {
	return b.id
}

// Name returns the beer name.
func (b *Beer) Name() string {
	return b.name
}

// Style returns the beer style.
func (b *Beer) Style() string {
	return b.style
}

// UPC returns the universal product code.
func (b *Beer) UPC() string {
	return b.upc
}

// Price returns the unit price.
func (b *Beer) Price() decimal.Decimal {
	return b.price
}

// QuantityOnHand returns the stocked quantity.
func (b *Beer) QuantityOnHand() int {
	return b.quantityOnHand
}

// Version returns the optimistic-concurrency version read from the store.
func (b *Beer) Version() int {
	return b.version
}

func (b *Beer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Beer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("beerName")
	}
	b.name = name
	return nil
}

func (b *Beer) setStyle(style string) error {
	if style == "" {
		return errs.NewValueIsRequiredError("beerStyle")
	}
	b.style = style
	return nil
}

func (b *Beer) setUPC(upc string) error {
	if upc == "" {
		return errs.NewValueIsRequiredError("upc")
	}
	b.upc = upc
	return nil
}

func (b *Beer) setPrice(price decimal.Decimal) error {
	if price.Sign() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	b.price = price
	return nil
}

func (b *Beer) setQuantityOnHand(quantityOnHand int) error {
	if quantityOnHand < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityOnHand",
			fmt.Errorf("%d is negative", quantityOnHand))
	}
	b.quantityOnHand = quantityOnHand
	return nil
}
