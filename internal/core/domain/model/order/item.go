package order

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"order item must be created via NewItem constructor")

// Item is a value record for one ordered line: a menu item reference, a
// quantity, and the unit price captured at order time. The captured price is
// an immutable snapshot, so later menu price changes never affect it. Items are
// owned exclusively by their order; they carry no back-reference.
type Item struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	quantity   int
	price      decimal.Decimal
	guard      guard.ConstructorGuard
}

// NewItem creates an order line with the given menu item, quantity and
// captured unit price. Quantity must be at least 1; price must not be
// negative.
func NewItem(menuItemID kernel.UUID, quantity int, price decimal.Decimal) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	item.menuItemID = menuItemID

	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	item.quantity = quantity

	if price.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", price),
		)
	}
	item.price = price

	return item, nil
}

// Validate checks that the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price captured at order time.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal returns price × quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
