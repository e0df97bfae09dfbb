package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves the customer, the restaurant, and each requested menu item from
// the catalog, captures the menu prices into the order lines, and persists
// the order in the placed status. Later menu price changes never affect a
// placed order.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory because placement reads the catalog and writes the
// order inside one transaction.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Fails with errs.ErrObjectNotFound when the customer, the restaurant, or
// any requested menu item does not exist.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalog := uow.CatalogReader()

	if _, err := catalog.GetUser(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if _, err := catalog.GetRestaurant(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		menuItem, err := catalog.GetMenuItem(ctx, requested.MenuItemID)
		if err != nil {
			return err
		}

		item, err := order.NewItem(menuItem.ID, requested.Quantity, menuItem.Price)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.RestaurantID(), items, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
