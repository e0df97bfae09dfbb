// Package catalog holds the read-only collaborator records the dispatch core
// resolves by ID: users, restaurants, and menu items. The core never mutates
// these records, so they are plain structs rather than guarded aggregates.
package catalog

import (
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// User is the account record behind customers and delivery partners.
type User struct {
	ID       kernel.UUID
	Username string
	FullName string
}

// Restaurant is the pickup location for an order. Coordinates feed the
// tracking view unconditionally.
type Restaurant struct {
	ID        kernel.UUID
	Name      string
	Latitude  float64
	Longitude float64
}

// MenuItem carries the current menu price. Orders capture this price at
// placement time; later changes to it do not affect existing orders.
type MenuItem struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        decimal.Decimal
}
