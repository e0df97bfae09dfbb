// Package order contains the Order aggregate: ordered lines with captured
// prices, the closed status enumeration with its boundary literal mapping,
// and the lifecycle operations of the dispatch engine's write side.
package order
