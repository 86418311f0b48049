// Package beer provides the Beer aggregate: a product in the brewery catalog
// identified by name, style, and UPC, with a positive unit price and a
// non-negative quantity on hand.
//
// Beers are referenced by order lines but never mutated by order operations;
// all writes go through the plain CRUD surface.
package beer
