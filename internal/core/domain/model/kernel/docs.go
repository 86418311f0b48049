// Package kernel provides core domain primitives shared by all aggregates.
// Currently this is the UUID value object used as the identifier type for
// beers, customers, orders, and order lines.
package kernel
