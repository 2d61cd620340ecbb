// Package branch models the laundry outlet an order is placed with: its owner,
// its per-kilogram price and the pickup methods it offers.
package branch
