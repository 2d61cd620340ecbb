// Package order holds the Order aggregate of the laundry marketplace.
//
// An order is opened by a customer against a branch with a pricing snapshot
// (itemized or by estimated weight) and a pickup method. Branch staff move its
// status through the transition table in status.go; the customer picks the
// delivery and payment method once the laundry is ready, and the payment gateway
// settles online payments through notifications.
//
// Payment status is tracked independently of the fulfillment status. A paid
// order never regresses to pending or failed; only a refund may follow.
package order
