// Package services provides domain services that work across aggregates or
// need inputs no single aggregate owns.
//
// The package includes:
//   - PricingCalculator: freezes the price estimate of a new order from the
//     submitted lines or weight and the branch price per kilogram
package services
