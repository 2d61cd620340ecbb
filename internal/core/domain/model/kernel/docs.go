// Package kernel holds the primitives shared by every aggregate of the laundry
// domain: UUID identifiers, geographic Location values and phone normalization.
package kernel
