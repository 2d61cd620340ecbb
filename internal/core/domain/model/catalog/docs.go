// Package catalog is the read-only view of branch laundry items used to check
// order lines at creation.
package catalog
