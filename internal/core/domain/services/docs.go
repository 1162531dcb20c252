// Package services holds the stateless ordering rules of the gallery.
//
// SortForDisplay decides how a fetched list is shown, Splice moves one element
// of a displayed list, DenseOrders turns a displayed list into the bulk write
// that persists it, and AuditOrders describes how far a stored list is from a
// dense 0..n-1 numbering.
package services
