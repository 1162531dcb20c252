// Package gallery models the items shown on the journal's public timeline and
// managed from the admin gallery.
//
// The package includes:
//   - Item: a photo, milestone or record with an opaque payload, a display date,
//     a tag set and an optional display order
//   - Kind: the item subtype used as the store's type filter
//   - OrderUpdate: one (id, order) pair of a bulk order write
//
// Key rules:
//   - The identifier is assigned at creation and never changes
//   - Orders are non-negative; an item without an order is "unordered"
//   - Editing an item never changes its order; only bulk order writes do
package gallery
