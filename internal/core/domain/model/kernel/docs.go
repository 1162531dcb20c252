// Package kernel holds the value objects shared across the journal domain.
//
// UUID identifies every gallery item. It is assigned once, when the store
// accepts a new item, and never changes afterwards; the zero value is invalid
// so an identifier that skipped its constructor is caught by Validate.
package kernel
