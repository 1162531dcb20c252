package services

import (
	"slices"

	"babyjournal/internal/core/domain/model/gallery"
)

// OrderAudit describes the order numbering of one stored list.
type OrderAudit struct {
	Total      int
	Unordered  int
	Duplicates []int
	Gaps       []int
}

// IsDense reports whether the list is numbered exactly 0..Total-1.
func (a OrderAudit) IsDense() bool {
	return a.Unordered == 0 && len(a.Duplicates) == 0 && len(a.Gaps) == 0
}

// AuditOrders inspects the stored orders of items. Deletions leave gaps and a
// reorder under a tag filter can produce duplicates; both are tolerated by the
// display rules and only reported here.
func AuditOrders(items []*gallery.Item) OrderAudit {
	audit := OrderAudit{Total: len(items)}

	counts := make(map[int]int, len(items))
	maxOrder := -1
	for _, item := range items {
		order, ok := item.Order()
		if !ok {
			audit.Unordered++
			continue
		}
		counts[order]++
		maxOrder = max(maxOrder, order)
	}

	for order, n := range counts {
		if n > 1 {
			audit.Duplicates = append(audit.Duplicates, order)
		}
	}
	slices.Sort(audit.Duplicates)

	// k ordered items should fill 0..k-1 exactly.
	upper := max(maxOrder, len(items)-1-audit.Unordered)
	for order := 0; order <= upper; order++ {
		if counts[order] == 0 {
			audit.Gaps = append(audit.Gaps, order)
		}
	}
	return audit
}
