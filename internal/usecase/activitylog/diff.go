package activitylog

import (
	"fmt"
	"sort"

	"github.com/asifshaikgit/workforce-sub002/internal/domain/activity"
	"github.com/asifshaikgit/workforce-sub002/internal/domain/ledger"
)

// Snapshot is a flat field→value map of a tracked entity at one point in time.
type Snapshot map[string]any

// Diff returns one FieldChange per key present in BOTH snapshots whose values
// differ under strict inequality: no type coercion, so nil, "" and 0 are all
// distinct from each other. Keys only on one side produce no entry. Output is
// ordered by field name for stable audit rows.
func Diff(before, after Snapshot) []activity.FieldChange {
	var out []activity.FieldChange
	for k, ov := range before {
		nv, ok := after[k]
		if !ok {
			continue
		}
		if strictEqual(ov, nv) {
			continue
		}
		out = append(out, activity.FieldChange{
			FieldName: k,
			OldValue:  render(ov),
			NewValue:  render(nv),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FieldName < out[j].FieldName })
	return out
}

func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fmt.Sprintf("%T", a) != fmt.Sprintf("%T", b) {
		return false
	}
	return a == b
}

func render(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// DiffLineItems diffs two line-item collections per element, matched by their
// natural key (line item id). Elements present on only one side are skipped;
// add/remove visibility comes from the action recorded on the log row itself.
func DiffLineItems(before, after []ledger.LineItem) []activity.FieldChange {
	byID := make(map[string]ledger.LineItem, len(after))
	for _, li := range after {
		byID[li.LineItemID] = li
	}
	var out []activity.FieldChange
	keys := make([]string, 0, len(before))
	for _, li := range before {
		keys = append(keys, li.LineItemID)
	}
	sort.Strings(keys)
	prev := make(map[string]ledger.LineItem, len(before))
	for _, li := range before {
		prev[li.LineItemID] = li
	}
	for _, key := range keys {
		b := prev[key]
		a, ok := byID[key]
		if !ok {
			continue
		}
		for _, fc := range Diff(lineItemSnapshot(b), lineItemSnapshot(a)) {
			fc.FieldName = "line_item." + key + "." + fc.FieldName
			out = append(out, fc)
		}
	}
	return out
}

// DiffAddresses matches addresses by type, the natural key of the collection.
func DiffAddresses(before, after []ledger.Address) []activity.FieldChange {
	byType := make(map[ledger.AddressType]ledger.Address, len(after))
	for _, a := range after {
		byType[a.AddressType] = a
	}
	var out []activity.FieldChange
	sorted := append([]ledger.Address(nil), before...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].AddressType < sorted[j].AddressType })
	for _, b := range sorted {
		a, ok := byType[b.AddressType]
		if !ok {
			continue
		}
		for _, fc := range Diff(addressSnapshot(b), addressSnapshot(a)) {
			fc.FieldName = "address." + string(b.AddressType) + "." + fc.FieldName
			out = append(out, fc)
		}
	}
	return out
}

// LedgerSnapshot flattens the tracked header fields of a ledger.
func LedgerSnapshot(l *ledger.Ledger) Snapshot {
	if l == nil {
		return Snapshot{}
	}
	return Snapshot{
		"status":            string(l.Status),
		"approval_level":    l.ApprovalLevel,
		"sub_total_amount":  l.SubTotalAmount,
		"discount_amount":   l.DiscountAmount,
		"adjustment_amount": l.AdjustmentAmount,
		"amount":            l.Amount,
		"balance_amount":    l.BalanceAmount,
		"notes":             l.Notes,
	}
}

func lineItemSnapshot(li ledger.LineItem) Snapshot {
	return Snapshot{
		"description": li.Description,
		"hours":       li.Hours,
		"ot_hours":    li.OTHours,
		"rate":        li.Rate,
		"ot_rate":     li.OTRate,
		"amount":      li.Amount,
		"attachment":  li.Attachment,
	}
}

func addressSnapshot(a ledger.Address) Snapshot {
	return Snapshot{
		"name":    a.Name,
		"line1":   a.Line1,
		"line2":   a.Line2,
		"city":    a.City,
		"state":   a.State,
		"zip":     a.Zip,
		"country": a.Country,
	}
}
