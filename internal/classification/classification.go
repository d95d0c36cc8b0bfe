package classification

import "sort"

// Category is the visual grouping an event type maps to.
type Category struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Table is an immutable event-type-code -> category lookup. It is built
// once at startup and injected wherever events are classified, so the
// mappings live in exactly one place.
type Table struct {
	version    string
	byCode     map[string]Category
	categories []Category // first-seen order, fallback last
	fallback   Category
}

const fallbackCode = "other"

// Default is the lookup table for the currently deployed incentive plan.
func Default() *Table {
	sales := Category{Code: "sales", Label: "Sales", Color: "#2E7D32", Icon: "sales-icon"}
	payment := Category{Code: "payment", Label: "Payment", Color: "#1565C0", Icon: "payment-icon"}
	rpp := Category{Code: "rpp", Label: "RPP", Color: "#6A1B9A", Icon: "rpp-icon"}
	repossession := Category{Code: "repossession", Label: "Repossession", Color: "#C62828", Icon: "units-repossess-icon"}

	return New("2024-11", map[string]Category{
		"ACTIVATION":      sales,
		"NEW-CUSTOMER":    sales,
		"UPSELL":          sales,
		"25-PERCENT-PAID": payment,
		"50-PERCENT-PAID": payment,
		"75-PERCENT-PAID": payment,
		"FULL-PAID":       payment,
		"RPP":             rpp,
		"REPOSSESSION":    repossession,
		"UNIT-RECOVERY":   repossession,
	})
}

// New builds a table from a code mapping. Unknown event-type codes
// resolve to the "Other" bucket so no event is ever dropped.
func New(version string, mapping map[string]Category) *Table {
	t := &Table{
		version:  version,
		byCode:   make(map[string]Category, len(mapping)),
		fallback: Category{Code: fallbackCode, Label: "Other", Color: "#757575", Icon: "other-icon"},
	}

	seen := make(map[string]bool)
	for _, code := range sortedKeys(mapping) {
		cat := mapping[code]
		t.byCode[code] = cat
		if !seen[cat.Code] {
			seen[cat.Code] = true
			t.categories = append(t.categories, cat)
		}
	}
	t.categories = append(t.categories, t.fallback)
	return t
}

func (t *Table) Version() string { return t.version }

// Lookup classifies an event-type code.
func (t *Table) Lookup(code string) Category {
	if cat, ok := t.byCode[code]; ok {
		return cat
	}
	return t.fallback
}

// Other returns the fallback bucket.
func (t *Table) Other() Category { return t.fallback }

// Categories lists every distinct category including the fallback.
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// ByCategoryCode resolves a category filter parameter ("sales") back to
// its category. The second return reports whether the code is known.
func (t *Table) ByCategoryCode(code string) (Category, bool) {
	for _, cat := range t.categories {
		if cat.Code == code {
			return cat, true
		}
	}
	return Category{}, false
}

// CodesFor lists the event-type codes mapped to a category, in
// deterministic order. Empty for the fallback bucket, which is defined
// by exclusion.
func (t *Table) CodesFor(categoryCode string) []string {
	var out []string
	for code, cat := range t.byCode {
		if cat.Code == categoryCode {
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}

// KnownCodes lists every mapped event-type code. Everything else is
// classified as "Other".
func (t *Table) KnownCodes() []string {
	out := make([]string, 0, len(t.byCode))
	for code := range t.byCode {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]Category) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
