package domain

import (
	"strings"

	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	IsNew       bool            `json:"is_new"`
	IsFeatured  bool            `json:"is_featured"`
}

// Validate checks field shape only; category existence is the catalog's concern.
func (p Product) Validate() error {
	var c fieldChecker
	c.required("name", p.Name)
	c.required("category", p.Category)
	if p.Price.IsNegative() {
		c.fail("price", "gte=0")
	}

	return c.result(errs.ErrClient)
}

// MatchesQuery reports a case-insensitive substring hit on name or category.
func (p Product) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q)
}

// Slugify lowercases the name and joins alphanumeric runs with dashes.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

func NormalizeCategoryName(name string) string {
	return strings.TrimSpace(name)
}
