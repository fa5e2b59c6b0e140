package dto

import pkgdto "github.com/alimikegami/velvet-storefront/pkg/dto"

type ProductFilter struct {
	Limit    int    `query:"limit"`
	Page     int    `query:"page"`
	Q        string `query:"q"`
	Category string `query:"category"`
	Featured bool   `query:"featured"`
}

func (f ProductFilter) Pagination() pkgdto.Filter {
	return pkgdto.Filter{Limit: f.Limit, Page: f.Page, Q: f.Q}
}

type OrderFilter struct {
	Limit  int    `query:"limit"`
	Page   int    `query:"page"`
	Status string `query:"status"`
	Email  string `query:"email"`
}

func (f OrderFilter) Pagination() pkgdto.Filter {
	return pkgdto.Filter{Limit: f.Limit, Page: f.Page}
}
