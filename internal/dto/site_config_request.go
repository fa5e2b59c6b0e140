package dto

import (
	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type GeneralInfoRequest struct {
	HeaderTitle   string `json:"header_title"`
	Logo          string `json:"logo"`
	FooterText    string `json:"footer_text"`
	CopyrightText string `json:"copyright_text"`
}

type StoreDesignRequest struct {
	ShowMarquee       bool                     `json:"show_marquee"`
	ShowTopBar        bool                     `json:"show_top_bar"`
	TopBarText        string                   `json:"top_bar_text"`
	ProductHighlights domain.ProductHighlights `json:"product_highlights"`
}

type CouponRequest struct {
	Code            string           `json:"code"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
}

type CredentialsRequest struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
	Key      string `json:"key"`
}

type SyncResult struct {
	Source     string `json:"source"`
	Message    string `json:"message"`
	SyncedAt   int64  `json:"synced_at"`
	Products   int    `json:"products"`
	Orders     int    `json:"orders"`
	Users      int    `json:"users"`
	BlogPosts  int    `json:"blog_posts"`
	Categories int    `json:"categories"`
}

type StoreStatusResponse struct {
	Credentials domain.StoreCredentials `json:"credentials"`
	Configured  bool                    `json:"configured"`
	Schema      string                  `json:"schema"`
}
