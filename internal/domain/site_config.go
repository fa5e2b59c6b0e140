package domain

import (
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/shopspring/decimal"
)

type SMTPSettings struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	User      string `json:"user"`
	Pass      string `json:"pass,omitempty"`
	FromEmail string `json:"from_email"`
}

func (s SMTPSettings) Configured() bool {
	return s.Host != "" && s.Port > 0 && s.User != "" && s.Pass != ""
}

type CheckoutSettings struct {
	EnableBkash           bool            `json:"enable_bkash"`
	BkashNumber           string          `json:"bkash_number"`
	BkashInstructions     string          `json:"bkash_instructions"`
	ShippingCharge        decimal.Decimal `json:"shipping_charge"`
	FreeShippingThreshold decimal.Decimal `json:"free_shipping_threshold"`
}

type HeroSlide struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type ContactInfo struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

type FeaturedCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	FilterValue string `json:"filter_value"`
}

type USPIcon string

const (
	USPIconTruck   USPIcon = "TRUCK"
	USPIconShield  USPIcon = "SHIELD"
	USPIconRefresh USPIcon = "REFRESH"
	USPIconCrown   USPIcon = "CROWN"
)

type USP struct {
	ID   string  `json:"id"`
	Text string  `json:"text"`
	Icon USPIcon `json:"icon"`
}

type Coupon struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	IsActive        bool            `json:"is_active"`
}

type ProductHighlights struct {
	ShowShipping bool   `json:"show_shipping"`
	ShippingText string `json:"shipping_text"`
	ShowWarranty bool   `json:"show_warranty"`
	WarrantyText string `json:"warranty_text"`
}

type SiteConfig struct {
	HeaderTitle        string             `json:"header_title"`
	Logo               string             `json:"logo"`
	FooterText         string             `json:"footer_text"`
	CopyrightText      string             `json:"copyright_text"`
	ShowMarquee        bool               `json:"show_marquee"`
	ShowTopBar         bool               `json:"show_top_bar"`
	TopBarText         string             `json:"top_bar_text"`
	SMTP               SMTPSettings       `json:"smtp"`
	Checkout           CheckoutSettings   `json:"checkout"`
	HeroSlides         []HeroSlide        `json:"hero_slides"`
	Testimonials       []Testimonial      `json:"testimonials"`
	ContactInfo        ContactInfo        `json:"contact_info"`
	FeaturedCategories []FeaturedCategory `json:"featured_categories"`
	USPs               []USP              `json:"usps"`
	Coupons            []Coupon           `json:"coupons"`
	ProductHighlights  ProductHighlights  `json:"product_highlights"`
}

func (c SiteConfig) Clone() SiteConfig {
	out := c
	out.HeroSlides = append([]HeroSlide(nil), c.HeroSlides...)
	out.Testimonials = append([]Testimonial(nil), c.Testimonials...)
	out.FeaturedCategories = append([]FeaturedCategory(nil), c.FeaturedCategories...)
	out.USPs = append([]USP(nil), c.USPs...)
	out.Coupons = append([]Coupon(nil), c.Coupons...)

	return out
}

// Public strips secrets before the config is served to storefront visitors.
func (c SiteConfig) Public() SiteConfig {
	out := c.Clone()
	out.SMTP.Pass = ""

	return out
}

func (c SiteConfig) ShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		Charge:        c.Checkout.ShippingCharge,
		FreeThreshold: c.Checkout.FreeShippingThreshold,
	}
}

func (h HeroSlide) EntityID() string        { return h.ID }
func (t Testimonial) EntityID() string      { return t.ID }
func (f FeaturedCategory) EntityID() string { return f.ID }
func (u USP) EntityID() string              { return u.ID }
func (c Coupon) EntityID() string           { return c.ID }

type identified interface {
	EntityID() string
}

// ReplaceByID swaps the element with the given id, keeping its position.
func ReplaceByID[T identified](items []T, item T) ([]T, error) {
	for i := range items {
		if items[i].EntityID() == item.EntityID() {
			items[i] = item
			return items, nil
		}
	}

	return items, errs.ErrNotFound
}

func RemoveByID[T identified](items []T, id string) ([]T, error) {
	for i := range items {
		if items[i].EntityID() == id {
			return append(items[:i], items[i+1:]...), nil
		}
	}

	return items, errs.ErrNotFound
}

func FindByID[T identified](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.EntityID() == id {
			return item, true
		}
	}

	var zero T
	return zero, false
}

func (c Coupon) Validate() error {
	var v fieldChecker
	v.required("code", c.Code)
	if c.DiscountPercent.IsNegative() || c.DiscountPercent.GreaterThan(hundred) {
		v.fail("discount_percent", "min=0,max=100")
	}

	return v.result(errs.ErrClient)
}

func (t Testimonial) Validate() error {
	var v fieldChecker
	v.required("name", t.Name)
	v.required("comment", t.Comment)
	if t.Rating < 1 || t.Rating > 5 {
		v.fail("rating", "min=1,max=5")
	}

	return v.result(errs.ErrClient)
}

func (u USP) Validate() error {
	var v fieldChecker
	v.required("text", u.Text)
	switch u.Icon {
	case USPIconTruck, USPIconShield, USPIconRefresh, USPIconCrown:
	default:
		v.fail("icon", "oneof=TRUCK SHIELD REFRESH CROWN")
	}

	return v.result(errs.ErrClient)
}
