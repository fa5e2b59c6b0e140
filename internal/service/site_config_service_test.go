package service

import (
	"context"
	"testing"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSiteConfigService() SiteConfigService {
	return CreateSiteConfigService(repository.CreateSiteConfigRepository(domain.DefaultSiteConfig()))
}

func TestAddCoupon(t *testing.T) {
	svc := newSiteConfigService()
	ctx := context.Background()

	conf, err := svc.AddCoupon(ctx, dto.CouponRequest{Code: " spring5 "})
	require.NoError(t, err)

	added := conf.Coupons[len(conf.Coupons)-1]
	assert.Equal(t, "SPRING5", added.Code)
	assert.True(t, decimal.NewFromInt(10).Equal(added.DiscountPercent))
	assert.True(t, added.IsActive)
	assert.NotEmpty(t, added.ID)

	_, err = svc.AddCoupon(ctx, dto.CouponRequest{Code: "velvet10"})
	assert.ErrorIs(t, err, errs.ErrConflict)

	over := decimal.NewFromInt(120)
	_, err = svc.AddCoupon(ctx, dto.CouponRequest{Code: "HUGE", DiscountPercent: &over})
	assert.ErrorIs(t, err, errs.ErrClient)

	conf, err = svc.ToggleCoupon(ctx, added.ID)
	require.NoError(t, err)
	toggled, ok := domain.FindByID(conf.Coupons, added.ID)
	require.True(t, ok)
	assert.False(t, toggled.IsActive)

	_, err = svc.DeleteCoupon(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAddTestimonialDefaults(t *testing.T) {
	svc := newSiteConfigService()

	conf, err := svc.AddTestimonial(context.Background(), domain.Testimonial{Name: "Lamia", Comment: "Lovely stitching"})
	require.NoError(t, err)

	first := conf.Testimonials[0]
	assert.Equal(t, "Lamia", first.Name)
	assert.Equal(t, "Customer", first.Role)
	assert.Equal(t, 5, first.Rating)
	assert.Len(t, conf.Testimonials, 4)

	_, err = svc.AddTestimonial(context.Background(), domain.Testimonial{Name: "Lamia", Comment: "Meh", Rating: 9})
	assert.ErrorIs(t, err, errs.ErrClient)
}

func TestUpdateHeroSlideKeepsPosition(t *testing.T) {
	svc := newSiteConfigService()

	conf, err := svc.UpdateHeroSlide(context.Background(), "slide-2", domain.HeroSlide{Title: "Winter Edit", Image: "img"})
	require.NoError(t, err)
	assert.Equal(t, "slide-2", conf.HeroSlides[1].ID)
	assert.Equal(t, "Winter Edit", conf.HeroSlides[1].Title)

	_, err = svc.UpdateHeroSlide(context.Background(), "slide-9", domain.HeroSlide{Title: "x"})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	conf, err = svc.DeleteHeroSlide(context.Background(), "slide-1")
	require.NoError(t, err)
	assert.Len(t, conf.HeroSlides, 2)
}

func TestUpdateSMTPSettingsKeepsPassword(t *testing.T) {
	svc := newSiteConfigService()
	ctx := context.Background()

	_, err := svc.UpdateSMTPSettings(ctx, domain.SMTPSettings{Host: "smtp.example.com", Port: 465, User: "me", Pass: "first"})
	require.NoError(t, err)

	conf, err := svc.UpdateSMTPSettings(ctx, domain.SMTPSettings{Host: "smtp.example.com", Port: 587, User: "me"})
	require.NoError(t, err)
	assert.Equal(t, "first", conf.SMTP.Pass)
	assert.Equal(t, 587, conf.SMTP.Port)
	assert.Empty(t, conf.Public().SMTP.Pass)
}

func TestUpdateCheckoutSettingsRejectsNegativeShipping(t *testing.T) {
	svc := newSiteConfigService()

	_, err := svc.UpdateCheckoutSettings(context.Background(), domain.CheckoutSettings{ShippingCharge: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, errs.ErrClient)

	conf, err := svc.UpdateCheckoutSettings(context.Background(), domain.CheckoutSettings{EnableBkash: true, ShippingCharge: decimal.NewFromInt(80)})
	require.NoError(t, err)
	assert.True(t, conf.Checkout.EnableBkash)
}
