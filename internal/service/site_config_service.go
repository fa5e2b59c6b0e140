package service

import (
	"context"
	"strings"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const defaultTestimonialRole = "Customer"

var defaultCouponPercent = decimal.NewFromInt(10)

type SiteConfigServiceImpl struct {
	repo repository.SiteConfigRepository
}

func CreateSiteConfigService(repo repository.SiteConfigRepository) SiteConfigService {
	return &SiteConfigServiceImpl{repo: repo}
}

func (s *SiteConfigServiceImpl) GetSiteConfig(ctx context.Context) (resp domain.SiteConfig, err error) {
	return s.repo.GetSiteConfig(ctx)
}

func (s *SiteConfigServiceImpl) UpdateGeneralInfo(ctx context.Context, req dto.GeneralInfoRequest) (resp domain.SiteConfig, err error) {
	return s.update(ctx, "UpdateGeneralInfo", func(conf *domain.SiteConfig) error {
		conf.HeaderTitle = req.HeaderTitle
		conf.Logo = req.Logo
		conf.FooterText = req.FooterText
		conf.CopyrightText = req.CopyrightText
		return nil
	})
}

func (s *SiteConfigServiceImpl) UpdateStoreDesign(ctx context.Context, req dto.StoreDesignRequest) (resp domain.SiteConfig, err error) {
	return s.update(ctx, "UpdateStoreDesign", func(conf *domain.SiteConfig) error {
		conf.ShowMarquee = req.ShowMarquee
		conf.ShowTopBar = req.ShowTopBar
		conf.TopBarText = req.TopBarText
		conf.ProductHighlights = req.ProductHighlights
		return nil
	})
}

func (s *SiteConfigServiceImpl) UpdateContactInfo(ctx context.Context, req domain.ContactInfo) (resp domain.SiteConfig, err error) {
	return s.update(ctx, "UpdateContactInfo", func(conf *domain.SiteConfig) error {
		conf.ContactInfo = req
		return nil
	})
}

// UpdateSMTPSettings keeps the stored password when the request leaves it blank,
// since the admin console never receives the current one.
func (s *SiteConfigServiceImpl) UpdateSMTPSettings(ctx context.Context, req domain.SMTPSettings) (resp domain.SiteConfig, err error) {
	return s.update(ctx, "UpdateSMTPSettings", func(conf *domain.SiteConfig) error {
		if req.Pass == "" {
			req.Pass = conf.SMTP.Pass
		}
		conf.SMTP = req
		return nil
	})
}

func (s *SiteConfigServiceImpl) UpdateCheckoutSettings(ctx context.Context, req domain.CheckoutSettings) (resp domain.SiteConfig, err error) {
	if req.ShippingCharge.IsNegative() || req.FreeShippingThreshold.IsNegative() {
		return resp, &domain.ValidationError{Err: errs.ErrClient, Fields: []domain.FieldError{{Field: "shipping_charge", Tag: "min=0"}}}
	}

	return s.update(ctx, "UpdateCheckoutSettings", func(conf *domain.SiteConfig) error {
		conf.Checkout = req
		return nil
	})
}

func (s *SiteConfigServiceImpl) AddHeroSlide(ctx context.Context, req domain.HeroSlide) (resp domain.SiteConfig, err error) {
	req.ID = newEntityID()
	return s.update(ctx, "AddHeroSlide", func(conf *domain.SiteConfig) error {
		conf.HeroSlides = append(conf.HeroSlides, req)
		return nil
	})
}

func (s *SiteConfigServiceImpl) UpdateHeroSlide(ctx context.Context, id string, req domain.HeroSlide) (resp domain.SiteConfig, err error) {
	req.ID = id
	return s.update(ctx, "UpdateHeroSlide", func(conf *domain.SiteConfig) (err error) {
		conf.HeroSlides, err = domain.ReplaceByID(conf.HeroSlides, req)
		return err
	})
}

func (s *SiteConfigServiceImpl) DeleteHeroSlide(ctx context.Context, id string) (resp domain.SiteConfig, err error) {
	return s.update(ctx, "DeleteHeroSlide", func(conf *domain.SiteConfig) (err error) {
		conf.HeroSlides, err = domain.RemoveByID(conf.HeroSlides, id)
		return err
	})
}

// AddTestimonial puts new testimonials first so the latest feedback leads the carousel.
func (s *SiteConfigServiceImpl) AddTestimonial(ctx context.Context, req domain.Testimonial) (resp domain.SiteConfig, err error) {
	req.ID = newEntityID()
	applyTestimonialDefaults(&req)
	if err = req.Validate(); err != nil {
		return resp, err
	}

	return s.update(ctx, "AddTestimonial", func(conf *domain.SiteConfig) error {
		conf.Testimonials = append([]domain.Testimonial{req}, conf.Testimonials...)
		return nil
	})
}

func (s *SiteConfigServiceImpl) UpdateTestimonial(ctx context.Context, id string, req domain.Testimonial) (resp domain.SiteConfig, err error) {
	req.ID = id
	applyTestimonialDefaults(&req)
	if err = req.Validate(); err != nil {
		return resp, err
	}

	return s.update(ctx, "UpdateTestimonial", func(conf *domain.SiteConfig) (err error) {
		conf.Testimonials, err = domain.ReplaceByID(conf.Testimonials, req)
		return err
	})
}

func (s *SiteConfigServiceImpl) DeleteTestimonial(ctx context.Context, id string) (resp domain.SiteConfig, err error) {
	return s.update(ctx, "DeleteTestimonial", func(conf *domain.SiteConfig) (err error) {
		conf.Testimonials, err = domain.RemoveByID(conf.Testimonials, id)
		return err
	})
}

func (s *SiteConfigServiceImpl) AddFeaturedCategory(ctx context.Context, req domain.FeaturedCategory) (resp domain.SiteConfig, err error) {
	req.ID = newEntityID()
	if err = validateFeaturedCategory(req); err != nil {
		return resp, err
	}

	return s.update(ctx, "AddFeaturedCategory", func(conf *domain.SiteConfig) error {
		conf.FeaturedCategories = append(conf.FeaturedCategories, req)
		return nil
	})
}

func (s *SiteConfigServiceImpl) UpdateFeaturedCategory(ctx context.Context, id string, req domain.FeaturedCategory) (resp domain.SiteConfig, err error) {
	req.ID = id
	if err = validateFeaturedCategory(req); err != nil {
		return resp, err
	}

	return s.update(ctx, "UpdateFeaturedCategory", func(conf *domain.SiteConfig) (err error) {
		conf.FeaturedCategories, err = domain.ReplaceByID(conf.FeaturedCategories, req)
		return err
	})
}

func (s *SiteConfigServiceImpl) DeleteFeaturedCategory(ctx context.Context, id string) (resp domain.SiteConfig, err error) {
	return s.update(ctx, "DeleteFeaturedCategory", func(conf *domain.SiteConfig) (err error) {
		conf.FeaturedCategories, err = domain.RemoveByID(conf.FeaturedCategories, id)
		return err
	})
}

func (s *SiteConfigServiceImpl) AddUSP(ctx context.Context, req domain.USP) (resp domain.SiteConfig, err error) {
	req.ID = newEntityID()
	if err = req.Validate(); err != nil {
		return resp, err
	}

	return s.update(ctx, "AddUSP", func(conf *domain.SiteConfig) error {
		conf.USPs = append(conf.USPs, req)
		return nil
	})
}

func (s *SiteConfigServiceImpl) UpdateUSP(ctx context.Context, id string, req domain.USP) (resp domain.SiteConfig, err error) {
	req.ID = id
	if err = req.Validate(); err != nil {
		return resp, err
	}

	return s.update(ctx, "UpdateUSP", func(conf *domain.SiteConfig) (err error) {
		conf.USPs, err = domain.ReplaceByID(conf.USPs, req)
		return err
	})
}

func (s *SiteConfigServiceImpl) DeleteUSP(ctx context.Context, id string) (resp domain.SiteConfig, err error) {
	return s.update(ctx, "DeleteUSP", func(conf *domain.SiteConfig) (err error) {
		conf.USPs, err = domain.RemoveByID(conf.USPs, id)
		return err
	})
}

// AddCoupon stores the code in its canonical upper-case form. New coupons start active.
func (s *SiteConfigServiceImpl) AddCoupon(ctx context.Context, req dto.CouponRequest) (resp domain.SiteConfig, err error) {
	coupon := domain.Coupon{
		ID:              newEntityID(),
		Code:            domain.NormalizeCouponCode(req.Code),
		DiscountPercent: defaultCouponPercent,
		IsActive:        true,
	}
	if req.DiscountPercent != nil {
		coupon.DiscountPercent = *req.DiscountPercent
	}

	if err = coupon.Validate(); err != nil {
		return resp, err
	}

	return s.update(ctx, "AddCoupon", func(conf *domain.SiteConfig) error {
		for _, c := range conf.Coupons {
			if strings.EqualFold(c.Code, coupon.Code) {
				return errs.ErrConflict
			}
		}
		conf.Coupons = append(conf.Coupons, coupon)
		return nil
	})
}

func (s *SiteConfigServiceImpl) ToggleCoupon(ctx context.Context, id string) (resp domain.SiteConfig, err error) {
	return s.update(ctx, "ToggleCoupon", func(conf *domain.SiteConfig) error {
		coupon, ok := domain.FindByID(conf.Coupons, id)
		if !ok {
			return errs.ErrNotFound
		}
		coupon.IsActive = !coupon.IsActive

		var err error
		conf.Coupons, err = domain.ReplaceByID(conf.Coupons, coupon)
		return err
	})
}

func (s *SiteConfigServiceImpl) DeleteCoupon(ctx context.Context, id string) (resp domain.SiteConfig, err error) {
	return s.update(ctx, "DeleteCoupon", func(conf *domain.SiteConfig) (err error) {
		conf.Coupons, err = domain.RemoveByID(conf.Coupons, id)
		return err
	})
}

func (s *SiteConfigServiceImpl) update(ctx context.Context, component string, fn func(conf *domain.SiteConfig) error) (domain.SiteConfig, error) {
	conf, err := s.repo.UpdateSiteConfig(ctx, fn)
	if err != nil {
		return domain.SiteConfig{}, err
	}

	log.Ctx(ctx).Info().Str("component", component).Msg("site config updated")

	return conf, nil
}

func applyTestimonialDefaults(t *domain.Testimonial) {
	if strings.TrimSpace(t.Role) == "" {
		t.Role = defaultTestimonialRole
	}
	if t.Rating == 0 {
		t.Rating = 5
	}
}

func validateFeaturedCategory(f domain.FeaturedCategory) error {
	if strings.TrimSpace(f.Name) == "" {
		return &domain.ValidationError{Err: errs.ErrClient, Fields: []domain.FieldError{{Field: "name", Tag: "required"}}}
	}

	return nil
}

func newEntityID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
