package domain

import "github.com/shopspring/decimal"

func DefaultCategories() []string {
	return []string{"Bag", "Keychain", "Accessories", "Wallets", "Scarves", "Jewelry"}
}

func DefaultProducts() []Product {
	return []Product{
		{
			ID: "1", Name: "Midnight Rose Tote", Slug: "midnight-rose-tote",
			Price: decimal.NewFromInt(15500), Category: "Bag",
			Description: "A luxurious dark leather tote with rose gold accents. Perfect for the modern professional woman who needs elegance and utility.",
			Image:       "https://picsum.photos/id/103/600/600", IsNew: true, IsFeatured: true,
		},
		{
			ID: "2", Name: "Blush Velvet Clutch", Slug: "blush-velvet-clutch",
			Price: decimal.NewFromInt(10500), Category: "Bag",
			Description: "Soft touch velvet clutch in a dusty pink hue. Ideal for evening galas and romantic dinner dates.",
			Image:       "https://picsum.photos/id/21/600/600", IsFeatured: true,
		},
		{
			ID: "3", Name: "Crystal Heart Charm", Slug: "crystal-heart-charm",
			Price: decimal.NewFromInt(2800), Category: "Keychain",
			Description: "Sparkling crystal heart keychain that adds a touch of glamour to any bag or set of keys.",
			Image:       "https://picsum.photos/id/30/600/600",
		},
		{
			ID: "4", Name: "Obsidian Satchel", Slug: "obsidian-satchel",
			Price: decimal.NewFromInt(18500), Category: "Bag",
			Description: "Structured black satchel with high-durability hardware. A timeless classic for the organized soul.",
			Image:       "https://picsum.photos/id/36/600/600", IsFeatured: true,
		},
		{
			ID: "5", Name: "Pom-Pom Fluff", Slug: "pom-pom-fluff",
			Price: decimal.NewFromInt(1500), Category: "Keychain",
			Description: "Fun and flirty faux-fur pom-pom keychain in vibrant magenta. Hard to lose your keys with this around!",
			Image:       "https://picsum.photos/id/64/600/600",
		},
		{
			ID: "6", Name: "Urban Crossbody", Slug: "urban-crossbody",
			Price: decimal.NewFromInt(8500), Category: "Bag",
			Description: "Compact crossbody bag designed for city life. Lightweight, secure, and stylishly minimal.",
			Image:       "https://picsum.photos/id/91/600/600", IsNew: true, IsFeatured: true,
		},
	}
}

// SeedAccount is a bootstrap account whose password is hashed at startup.
type SeedAccount struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

func DefaultAccounts() []SeedAccount {
	return []SeedAccount{
		{Name: "Super Admin", Email: "admin@velvetvogue.com", Password: "admin", Role: RoleSuperAdmin},
		{Name: "Shop Manager", Email: "shop@velvetvogue.com", Password: "shop", Role: RoleShopAdmin},
	}
}

func DefaultBlogPosts() []BlogPost {
	return []BlogPost{
		{
			ID: "1", Title: "The Art of Layering Accessories", Slug: "art-of-layering-accessories",
			Excerpt: "Discover how to mix and match bags and keychains for a unique look that stands out.",
			Content: "Layering isn't just for clothes. In the world of accessories, combining textures and sizes can create a visually stunning effect. Start with a structured bag as your base and add a playful, soft keychain to break the rigidity. Don't be afraid to mix metals; gold hardware on a bag looks surprisingly chic with a silver charm.",
			Image:   "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?q=80&w=2000&auto=format&fit=crop",
			Date:    "Oct 12, 2024", Author: "Sarah V.",
		},
		{
			ID: "2", Title: "Leather Care 101: Keep It Timeless", Slug: "leather-care-101",
			Excerpt: "Essential tips to ensure your premium leather bags last a lifetime.",
			Content: "Your leather bag is an investment. To keep it looking pristine, always store it in a dust bag when not in use. Avoid prolonged exposure to direct sunlight which can fade the color. If it gets wet, blot it gently with a soft cloth, never rub. Conditioning your bag every few months will keep the leather supple and prevent cracking.",
			Image:   "https://images.unsplash.com/photo-1445633765532-42965f2dac8a?q=80&w=2000&auto=format&fit=crop",
			Date:    "Oct 05, 2024", Author: "Velvet Team",
		},
		{
			ID: "3", Title: "Trending: Micro Bags & Macro Charms", Slug: "micro-bags-macro-charms",
			Excerpt: "Why the tiny bag trend is here to stay and how to accessorize it.",
			Content: "The micro bag trend continues to dominate runways. While they might not hold much more than a lipstick and a credit card, their style impact is massive. The key to styling them? Oversized keychains. A 'macro' charm on a micro bag plays with proportions in a fun, fashion-forward way.",
			Image:   "https://images.unsplash.com/photo-1594223274512-ad4803739b7c?q=80&w=2000&auto=format&fit=crop",
			Date:    "Sep 28, 2024", Author: "Fashion Ed.",
		},
	}
}

func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		HeaderTitle:   "Velvet & Vogue",
		FooterText:    "Defining modern elegance, one accessory at a time.",
		CopyrightText: "© 2024 Velvet & Vogue. All rights reserved.",
		ShowMarquee:   true,
		ShowTopBar:    true,
		TopBarText:    "FREE SHIPPING ON ORDERS OVER ৳5000 • NEW COLLECTION AVAILABLE • USE CODE: VELVET10",
		SMTP: SMTPSettings{
			Host:      "smtp.gmail.com",
			Port:      587,
			User:      "admin@velvetvogue.com",
			FromEmail: "orders@velvetvogue.com",
		},
		Checkout: CheckoutSettings{
			EnableBkash:           true,
			BkashNumber:           "017XXXXXXXX",
			BkashInstructions:     "Please Send Money to the number above and enter the transaction ID below.",
			ShippingCharge:        decimal.NewFromInt(120),
			FreeShippingThreshold: decimal.NewFromInt(5000),
		},
		HeroSlides: []HeroSlide{
			{
				ID:       "slide-1",
				Image:    "https://images.unsplash.com/photo-1594223274512-ad4803739b7c?q=80&w=2557&auto=format&fit=crop",
				Title:    "Timeless Elegance",
				Subtitle: "Discover our premium leather collection designed for the modern muse.",
				CTA:      "Shop Bags",
			},
			{
				ID:       "slide-2",
				Image:    "https://images.unsplash.com/photo-1584917865442-de89df76afd3?q=80&w=2535&auto=format&fit=crop",
				Title:    "Chic Accessories",
				Subtitle: "The perfect finish to every outfit. Sparkle with our artisan keychains.",
				CTA:      "Shop Keychains",
			},
			{
				ID:       "slide-3",
				Image:    "https://images.unsplash.com/photo-1559563458-527698bf5295?q=80&w=2670&auto=format&fit=crop",
				Title:    "New Arrivals",
				Subtitle: "Fresh styles, bold colors, and the same velvet touch you love.",
				CTA:      "View Collection",
			},
		},
		Testimonials: []Testimonial{
			{ID: "1", Name: "Sophia Martinez", Role: "Fashion Blogger", Rating: 5,
				Comment: "The quality of the leather is absolutely stunning. I've never received so many compliments on a bag before!"},
			{ID: "2", Name: "Emily Chen", Role: "Verified Buyer", Rating: 5,
				Comment: "Fast shipping and the packaging was so luxurious. It felt like opening a gift to myself."},
			{ID: "3", Name: "Isabella Rossi", Role: "Stylist", Rating: 4,
				Comment: "Velvet & Vogue is my go-to for unique accessories. The keychains are little pieces of art."},
		},
		ContactInfo: ContactInfo{
			Email:     "support@velvetvogue.com",
			Phone:     "+1 (555) 123-4567",
			Facebook:  "facebook.com/velvetvogue",
			Instagram: "instagram.com/velvetvogue",
			Twitter:   "twitter.com/velvetvogue",
		},
		FeaturedCategories: []FeaturedCategory{
			{ID: "featured-1", Name: "Bags", FilterValue: "Bag",
				Image: "https://images.unsplash.com/photo-1591561954557-26941169b49e?q=80&w=1000&auto=format&fit=crop"},
			{ID: "featured-2", Name: "Keychains", FilterValue: "Keychain",
				Image: "https://images.unsplash.com/photo-1622616233483-20790b407425?q=80&w=1000&auto=format&fit=crop"},
			{ID: "featured-3", Name: "Purses", FilterValue: "Wallets",
				Image: "https://images.unsplash.com/photo-1566150905458-1bf1ae110671?q=80&w=1000&auto=format&fit=crop"},
			{ID: "featured-4", Name: "Accessories", FilterValue: "Accessories",
				Image: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?q=80&w=1000&auto=format&fit=crop"},
		},
		USPs: []USP{
			{ID: "usp-1", Text: "Fast Delivery", Icon: USPIconTruck},
			{ID: "usp-2", Text: "Premium Quality", Icon: USPIconCrown},
			{ID: "usp-3", Text: "Trusted Brand", Icon: USPIconShield},
			{ID: "usp-4", Text: "Easy Returns", Icon: USPIconRefresh},
		},
		Coupons: []Coupon{
			{ID: "coupon-1", Code: "VELVET10", DiscountPercent: decimal.NewFromInt(10), IsActive: true},
			{ID: "coupon-2", Code: "WELCOME20", DiscountPercent: decimal.NewFromInt(20), IsActive: false},
		},
		ProductHighlights: ProductHighlights{
			ShowShipping: true,
			ShippingText: "Free shipping on orders over ৳5000",
			ShowWarranty: true,
			WarrantyText: "1 year warranty included",
		},
	}
}
