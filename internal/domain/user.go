package domain

import (
	"net/mail"
	"strings"

	"github.com/alimikegami/velvet-storefront/pkg/errs"
)

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleShopAdmin  Role = "SHOP_ADMIN"
	RoleCustomer   Role = "CUSTOMER"
)

func (r Role) IsValid() bool {
	return r == RoleSuperAdmin || r == RoleShopAdmin || r == RoleCustomer
}

type Tab string

const (
	TabDashboard    Tab = "DASHBOARD"
	TabOrders       Tab = "ORDERS"
	TabProducts     Tab = "PRODUCTS"
	TabCategories   Tab = "CATEGORIES"
	TabStoreDesign  Tab = "STORE_DESIGN"
	TabGeneralInfo  Tab = "GENERAL_INFO"
	TabSystemConfig Tab = "SYSTEM_CONFIG"
	TabReviews      Tab = "REVIEWS"
	TabCoupons      Tab = "COUPONS"
	TabUsers        Tab = "USERS"
	TabBlog         Tab = "BLOG"
)

var AllTabs = []Tab{
	TabDashboard, TabOrders, TabProducts, TabCategories, TabStoreDesign,
	TabGeneralInfo, TabSystemConfig, TabReviews, TabCoupons, TabUsers, TabBlog,
}

var shopAdminTabs = map[Tab]bool{
	TabDashboard:   true,
	TabProducts:    true,
	TabCategories:  true,
	TabStoreDesign: true,
	TabOrders:      true,
}

func CanAccess(role Role, tab Tab) bool {
	switch role {
	case RoleSuperAdmin:
		return true
	case RoleShopAdmin:
		return shopAdminTabs[tab]
	default:
		return false
	}
}

func AllowedTabs(role Role) []Tab {
	tabs := []Tab{}
	for _, t := range AllTabs {
		if CanAccess(role, t) {
			tabs = append(tabs, t)
		}
	}

	return tabs
}

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	HashedPassword string `json:"hashed_password"`
	Role           Role   `json:"role"`
	CreatedAt      int64  `json:"created_at"`
}

type PendingRegistration struct {
	ID             string
	Name           string
	Email          string
	HashedPassword string
	Code           string
	ExpiresAt      int64
}

func (p PendingRegistration) Expired(now int64) bool {
	return now >= p.ExpiresAt
}

// ValidateRegistration checks the fields a new account needs.
func ValidateRegistration(name, email, password string) error {
	var c fieldChecker
	c.required("name", name)
	c.required("email", email)
	c.required("password", password)

	if strings.TrimSpace(email) != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			c.fail("email", "email")
		}
	}

	return c.result(errs.ErrClient)
}
