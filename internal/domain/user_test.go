package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	for _, tab := range AllTabs {
		assert.True(t, CanAccess(RoleSuperAdmin, tab), "super admin %s", tab)
		assert.False(t, CanAccess(RoleCustomer, tab), "customer %s", tab)
	}

	assert.True(t, CanAccess(RoleShopAdmin, TabOrders))
	assert.True(t, CanAccess(RoleShopAdmin, TabStoreDesign))
	assert.False(t, CanAccess(RoleShopAdmin, TabUsers))
	assert.False(t, CanAccess(RoleShopAdmin, TabSystemConfig))
	assert.False(t, CanAccess(Role("GUEST"), TabDashboard))
}

func TestAllowedTabs(t *testing.T) {
	assert.Equal(t, []Tab{TabDashboard, TabOrders, TabProducts, TabCategories, TabStoreDesign}, AllowedTabs(RoleShopAdmin))
	assert.Len(t, AllowedTabs(RoleSuperAdmin), len(AllTabs))
	assert.Empty(t, AllowedTabs(RoleCustomer))
}

func TestValidateRegistration(t *testing.T) {
	assert.NoError(t, ValidateRegistration("Nadia", "nadia@example.com", "secret"))
	assert.Error(t, ValidateRegistration("", "nadia@example.com", "secret"))
	assert.Error(t, ValidateRegistration("Nadia", "not-an-email", "secret"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "midnight-rose-tote", Slugify("Midnight Rose Tote"))
	assert.Equal(t, "micro-bags-macro-charms", Slugify("Micro Bags & Macro Charms!"))
}

func TestProduct_MatchesQuery(t *testing.T) {
	p := Product{Name: "Crystal Heart Charm", Category: "Keychain"}

	assert.True(t, p.MatchesQuery("heart"))
	assert.True(t, p.MatchesQuery("KEYCHAIN"))
	assert.True(t, p.MatchesQuery(""))
	assert.False(t, p.MatchesQuery("tote"))
}
