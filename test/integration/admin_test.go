package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"artizia_backend/internal/models"
	"artizia_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginAdmin(t *testing.T, ts *helpers.TestServer) string {
	t.Helper()
	token, _ := helpers.CreateAndLoginUser(t, ts, "Platform Admin", uniqueEmail("admin"), models.RoleAdmin)
	return token
}

func TestAdminDashboard(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := loginAdmin(t, ts)

	vendor, _ := helpers.CreateVendor(t, ts.DB, "Stats Vendor", uniqueEmail("stats-vendor"),
		"Stats Shop", models.VendorStatusApproved)
	helpers.CreateVendor(t, ts.DB, "Waiting Vendor", uniqueEmail("waiting-vendor"),
		"Waiting Shop", models.VendorStatusPending)
	helpers.CreateUser(t, ts.DB, "Stats Customer", uniqueEmail("stats-customer"),
		"password123", models.RoleCustomer)

	category := helpers.CreateCategory(t, ts.DB, "Stats Category", nil)
	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Stats Active", Price: 10, IsActive: true,
	})
	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Stats Hidden", Price: 10, IsActive: false,
	})

	res, body := ts.SendRequest(t, http.MethodGet, "/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Stats struct {
			TotalUsers      int64 `json:"total_users"`
			TotalVendors    int64 `json:"total_vendors"`
			TotalCustomers  int64 `json:"total_customers"`
			TotalProducts   int64 `json:"total_products"`
			ActiveProducts  int64 `json:"active_products"`
			TotalCategories int64 `json:"total_categories"`
			PendingVendors  int64 `json:"pending_vendors"`
		} `json:"stats"`
		RecentUsers    []models.User          `json:"recent_users"`
		RecentProducts []models.Product       `json:"recent_products"`
		PendingVendors []models.VendorProfile `json:"pending_vendors"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	// admin + 2 vendors + 1 customer
	assert.Equal(t, int64(4), resp.Stats.TotalUsers)
	assert.Equal(t, int64(2), resp.Stats.TotalVendors)
	assert.Equal(t, int64(1), resp.Stats.TotalCustomers)
	assert.Equal(t, int64(2), resp.Stats.TotalProducts)
	assert.Equal(t, int64(1), resp.Stats.ActiveProducts)
	assert.Equal(t, int64(1), resp.Stats.TotalCategories)
	assert.Equal(t, int64(1), resp.Stats.PendingVendors)

	assert.NotEmpty(t, resp.RecentUsers)
	assert.Len(t, resp.RecentProducts, 2)
	require.Len(t, resp.PendingVendors, 1)
	assert.Equal(t, "Waiting Shop", resp.PendingVendors[0].BusinessName)
}

func TestAdminListUsersRoleFilter(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := loginAdmin(t, ts)

	helpers.CreateVendor(t, ts.DB, "Listed Vendor", uniqueEmail("listed-vendor"),
		"Listed Shop", models.VendorStatusApproved)
	helpers.CreateUser(t, ts.DB, "Listed Customer", uniqueEmail("listed-customer"),
		"password123", models.RoleCustomer)

	res, body := ts.SendRequest(t, http.MethodGet, "/admin/users?role=customer", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(1), resp.Total)
	assert.Contains(t, string(resp.Items), "Listed Customer")
	assert.NotContains(t, string(resp.Items), "Listed Vendor")
}

func TestAdminListUsersSearch(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := loginAdmin(t, ts)

	helpers.CreateUser(t, ts.DB, "Findable Fred", "fred@search.com", "password123", models.RoleCustomer)
	helpers.CreateUser(t, ts.DB, "Hidden Harriet", "harriet@search.com", "password123", models.RoleCustomer)

	res, body := ts.SendRequest(t, http.MethodGet, "/admin/users?search=fred", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(1), resp.Total)
	assert.Contains(t, string(resp.Items), "Findable Fred")
}

func TestAdminApproveVendor(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := loginAdmin(t, ts)

	_, profile := helpers.CreateVendor(t, ts.DB, "Applicant", uniqueEmail("applicant"),
		"Applicant Shop", models.VendorStatusPending)

	res, body := ts.SendRequest(t, http.MethodPost, "/admin/vendors/"+profile.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Vendor approved successfully")

	var reloaded models.VendorProfile
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", profile.ID).Error)
	assert.Equal(t, models.VendorStatusApproved, reloaded.Status)
	assert.NotNil(t, reloaded.ApprovedAt)
}

func TestAdminRejectVendorKeepsApprovedAt(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := loginAdmin(t, ts)

	_, profile := helpers.CreateVendor(t, ts.DB, "Fallen Vendor", uniqueEmail("fallen"),
		"Fallen Shop", models.VendorStatusApproved)
	require.NotNil(t, profile.ApprovedAt)

	res, body := ts.SendRequest(t, http.MethodPost, "/admin/vendors/"+profile.ID+"/reject", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Vendor rejected")

	var reloaded models.VendorProfile
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", profile.ID).Error)
	assert.Equal(t, models.VendorStatusRejected, reloaded.Status)
	// The original approval timestamp stays as an audit trace.
	assert.NotNil(t, reloaded.ApprovedAt)
}

func TestAdminApproveUnknownVendor(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := loginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost,
		"/admin/vendors/00000000-0000-0000-0000-000000000000/approve", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestAdminListVendorsStatusFilter(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := loginAdmin(t, ts)

	helpers.CreateVendor(t, ts.DB, "Pending P", uniqueEmail("pending-p"),
		"Pending Place", models.VendorStatusPending)
	helpers.CreateVendor(t, ts.DB, "Approved A", uniqueEmail("approved-a"),
		"Approved Avenue", models.VendorStatusApproved)

	res, body := ts.SendRequest(t, http.MethodGet, "/admin/vendors?status=pending", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(1), resp.Total)
	assert.Contains(t, string(resp.Items), "Pending Place")
}

func TestAdminListProductsIncludesInactive(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := loginAdmin(t, ts)

	vendor, _ := helpers.CreateVendor(t, ts.DB, "Product Vendor", uniqueEmail("prod-vendor"),
		"Product Place", models.VendorStatusApproved)
	category := helpers.CreateCategory(t, ts.DB, "Moderated", nil)

	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Mod Active", Price: 10, IsActive: true,
	})
	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Mod Hidden", Price: 10, IsActive: false,
	})

	res, body := ts.SendRequest(t, http.MethodGet, "/admin/products", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var resp listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(2), resp.Total)

	res, body = ts.SendRequest(t, http.MethodGet, "/admin/products?status=inactive", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(1), resp.Total)
	assert.Contains(t, string(resp.Items), "Mod Hidden")
}

func TestAdminToggleProductStatus(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	adminToken := loginAdmin(t, ts)

	vendor, _ := helpers.CreateVendor(t, ts.DB, "Toggle Vendor", uniqueEmail("toggle-vendor"),
		"Toggle Place", models.VendorStatusApproved)
	category := helpers.CreateCategory(t, ts.DB, "Toggle Category", nil)

	product := helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Switchable", Price: 10, IsActive: true,
	})

	path := "/admin/products/" + product.ID + "/toggle-status"

	res, body := ts.SendRequest(t, http.MethodPost, path, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Product deactivated")

	var reloaded models.Product
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", product.ID).Error)
	assert.False(t, reloaded.IsActive)

	// A second toggle restores the original state.
	res, body = ts.SendRequest(t, http.MethodPost, path, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Product activated")

	require.NoError(t, ts.DB.First(&reloaded, "id = ?", product.ID).Error)
	assert.True(t, reloaded.IsActive)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	vendorToken, _, _ := helpers.CreateAndLoginVendor(t, ts, "Not An Admin")

	res, _ := ts.SendRequest(t, http.MethodGet, "/admin/dashboard", vendorToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
