package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"artizia_backend/internal/models"
	"artizia_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsHidesInactive(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	vendor, category := seedCatalog(t, ts, "Crafts")

	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Visible Bowl", Price: 10, IsActive: true,
	})
	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Hidden Bowl", Price: 10, IsActive: false,
	})

	res, body := ts.SendRequest(t, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(1), resp.Total)
	assert.Contains(t, string(resp.Items), "Visible Bowl")
	assert.NotContains(t, string(resp.Items), "Hidden Bowl")
}

func TestGetProductDetail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	vendor, category := seedCatalog(t, ts, "Decor")

	product := helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Canvas Print", Slug: "canvas-print", Price: 89, IsActive: true,
	})
	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Related Poster", Price: 20, IsActive: true,
	})

	res, body := ts.SendRequest(t, http.MethodGet, "/products/canvas-print", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Product         models.Product   `json:"product"`
		RelatedProducts []models.Product `json:"related_products"`
		VendorProducts  []models.Product `json:"vendor_products"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, product.ID, resp.Product.ID)
	require.Len(t, resp.RelatedProducts, 1)
	assert.Equal(t, "Related Poster", resp.RelatedProducts[0].Name)
	require.Len(t, resp.VendorProducts, 1)
	assert.Equal(t, "Related Poster", resp.VendorProducts[0].Name)
}

func TestGetProductInactiveIs404(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	vendor, category := seedCatalog(t, ts, "Toys")

	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Retired Toy", Slug: "retired-toy", Price: 15, IsActive: false,
	})

	res, body := ts.SendRequest(t, http.MethodGet, "/products/retired-toy", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Contains(t, body, "Product not found")
}

func TestListProductsPriceFilterAndSearch(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	vendor, category := seedCatalog(t, ts, "Jewelry")

	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Cheap Ring", Price: 5, IsActive: true,
	})
	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Silver Pendant", Price: 45, IsActive: true,
	})
	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Gold Necklace", Price: 300, IsActive: true,
	})

	res, body := ts.SendRequest(t, http.MethodGet, "/products?min_price=10&max_price=100", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var resp listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(1), resp.Total)
	assert.Contains(t, string(resp.Items), "Silver Pendant")

	// Search is case-insensitive and spans name and descriptions.
	res, body = ts.SendRequest(t, http.MethodGet, "/products?search=silver", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(1), resp.Total)
	assert.Contains(t, string(resp.Items), "Silver Pendant")
}

func TestListProductsSortPriceLow(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	vendor, category := seedCatalog(t, ts, "Food")

	for i, price := range []float64{30, 10, 20} {
		helpers.CreateProduct(t, ts.DB, &models.Product{
			UserID: vendor.ID, CategoryID: category.ID,
			Name: fmt.Sprintf("Jam %d", i), Price: price, IsActive: true,
		})
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/products?sort_by=price_low", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	products := decodeProducts(t, resp.Items)
	require.Len(t, products, 3)
	assert.Equal(t, float64(10), products[0].Price)
	assert.Equal(t, float64(20), products[1].Price)
	assert.Equal(t, float64(30), products[2].Price)
}

func TestListProductsPagination(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	vendor, category := seedCatalog(t, ts, "Bulk")

	for i := 0; i < 25; i++ {
		helpers.CreateProduct(t, ts.DB, &models.Product{
			UserID: vendor.ID, CategoryID: category.ID,
			Name: fmt.Sprintf("Bulk Item %02d", i), Price: 1, IsActive: true,
		})
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var resp listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, 20, resp.PerPage)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Len(t, decodeProducts(t, resp.Items), 20)

	res, body = ts.SendRequest(t, http.MethodGet, "/products?page=2", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 2, resp.Page)
	assert.Len(t, decodeProducts(t, resp.Items), 5)
}

func TestListVendorsOnlyApproved(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	helpers.CreateVendor(t, ts.DB, "Approved One", uniqueEmail("approved"),
		"Approved Atelier", models.VendorStatusApproved)
	helpers.CreateVendor(t, ts.DB, "Pending One", uniqueEmail("pending"),
		"Pending Pottery", models.VendorStatusPending)
	helpers.CreateVendor(t, ts.DB, "Rejected One", uniqueEmail("rejected"),
		"Rejected Rugs", models.VendorStatusRejected)

	res, body := ts.SendRequest(t, http.MethodGet, "/vendors", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, int64(1), resp.Total)
	assert.Contains(t, string(resp.Items), "Approved Atelier")
	assert.NotContains(t, string(resp.Items), "Pending Pottery")
	assert.NotContains(t, string(resp.Items), "Rejected Rugs")
}

func TestGetVendorDetail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	vendor, _ := helpers.CreateVendor(t, ts.DB, "Detail Vendor", uniqueEmail("detail"),
		"Detail Goods", models.VendorStatusApproved)
	category := helpers.CreateCategory(t, ts.DB, "Detail Category", nil)

	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Shown Product", Price: 10, IsActive: true,
	})
	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Hidden Product", Price: 10, IsActive: false,
	})

	res, body := ts.SendRequest(t, http.MethodGet, "/vendors/"+vendor.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Vendor   models.VendorProfile `json:"vendor"`
		Products listResponse         `json:"products"`
		Stats    struct {
			TotalProducts   int64 `json:"total_products"`
			ActiveProducts  int64 `json:"active_products"`
			CategoriesCount int64 `json:"categories_count"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, "Detail Goods", resp.Vendor.BusinessName)
	// Stats cover the whole catalog, the listing only the active part.
	assert.Equal(t, int64(2), resp.Stats.TotalProducts)
	assert.Equal(t, int64(1), resp.Stats.ActiveProducts)
	assert.Equal(t, int64(1), resp.Stats.CategoriesCount)
	assert.Equal(t, int64(1), resp.Products.Total)
	assert.Equal(t, 12, resp.Products.PerPage)
	assert.NotContains(t, string(resp.Products.Items), "Hidden Product")
}

func TestGetVendorPendingIs404(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	vendor, _ := helpers.CreateVendor(t, ts.DB, "Still Pending", uniqueEmail("still-pending"),
		"Not Yet Open", models.VendorStatusPending)

	res, body := ts.SendRequest(t, http.MethodGet, "/vendors/"+vendor.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Contains(t, body, "Vendor not found")
}

func TestGetCategoryIncludesChildProducts(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	vendor, parent := seedCatalog(t, ts, "Parent Category")
	child := helpers.CreateCategory(t, ts.DB, "Child Category", &parent.ID)

	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: parent.ID,
		Name: "Parent Product", Price: 10, IsActive: true,
	})
	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: child.ID,
		Name: "Child Product", Price: 10, IsActive: true,
	})

	res, body := ts.SendRequest(t, http.MethodGet, "/categories/"+parent.Slug, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Category models.Category `json:"category"`
		Products listResponse    `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, parent.ID, resp.Category.ID)
	assert.Equal(t, int64(2), resp.Products.Total)
	assert.Contains(t, string(resp.Products.Items), "Parent Product")
	assert.Contains(t, string(resp.Products.Items), "Child Product")
}

func TestListCategoriesAnnotatesProductCounts(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	vendor, category := seedCatalog(t, ts, "Counted")

	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Counted Active", Price: 10, IsActive: true,
	})
	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Counted Inactive", Price: 10, IsActive: false,
	})

	res, body := ts.SendRequest(t, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var categories []models.Category
	require.NoError(t, json.Unmarshal([]byte(body), &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, int64(1), categories[0].ProductCount)
}

func TestCustomerDashboard(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	vendor, category := seedCatalog(t, ts, "Dash")

	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Featured Thing", Price: 10, IsActive: true, IsFeatured: true,
	})
	helpers.CreateProduct(t, ts.DB, &models.Product{
		UserID: vendor.ID, CategoryID: category.ID,
		Name: "Plain Thing", Price: 10, IsActive: true,
	})

	token, _ := helpers.CreateAndLoginUser(t, ts, "Shopper", uniqueEmail("shopper"), models.RoleCustomer)

	res, body := ts.SendRequest(t, http.MethodGet, "/customer/dashboard", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		FeaturedProducts []models.Product  `json:"featured_products"`
		NewProducts      []models.Product  `json:"new_products"`
		Categories       []models.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.FeaturedProducts, 1)
	assert.Equal(t, "Featured Thing", resp.FeaturedProducts[0].Name)
	assert.Len(t, resp.NewProducts, 2)
	assert.Len(t, resp.Categories, 1)
}

func TestCustomerDashboardRejectsOtherRoles(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	vendorToken, _, _ := helpers.CreateAndLoginVendor(t, ts, "Wrong Door")

	res, _ := ts.SendRequest(t, http.MethodGet, "/customer/dashboard", vendorToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/customer/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
