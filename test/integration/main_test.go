package integration_test

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"artizia_backend/internal/models"
	"artizia_backend/test/helpers"
)

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// listResponse mirrors the pagination envelope with raw items for per-test
// decoding.
type listResponse struct {
	Items      json.RawMessage `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

func decodeProducts(t *testing.T, raw json.RawMessage) []models.Product {
	t.Helper()
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		t.Fatalf("failed to decode product items: %v", err)
	}
	return products
}

// seedCatalog is the common arrange step for storefront tests: one approved
// vendor, one category.
func seedCatalog(t *testing.T, ts *helpers.TestServer, categoryName string) (*models.User, *models.Category) {
	t.Helper()
	vendor, _ := helpers.CreateVendor(t, ts.DB, "Catalog Vendor",
		uniqueEmail("catalog-vendor"), "Catalog Vendor Shop", models.VendorStatusApproved)
	category := helpers.CreateCategory(t, ts.DB, categoryName, nil)
	return vendor, category
}
