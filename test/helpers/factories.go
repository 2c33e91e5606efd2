package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"artizia_backend/internal/auth"
	"artizia_backend/internal/models"

	"github.com/gosimple/slug"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser inserts a verified user with the given role and a bcrypt-hashed
// password.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, roleName models.RoleName) *models.User {
	t.Helper()

	var role models.Role
	err := db.Where("name = ?", roleName).First(&role).Error
	require.NoError(t, err, "role %s must be seeded", roleName)

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		RoleID:       role.ID,
		IsSeller:     roleName == models.RoleVendor,
		IsVerified:   true,
	}
	require.NoError(t, db.Create(user).Error)

	user.Role = &role
	return user
}

// CreateVendor inserts a vendor user together with a profile in the given
// status. Approved profiles get an approval timestamp.
func CreateVendor(t *testing.T, db *gorm.DB, name, email, businessName string, status models.VendorStatus) (*models.User, *models.VendorProfile) {
	t.Helper()

	user := CreateUser(t, db, name, email, "password123", models.RoleVendor)

	profile := &models.VendorProfile{
		UserID:       user.ID,
		BusinessName: businessName,
		Status:       status,
	}
	if status == models.VendorStatusApproved {
		now := time.Now()
		profile.ApprovedAt = &now
	}
	require.NoError(t, db.Create(profile).Error)

	return user, profile
}

// Login authenticates through the API and returns the bearer token.
func Login(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login must succeed, got: %s", body)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

// CreateAndLoginUser is the common arrange step: user row plus a live token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email string, roleName models.RoleName) (string, *models.User) {
	t.Helper()

	user := CreateUser(t, ts.DB, name, email, "password123", roleName)
	token := Login(t, ts, email, "password123")
	return token, user
}

// CreateAndLoginVendor creates an approved vendor with a unique email and
// logs it in.
func CreateAndLoginVendor(t *testing.T, ts *TestServer, businessName string) (string, *models.User, *models.VendorProfile) {
	t.Helper()

	email := fmt.Sprintf("vendor_%d@test.com", time.Now().UnixNano())
	user, profile := CreateVendor(t, ts.DB, "Test Vendor", email, businessName, models.VendorStatusApproved)
	token := Login(t, ts, email, "password123")
	return token, user, profile
}

// CreateCategory inserts an active category; parentID may be nil.
func CreateCategory(t *testing.T, db *gorm.DB, name string, parentID *string) *models.Category {
	t.Helper()

	category := &models.Category{
		ParentID: parentID,
		Name:     name,
		Slug:     slug.Make(name),
		IsActive: true,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

// CreateProduct fills in the slug and inserts the product as-is. Callers set
// IsActive explicitly since the zero value means hidden.
func CreateProduct(t *testing.T, db *gorm.DB, product *models.Product) *models.Product {
	t.Helper()

	if product.Slug == "" {
		product.Slug = slug.Make(product.Name) + "-" + fmt.Sprintf("%d", time.Now().UnixNano())
	}
	if product.Description == "" {
		product.Description = "Test description"
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
