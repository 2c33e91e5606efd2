package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"artizia_backend/internal/models"
	"artizia_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeUploadedProductImage(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token, _, _ := helpers.CreateAndLoginVendor(t, ts, "File Shop")
	category := helpers.CreateCategory(t, ts.DB, "File Category", nil)

	content := []byte("png-payload")
	res, body := ts.SendMultipart(t, http.MethodPost, "/vendor/products", token,
		map[string]string{
			"name":        "Photographed",
			"category_id": category.ID,
			"description": "Has one image",
			"price":       "10",
		},
		[]helpers.UploadFile{
			{Field: "images", Name: "photo.png", ContentType: "image/png", Content: content},
		},
	)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Product.Images, 1)

	fileRes, err := ts.Server.Client().Get(ts.Server.URL + "/files/" + resp.Product.Images[0].ImagePath)
	require.NoError(t, err)
	defer fileRes.Body.Close()

	assert.Equal(t, http.StatusOK, fileRes.StatusCode)
	assert.Equal(t, "image/png", fileRes.Header.Get("Content-Type"))

	served, err := io.ReadAll(fileRes.Body)
	require.NoError(t, err)
	assert.Equal(t, content, served)
}

func TestServeMissingFile(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/files/products/nope.png", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
