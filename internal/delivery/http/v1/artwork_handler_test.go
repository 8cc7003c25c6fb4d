package v1

import (
	"bytes"
	"image"
	_ "image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cachedCovers(h *ArtworkHandler) []string {
	var keys []string
	h.cache.Range(func(key, _ interface{}) bool {
		keys = append(keys, key.(string))
		return true
	})
	return keys
}

func TestArtworkWidthsShareCacheEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewArtworkHandler(r)

	for _, q := range []string{"641", "700", "960"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images/products/web-helm?w="+q, nil))
		require.Equal(t, http.StatusOK, w.Code)

		cfg, _, err := image.DecodeConfig(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, 960, cfg.Width)
	}

	assert.Equal(t, []string{"web-helm:960:png"}, cachedCovers(h))
}
