package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Pings-Lab/pings-lab.github.io/internal/content"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/apperror"
	"github.com/Pings-Lab/pings-lab.github.io/pkg/artwork"
)

type ArtworkHandler struct {
	// rendered covers keyed by slug, width and format
	cache sync.Map
}

func NewArtworkHandler(r gin.IRoutes) *ArtworkHandler {
	handler := &ArtworkHandler{}
	r.GET("/images/products/:slug", handler.Cover)
	return handler
}

// Cover serves a product's gradient cover. ?w= picks the width, rounded up to
// one of artwork.Widths; ?format=jpeg switches from PNG.
func (h *ArtworkHandler) Cover(c *gin.Context) {
	product, ok := content.ProductBySlug(c.Param("slug"))
	if !ok {
		c.Error(apperror.NotFound("Product not found"))
		return
	}

	width, _ := strconv.Atoi(c.Query("w"))
	width = artwork.SnapWidth(width)
	format := artwork.ParseFormat(c.Query("format"))

	key := fmt.Sprintf("%s:%d:%s", product.Slug, width, format)
	if data, ok := h.cache.Load(key); ok {
		h.write(c, format, data.([]byte))
		return
	}

	data, err := artwork.Encode(artwork.Cover(product.From, product.To, width), format)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	h.cache.Store(key, data)
	h.write(c, format, data)
}

func (h *ArtworkHandler) write(c *gin.Context, format artwork.Format, data []byte) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, format.ContentType(), data)
}
