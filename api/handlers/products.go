package handlers

import (
	"net/http"

	"nexus/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	store *db.Store
}

func NewProductHandler(store *db.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List returns every product in the shop, unfiltered.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.ListProducts(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to list products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, products)
}
