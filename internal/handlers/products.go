package handlers

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"crmbackend/internal/models"
	"crmbackend/internal/store"
)

type ProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	SKU      string  `json:"sku"`
	Barcode  string  `json:"barcode"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price" binding:"gte=0"`
	Stock    int     `json:"stock" binding:"gte=0"`
	Color    string  `json:"color"`
	Size     string  `json:"size"`
	Image    string  `json:"image"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

func GetProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.List(c.Request.Context(), c.GetInt("userId"))
		if err != nil {
			log.Println("[PRODUCT] [ERROR] list failed:", err)
			respondWithError(c, http.StatusInternalServerError, "PRODUCT", "server error")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func GetProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := s.Get(c.Request.Context(), c.GetInt("userId"), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			log.Println("[PRODUCT] [ERROR] get failed:", err)
			respondWithError(c, http.StatusInternalServerError, "PRODUCT", "server error")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func CreateProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		now := time.Now()
		product := productFromRequest(req, now)
		product.ID = newProductID(now)
		product.CreatedAt = now.Format(time.RFC3339)

		created, err := s.Create(c.Request.Context(), c.GetInt("userId"), product)
		if err != nil {
			log.Println("[PRODUCT] [ERROR] create failed:", err)
			respondWithError(c, http.StatusInternalServerError, "PRODUCT", "server error")
			return
		}

		log.Println("[PRODUCT] [INFO] created:", created.ID)
		c.JSON(http.StatusCreated, created)
	}
}

func UpdateProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		product := productFromRequest(req, time.Now())

		updated, err := s.Update(c.Request.Context(), c.GetInt("userId"), c.Param("id"), product)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			log.Println("[PRODUCT] [ERROR] update failed:", err)
			respondWithError(c, http.StatusInternalServerError, "PRODUCT", "server error")
			return
		}

		log.Println("[PRODUCT] [INFO] updated:", updated.ID)
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := s.Delete(c.Request.Context(), c.GetInt("userId"), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			log.Println("[PRODUCT] [ERROR] delete failed:", err)
			respondWithError(c, http.StatusInternalServerError, "PRODUCT", "server error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}

func BulkDeleteProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkDeleteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		removed, err := s.BulkDelete(c.Request.Context(), c.GetInt("userId"), req.IDs)
		if err != nil {
			log.Println("[PRODUCT] [ERROR] bulk delete failed:", err)
			respondWithError(c, http.StatusInternalServerError, "PRODUCT", "server error")
			return
		}

		log.Printf("[PRODUCT] [INFO] bulk delete: requested=%d removed=%d", len(req.IDs), removed)
		c.JSON(http.StatusOK, gin.H{
			"message":      "products deleted",
			"deletedCount": removed,
		})
	}
}

// productFromRequest builds the record with a freshly derived status and
// updated timestamps. CreatedAt and ID are set by the caller for creates and
// preserved by the store for updates.
func productFromRequest(req ProductRequest, now time.Time) models.Product {
	return models.Product{
		Name:          strings.TrimSpace(req.Name),
		SKU:           strings.TrimSpace(req.SKU),
		Barcode:       strings.TrimSpace(req.Barcode),
		Category:      strings.TrimSpace(req.Category),
		Brand:         strings.TrimSpace(req.Brand),
		Price:         req.Price,
		Stock:         req.Stock,
		Color:         strings.TrimSpace(req.Color),
		Size:          strings.TrimSpace(req.Size),
		Status:        models.StatusForStock(req.Stock),
		Image:         strings.TrimSpace(req.Image),
		LastRestocked: now.Format("2006-01-02"),
		UpdatedAt:     now.Format(time.RFC3339),
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newProductID returns a time-based id with a random suffix, e.g.
// PROD-1735689600123-k3f9x2m1q.
func newProductID(now time.Time) string {
	var buf [9]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// the timestamp alone rather than aborting the request.
		return fmt.Sprintf("PROD-%d", now.UnixMilli())
	}
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return fmt.Sprintf("PROD-%d-%s", now.UnixMilli(), suffix)
}
