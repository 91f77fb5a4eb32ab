package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"crmbackend/internal/store"
)

func GetStatistics(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := s.Statistics(c.Request.Context(), c.GetInt("userId"))
		if err != nil {
			log.Println("[STATS] [ERROR] statistics failed:", err)
			respondWithError(c, http.StatusInternalServerError, "STATS", "server error")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
