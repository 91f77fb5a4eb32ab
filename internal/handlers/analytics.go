package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"crmbackend/internal/analytics"
)

func GetAnalytics(a *analytics.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		rng, err := analytics.ParseRange(c.Query("range"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		report, err := a.Report(c.Request.Context(), c.GetInt("userId"), rng)
		if err != nil {
			log.Println("[ANALYTICS] [ERROR] report failed:", err)
			respondWithError(c, http.StatusInternalServerError, "ANALYTICS", "failed to fetch analytics data")
			return
		}

		c.JSON(http.StatusOK, report)
	}
}
