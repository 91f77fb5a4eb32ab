package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crmbackend/internal/models"
)

// Customer endpoints are stubs: nothing is persisted. In demo mode GET
// returns a generated list so the dashboard stays populated; with the flag
// off it returns an empty list, keeping real emptiness observable.

type CustomerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
}

func GetCustomers(demoMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !demoMode {
			c.JSON(http.StatusOK, []models.Customer{})
			return
		}
		c.JSON(http.StatusOK, generateMockCustomers(15))
	}
}

func CreateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"customer": models.Customer{
				ID:        uuid.NewString(),
				FirstName: strings.TrimSpace(req.FirstName),
				LastName:  strings.TrimSpace(req.LastName),
				Email:     strings.TrimSpace(req.Email),
				Phone:     strings.TrimSpace(req.Phone),
				City:      strings.TrimSpace(req.City),
				Status:    "active",
				JoinDate:  time.Now().Format(time.RFC3339),
			},
		})
	}
}

func UpdateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "customer updated"})
	}
}

func DeleteCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "customer deleted"})
	}
}

var (
	mockFirstNames = []string{"Alexander", "Dmitry", "Max", "Ivan", "Artem", "Elena", "Maria", "Anna", "Olga", "Natalia", "Sergey", "Andrey", "Michael", "Kate", "Tatiana"}
	mockLastNames  = []string{"Ivanov", "Petrov", "Sidorov", "Kozlov", "Novikov", "Morozov", "Volkov", "Soloviev", "Vasiliev", "Zaitsev"}
	mockCities     = []string{"Moscow", "Saint Petersburg", "Novosibirsk", "Yekaterinburg", "Kazan", "Nizhny Novgorod"}
)

func generateMockCustomers(count int) []models.Customer {
	customers := make([]models.Customer, 0, count)
	for i := 0; i < count; i++ {
		first := mockFirstNames[rand.Intn(len(mockFirstNames))]
		last := mockLastNames[rand.Intn(len(mockLastNames))]
		lastOrder := time.Now().AddDate(0, 0, -rand.Intn(90))

		customers = append(customers, models.Customer{
			ID:            uuid.NewString(),
			FirstName:     first,
			LastName:      last,
			Email:         fmt.Sprintf("%s.%s@email.com", strings.ToLower(first), strings.ToLower(last)),
			Phone:         fmt.Sprintf("+7 (9%02d) %03d-%02d-%02d", rand.Intn(100), rand.Intn(1000), rand.Intn(100), rand.Intn(100)),
			City:          mockCities[rand.Intn(len(mockCities))],
			TotalSpent:    float64(500 + rand.Intn(10000)),
			Orders:        1 + rand.Intn(20),
			Status:        "active",
			JoinDate:      lastOrder.AddDate(0, -rand.Intn(12), 0).Format(time.RFC3339),
			LastOrderDate: lastOrder.Format(time.RFC3339),
		})
	}
	return customers
}
