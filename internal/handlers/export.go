package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"crmbackend/internal/store"
)

var exportHeader = []string{"ID", "Name", "SKU", "Barcode", "Category", "Brand", "Price", "Stock", "Color", "Size", "Status", "Last Restocked", "Created At", "Updated At"}

// ExportProducts streams the caller's inventory as an xlsx workbook.
func ExportProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.List(c.Request.Context(), c.GetInt("userId"))
		if err != nil {
			log.Println("[EXPORT] [ERROR] list failed:", err)
			respondWithError(c, http.StatusInternalServerError, "EXPORT", "server error")
			return
		}

		f := excelize.NewFile()
		defer f.Close()

		const sheet = "Inventory"
		index, err := f.NewSheet(sheet)
		if err != nil {
			log.Println("[EXPORT] [ERROR] sheet creation failed:", err)
			respondWithError(c, http.StatusInternalServerError, "EXPORT", "server error")
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		for col, title := range exportHeader {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet, cell, title)
		}

		for row, p := range products {
			values := []interface{}{
				p.ID, p.Name, p.SKU, p.Barcode, p.Category, p.Brand,
				p.Price, p.Stock, p.Color, p.Size, p.Status,
				p.LastRestocked, p.CreatedAt, p.UpdatedAt,
			}
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, value)
			}
		}

		filename := fmt.Sprintf("inventory-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := f.Write(c.Writer); err != nil {
			log.Println("[EXPORT] [ERROR] workbook write failed:", err)
		}
	}
}
