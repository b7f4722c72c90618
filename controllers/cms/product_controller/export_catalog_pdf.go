package product_controller

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/order"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// ExportCatalogPDF godoc
// @Summary Export the product catalog as PDF
// @Description Generates a PDF snapshot of the catalog (name, category, material, price, stock) for offline sharing with resellers.
// @Tags CMS - Products
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products/export/pdf [get]
func ExportCatalogPDF(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	var products []models.Product
	err := config.StoreGorm.WithContext(ctx).
		Preload("Category").
		Preload("Material").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		log.Printf("[product.export] failed to fetch products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	buf := generateCatalogPDF(products)
	if buf.Len() == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate catalog PDF"))
		return
	}

	filename := fmt.Sprintf("grazie-catalog-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func generateCatalogPDF(products []models.Product) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("PRODUCT CATALOG", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("GRAZIE.LK", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generated: %s", time.Now().Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Table header
	m.Row(6, func() {
		m.Col(5, func() {
			m.Text("Product", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Category", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Material", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(1, func() {
			m.Text("Stock", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, p := range products {
		categoryName := ""
		if p.Category != nil {
			categoryName = p.Category.Name
		}
		materialName := ""
		if p.Material != nil {
			materialName = p.Material.Name
		}

		product := p
		m.Row(6, func() {
			m.Col(5, func() {
				m.Text(product.Name, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(categoryName, props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
			m.Col(2, func() {
				m.Text(materialName, props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
			m.Col(2, func() {
				m.Text(order.FormatRupees(product.Price), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(1, func() {
				m.Text(fmt.Sprintf("%d", product.Stock), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%d products listed", len(products)), props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[product.export] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}
	return &buf
}
