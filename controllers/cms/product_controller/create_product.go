package product_controller

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	filter_cache "github.com/TribeTek-pvt-ltd/grazie-store-backend/cache"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product from a multipart form. At least one image file is required; images are uploaded to Cloudinary before the product row is written.
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string true "Product description"
// @Param price formData number true "Price (must be > 0)"
// @Param stock formData int true "Stock (must be >= 0)"
// @Param category_id formData string false "Category UUID"
// @Param material_id formData string false "Material UUID"
// @Param delivery_days formData int false "Delivery estimate in days"
// @Param images formData file true "Product images (repeatable, first is primary)"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/admin/products [post]
func CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	// Step 1: Parse and validate form fields
	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	priceRaw := c.PostForm("price")
	stockRaw := c.PostForm("stock")

	if name == "" || description == "" || priceRaw == "" || stockRaw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing required fields"))
		return
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid price"))
		return
	}

	stock, err := strconv.Atoi(stockRaw)
	if err != nil || stock < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid stock value"))
		return
	}

	deliveryDays := 7
	if raw := c.PostForm("delivery_days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
			deliveryDays = parsed
		}
	}

	var categoryID, materialID *uuid.UUID
	if raw := c.PostForm("category_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category_id"))
			return
		}
		categoryID = &parsed
	}
	if raw := c.PostForm("material_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid material_id"))
			return
		}
		materialID = &parsed
	}

	// Step 2: Collect image files - at least one is required
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image is required"))
		return
	}

	// Step 3: Upload images BEFORE touching the database so a failed upload
	// never leaves a product without images
	productID := uuid.Must(uuid.NewV7())
	folder := "grazie/products/" + productID.String()

	urls, err := cloudinaryService.UploadMultipleImages(ctx, files, folder)
	if err != nil {
		log.Printf("[product.create] image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	// Step 4: Insert product row
	product := models.Product{
		ID:           productID,
		Name:         name,
		Description:  description,
		Price:        price,
		Stock:        stock,
		CategoryID:   categoryID,
		MaterialID:   materialID,
		DeliveryDays: deliveryDays,
	}

	if err := config.StoreGorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[product.create] failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	// Step 5: Insert image rows. This second statement can fail after the
	// product insert succeeded; the partial state is surfaced as an error
	// rather than rolled back.
	images := make([]models.ProductImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, models.ProductImage{
			ProductID: productID,
			ImageURL:  url,
			IsPrimary: i == 0,
			Position:  i,
		})
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&images).Error; err != nil {
		log.Printf("[product.create] product %s created but image rows failed: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Product created but image records failed"))
		return
	}
	product.Images = images

	filter_cache.Invalidate()

	log.Printf("[product.create] created %s (%s) with %d images", product.Name, productID, len(images))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
