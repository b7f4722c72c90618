package filter_controller

import (
	"log"
	"net/http"
	"sync"

	filter_cache "github.com/TribeTek-pvt-ltd/grazie-store-backend/cache"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/config"
	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetFilterMetadata godoc
// @Summary Filter metadata
// @Description Availability counts, per-category and per-material product counts, and the store's price range. Served from a short-lived cache; any catalog mutation invalidates it.
// @Tags Store - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := filter_cache.GetMetadata(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", cached))
		return
	}

	pool := config.StoreDB

	// Aggregates run concurrently; each uses its own timeout.
	var wg sync.WaitGroup
	var mu sync.Mutex

	metadata := &models.FilterMetadata{}
	var errs []error

	wg.Add(1)
	go func() {
		defer wg.Done()
		availability, err := getAvailabilityCounts(pool)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Availability = availability
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		categories, err := getCategoryOptions(pool)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Categories = categories
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		materials, err := getMaterialOptions(pool)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Materials = materials
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		priceRange, err := getPriceRange(pool)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.PriceRange = priceRange
		}
	}()

	wg.Wait()

	if len(errs) > 0 {
		log.Printf("[store.filters] metadata queries failed: %v", errs[0])
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	filter_cache.SetMetadata(metadata)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

func getAvailabilityCounts(pool *pgxpool.Pool) (*models.AvailabilityData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			COUNT(*) FILTER (WHERE stock > 0)::int AS in_stock,
			COUNT(*) FILTER (WHERE stock = 0)::int AS out_of_stock
		FROM products
	`

	var data models.AvailabilityData
	if err := pool.QueryRow(ctx, query).Scan(&data.InStock, &data.OutOfStock); err != nil {
		return nil, err
	}
	return &data, nil
}

func getCategoryOptions(pool *pgxpool.Pool) ([]models.FilterOption, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			c.id::text,
			c.name,
			COUNT(p.id)::int AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.stock > 0
		GROUP BY c.id, c.name
		ORDER BY c.name ASC
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []models.FilterOption{}
	for rows.Next() {
		var opt models.FilterOption
		if err := rows.Scan(&opt.ID, &opt.Name, &opt.Count); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

func getMaterialOptions(pool *pgxpool.Pool) ([]models.FilterOption, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			m.id::text,
			m.name,
			COUNT(p.id)::int AS product_count
		FROM materials m
		LEFT JOIN products p ON p.material_id = m.id AND p.stock > 0
		GROUP BY m.id, m.name
		ORDER BY m.name ASC
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []models.FilterOption{}
	for rows.Next() {
		var opt models.FilterOption
		if err := rows.Scan(&opt.ID, &opt.Name, &opt.Count); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

func getPriceRange(pool *pgxpool.Pool) (*models.PriceRangeData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			COALESCE(MIN(price), 0)::float8 AS min,
			COALESCE(MAX(price), 0)::float8 AS max
		FROM products
		WHERE stock > 0
	`

	var priceRange models.PriceRangeData
	if err := pool.QueryRow(ctx, query).Scan(&priceRange.Min, &priceRange.Max); err != nil {
		return nil, err
	}
	return &priceRange, nil
}
