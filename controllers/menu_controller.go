package controllers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"dapur-mama/models"
	"dapur-mama/services"
)

const (
	menuCacheKey     = "menu_grouped"
	placeholderImage = "https://picsum.photos/400/300?grayscale"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func invalidateMenuCache() {
	if models.RedisClient == nil {
		return
	}
	models.RedisClient.Del(context.Background(), menuCacheKey)
}

// withPlaceholders substitutes the placeholder image for entries missing
// one. Presentation-level only; the catalog keeps the empty value.
func withPlaceholders(groups []models.CategoryGroup) []models.CategoryGroup {
	for gi := range groups {
		for ii := range groups[gi].Items {
			if groups[gi].Items[ii].ImageURL == "" {
				groups[gi].Items[ii].ImageURL = placeholderImage
			}
		}
	}
	return groups
}

// @Summary Get menu
// @Description Get the full menu grouped by category (makanan, minuman, lainnya)
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, menuCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	response := gin.H{
		"success": true,
		"message": "Menu retrieved",
		"data":    withPlaceholders(ctrl.Catalog.Grouped()),
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, menuCacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get menu item
// @Description Get one menu item by id
// @Tags Menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [get]
func (ctrl *MenuController) GetMenuItem(c *gin.Context) {
	item, ok := ctrl.Catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Menu tidak ditemukan"})
		return
	}
	if item.ImageURL == "" {
		item.ImageURL = placeholderImage
	}
	c.JSON(200, gin.H{"success": true, "message": "Menu item retrieved", "data": item})
}
