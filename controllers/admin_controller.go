package controllers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dapur-mama/config"
	"dapur-mama/libs"
	"dapur-mama/models"
	"dapur-mama/services"
	"dapur-mama/utils"
)

type AdminController struct {
	Catalog *services.CatalogService
	Gates   *services.AdminGateRegistry
	Cloud   *libs.CloudinaryService
}

// @Summary Open admin password prompt
// @Description Transition the session gate from locked to awaiting password
// @Tags Admin - Session
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/session/request [post]
func (ctrl *AdminController) RequestSession(c *gin.Context) {
	state := ctrl.Gates.RequestAdmin(sessionID(c))
	c.JSON(200, gin.H{"success": true, "message": "Masukkan Kata Sandi", "data": gin.H{"state": state.String()}})
}

// @Summary Submit admin password
// @Description Unlock admin mode; returns a bearer token on success
// @Tags Admin - Session
// @Accept json
// @Produce json
// @Param request body models.PasswordRequest true "Password"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/session [post]
func (ctrl *AdminController) SubmitPassword(c *gin.Context) {
	var req models.PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Password wajib diisi"})
		return
	}

	session := sessionID(c)
	if ctrl.Gates.State(session) == services.GateLocked {
		ctrl.Gates.RequestAdmin(session)
	}

	state, err := ctrl.Gates.Submit(session, req.Password)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": err.Error(), "data": gin.H{"state": state.String()}})
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal membuat token"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Admin mode aktif",
		"data":    gin.H{"state": state.String(), "token": token},
	})
}

// @Summary Leave admin mode
// @Description Lock the gate; no password needed to leave
// @Tags Admin - Session
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/session [delete]
func (ctrl *AdminController) CloseSession(c *gin.Context) {
	session := sessionID(c)
	state := ctrl.Gates.State(session)
	if state == services.GateAwaitingPassword {
		state = ctrl.Gates.Cancel(session)
	} else if state == services.GateUnlocked {
		state = ctrl.Gates.Toggle(session)
	}
	c.JSON(200, gin.H{"success": true, "message": "Admin mode nonaktif", "data": gin.H{"state": state.String()}})
}

// resolveImage applies the shared form rule: an uploaded file wins over an
// image_url field; the fallback is used on edit to keep the current image.
func (ctrl *AdminController) resolveImage(c *gin.Context, fallback string) (string, string) {
	file, err := c.FormFile("image")
	if err == nil {
		if ctrl.Cloud != nil {
			if file.Size > config.AppConfig.MaxImageSize {
				return "", utils.ErrImageTooLarge.Error()
			}
			opened, err := file.Open()
			if err != nil {
				return "", utils.ErrImageUnreadble.Error()
			}
			defer opened.Close()
			url, err := ctrl.Cloud.UploadMenuImage(context.Background(), opened, file.Filename)
			if err != nil {
				return "", utils.ErrImageUnreadble.Error()
			}
			return url, ""
		}

		dataURI, err := utils.FileToDataURI(file, config.AppConfig.MaxImageSize)
		if err != nil {
			return "", err.Error()
		}
		return dataURI, ""
	}

	if imageURL := strings.TrimSpace(c.PostForm("image_url")); imageURL != "" {
		return imageURL, ""
	}
	return fallback, ""
}

func parseMenuForm(c *gin.Context) (name string, price int, category models.MenuCategory, errMsg string) {
	name = strings.TrimSpace(c.PostForm("name"))
	priceStr := strings.TrimSpace(c.PostForm("price"))
	category = models.MenuCategory(strings.TrimSpace(c.PostForm("category")))

	if name == "" {
		return "", 0, "", "Nama menu wajib diisi"
	}
	if priceStr == "" {
		return "", 0, "", "Harga wajib diisi"
	}
	price, err := strconv.Atoi(priceStr)
	if err != nil || price < 0 {
		return "", 0, "", "Harga tidak valid"
	}
	if !category.Valid() {
		return "", 0, "", "Kategori tidak valid"
	}
	return name, price, category, ""
}

// @Summary Create menu item
// @Description Add a new menu item (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Menu name"
// @Param price formData int true "Price in rupiah"
// @Param category formData string true "Category" Enums(makanan, minuman, lainnya)
// @Param image formData file false "Menu image (max 2MB)"
// @Param image_url formData string false "Remote image URL"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/menu [post]
func (ctrl *AdminController) CreateMenuItem(c *gin.Context) {
	name, price, category, errMsg := parseMenuForm(c)
	if errMsg != "" {
		c.JSON(400, gin.H{"success": false, "message": errMsg})
		return
	}

	imageURL, imgErr := ctrl.resolveImage(c, "")
	if imgErr != "" {
		c.JSON(400, gin.H{"success": false, "message": imgErr})
		return
	}
	if imageURL == "" {
		c.JSON(400, gin.H{"success": false, "message": "Silakan pilih gambar untuk menu."})
		return
	}

	item, err := ctrl.Catalog.Add(name, price, imageURL, category)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal menyimpan menu"})
		return
	}

	invalidateMenuCache()
	c.JSON(201, gin.H{"success": true, "message": "Menu berhasil ditambahkan", "data": item})
}

// @Summary Update menu item
// @Description Replace a menu item's fields, keeping its id (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Menu item ID"
// @Param name formData string false "Menu name"
// @Param price formData int false "Price in rupiah"
// @Param category formData string false "Category" Enums(makanan, minuman, lainnya)
// @Param image formData file false "Menu image (max 2MB)"
// @Param image_url formData string false "Remote image URL"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id} [patch]
func (ctrl *AdminController) UpdateMenuItem(c *gin.Context) {
	id := c.Param("id")
	existing, ok := ctrl.Catalog.Get(id)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Menu tidak ditemukan"})
		return
	}

	name := strings.TrimSpace(c.DefaultPostForm("name", existing.Name))
	priceStr := c.DefaultPostForm("price", strconv.Itoa(existing.Price))
	category := models.MenuCategory(c.DefaultPostForm("category", string(existing.Category)))

	if name == "" {
		c.JSON(400, gin.H{"success": false, "message": "Nama menu wajib diisi"})
		return
	}
	price, err := strconv.Atoi(priceStr)
	if err != nil || price < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Harga tidak valid"})
		return
	}
	if !category.Valid() {
		c.JSON(400, gin.H{"success": false, "message": "Kategori tidak valid"})
		return
	}

	imageURL, imgErr := ctrl.resolveImage(c, existing.ImageURL)
	if imgErr != "" {
		c.JSON(400, gin.H{"success": false, "message": imgErr})
		return
	}
	if imageURL == "" {
		c.JSON(400, gin.H{"success": false, "message": "Silakan pilih gambar untuk menu."})
		return
	}

	item, found, err := ctrl.Catalog.Update(id, name, price, imageURL, category)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal menyimpan menu"})
		return
	}
	if !found {
		c.JSON(404, gin.H{"success": false, "message": "Menu tidak ditemukan"})
		return
	}

	invalidateMenuCache()
	c.JSON(200, gin.H{"success": true, "message": "Menu berhasil diperbarui", "data": item})
}

// @Summary Delete menu item
// @Description Remove a menu item after client-side confirmation (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id} [delete]
func (ctrl *AdminController) DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")
	item, ok := ctrl.Catalog.Get(id)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Menu tidak ditemukan"})
		return
	}

	if err := ctrl.Catalog.Delete(id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Gagal menghapus menu"})
		return
	}

	invalidateMenuCache()
	c.JSON(200, gin.H{"success": true, "message": "Menu \"" + item.Name + "\" berhasil dihapus"})
}
