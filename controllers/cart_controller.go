package controllers

import (
	"github.com/gin-gonic/gin"

	"dapur-mama/models"
	"dapur-mama/services"
)

type CartController struct {
	Catalog  *services.CatalogService
	Carts    *services.CartService
	Checkout *services.CheckoutService
}

func cartResponse(cart models.Cart) models.CartResponse {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return models.CartResponse{
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

// @Summary Get cart
// @Description Get the session cart with derived totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.Carts.Get(sessionID(c))
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartResponse(cart)})
}

// @Summary Add item to cart
// @Description Add one of the given menu item; repeats increment quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.CartAddRequest true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	item, ok := ctrl.Catalog.Get(req.ID)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Menu tidak ditemukan"})
		return
	}

	cart := ctrl.Carts.Add(sessionID(c), item)
	c.JSON(200, gin.H{"success": true, "message": "Item ditambahkan ke keranjang", "data": cartResponse(cart)})
}

// @Summary Set cart quantity
// @Description Set an item's quantity; zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body models.CartQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cart := ctrl.Carts.SetQuantity(sessionID(c), c.Param("id"), *req.Quantity)
	c.JSON(200, gin.H{"success": true, "message": "Keranjang diperbarui", "data": cartResponse(cart)})
}

// @Summary Clear cart
// @Description Empty the session cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.Carts.Clear(sessionID(c))
	c.JSON(200, gin.H{"success": true, "message": "Keranjang dikosongkan", "data": cartResponse(models.Cart{})})
}

// @Summary Checkout
// @Description Format the order message, return the WhatsApp handoff link, and clear the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CartController) CheckoutCart(c *gin.Context) {
	session := sessionID(c)
	cart := ctrl.Carts.Get(session)
	if len(cart.Items) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Keranjang masih kosong"})
		return
	}

	message, link := ctrl.Checkout.Checkout(cart.Items)
	ctrl.Carts.Clear(session)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Pesanan siap dikirim via WhatsApp",
		"data":    models.CheckoutResponse{Message: message, OrderURL: link},
	})
}
