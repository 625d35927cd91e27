package models

type PasswordRequest struct {
	Password string `json:"password" form:"password" binding:"required"`
}

// MenuItemRequest is the shared add/edit form. Price is a pointer so that a
// zero price still satisfies the required binding.
type MenuItemRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Price    *int   `json:"price" form:"price" binding:"required"`
	Category string `json:"category" form:"category" binding:"required,oneof=makanan minuman lainnya"`
	ImageURL string `json:"image_url" form:"image_url"`
}

type CartAddRequest struct {
	ID string `json:"id" binding:"required"`
}

type CartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
