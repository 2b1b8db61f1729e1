package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"luxe-be/internal/middleware"
	"luxe-be/internal/models"
	"luxe-be/internal/service"
)

// DefaultSessionID is used by GET /api/cart when no session_id is given.
const DefaultSessionID = "default"

// CartController serves the cart routes for the resolved caller.
type CartController struct {
	cartService service.CartService
	resolver    *service.CartResolver
}

func NewCartController(cartService service.CartService, resolver *service.CartResolver) *CartController {
	return &CartController{
		cartService: cartService,
		resolver:    resolver,
	}
}

// resolve works out the cart for this request. It writes the error response itself.
func (cc *CartController) resolve(c *gin.Context, sessionID string) (service.CartIdentity, bool) {
	identity, err := cc.resolver.Resolve(c.Request.Context(), middleware.BearerToken(c), sessionID)
	if err != nil {
		respondError(c, err)
		return service.CartIdentity{}, false
	}
	return identity, true
}

// AddItem handles POST /api/cart/:session_id/add
func (cc *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	identity, ok := cc.resolve(c, c.Param("session_id"))
	if !ok {
		return
	}

	count, err := cc.cartService.AddItem(c.Request.Context(), identity.Key, req.ProductID, quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CartMutationResponse{Message: "Item added to cart", CartItems: count})
}

// GetCart handles GET /api/cart?session_id=
func (cc *CartController) GetCart(c *gin.Context) {
	identity, ok := cc.resolve(c, c.DefaultQuery("session_id", DefaultSessionID))
	if !ok {
		return
	}

	items, err := cc.cartService.ListItems(c.Request.Context(), identity.Key)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Summary handles GET /api/cart/summary?session_id=
func (cc *CartController) Summary(c *gin.Context) {
	identity, ok := cc.resolve(c, c.DefaultQuery("session_id", DefaultSessionID))
	if !ok {
		return
	}

	summary, err := cc.cartService.Summary(c.Request.Context(), identity.Key)
	if err != nil {
		respondError(c, err)
		return
	}
	summary.Authenticated = identity.Authenticated

	c.JSON(http.StatusOK, summary)
}

// RemoveItem handles DELETE /api/cart/:session_id/item/:item_id
func (cc *CartController) RemoveItem(c *gin.Context) {
	identity, ok := cc.resolve(c, c.Param("session_id"))
	if !ok {
		return
	}

	remaining, err := cc.cartService.RemoveItem(c.Request.Context(), identity.Key, c.Param("item_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CartMutationResponse{Message: "Item removed from cart", CartItems: remaining})
}

// UpdateItem handles PUT /api/cart/:session_id/item/:item_id?quantity=N
func (cc *CartController) UpdateItem(c *gin.Context) {
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be an integer"})
		return
	}

	identity, ok := cc.resolve(c, c.Param("session_id"))
	if !ok {
		return
	}

	removed, err := cc.cartService.UpdateQuantity(c.Request.Context(), identity.Key, c.Param("item_id"), quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	if removed {
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Item removed from cart"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Item quantity updated"})
}

// ClearCart handles DELETE /api/cart/:session_id
func (cc *CartController) ClearCart(c *gin.Context) {
	identity, ok := cc.resolve(c, c.Param("session_id"))
	if !ok {
		return
	}

	if err := cc.cartService.Clear(c.Request.Context(), identity.Key); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Cart cleared"})
}
