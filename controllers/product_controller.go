package controllers

import (
	"strconv"

	"github.com/Salimjon123/Alijahon/pkg/resp"
	"github.com/Salimjon123/Alijahon/repository"
	"github.com/Salimjon123/Alijahon/utils"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Products  *repository.ProductRepository
	WishLists *repository.WishListRepository
}

func NewProductController(products *repository.ProductRepository, wishlists *repository.WishListRepository) *ProductController {
	return &ProductController{Products: products, WishLists: wishlists}
}

// GET /categories
func (p *ProductController) Categories(c *gin.Context) {
	cats, err := p.Products.Categories()
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /products?category_slug=&search=
func (p *ProductController) List(c *gin.Context) {
	if search := c.Query("search"); search != "" {
		products, err := p.Products.Search(search)
		if err != nil {
			serviceError(c, err)
			return
		}
		resp.OK(c, products)
		return
	}
	products, err := p.Products.List(c.Query("category_slug"))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /market?category_slug= - affiliate market; "top" sorts by order count.
func (p *ProductController) Market(c *gin.Context) {
	slug := c.Query("category_slug")
	if slug == "top" {
		products, err := p.Products.ListTop()
		if err != nil {
			serviceError(c, err)
			return
		}
		resp.OK(c, products)
		return
	}
	products, err := p.Products.List(slug)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /products/:slug
func (p *ProductController) Detail(c *gin.Context) {
	product, err := p.Products.GetBySlug(c.Param("slug"))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, product)
}

// POST /wishlist/:productID - toggle membership.
func (p *ProductController) ToggleWishList(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productID"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	added, err := p.WishLists.Toggle(utils.CurrentUserID(c), uint(productID))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"added": added})
}

// GET /wishlist
func (p *ProductController) WishList(c *gin.Context) {
	items, err := p.WishLists.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, items)
}
