package repository

import (
	"github.com/Salimjon123/Alijahon/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Categories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Find(&cats).Error
	return cats, err
}

// List returns products, optionally narrowed to a category slug.
func (r *ProductRepository) List(categorySlug string) ([]entity.Product, error) {
	var products []entity.Product
	q := r.DB.Model(&entity.Product{})
	if categorySlug != "" {
		q = q.Joins("JOIN categories c ON c.id = products.category_id").
			Where("c.slug = ?", categorySlug)
	}
	err := q.Find(&products).Error
	return products, err
}

// Search matches name, description or category name, case-insensitive.
func (r *ProductRepository) Search(term string) ([]entity.Product, error) {
	var products []entity.Product
	like := "%" + term + "%"
	err := r.DB.Model(&entity.Product{}).
		Joins("JOIN categories c ON c.id = products.category_id").
		Where("products.name LIKE ? OR products.description LIKE ? OR c.name LIKE ?", like, like, like).
		Distinct("products.*").
		Find(&products).Error
	return products, err
}

// ListTop orders the market by how many orders each product has.
func (r *ProductRepository) ListTop() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Model(&entity.Product{}).
		Joins("LEFT JOIN orders o ON o.product_id = products.id").
		Group("products.id").
		Order("COUNT(o.id) DESC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) GetBySlug(slug string) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
