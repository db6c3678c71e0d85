package controller_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/likeam/mernpos/internal/adapter/repository"
	"github.com/likeam/mernpos/internal/domain/brand"
	"github.com/likeam/mernpos/internal/domain/category"
	"github.com/likeam/mernpos/internal/domain/order"
	"github.com/likeam/mernpos/internal/domain/product"
	"github.com/likeam/mernpos/internal/domain/subcategory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

// fakeCategoryRepo is an in-memory category.Repository.
type fakeCategoryRepo struct {
	items map[string]*category.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: make(map[string]*category.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *category.Category) error {
	r.items[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*category.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*category.Category, error) {
	var out []*category.Category
	for _, c := range r.items {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *category.Category) error {
	if _, ok := r.items[c.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	r.items[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	c, ok := r.items[id]
	if !ok {
		return repository.ErrCategoryNotFound
	}
	c.Deactivate()
	return nil
}

func (r *fakeCategoryRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

// fakeSubcategoryRepo is an in-memory subcategory.Repository.
type fakeSubcategoryRepo struct {
	items map[string]*subcategory.Subcategory
}

func newFakeSubcategoryRepo() *fakeSubcategoryRepo {
	return &fakeSubcategoryRepo{items: make(map[string]*subcategory.Subcategory)}
}

func (r *fakeSubcategoryRepo) Create(_ context.Context, s *subcategory.Subcategory) error {
	r.items[s.ID] = s
	return nil
}

func (r *fakeSubcategoryRepo) FindByID(_ context.Context, id string) (*subcategory.Subcategory, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, repository.ErrSubcategoryNotFound
	}
	return s, nil
}

func (r *fakeSubcategoryRepo) List(_ context.Context) ([]*subcategory.Subcategory, error) {
	var out []*subcategory.Subcategory
	for _, s := range r.items {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubcategoryRepo) ListByCategory(_ context.Context, categoryID string) ([]*subcategory.Subcategory, error) {
	var out []*subcategory.Subcategory
	for _, s := range r.items {
		if s.IsActive && s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubcategoryRepo) Update(_ context.Context, s *subcategory.Subcategory) error {
	if _, ok := r.items[s.ID]; !ok {
		return repository.ErrSubcategoryNotFound
	}
	r.items[s.ID] = s
	return nil
}

func (r *fakeSubcategoryRepo) Delete(_ context.Context, id string) error {
	s, ok := r.items[id]
	if !ok {
		return repository.ErrSubcategoryNotFound
	}
	s.Deactivate()
	return nil
}

func (r *fakeSubcategoryRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

// fakeBrandRepo is an in-memory brand.Repository.
type fakeBrandRepo struct {
	items map[string]*brand.Brand
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{items: make(map[string]*brand.Brand)}
}

func (r *fakeBrandRepo) Create(_ context.Context, b *brand.Brand) error {
	r.items[b.ID] = b
	return nil
}

func (r *fakeBrandRepo) FindByID(_ context.Context, id string) (*brand.Brand, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, repository.ErrBrandNotFound
	}
	return b, nil
}

func (r *fakeBrandRepo) List(_ context.Context) ([]*brand.Brand, error) {
	var out []*brand.Brand
	for _, b := range r.items {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBrandRepo) Update(_ context.Context, b *brand.Brand) error {
	if _, ok := r.items[b.ID]; !ok {
		return repository.ErrBrandNotFound
	}
	r.items[b.ID] = b
	return nil
}

func (r *fakeBrandRepo) Delete(_ context.Context, id string) error {
	b, ok := r.items[id]
	if !ok {
		return repository.ErrBrandNotFound
	}
	b.Deactivate()
	return nil
}

func (r *fakeBrandRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

// fakeProductRepo is an in-memory product.Repository.
type fakeProductRepo struct {
	items map[string]*product.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[string]*product.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *product.Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) FindByBarcode(_ context.Context, barcode string) (*product.Product, error) {
	for _, p := range r.items {
		if p.IsActive && p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) List(_ context.Context, f product.Filter) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range r.items {
		if !p.IsActive {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *product.Product) error {
	if _, ok := r.items[p.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.items[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	p, ok := r.items[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	p.Deactivate()
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id string, stock int) (*product.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	p.Stock = stock
	return p, nil
}

// fakeOrderRepo emulates the checkout transaction against an in-memory
// product catalog. Stock changes apply only when the whole checkout
// succeeds, matching the all-or-nothing contract.
type fakeOrderRepo struct {
	products     *fakeProductRepo
	orders       []*order.Order
	sellInactive bool
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{products: products, sellInactive: true}
}

func (r *fakeOrderRepo) Create(_ context.Context, draft *order.Order, cart []order.CartItem) error {
	type decrement struct {
		p   *product.Product
		qty int
	}
	var decrements []decrement

	for _, line := range cart {
		p, ok := r.products.items[line.ProductID]
		if !ok {
			return order.ProductNotFoundError{ID: line.ProductID}
		}
		if !p.IsActive && !r.sellInactive {
			return order.ProductNotFoundError{ID: line.ProductID}
		}
		if line.Quantity > p.Stock {
			return order.InsufficientStockError{ProductName: p.Name, Available: p.Stock}
		}
		draft.AddItem(p.ID, p.Name, p.NameUrdu, p.Price, line.Quantity)
		decrements = append(decrements, decrement{p: p, qty: line.Quantity})
	}

	if err := draft.Finalize(); err != nil {
		return err
	}

	for _, d := range decrements {
		d.p.Stock -= d.qty
	}
	r.orders = append(r.orders, draft)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id string) (*order.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByNumber(_ context.Context, orderNumber string) (*order.Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (r *fakeOrderRepo) List(_ context.Context, from, to time.Time) ([]*order.Order, error) {
	var out []*order.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		o := r.orders[i]
		if !from.IsZero() && o.OrderDate.Before(from) {
			continue
		}
		if !to.IsZero() && !o.OrderDate.Before(to) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
