package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-orders/pkg/trm"
)

type memoryState struct {
	products       map[string]entities.Product
	coupons        map[string]entities.Coupon
	accounts       map[string]entities.Account // by email
	shops          map[string]entities.Shop
	orders         map[string]entities.Order
	notifications  map[string]entities.Notification // by order id
	customerOrders map[string][]string              // account id -> order ids
}

func (s memoryState) clone() memoryState {
	return memoryState{
		products:       maps.Clone(s.products),
		coupons:        maps.Clone(s.coupons),
		accounts:       maps.Clone(s.accounts),
		shops:          maps.Clone(s.shops),
		orders:         maps.Clone(s.orders),
		notifications:  maps.Clone(s.notifications),
		customerOrders: maps.Clone(s.customerOrders),
	}
}

// memoryRepo is a process-local store used by the memory storage driver and
// by tests. It also acts as its own transaction manager: a transaction holds
// the writer lock for its whole lifetime and restores a snapshot on rollback.
// Writes outside a transaction take the same lock, so they never interleave
// with one.
type memoryRepo struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	memoryState
}

func NewMemoryRepo() *memoryRepo {
	return &memoryRepo{
		memoryState: memoryState{
			products:       make(map[string]entities.Product),
			coupons:        make(map[string]entities.Coupon),
			accounts:       make(map[string]entities.Account),
			shops:          make(map[string]entities.Shop),
			orders:         make(map[string]entities.Order),
			notifications:  make(map[string]entities.Notification),
			customerOrders: make(map[string][]string),
		},
	}
}

type memoryTxKey struct{}

type memoryTx struct {
	repo     *memoryRepo
	snapshot memoryState
	done     bool
}

func (t *memoryTx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	t.repo.txMu.Unlock()
	return nil
}

func (t *memoryTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	t.repo.mu.Lock()
	t.repo.memoryState = t.snapshot
	t.repo.mu.Unlock()
	t.repo.txMu.Unlock()
	return nil
}

func (r *memoryRepo) inTx(ctx context.Context) bool {
	tx, ok := ctx.Value(memoryTxKey{}).(*memoryTx)
	return ok && tx.repo == r && !tx.done
}

func (r *memoryRepo) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	r.txMu.Lock()

	r.mu.RLock()
	tx := &memoryTx{repo: r, snapshot: r.memoryState.clone()}
	r.mu.RUnlock()

	return context.WithValue(ctx, memoryTxKey{}, tx), tx, nil
}

func (r *memoryRepo) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if r.inTx(ctx) {
		return callback(ctx)
	}

	ctx, tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

// write runs fn under the data lock, also taking the writer lock unless ctx
// already carries a transaction of this repo.
func (r *memoryRepo) write(ctx context.Context, fn func() error) error {
	if !r.inTx(ctx) {
		r.txMu.Lock()
		defer r.txMu.Unlock()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn()
}

func (r *memoryRepo) GetProductsByIDs(_ context.Context, ids []string) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]entities.Product, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := r.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *memoryRepo) DecrementStock(ctx context.Context, productID string, qty int) (bool, error) {
	var ok bool
	err := r.write(ctx, func() error {
		p, exists := r.products[productID]
		if !exists || p.Available < qty {
			return nil
		}
		p.Available -= qty
		p.Sold += qty
		r.products[productID] = p
		ok = true
		return nil
	})
	return ok, err
}

func (r *memoryRepo) GetCoupon(_ context.Context, code string) (entities.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.coupons[code]
	if !ok {
		return entities.Coupon{}, entities.ErrCouponNotFound
	}
	c.UsedBy = slices.Clone(c.UsedBy)
	return c, nil
}

func (r *memoryRepo) AddCouponRedemption(ctx context.Context, code, email string) (bool, error) {
	var inserted bool
	err := r.write(ctx, func() error {
		c, ok := r.coupons[code]
		if !ok {
			return entities.ErrCouponNotFound
		}
		if c.UsedByCustomer(email) {
			return nil
		}
		c.UsedBy = append(slices.Clone(c.UsedBy), email)
		r.coupons[code] = c
		inserted = true
		return nil
	})
	return inserted, err
}

func (r *memoryRepo) GetAccountByEmail(_ context.Context, email string) (entities.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[email]
	if !ok {
		return entities.Account{}, entities.ErrAccountNotFound
	}
	return a, nil
}

func (r *memoryRepo) OrderNoExists(_ context.Context, orderNo string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.OrderNo == orderNo {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	return r.write(ctx, func() error {
		if _, ok := r.orders[o.ID]; ok {
			return fmt.Errorf("order %s already exists", o.ID)
		}
		for _, existing := range r.orders {
			if existing.OrderNo == o.OrderNo {
				return fmt.Errorf("%w: %s", entities.ErrOrderNoTaken, o.OrderNo)
			}
		}
		o.Items = slices.Clone(o.Items)
		r.orders[o.ID] = o

		if o.CustomerAccountID != "" {
			ids := r.customerOrders[o.CustomerAccountID]
			r.customerOrders[o.CustomerAccountID] = append(slices.Clone(ids), o.ID)
		}
		return nil
	})
}

func (r *memoryRepo) GetOrderByID(_ context.Context, orderID string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	o.Items = slices.Clone(o.Items)
	return o, nil
}

func (r *memoryRepo) ListOrders(_ context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched, err := r.filterOrders(filter)
	if err != nil {
		return nil, err
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	if filter.Offset >= len(matched) {
		return []entities.Order{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	result := make([]entities.Order, 0, len(matched))
	for _, o := range matched {
		o.Items = slices.Clone(o.Items)
		result = append(result, o)
	}
	return result, nil
}

func (r *memoryRepo) CountOrders(_ context.Context, filter entities.OrderFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched, err := r.filterOrders(filter)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

func (r *memoryRepo) filterOrders(filter entities.OrderFilter) ([]entities.Order, error) {
	var re *regexp.Regexp
	if filter.Search != "" {
		var err error
		re, err = regexp.Compile("(?i)" + filter.Search)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrInvalidSearch, err)
		}
	}

	var matched []entities.Order
	for _, o := range r.orders {
		if re != nil && !re.MatchString(o.Customer.FirstName) && !re.MatchString(o.Customer.LastName) {
			continue
		}
		if filter.ShopID != "" && !slices.ContainsFunc(o.Items, func(it entities.LineItem) bool {
			return it.ShopID == filter.ShopID
		}) {
			continue
		}
		matched = append(matched, o)
	}
	return matched, nil
}

func (r *memoryRepo) UpdateOrder(ctx context.Context, orderID string, patch entities.OrderPatch) error {
	return r.write(ctx, func() error {
		o, ok := r.orders[orderID]
		if !ok {
			return entities.ErrOrderNotFound
		}
		applyPatch(&o, patch)
		o.UpdatedAt = time.Now().UTC()
		r.orders[orderID] = o
		return nil
	})
}

func applyPatch(o *entities.Order, p entities.OrderPatch) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.PaymentMethod != nil {
		o.PaymentMethod = *p.PaymentMethod
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&o.Note, p.Note)
	set(&o.Description, p.Description)
	set(&o.PaymentID, p.PaymentID)
	set(&o.Customer.Phone, p.Phone)
	set(&o.Customer.Address, p.Address)
	set(&o.Customer.City, p.City)
	set(&o.Customer.Zip, p.Zip)
	set(&o.Customer.Country, p.Country)
	set(&o.Customer.State, p.State)
}

func (r *memoryRepo) DeleteOrder(ctx context.Context, orderID string) error {
	return r.write(ctx, func() error {
		if _, ok := r.orders[orderID]; !ok {
			return entities.ErrOrderNotFound
		}
		delete(r.orders, orderID)
		return nil
	})
}

func (r *memoryRepo) DetachCustomerOrder(ctx context.Context, orderID string) error {
	return r.write(ctx, func() error {
		for accountID, ids := range r.customerOrders {
			if !slices.Contains(ids, orderID) {
				continue
			}
			r.customerOrders[accountID] = slices.DeleteFunc(slices.Clone(ids), func(id string) bool {
				return id == orderID
			})
		}
		return nil
	})
}

func (r *memoryRepo) CreateNotification(ctx context.Context, n entities.Notification) error {
	return r.write(ctx, func() error {
		if _, ok := r.orders[n.OrderID]; !ok {
			return entities.ErrOrderNotFound
		}
		r.notifications[n.OrderID] = n
		return nil
	})
}

func (r *memoryRepo) MarkNotificationOpened(ctx context.Context, orderID string) error {
	return r.write(ctx, func() error {
		n, ok := r.notifications[orderID]
		if !ok {
			return nil
		}
		n.Opened = true
		r.notifications[orderID] = n
		return nil
	})
}

func (r *memoryRepo) DeleteNotifications(ctx context.Context, orderID string) error {
	return r.write(ctx, func() error {
		delete(r.notifications, orderID)
		return nil
	})
}

func (r *memoryRepo) GetShopBySlug(_ context.Context, slug string) (entities.Shop, error) {
	return r.findShop(func(s entities.Shop) bool { return s.Slug == slug })
}

func (r *memoryRepo) GetShopByVendor(_ context.Context, vendorID string) (entities.Shop, error) {
	return r.findShop(func(s entities.Shop) bool { return s.VendorID == vendorID })
}

func (r *memoryRepo) findShop(match func(entities.Shop) bool) (entities.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(r.shops))
	for _, id := range ids {
		if s := r.shops[id]; match(s) {
			return s, nil
		}
	}
	return entities.Shop{}, entities.ErrShopNotFound
}

func (r *memoryRepo) PutProduct(p entities.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
}

func (r *memoryRepo) PutCoupon(c entities.Coupon) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coupons[c.Code] = c
}

func (r *memoryRepo) PutAccount(a entities.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[a.Email] = a
}

func (r *memoryRepo) PutShop(s entities.Shop) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops[s.ID] = s
}

func (r *memoryRepo) Product(id string) (entities.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	return p, ok
}

func (r *memoryRepo) Notification(orderID string) (entities.Notification, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.notifications[orderID]
	return n, ok
}

func (r *memoryRepo) CustomerOrders(accountID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.customerOrders[accountID])
}

func (r *memoryRepo) OrderCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

// Seed is the document accepted by LoadSeed.
type Seed struct {
	Accounts []entities.Account `json:"accounts"`
	Shops    []entities.Shop    `json:"shops"`
	Products []entities.Product `json:"products"`
	Coupons  []entities.Coupon  `json:"coupons"`
}

// LoadSeed fills the catalog side of the store from a JSON document.
func (r *memoryRepo) LoadSeed(rd io.Reader) error {
	var seed Seed
	if err := json.NewDecoder(rd).Decode(&seed); err != nil {
		return fmt.Errorf("failed to decode seed: %w", err)
	}

	for _, a := range seed.Accounts {
		r.PutAccount(a)
	}
	for _, s := range seed.Shops {
		r.PutShop(s)
	}
	for _, p := range seed.Products {
		r.PutProduct(p)
	}
	for _, c := range seed.Coupons {
		r.PutCoupon(c)
	}
	return nil
}
