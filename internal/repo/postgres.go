package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-orders/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	query, args := r.qb.Select("id", "shop_id", "name", "sku", "price_sale", "available", "sold", "images").
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, p := range rows {
		products = append(products, ProductToEntity(p))
	}
	return products, nil
}

// DecrementStock moves qty units from available to sold in a single
// conditional statement. It reports false when the product is missing or
// has fewer than qty units available.
func (r *postgresRepo) DecrementStock(ctx context.Context, productID string, qty int) (bool, error) {
	query, args := r.qb.Update("products").
		Set("available", sq.Expr("available - ?", qty)).
		Set("sold", sq.Expr("sold + ?", qty)).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"available": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to decrement stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

func (r *postgresRepo) GetCoupon(ctx context.Context, code string) (entities.Coupon, error) {
	query, args := r.qb.Select(
		"c.code", "c.discount", "c.kind", "c.expires_at",
		"array(SELECT cr.email FROM coupon_redemptions cr WHERE cr.code = c.code ORDER BY cr.redeemed_at) AS used_by").
		From("coupons c").
		Where(sq.Eq{"c.code": code}).
		MustSql()

	var coupon Coupon
	err := r.getContext(ctx, &coupon, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Coupon{}, entities.ErrCouponNotFound
	}
	if err != nil {
		return entities.Coupon{}, fmt.Errorf("failed to get coupon: %w", err)
	}
	return CouponToEntity(coupon), nil
}

// AddCouponRedemption inserts email into the coupon's consumer set. It
// reports false when email was already present.
func (r *postgresRepo) AddCouponRedemption(ctx context.Context, code, email string) (bool, error) {
	query, args := r.qb.Insert("coupon_redemptions").
		Columns("code", "email").
		Values(code, email).
		Suffix("ON CONFLICT (code, email) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to add coupon redemption: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

func (r *postgresRepo) GetAccountByEmail(ctx context.Context, email string) (entities.Account, error) {
	query, args := r.qb.Select("id", "email").
		From("users").
		Where(sq.Eq{"email": email}).
		MustSql()

	var account Account
	err := r.getContext(ctx, &account, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Account{}, entities.ErrAccountNotFound
	}
	if err != nil {
		return entities.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return entities.Account{ID: account.ID, Email: account.Email}, nil
}

func (r *postgresRepo) OrderNoExists(ctx context.Context, orderNo string) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("orders").
		Where(sq.Eq{"order_no": orderNo}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check order number: %w", err)
	}
	return exists, nil
}

// CreateOrder writes the order, its line items and the account history link
// when the order resolved to an account.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	c := o.Customer
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNo, string(o.PaymentMethod), nullString(o.PaymentID), o.Subtotal, o.Discount,
			o.Shipping, o.Total, o.TotalItems, o.Currency, o.ConversionRate, string(o.Status),
			nullString(o.Description), nullString(o.Note), nullString(o.CouponCode),
			c.FirstName, c.LastName, c.Email, nullString(c.Phone),
			nullString(c.Address), nullString(c.City), nullString(c.Zip), nullString(c.Country),
			nullString(c.State), nullString(c.CoverURL), nullString(o.CustomerAccountID),
			o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if err := r.insertOrderRow(ctx, query, args...); err != nil {
		return err
	}

	if len(o.Items) > 0 {
		q := r.qb.Insert("order_items").Columns(itemColumns...)
		for i, it := range o.Items {
			q = q.Values(
				o.ID, i, it.ProductID, it.Name, it.SKU, it.Quantity,
				it.Price, it.Total, nullString(it.ShopID), it.ImageURL, it.Backordered,
			)
		}
		query, args = q.MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}
	}

	if o.CustomerAccountID != "" {
		query, args = r.qb.Insert("customer_orders").
			Columns("user_id", "order_id").
			Values(o.CustomerAccountID, o.ID).
			Suffix("ON CONFLICT DO NOTHING").
			MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to link order to account: %w", err)
		}
	}

	return nil
}

// insertOrderRow inserts the orders row. Inside a transaction it runs under a
// savepoint so an order number collision leaves the transaction usable for
// another attempt.
func (r *postgresRepo) insertOrderRow(ctx context.Context, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		if _, err := tx.ExecContext(ctx, "SAVEPOINT insert_order"); err != nil {
			return fmt.Errorf("failed to create savepoint: %w", err)
		}
	}

	_, err := r.execContext(ctx, query, args...)
	if err != nil && isOrderNoTaken(err) {
		if tx != nil {
			if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT insert_order"); rbErr != nil {
				return fmt.Errorf("failed to roll back savepoint: %w", rbErr)
			}
		}
		return fmt.Errorf("%w: %w", entities.ErrOrderNoTaken, err)
	}
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if tx != nil {
		if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT insert_order"); err != nil {
			return fmt.Errorf("failed to release savepoint: %w", err)
		}
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsByOrders(ctx, []string{orderID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[orderID]), nil
}

// ListOrders returns a page of orders matching filter, newest first.
func (r *postgresRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(r.orderFilter(filter)).
		OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		if isInvalidRegex(err) {
			return nil, fmt.Errorf("%w: %w", entities.ErrInvalidSearch, err)
		}
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	items, err := r.itemsByOrders(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, items[order.ID]))
	}
	return result, nil
}

func (r *postgresRepo) CountOrders(ctx context.Context, filter entities.OrderFilter) (int, error) {
	query, args := r.qb.Select("count(*)").
		From("orders").
		Where(r.orderFilter(filter)).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		if isInvalidRegex(err) {
			return 0, fmt.Errorf("%w: %w", entities.ErrInvalidSearch, err)
		}
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) orderFilter(filter entities.OrderFilter) sq.And {
	where := sq.And{}
	if filter.Search != "" {
		where = append(where, sq.Or{
			sq.Expr("customer_first_name ~* ?", filter.Search),
			sq.Expr("customer_last_name ~* ?", filter.Search),
		})
	}
	if filter.ShopID != "" {
		where = append(where, sq.Expr(
			"EXISTS (SELECT 1 FROM order_items i WHERE i.order_id = orders.id AND i.shop_id = ?)",
			filter.ShopID,
		))
	}
	return where
}

func (r *postgresRepo) itemsByOrders(ctx context.Context, ids []string) (map[string][]Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	result := make(map[string][]Item, len(ids))
	for _, item := range items {
		result[item.OrderID] = append(result[item.OrderID], item)
	}
	return result, nil
}

func (r *postgresRepo) UpdateOrder(ctx context.Context, orderID string, patch entities.OrderPatch) error {
	set := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.PaymentMethod != nil {
		set["payment_method"] = string(*patch.PaymentMethod)
	}
	setString := func(column string, v *string) {
		if v != nil {
			set[column] = nullString(*v)
		}
	}
	setString("note", patch.Note)
	setString("description", patch.Description)
	setString("payment_id", patch.PaymentID)
	setString("customer_phone", patch.Phone)
	setString("customer_address", patch.Address)
	setString("customer_city", patch.City)
	setString("customer_zip", patch.Zip)
	setString("customer_country", patch.Country)
	setString("customer_state", patch.State)

	query, args := r.qb.Update("orders").
		SetMap(set).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) DetachCustomerOrder(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("customer_orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to detach order from account: %w", err)
	}
	return nil
}

func (r *postgresRepo) CreateNotification(ctx context.Context, n entities.Notification) error {
	query, args := r.qb.Insert("notifications").
		Columns("id", "order_id", "opened", "title", "payment_method", "city", "cover", "created_at").
		Values(n.ID, n.OrderID, n.Opened, n.Title, string(n.PaymentMethod), n.City, n.Cover, n.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (r *postgresRepo) MarkNotificationOpened(ctx context.Context, orderID string) error {
	query, args := r.qb.Update("notifications").
		Set("opened", true).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark notification opened: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteNotifications(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("notifications").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetShopBySlug(ctx context.Context, slug string) (entities.Shop, error) {
	return r.getShop(ctx, sq.Eq{"slug": slug})
}

func (r *postgresRepo) GetShopByVendor(ctx context.Context, vendorID string) (entities.Shop, error) {
	return r.getShop(ctx, sq.Eq{"vendor_id": vendorID})
}

func (r *postgresRepo) getShop(ctx context.Context, where sq.Eq) (entities.Shop, error) {
	query, args := r.qb.Select("id", "vendor_id", "slug", "name").
		From("shops").
		Where(where).
		OrderBy("created_at").
		Limit(1).
		MustSql()

	var shop Shop
	err := r.getContext(ctx, &shop, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Shop{}, entities.ErrShopNotFound
	}
	if err != nil {
		return entities.Shop{}, fmt.Errorf("failed to get shop: %w", err)
	}
	return ShopToEntity(shop), nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
