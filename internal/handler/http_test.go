package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/marketplace-orders/internal/auth"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/handler"
	mocks "github.com/SergeyBogomolovv/marketplace-orders/internal/handler/mocks"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	userID  = entities.Identity{SubjectID: "u1", Email: "jane@example.com", Role: entities.RoleUser, Verified: true}
	adminID = entities.Identity{SubjectID: "a1", Email: "admin@example.com", Role: entities.RoleAdmin, Verified: true}
)

type deps struct {
	placer *mocks.MockOrderPlacer
	orders *mocks.MockOrderManager
}

func newRouter(t *testing.T) (chi.Router, deps) {
	authn := mocks.NewMockAuthenticator(t)
	authn.EXPECT().Authenticate(mock.Anything).
		RunAndReturn(func(token string) (entities.Identity, error) {
			switch token {
			case "user-token":
				return userID, nil
			case "admin-token":
				return adminID, nil
			}
			return entities.Identity{}, auth.ErrUnauthenticated
		}).Maybe()

	d := deps{
		placer: mocks.NewMockOrderPlacer(t),
		orders: mocks.NewMockOrderManager(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, authn, "token", d.placer, d.orders)

	r := chi.NewRouter()
	h.Init(r)
	return r, d
}

func do(r http.Handler, method, target, token, body string) (int, string) {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()
	data, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(data)
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{
		ID:       "123",
		OrderNo:  "A123456",
		Subtotal: decimal.NewFromInt(100),
		Total:    decimal.NewFromInt(110),
		Status:   entities.StatusPending,
		Items: []entities.LineItem{
			{ProductID: "P1", Quantity: 2, Price: decimal.NewFromInt(50), Total: decimal.NewFromInt(100)},
		},
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderManager)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orderNo":"A123456"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderManager) {
				svc.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t)
			tc.mockBehavior(d.orders)

			status, body := do(r, http.MethodGet, "/orders/"+tc.orderID, "", "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "123", resp["_id"])
				assert.Equal(t, "100.00", resp["subTotal"])
				assert.Equal(t, "110.00", resp["total"])
				assert.Equal(t, "pending", resp["status"])
			}
		})
	}
}

const validOrderBody = `{
	"items": [{"pid": "P1", "quantity": 2}],
	"user": {"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "city": "Lisbon"},
	"currency": "USD",
	"conversionRate": 1,
	"paymentMethod": "COD",
	"totalItems": 2,
	"shipping": 10,
	"couponCode": "TEN"
}`

func TestHTTPHandler_PlaceOrder(t *testing.T) {
	testCases := []struct {
		name         string
		token        string
		body         string
		mockBehavior func(svc *mocks.MockOrderPlacer)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "created",
			token: "user-token",
			body:  validOrderBody,
			mockBehavior: func(svc *mocks.MockOrderPlacer) {
				svc.EXPECT().PlaceOrder(mock.Anything, userID, mock.MatchedBy(func(req service.PlaceOrderRequest) bool {
					return len(req.Items) == 1 && req.Items[0].ProductID == "P1" && req.Items[0].Quantity == 2 &&
						req.CouponCode == "TEN" && req.Shipping.Equal(decimal.NewFromInt(10)) &&
						req.Customer.City == "Lisbon" && req.PaymentMethod == entities.PaymentCOD
				})).Return(service.PlaceOrderResult{OrderID: "o1", OrderNo: "A123456", Total: decimal.NewFromInt(100)}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"orderId":"o1","orderNo":"A123456","total":"100.00"}`,
		},
		{
			name:         "malformed body",
			token:        "user-token",
			body:         `{"items":`,
			mockBehavior: func(*mocks.MockOrderPlacer) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "validation error",
			token:        "user-token",
			body:         `{"items":[{"pid":"P1","quantity":1}],"user":{"firstName":"Jane"},"currency":"USD","paymentMethod":"Cash"}`,
			mockBehavior: func(*mocks.MockOrderPlacer) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"PaymentMethod":"oneof"`,
		},
		{
			name:  "negative shipping",
			token: "user-token",
			body:  strings.Replace(validOrderBody, `"shipping": 10`, `"shipping": -1`, 1),
			mockBehavior: func(svc *mocks.MockOrderPlacer) {
				svc.EXPECT().PlaceOrder(mock.Anything, userID, mock.Anything).
					Return(service.PlaceOrderResult{}, fmt.Errorf("%w: shipping -1", entities.ErrInvalidAmount)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"shipping and conversion rate must not be negative: shipping -1"`,
		},
		{
			name:  "empty items",
			token: "user-token",
			body:  strings.Replace(validOrderBody, `[{"pid": "P1", "quantity": 2}]`, `[]`, 1),
			mockBehavior: func(svc *mocks.MockOrderPlacer) {
				svc.EXPECT().PlaceOrder(mock.Anything, userID, mock.Anything).
					Return(service.PlaceOrderResult{}, entities.ErrEmptyOrder).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"please provide item(s)"`,
		},
		{
			name:  "coupon expired",
			token: "user-token",
			body:  validOrderBody,
			mockBehavior: func(svc *mocks.MockOrderPlacer) {
				svc.EXPECT().PlaceOrder(mock.Anything, userID, mock.Anything).
					Return(service.PlaceOrderResult{}, entities.ErrCouponExpired).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"coupon is expired"`,
		},
		{
			name:  "coupon not found",
			token: "user-token",
			body:  validOrderBody,
			mockBehavior: func(svc *mocks.MockOrderPlacer) {
				svc.EXPECT().PlaceOrder(mock.Anything, userID, mock.Anything).
					Return(service.PlaceOrderResult{}, entities.ErrCouponNotFound).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "coupon reused",
			token: "user-token",
			body:  validOrderBody,
			mockBehavior: func(svc *mocks.MockOrderPlacer) {
				svc.EXPECT().PlaceOrder(mock.Anything, userID, mock.Anything).
					Return(service.PlaceOrderResult{}, entities.ErrCouponAlreadyRedeemed).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "anonymous",
			body: validOrderBody,
			mockBehavior: func(svc *mocks.MockOrderPlacer) {
				svc.EXPECT().PlaceOrder(mock.Anything, entities.Identity{}, mock.Anything).
					Return(service.PlaceOrderResult{}, auth.ErrUnauthenticated).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "invalid credential",
			token:        "forged",
			body:         validOrderBody,
			mockBehavior: func(*mocks.MockOrderPlacer) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:  "unverified email",
			token: "user-token",
			body:  validOrderBody,
			mockBehavior: func(svc *mocks.MockOrderPlacer) {
				svc.EXPECT().PlaceOrder(mock.Anything, userID, mock.Anything).
					Return(service.PlaceOrderResult{}, auth.ErrEmailNotVerified).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"email is not verified"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t)
			tc.mockBehavior(d.placer)

			status, body := do(r, http.MethodPost, "/orders", tc.token, tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_Coupons(t *testing.T) {
	coupon := entities.Coupon{
		Code:      "TEN",
		Kind:      entities.CouponPercent,
		Discount:  decimal.NewFromInt(10),
		ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("quote", func(t *testing.T) {
		r, d := newRouter(t)
		d.placer.EXPECT().QuoteCoupon(mock.Anything, "TEN", decimal.RequireFromString("80.5")).
			Return(coupon, decimal.RequireFromString("8.05"), nil).Once()

		status, body := do(r, http.MethodGet, "/coupons/TEN?total=80.5", "", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"amount":"8.05"`)
		assert.Contains(t, body, `"type":"percent"`)
	})

	t.Run("quote unknown", func(t *testing.T) {
		r, d := newRouter(t)
		d.placer.EXPECT().QuoteCoupon(mock.Anything, "NOPE", decimal.Zero).
			Return(entities.Coupon{}, decimal.Zero, entities.ErrCouponNotFound).Once()

		status, _ := do(r, http.MethodGet, "/coupons/NOPE", "", "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("quote bad total", func(t *testing.T) {
		r, _ := newRouter(t)
		status, _ := do(r, http.MethodGet, "/coupons/TEN?total=abc", "", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("redeem", func(t *testing.T) {
		r, d := newRouter(t)
		d.placer.EXPECT().RedeemCoupon(mock.Anything, userID, "TEN", decimal.NewFromInt(50)).
			Return(decimal.NewFromInt(5), nil).Once()

		status, body := do(r, http.MethodPost, "/coupons/TEN/redeem", "user-token", `{"total": 50}`)
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"code":"TEN","discount":"5.00"}`, body)
	})

	t.Run("redeem expired", func(t *testing.T) {
		r, d := newRouter(t)
		d.placer.EXPECT().RedeemCoupon(mock.Anything, userID, "OLD", mock.Anything).
			Return(decimal.Zero, entities.ErrCouponExpired).Once()

		status, _ := do(r, http.MethodPost, "/coupons/OLD/redeem", "user-token", `{"total": 50}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHTTPHandler_AdminOrders(t *testing.T) {
	page := entities.OrderPage{
		Orders:      []entities.Order{{ID: "o1", Status: entities.StatusPending}},
		Total:       11,
		Pages:       2,
		CurrentPage: 2,
	}

	t.Run("list", func(t *testing.T) {
		r, d := newRouter(t)
		d.orders.EXPECT().ListOrders(mock.Anything, adminID, service.ListQuery{Page: 2, Limit: 10, Search: "jan", Shop: "mugs"}).
			Return(page, nil).Once()

		status, body := do(r, http.MethodGet, "/admin/orders?page=2&search=jan&shop=mugs", "admin-token", "")
		require.Equal(t, http.StatusOK, status)

		var resp handler.OrdersPage
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		assert.Equal(t, 11, resp.Total)
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, 2, resp.CurrentPage)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "o1", resp.Data[0].ID)
	})

	t.Run("list forbidden", func(t *testing.T) {
		r, d := newRouter(t)
		d.orders.EXPECT().ListOrders(mock.Anything, userID, mock.Anything).
			Return(entities.OrderPage{}, auth.ErrForbidden).Once()

		status, _ := do(r, http.MethodGet, "/admin/orders", "user-token", "")
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("list unknown shop", func(t *testing.T) {
		r, d := newRouter(t)
		d.orders.EXPECT().ListOrders(mock.Anything, adminID, mock.Anything).
			Return(entities.OrderPage{}, entities.ErrShopNotFound).Once()

		status, body := do(r, http.MethodGet, "/admin/orders?shop=nope", "admin-token", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, "shop not found")
	})

	t.Run("open", func(t *testing.T) {
		r, d := newRouter(t)
		d.orders.EXPECT().OpenOrder(mock.Anything, adminID, "o1").Return(entities.Order{ID: "o1"}, nil).Once()

		status, _ := do(r, http.MethodGet, "/admin/orders/o1", "admin-token", "")
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("update", func(t *testing.T) {
		r, d := newRouter(t)
		d.orders.EXPECT().UpdateOrder(mock.Anything, adminID, "o1", mock.MatchedBy(func(p entities.OrderPatch) bool {
			return p.Status != nil && *p.Status == entities.StatusOnTheWay && p.Note != nil && *p.Note == "shipped" && p.City == nil
		})).Return(entities.Order{ID: "o1", Status: entities.StatusOnTheWay}, nil).Once()

		status, body := do(r, http.MethodPut, "/admin/orders/o1", "admin-token", `{"status":"on the way","note":"shipped"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"status":"on the way"`)
	})

	t.Run("update invalid status", func(t *testing.T) {
		r, _ := newRouter(t)
		status, body := do(r, http.MethodPut, "/admin/orders/o1", "admin-token", `{"status":"lost"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"Status":"oneof"`)
	})

	t.Run("delete missing", func(t *testing.T) {
		r, d := newRouter(t)
		d.orders.EXPECT().DeleteOrder(mock.Anything, adminID, "gone").Return(entities.ErrOrderNotFound).Once()

		status, _ := do(r, http.MethodDelete, "/admin/orders/gone", "admin-token", "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("delete", func(t *testing.T) {
		r, d := newRouter(t)
		d.orders.EXPECT().DeleteOrder(mock.Anything, adminID, "o1").Return(nil).Once()

		status, _ := do(r, http.MethodDelete, "/admin/orders/o1", "admin-token", "")
		assert.Equal(t, http.StatusOK, status)
	})
}

func TestHTTPHandler_VendorOrders(t *testing.T) {
	r, d := newRouter(t)
	d.orders.EXPECT().ListVendorOrders(mock.Anything, userID, service.ListQuery{Page: 1, Limit: 5}).
		Return(entities.OrderPage{}, auth.ErrForbidden).Once()

	status, _ := do(r, http.MethodGet, "/vendor/orders?limit=5", "user-token", "")
	assert.Equal(t, http.StatusForbidden, status)
}
