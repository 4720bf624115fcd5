package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"
	"github.com/pr-poehali-dev/perfume-shop-creation/internal/handler"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminPassword = "secret"

func newAdminRouter(svc *mockOrderAdmin) chi.Router {
	h := handler.NewAdminOrdersHandler(testLogger(), svc, adminPassword)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestAdminOrdersHandler_Auth(t *testing.T) {
	testCases := []struct {
		name       string
		password   string
		wantStatus int
	}{
		{name: "valid password", password: adminPassword, wantStatus: http.StatusOK},
		{name: "wrong password", password: "guess", wantStatus: http.StatusUnauthorized},
		{name: "missing header", password: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockOrderAdmin)
			if tc.wantStatus == http.StatusOK {
				svc.On("ListOrders", mock.Anything).Return([]entities.Order{}, nil).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
			if tc.password != "" {
				req.Header.Set("X-Admin-Password", tc.password)
			}
			rr := httptest.NewRecorder()

			newAdminRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rr.Body.String(), `"Unauthorized"`)
				// до сервиса запрос не дошёл
				svc.AssertNotCalled(t, "ListOrders", mock.Anything)
			}
		})
	}
}

func TestAdminOrdersHandler_ListOrders(t *testing.T) {
	created := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	orders := []entities.Order{
		{
			ID:            7,
			OrderNumber:   "ORD-20260901-120000",
			CustomerName:  "A",
			CustomerPhone: "123",
			TotalAmount:   decimal.NewFromInt(100),
			Status:        entities.StatusPending,
			CreatedAt:     created,
			Items: []entities.OrderItem{
				{PerfumeID: 1, Name: "X", Brand: "Y", Quantity: 2, Price: decimal.NewFromInt(50)},
			},
		},
	}

	svc := new(mockOrderAdmin)
	svc.On("ListOrders", mock.Anything).Return(orders, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("X-Admin-Password", adminPassword)
	rr := httptest.NewRecorder()

	newAdminRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Result().Body)
	require.NoError(t, err)

	var resp struct {
		Orders []map[string]any `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Orders, 1)

	order := resp.Orders[0]
	assert.Equal(t, "ORD-20260901-120000", order["orderNumber"])
	assert.Equal(t, float64(100), order["totalAmount"])
	assert.Nil(t, order["updatedAt"])

	items, ok := order["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, float64(1), item["perfumeId"])
	assert.Equal(t, "X", item["perfumeName"])
	assert.Equal(t, "Y", item["perfumeBrand"])
	assert.Equal(t, float64(2), item["quantity"])
	assert.Equal(t, float64(50), item["price"])
}

func TestAdminOrdersHandler_UpdateOrder(t *testing.T) {
	status := "shipped"

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mockOrderAdmin)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "status only",
			body: `{"id":42,"status":"shipped"}`,
			mockBehavior: func(svc *mockOrderAdmin) {
				svc.On("UpdateOrder", mock.Anything, int64(42), entities.OrderPatch{Status: &status}).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name: "no updatable fields is still success",
			body: `{"id":42}`,
			mockBehavior: func(svc *mockOrderAdmin) {
				svc.On("UpdateOrder", mock.Anything, int64(42), entities.OrderPatch{}).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name: "unknown id silently succeeds",
			body: `{"id":999,"status":"shipped"}`,
			mockBehavior: func(svc *mockOrderAdmin) {
				svc.On("UpdateOrder", mock.Anything, int64(999), mock.Anything).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name:         "missing id",
			body:         `{"status":"shipped"}`,
			mockBehavior: func(svc *mockOrderAdmin) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"ID"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockOrderAdmin)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPut, "/admin/orders", strings.NewReader(tc.body))
			req.Header.Set("X-Admin-Password", adminPassword)
			rr := httptest.NewRecorder()

			newAdminRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestAdminOrdersHandler_DeleteOrder(t *testing.T) {
	testCases := []struct {
		name         string
		target       string
		mockBehavior func(svc *mockOrderAdmin)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "existing order",
			target: "/admin/orders?id=42",
			mockBehavior: func(svc *mockOrderAdmin) {
				svc.On("DeleteOrder", mock.Anything, int64(42)).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name:   "unknown id reports success",
			target: "/admin/orders?id=999",
			mockBehavior: func(svc *mockOrderAdmin) {
				svc.On("DeleteOrder", mock.Anything, int64(999)).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name:         "missing id parameter",
			target:       "/admin/orders",
			mockBehavior: func(svc *mockOrderAdmin) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Missing id parameter"`,
		},
		{
			name:         "non-numeric id",
			target:       "/admin/orders?id=abc",
			mockBehavior: func(svc *mockOrderAdmin) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Invalid id parameter"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockOrderAdmin)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodDelete, tc.target, nil)
			req.Header.Set("X-Admin-Password", adminPassword)
			rr := httptest.NewRecorder()

			newAdminRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
