package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"
	"github.com/pr-poehali-dev/perfume-shop-creation/internal/handler"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotifyRouter(svc *mockDispatcher) chi.Router {
	h := handler.NewNotifyHandler(testLogger(), svc)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestNotifyHandler_SendNotification(t *testing.T) {
	validBody := `{"cart":[{"name":"X","brand":"Y","quantity":2,"price":50}],"customer":{"name":"A","phone":"123"}}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mockDispatcher)
		wantStatus   int
		wantResults  map[string]any
	}{
		{
			name: "partial delivery still succeeds",
			body: validBody,
			mockBehavior: func(svc *mockDispatcher) {
				svc.On("Dispatch", mock.Anything, mock.Anything, mock.Anything).
					Return(entities.DispatchResult{Telegram: entities.DeliveryFailed, Email: entities.DeliverySent}).Once()
			},
			wantStatus:  http.StatusOK,
			wantResults: map[string]any{"telegram": false, "email": true},
		},
		{
			name: "both channels failed is still 200",
			body: validBody,
			mockBehavior: func(svc *mockDispatcher) {
				svc.On("Dispatch", mock.Anything, mock.Anything, mock.Anything).
					Return(entities.DispatchResult{Telegram: entities.DeliveryFailed, Email: entities.DeliveryFailed}).Once()
			},
			wantStatus:  http.StatusOK,
			wantResults: map[string]any{"telegram": false, "email": false},
		},
		{
			name:         "empty cart rejected before dispatch",
			body:         `{"cart":[],"customer":{"name":"A"}}`,
			mockBehavior: func(svc *mockDispatcher) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "empty customer rejected before dispatch",
			body:         `{"cart":[{"name":"X","quantity":1,"price":50}],"customer":{}}`,
			mockBehavior: func(svc *mockDispatcher) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockDispatcher)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders/notify", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			newNotifyRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)

			if tc.wantStatus == http.StatusBadRequest {
				assert.Contains(t, rr.Body.String(), `"error"`)
				svc.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, true, resp["success"])
			assert.Equal(t, "Заказ отправлен", resp["message"])
			assert.Equal(t, tc.wantResults, resp["results"])
			svc.AssertExpectations(t)
		})
	}
}
