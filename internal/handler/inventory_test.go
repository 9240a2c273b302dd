package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gameworld/gameworld/internal/auth"
	"github.com/gameworld/gameworld/internal/domain"
	"github.com/gameworld/gameworld/internal/middleware"
)

func TestHandleGetInventory(t *testing.T) {
	tests := []struct {
		name           string
		playerID       string
		setupMock      func(*MockInventoryService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Success",
			playerID: "1",
			setupMock: func(m *MockInventoryService) {
				m.On("GetInventory", mock.Anything, 1).Return([]domain.InventoryItem{
					{Item: domain.Item{ID: 1, Name: "potion"}, Quantity: 3},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"item_name":"potion"`,
		},
		{
			name:     "Success - Empty Inventory",
			playerID: "2",
			setupMock: func(m *MockInventoryService) {
				m.On("GetInventory", mock.Anything, 2).Return([]domain.InventoryItem{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "[]",
		},
		{
			name:           "Invalid Player ID - Not A Number",
			playerID:       "abc",
			setupMock:      func(m *MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidPlayerID,
		},
		{
			name:           "Invalid Player ID - Zero",
			playerID:       "0",
			setupMock:      func(m *MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidPlayerID,
		},
		{
			name:     "Service Error",
			playerID: "1",
			setupMock: func(m *MockInventoryService) {
				m.On("GetInventory", mock.Anything, 1).Return(nil, domain.ErrStorageUnavailable)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockInventoryService{}
			tt.setupMock(mockSvc)

			r := chi.NewRouter()
			r.Get("/players/{playerID}/inventory", HandleGetInventory(mockSvc))

			req := httptest.NewRequest("GET", "/players/"+tt.playerID+"/inventory", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleAddItem_SessionBinding(t *testing.T) {
	InitValidator()

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.Issue(1)
	require.NoError(t, err)

	mockSvc := &MockInventoryService{}
	mockSvc.On("AddItem", mock.Anything, 1, 2, 3).Return(nil)

	handler := middleware.RequireSession(issuer)(HandleAddItem(mockSvc))

	t.Run("own player allowed", func(t *testing.T) {
		body, _ := json.Marshal(AddItemRequest{PlayerID: 1, ItemID: 2, Quantity: 3})
		req := httptest.NewRequest("POST", "/api/v1/inventory/add", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other player forbidden", func(t *testing.T) {
		body, _ := json.Marshal(AddItemRequest{PlayerID: 7, ItemID: 2, Quantity: 3})
		req := httptest.NewRequest("POST", "/api/v1/inventory/add", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgForbidden)
		mockSvc.AssertNotCalled(t, "AddItem", mock.Anything, 7, mock.Anything, mock.Anything)
	})
}

func TestHandleAddItem(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockInventoryService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: AddItemRequest{PlayerID: 1, ItemID: 2, Quantity: 3},
			setupMock: func(m *MockInventoryService) {
				m.On("AddItem", mock.Anything, 1, 2, 3).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"success":true`,
		},
		{
			name:           "Invalid Quantity - Zero",
			requestBody:    AddItemRequest{PlayerID: 1, ItemID: 2, Quantity: 0},
			setupMock:      func(m *MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidQuantity,
		},
		{
			name:           "Invalid Quantity - Negative",
			requestBody:    AddItemRequest{PlayerID: 1, ItemID: 2, Quantity: -5},
			setupMock:      func(m *MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidQuantity,
		},
		{
			name:           "Invalid Request - Malformed JSON",
			requestBody:    "{not json",
			setupMock:      func(m *MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:        "Unknown Item",
			requestBody: AddItemRequest{PlayerID: 1, ItemID: 999, Quantity: 1},
			setupMock: func(m *MockInventoryService) {
				m.On("AddItem", mock.Anything, 1, 999, 1).Return(domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFound,
		},
		{
			name:        "Unknown Player",
			requestBody: AddItemRequest{PlayerID: 999, ItemID: 1, Quantity: 1},
			setupMock: func(m *MockInventoryService) {
				m.On("AddItem", mock.Anything, 999, 1, 1).Return(domain.ErrPlayerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgPlayerNotFound,
		},
		{
			name:        "Service Error",
			requestBody: AddItemRequest{PlayerID: 1, ItemID: 2, Quantity: 3},
			setupMock: func(m *MockInventoryService) {
				m.On("AddItem", mock.Anything, 1, 2, 3).Return(domain.ErrStorageUnavailable)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockInventoryService{}
			tt.setupMock(mockSvc)

			handler := HandleAddItem(mockSvc)

			var body []byte
			if raw, ok := tt.requestBody.(string); ok {
				body = []byte(raw)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}
			req := httptest.NewRequest("POST", "/api/v1/inventory/add", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
