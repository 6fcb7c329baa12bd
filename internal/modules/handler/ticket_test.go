package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/cafeanalog/coffeecard-api/internal/modules/serializer"
	"github.com/cafeanalog/coffeecard-api/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) Redeem(ctx context.Context, ticketID int, menuItemID *int) (*model.Ticket, error) {
	args := m.Called(ctx, ticketID, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketService) ListUnused(ctx context.Context, ownerID int) ([]model.Ticket, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ticket), args.Error(1)
}

func TestTicketHandler_RedeemTicket(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		ticketIDParam  string
		body           string
		setup          func(*MockTicketService)
		expectedStatus int
	}{
		{
			name:          "success",
			ticketIDParam: "5",
			body:          `{"menu_item_id":2}`,
			setup: func(svc *MockTicketService) {
				svc.On("Redeem", mock.Anything, 5, mock.MatchedBy(func(id *int) bool {
					return id != nil && *id == 2
				})).Return(&model.Ticket{ID: 5, Status: model.TicketStatusUsed}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "success without menu item",
			ticketIDParam: "5",
			body:          `{}`,
			setup: func(svc *MockTicketService) {
				svc.On("Redeem", mock.Anything, 5, (*int)(nil)).
					Return(&model.Ticket{ID: 5, Status: model.TicketStatusUsed}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-numeric id",
			ticketIDParam:  "abc",
			body:           `{}`,
			setup:          func(svc *MockTicketService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "unknown ticket",
			ticketIDParam: "99",
			body:          `{}`,
			setup: func(svc *MockTicketService) {
				svc.On("Redeem", mock.Anything, 99, (*int)(nil)).
					Return(nil, service.ErrTicketNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:          "already used",
			ticketIDParam: "5",
			body:          `{}`,
			setup: func(svc *MockTicketService) {
				svc.On("Redeem", mock.Anything, 5, (*int)(nil)).
					Return(nil, model.ErrTicketNotUnused)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockTicketService)
			tt.setup(svc)
			h := NewTicketHandler(svc)

			router := gin.New()
			router.POST("/tickets/:id/use", h.RedeemTicket)

			req := httptest.NewRequest(http.MethodPost, "/tickets/"+tt.ticketIDParam+"/use", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			var resp serializer.Response
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			svc.AssertExpectations(t)
		})
	}
}

func TestTicketHandler_GetUnusedTickets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := new(MockTicketService)
	svc.On("ListUnused", mock.Anything, 1).Return([]model.Ticket{
		{ID: 1, Status: model.TicketStatusUnused, OwnerID: 1},
		{ID: 2, Status: model.TicketStatusUnused, OwnerID: 1},
	}, nil)
	h := NewTicketHandler(svc)

	router := gin.New()
	router.GET("/users/:id/tickets", h.GetUnusedTickets)

	req := httptest.NewRequest(http.MethodGet, "/users/1/tickets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp serializer.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, resp.Code)
}
