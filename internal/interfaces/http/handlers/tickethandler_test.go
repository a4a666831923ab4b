package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "zarya/internal/application/ticket/dto"
	"zarya/internal/application/ticket/usecases"
	apperrors "zarya/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
	gotCmd usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, _ usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.result, m.err
}

type mockAddResponseUC struct {
	result *usecases.AddResponseResult
	err    error
	gotCmd usecases.AddResponseCommand
}

func (m *mockAddResponseUC) Execute(_ context.Context, cmd usecases.AddResponseCommand) (*usecases.AddResponseResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockCloseTicketUC struct {
	result *usecases.CloseTicketResult
	err    error
}

func (m *mockCloseTicketUC) Execute(_ context.Context, _ usecases.CloseTicketCommand) (*usecases.CloseTicketResult, error) {
	return m.result, m.err
}

func setupTicketRouter(h *TicketHandler, userID uint, isStaff bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("is_staff", isStaff)
		c.Next()
	})
	r.POST("/tickets", h.Create)
	r.GET("/tickets", h.List)
	r.GET("/tickets/:id", h.Get)
	r.POST("/tickets/:id/responses", h.AddResponse)
	r.POST("/tickets/:id/close", h.Close)
	return r
}

func TestTicketHandler_Create_Success(t *testing.T) {
	createUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{TicketID: 42, Status: "open", CreatedAt: time.Now()},
	}
	h := NewTicketHandler(createUC, nil, nil, nil, nil)
	r := setupTicketRouter(h, 7, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(`{"subject":"Printer broken","message":"details"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), createUC.gotCmd.OwnerID)
	assert.Equal(t, "Printer broken", createUC.gotCmd.Subject)
}

func TestTicketHandler_Create_MissingFields(t *testing.T) {
	h := NewTicketHandler(&mockCreateTicketUC{}, nil, nil, nil, nil)
	r := setupTicketRouter(h, 7, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(`{"subject":"no message"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_Get_NotFoundForForeignTicket(t *testing.T) {
	getUC := &mockGetTicketUC{err: apperrors.NewNotFoundError("ticket not found")}
	h := NewTicketHandler(nil, getUC, nil, nil, nil)
	r := setupTicketRouter(h, 8, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tickets/10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_Get_InvalidID(t *testing.T) {
	h := NewTicketHandler(nil, &mockGetTicketUC{}, nil, nil, nil)
	r := setupTicketRouter(h, 7, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tickets/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_List_Success(t *testing.T) {
	listUC := &mockListTicketsUC{
		result: &usecases.ListTicketsResult{
			Tickets: []ticketdto.TicketListItemDTO{{ID: 10, Subject: "subject", Status: "open"}},
			Total:   1,
		},
	}
	h := NewTicketHandler(nil, nil, listUC, nil, nil)
	r := setupTicketRouter(h, 7, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tickets?page=1&page_size=20", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, data["total"])
}

func TestTicketHandler_AddResponse_ClosedTicketConflict(t *testing.T) {
	addUC := &mockAddResponseUC{err: apperrors.NewConflictError("ticket is closed")}
	h := NewTicketHandler(nil, nil, nil, addUC, nil)
	r := setupTicketRouter(h, 7, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets/10/responses", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTicketHandler_AddResponse_CarriesStaffFlag(t *testing.T) {
	addUC := &mockAddResponseUC{
		result: &usecases.AddResponseResult{ResponseID: 5, TicketStatus: "open", CreatedAt: time.Now()},
	}
	h := NewTicketHandler(nil, nil, nil, addUC, nil)
	r := setupTicketRouter(h, 99, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets/10/responses", strings.NewReader(`{"message":"we are on it"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, addUC.gotCmd.IsStaff)
	assert.Equal(t, uint(99), addUC.gotCmd.AuthorID)
}

func TestTicketHandler_Close_ForbiddenForNonStaff(t *testing.T) {
	closeUC := &mockCloseTicketUC{err: apperrors.NewForbiddenError("only staff can close tickets")}
	h := NewTicketHandler(nil, nil, nil, nil, closeUC)
	r := setupTicketRouter(h, 7, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tickets/10/close", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
