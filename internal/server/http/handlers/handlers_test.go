package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/server/http/dto"
	"github.com/polkiloo/canteen/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/canteen/internal/test"
	"github.com/polkiloo/canteen/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	return performRouted(t, method, path, path, handler, setup, body, headers)
}

func performRouted(t *testing.T, method, pattern, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, pattern, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func as(identity model.Identity) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityContextKey, identity)
	}
}

var (
	asCustomer = as(model.CustomerIdentity("u1"))
	asStaff    = as(model.StaffIdentity())
)

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", resp.Body.String(), err)
	}
	return out
}

func errorBody(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[dto.ErrorResponse](t, resp).Error
}

func TestCurrentIdentity(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentIdentity(c); got.Authenticated() {
		t.Fatalf("expected anonymous identity, got %+v", got)
	}

	c.Set(middleware.IdentityContextKey, model.StaffIdentity())
	if got := CurrentIdentity(c); !got.IsStaff() {
		t.Fatalf("expected staff identity, got %+v", got)
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		overrides messages
		status    int
		message   string
	}{
		{name: "validation", err: domainErrors.Validation("Missing required fields"), status: http.StatusBadRequest, message: "Missing required fields"},
		{name: "wrapped validation", err: errors.Join(errors.New("ctx"), domainErrors.Validation("Invalid email format")), status: http.StatusBadRequest, message: "Invalid email format"},
		{name: "unauthorized", err: domainErrors.ErrUnauthorized, status: http.StatusUnauthorized, message: "Unauthorized"},
		{name: "credentials", err: domainErrors.ErrInvalidCredentials, status: http.StatusUnauthorized, message: "Invalid credentials"},
		{name: "forbidden", err: domainErrors.ErrForbidden, status: http.StatusForbidden, message: "Unauthorized - Staff only"},
		{name: "not found override", err: domainErrors.ErrNotFound, overrides: messages{domainErrors.ErrNotFound: "Item not found"}, status: http.StatusNotFound, message: "Item not found"},
		{name: "conflict", err: domainErrors.ErrAlreadyExists, status: http.StatusConflict, message: "Already exists"},
		{name: "transition", err: domainErrors.ErrInvalidTransition, status: http.StatusConflict, message: "Invalid status transition"},
		{name: "internal", err: errors.New("db down"), status: http.StatusInternalServerError, message: "db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodGet, "/", func(c *gin.Context) {
				respondError(c, tt.err, tt.overrides)
			}, nil, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if got := errorBody(t, resp); got != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, got)
			}
		})
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	name := testhelpers.RandomASCIIString(5, 10)
	body, _ := json.Marshal(dto.RegisterRequest{Name: name, Email: "a@b.co", Phone: "99", Password: "secret"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(_ context.Context, in usecase.RegisterInput) (*model.User, string, error) {
		if in.Name != name || in.Email != "a@b.co" || in.Phone != "99" || in.Password != "secret" {
			t.Fatalf("unexpected input passed to facade: %+v", in)
		}
		return &model.User{ID: "u7", Name: in.Name, Email: in.Email}, "session-token", nil
	}})

	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	got := decode[dto.AuthResponse](t, resp)
	if got.Token != "session-token" || got.User.ID != "u7" || got.User.Name != name || got.Message != "Registration successful" {
		t.Fatalf("unexpected response %+v", got)
	}
	if resp.Header().Get("Authorization") != "Bearer session-token" {
		t.Fatalf("expected auth header to be set")
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name    string
		facade  testhelpers.AuthFacadeStub
		body    []byte
		status  int
		message string
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest, message: invalidBody},
		{name: "missing fields", body: []byte(`{"email":"a@b.c"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, usecase.RegisterInput) (*model.User, string, error) {
			return nil, "", domainErrors.Validation("Missing required fields")
		}}, status: http.StatusBadRequest, message: "Missing required fields"},
		{name: "already exists", body: []byte(`{"name":"a","email":"a@b.c","phone":"1","password":"p"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, usecase.RegisterInput) (*model.User, string, error) {
			return nil, "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict, message: "Email already registered"},
		{name: "internal", body: []byte(`{"name":"a","email":"a@b.c","phone":"1","password":"p"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, usecase.RegisterInput) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError, message: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if got := errorBody(t, resp); got != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, got)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "a@b.co", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decode[dto.AuthResponse](t, resp)
	if got.Token != "token" || got.User.Email != "a@b.co" || got.Message != "Login successful" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name    string
		facade  testhelpers.AuthFacadeStub
		body    []byte
		status  int
		message string
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest, message: invalidBody},
		{name: "missing", body: []byte(`{}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.Validation("Missing email or password")
		}}, status: http.StatusBadRequest, message: "Missing email or password"},
		{name: "invalid", body: []byte(`{"email":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized, message: "Invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(tt.facade).Login, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if got := errorBody(t, resp); got != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, got)
			}
		})
	}
}

func TestAuthHandlerStaffLogin(t *testing.T) {
	body := []byte(`{"username":"admin123","password":"1234"}`)
	resp := performRequest(t, http.MethodPost, "/staff-login", NewAuthHandler(testhelpers.AuthFacadeStub{}).StaffLogin, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decode[dto.StaffAuthResponse](t, resp)
	if got.Token != "staff-token" || got.Staff.Username != "admin123" || got.Staff.Role != "admin" {
		t.Fatalf("unexpected response %+v", got)
	}

	facade := testhelpers.AuthFacadeStub{StaffLoginFn: func(context.Context, string, string) (string, error) {
		return "", domainErrors.ErrInvalidCredentials
	}}
	resp = performRequest(t, http.MethodPost, "/staff-login", NewAuthHandler(facade).StaffLogin, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnauthorized || errorBody(t, resp) != "Invalid staff credentials" {
		t.Fatalf("unexpected failure response %d %s", resp.Code, resp.Body.String())
	}
}

func TestAuthHandlerVerify(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/verify", handler.Verify, asCustomer, nil, nil)
	got := decode[dto.VerifyResponse](t, resp)
	if !got.Valid || got.UserID != "u1" || got.Role != "customer" {
		t.Fatalf("unexpected customer verify response %+v", got)
	}

	resp = performRequest(t, http.MethodGet, "/verify", handler.Verify, asStaff, nil, nil)
	got = decode[dto.VerifyResponse](t, resp)
	if got.UserID != model.StaffSubject || got.Role != "staff" {
		t.Fatalf("unexpected staff verify response %+v", got)
	}
}

func TestMenuHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/items", NewMenuHandler(testhelpers.MenuFacadeStub{}).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decode[dto.MenuItemsResponse](t, resp)
	if !got.Success || len(got.Items) != 1 || got.Items[0].ID != "m1" {
		t.Fatalf("unexpected response %+v", got)
	}
	if !strings.Contains(resp.Body.String(), `"_id":"m1"`) {
		t.Fatalf("expected _id field in %s", resp.Body.String())
	}

	empty := testhelpers.MenuFacadeStub{ItemsFn: func(context.Context) ([]model.MenuItem, error) { return nil, nil }}
	resp = performRequest(t, http.MethodGet, "/items", NewMenuHandler(empty).List, nil, nil, nil)
	if !strings.Contains(resp.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty array, got %s", resp.Body.String())
	}
}

func TestMenuHandlerGet(t *testing.T) {
	handler := NewMenuHandler(testhelpers.MenuFacadeStub{})
	resp := performRouted(t, http.MethodGet, "/items/:id", "/items/m9", handler.Get, nil, nil, nil)
	got := decode[dto.MenuItemEnvelope](t, resp)
	if resp.Code != http.StatusOK || got.Item.ID != "m9" {
		t.Fatalf("unexpected response %d %+v", resp.Code, got)
	}

	missing := NewMenuHandler(testhelpers.MenuFacadeStub{ItemFn: func(context.Context, string) (*model.MenuItem, error) {
		return nil, domainErrors.ErrNotFound
	}})
	resp = performRouted(t, http.MethodGet, "/items/:id", "/items/none", missing.Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound || errorBody(t, resp) != "Item not found" {
		t.Fatalf("unexpected not found response %d %s", resp.Code, resp.Body.String())
	}
}

func TestMenuHandlerCreate(t *testing.T) {
	var captured usecase.MenuItemInput
	facade := testhelpers.MenuFacadeStub{CreateFn: func(_ context.Context, caller model.Identity, in usecase.MenuItemInput) (*model.MenuItem, error) {
		if !caller.IsStaff() {
			t.Fatalf("expected staff caller")
		}
		captured = in
		return &model.MenuItem{ID: "m5"}, nil
	}}
	body := []byte(`{"name":"Idli","description":"steamed","price":40,"category":"South Indian","image_url":"img","is_available":false}`)
	resp := performRequest(t, http.MethodPost, "/items", NewMenuHandler(facade).Create, asStaff, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	got := decode[dto.MenuItemCreatedResponse](t, resp)
	if got.ItemID != "m5" {
		t.Fatalf("unexpected response %+v", got)
	}
	if captured.Name != "Idli" || captured.Price == nil || *captured.Price != 40 || captured.IsAvailable == nil || *captured.IsAvailable {
		t.Fatalf("unexpected input %+v", captured)
	}

	forbidden := testhelpers.MenuFacadeStub{CreateFn: func(context.Context, model.Identity, usecase.MenuItemInput) (*model.MenuItem, error) {
		return nil, domainErrors.ErrForbidden
	}}
	resp = performRequest(t, http.MethodPost, "/items", NewMenuHandler(forbidden).Create, asCustomer, body, jsonHeaders)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/items", NewMenuHandler(facade).Create, asStaff, []byte("{"), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestMenuHandlerUpdateAndDelete(t *testing.T) {
	var patch model.MenuItemPatch
	var deleted string
	facade := testhelpers.MenuFacadeStub{
		UpdateFn: func(_ context.Context, _ model.Identity, id string, p model.MenuItemPatch) error {
			if id == "missing" {
				return domainErrors.ErrNotFound
			}
			patch = p
			return nil
		},
		DeleteFn: func(_ context.Context, _ model.Identity, id string) error {
			if id == "missing" {
				return domainErrors.ErrNotFound
			}
			deleted = id
			return nil
		},
	}
	handler := NewMenuHandler(facade)

	resp := performRouted(t, http.MethodPut, "/items/:id", "/items/m1", handler.Update, asStaff, []byte(`{"price":75}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if patch.Price == nil || *patch.Price != 75 || patch.Name != nil {
		t.Fatalf("unexpected patch %+v", patch)
	}

	resp = performRouted(t, http.MethodPut, "/items/:id", "/items/missing", handler.Update, asStaff, []byte(`{"price":75}`), jsonHeaders)
	if resp.Code != http.StatusNotFound || errorBody(t, resp) != "Item not found" {
		t.Fatalf("unexpected update failure %d %s", resp.Code, resp.Body.String())
	}

	resp = performRouted(t, http.MethodDelete, "/items/:id", "/items/m2", handler.Delete, asStaff, nil, nil)
	if resp.Code != http.StatusOK || deleted != "m2" {
		t.Fatalf("unexpected delete result %d %q", resp.Code, deleted)
	}

	resp = performRouted(t, http.MethodDelete, "/items/:id", "/items/missing", handler.Delete, asStaff, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestMenuHandlerCategories(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/categories", NewMenuHandler(testhelpers.MenuFacadeStub{}).Categories, nil, nil, nil)
	got := decode[dto.CategoriesResponse](t, resp)
	if !got.Success || len(got.Categories) != 2 {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	var captured usecase.OrderInput
	facade := testhelpers.OrderFacadeStub{PlaceFn: func(_ context.Context, caller model.Identity, in usecase.OrderInput) (*model.Order, error) {
		captured = in
		return &model.Order{ID: "o9", UserID: caller.Subject(), TotalAmount: 120, PerPersonAmount: 40, SplitCount: 3}, nil
	}}
	body := []byte(`{"items":[{"item_id":"m1","name":"Dosa","price":60,"quantity":2}],"total_amount":120,"table_number":5,"split_count":3}`)
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, asCustomer, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	got := decode[dto.OrderCreatedResponse](t, resp)
	if got.OrderID != "o9" || got.Order.ID != "o9" || got.Order.PerPersonAmount != 40 || got.Order.SplitCount != 3 {
		t.Fatalf("unexpected response %+v", got)
	}
	if len(captured.Items) != 1 || captured.TableNumber == nil || *captured.TableNumber != "5" || *captured.SplitCount != 3 {
		t.Fatalf("unexpected input %+v", captured)
	}
}

func TestOrderHandlerCreateAcceptsCartItemReferences(t *testing.T) {
	var captured usecase.OrderInput
	facade := testhelpers.OrderFacadeStub{PlaceFn: func(_ context.Context, caller model.Identity, in usecase.OrderInput) (*model.Order, error) {
		captured = in
		return &model.Order{ID: "o10", UserID: caller.Subject(), TotalAmount: 90, PerPersonAmount: 90, SplitCount: 1}, nil
	}}
	body := []byte(`{"items":[{"_id":"665f1c","name":"Dosa","price":60,"quantity":1},{"item_id":12,"name":"Tea","price":15,"quantity":2}],"total_amount":90}`)
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, asCustomer, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if len(captured.Items) != 2 || captured.Items[0].ItemID != "665f1c" || captured.Items[1].ItemID != "12" {
		t.Fatalf("unexpected items %+v", captured.Items)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	validation := testhelpers.OrderFacadeStub{PlaceFn: func(_ context.Context, _ model.Identity, in usecase.OrderInput) (*model.Order, error) {
		if in.Items == nil {
			return nil, domainErrors.Validation("Missing required fields")
		}
		return nil, domainErrors.Validation("Items must be a non-empty array")
	}}
	tests := []struct {
		name    string
		body    []byte
		message string
	}{
		{name: "bad json", body: []byte("nope"), message: invalidBody},
		{name: "missing items", body: []byte(`{"total_amount":10}`), message: "Missing required fields"},
		{name: "empty items", body: []byte(`{"items":[],"total_amount":10}`), message: "Items must be a non-empty array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(validation).Create, asCustomer, tt.body, jsonHeaders)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.Code)
			}
			if got := errorBody(t, resp); got != tt.message {
				t.Fatalf("expected %q, got %q", tt.message, got)
			}
		})
	}
}

func TestOrderHandlerList(t *testing.T) {
	table := "3"
	orders := []model.Order{{ID: "o2", TableNumber: &table, PaymentStatus: model.PaymentStatusPending, OrderStatus: model.OrderStatusPlaced}, {ID: "o1"}}
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context, model.Identity) ([]model.Order, error) {
		return orders, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders", NewOrderHandler(facade).List, asStaff, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decode[dto.OrdersResponse](t, resp)
	if len(got.Orders) != 2 || got.Orders[0].ID != "o2" || *got.Orders[0].TableNumber != "3" || got.Orders[0].PaymentStatus != "pending" {
		t.Fatalf("unexpected response %+v", got)
	}
	if got.Orders[1].Items == nil {
		t.Fatal("expected items to render as empty array")
	}
}

func TestOrderHandlerGet(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "ok", status: http.StatusOK},
		{name: "forbidden", err: domainErrors.ErrForbidden, status: http.StatusForbidden, message: "Unauthorized"},
		{name: "missing", err: domainErrors.ErrNotFound, status: http.StatusNotFound, message: "Order not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.OrderFacadeStub{}
			if tt.err != nil {
				facade.OrderFn = func(context.Context, model.Identity, string) (*model.Order, error) { return nil, tt.err }
			}
			resp := performRouted(t, http.MethodGet, "/orders/:id", "/orders/o1", NewOrderHandler(facade).Get, asCustomer, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if tt.message != "" {
				if got := errorBody(t, resp); got != tt.message {
					t.Fatalf("expected %q, got %q", tt.message, got)
				}
				return
			}
			got := decode[dto.OrderEnvelope](t, resp)
			if !got.Success || got.Order.ID != "o1" || got.Order.UserID != "u1" {
				t.Fatalf("unexpected response %+v", got)
			}
		})
	}
}

func TestOrderHandlerUpdatePayment(t *testing.T) {
	var gotStatus model.PaymentStatus
	facade := testhelpers.OrderFacadeStub{PaymentFn: func(_ context.Context, _ model.Identity, id string, status model.PaymentStatus) error {
		switch id {
		case "missing":
			return domainErrors.ErrNotFound
		case "locked":
			return domainErrors.ErrInvalidTransition
		}
		gotStatus = status
		return nil
	}}
	handler := NewOrderHandler(facade)

	resp := performRouted(t, http.MethodPut, "/orders/:id/payment", "/orders/o1/payment", handler.UpdatePayment, asCustomer, []byte(`{"payment_status":"success"}`), jsonHeaders)
	if resp.Code != http.StatusOK || gotStatus != model.PaymentStatusSuccess {
		t.Fatalf("unexpected result %d %q", resp.Code, gotStatus)
	}

	resp = performRouted(t, http.MethodPut, "/orders/:id/payment", "/orders/missing/payment", handler.UpdatePayment, asCustomer, []byte(`{"payment_status":"success"}`), jsonHeaders)
	if resp.Code != http.StatusNotFound || errorBody(t, resp) != "Order not found" {
		t.Fatalf("unexpected not found response %d %s", resp.Code, resp.Body.String())
	}

	resp = performRouted(t, http.MethodPut, "/orders/:id/payment", "/orders/locked/payment", handler.UpdatePayment, asCustomer, []byte(`{"payment_status":"pending"}`), jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	var gotStatus model.OrderStatus
	facade := testhelpers.OrderFacadeStub{StatusFn: func(_ context.Context, caller model.Identity, _ string, status model.OrderStatus) error {
		if !caller.IsStaff() {
			return domainErrors.ErrForbidden
		}
		if status == "" {
			return domainErrors.Validation("Missing order_status")
		}
		gotStatus = status
		return nil
	}}
	handler := NewOrderHandler(facade)

	resp := performRouted(t, http.MethodPut, "/orders/:id/status", "/orders/o1/status", handler.UpdateStatus, asStaff, []byte(`{"order_status":"ready"}`), jsonHeaders)
	if resp.Code != http.StatusOK || gotStatus != model.OrderStatusReady {
		t.Fatalf("unexpected result %d %q", resp.Code, gotStatus)
	}

	resp = performRouted(t, http.MethodPut, "/orders/:id/status", "/orders/o1/status", handler.UpdateStatus, asCustomer, []byte("garbage"), jsonHeaders)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected role check before payload, got %d", resp.Code)
	}

	resp = performRouted(t, http.MethodPut, "/orders/:id/status", "/orders/o1/status", handler.UpdateStatus, asStaff, []byte(`{}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest || errorBody(t, resp) != "Missing order_status" {
		t.Fatalf("unexpected validation response %d %s", resp.Code, resp.Body.String())
	}

	resp = performRouted(t, http.MethodPut, "/orders/:id/status", "/orders/o1/status", handler.UpdateStatus, asStaff, []byte("garbage"), jsonHeaders)
	if resp.Code != http.StatusBadRequest || errorBody(t, resp) != invalidBody {
		t.Fatalf("unexpected bad body response %d %s", resp.Code, resp.Body.String())
	}
}

func TestPaymentHandlerGenerateUPI(t *testing.T) {
	var captured usecase.LinkRequest
	facade := testhelpers.PaymentFacadeStub{LinkFn: func(_ context.Context, req usecase.LinkRequest) (*model.PaymentLink, error) {
		captured = req
		if req.Amount == nil {
			return nil, domainErrors.Validation("Amount is required")
		}
		return &model.PaymentLink{Link: "upi://pay?x", Amount: *req.Amount, PayeeID: "canteen@upi", PayeeName: "Canteen"}, nil
	}}
	handler := NewPaymentHandler(facade)

	resp := performRequest(t, http.MethodPost, "/generate-upi", handler.GenerateUPI, asCustomer, []byte(`{"amount":150,"order_id":42,"customer_name":"Asha"}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decode[dto.UPILinkResponse](t, resp)
	if !got.Success || got.UPILink != "upi://pay?x" || got.Amount != 150 || got.UPIID != "canteen@upi" || got.PayeeName != "Canteen" {
		t.Fatalf("unexpected response %+v", got)
	}
	if captured.OrderRef != "42" || captured.CustomerName != "Asha" {
		t.Fatalf("unexpected request %+v", captured)
	}

	resp = performRequest(t, http.MethodPost, "/generate-upi", handler.GenerateUPI, asCustomer, []byte(`{}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest || errorBody(t, resp) != "Amount is required" {
		t.Fatalf("unexpected failure %d %s", resp.Code, resp.Body.String())
	}
}

func TestPaymentHandlerVerify(t *testing.T) {
	handler := NewPaymentHandler(testhelpers.PaymentFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/verify", handler.Verify, asCustomer, []byte(`{"order_id":"o1","transaction_id":"T1"}`), jsonHeaders)
	got := decode[dto.VerifyPaymentResponse](t, resp)
	if resp.Code != http.StatusOK || !got.PaymentVerified || got.TransactionID != "T1" || got.Message != "Payment verified successfully" {
		t.Fatalf("unexpected response %d %+v", resp.Code, got)
	}

	declined := NewPaymentHandler(testhelpers.PaymentFacadeStub{VerifyFn: func(_ context.Context, ref, tx string) (*model.PaymentVerification, error) {
		return &model.PaymentVerification{OrderRef: ref, TransactionID: tx}, nil
	}})
	resp = performRequest(t, http.MethodPost, "/verify", declined.Verify, asCustomer, []byte(`{"order_id":"o1","transaction_id":"T2"}`), jsonHeaders)
	got = decode[dto.VerifyPaymentResponse](t, resp)
	if got.PaymentVerified {
		t.Fatalf("expected unverified payment, got %+v", got)
	}

	failing := NewPaymentHandler(testhelpers.PaymentFacadeStub{VerifyFn: func(context.Context, string, string) (*model.PaymentVerification, error) {
		return nil, domainErrors.Validation("Missing required fields")
	}})
	resp = performRequest(t, http.MethodPost, "/verify", failing.Verify, asCustomer, []byte(`{"order_id":"o1"}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestQRHandlerGenerate(t *testing.T) {
	handler := NewQRHandler(testhelpers.QRFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/generate", handler.Generate, nil, []byte(`{"table_number":7,"base_url":"http://cafe.local"}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decode[dto.QRResponse](t, resp)
	if got.TableNumber != "7" || got.QRURL != "http://cafe.local/order?table=7" || got.QRImage != "data:image/png;base64,cG5n" {
		t.Fatalf("unexpected response %+v", got)
	}

	failing := NewQRHandler(testhelpers.QRFacadeStub{TableFn: func(context.Context, string, string) (*model.TableCode, error) {
		return nil, domainErrors.Validation("Table number is required")
	}})
	resp = performRequest(t, http.MethodPost, "/generate", failing.Generate, nil, []byte(`{}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest || errorBody(t, resp) != "Table number is required" {
		t.Fatalf("unexpected failure %d %s", resp.Code, resp.Body.String())
	}
}

func TestQRHandlerGenerateMultiple(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		tables []string
	}{
		{name: "explicit", body: `{"table_numbers":["A1",2]}`, tables: []string{"A1", "2"}},
		{name: "count", body: `{"table_count":3}`, tables: []string{"1", "2", "3"}},
		{name: "explicit wins", body: `{"table_numbers":["9"],"table_count":3}`, tables: []string{"9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/generate-multiple", NewQRHandler(testhelpers.QRFacadeStub{}).GenerateMultiple, nil, []byte(tt.body), jsonHeaders)
			if resp.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", resp.Code)
			}
			got := decode[dto.QRBatchResponse](t, resp)
			if got.Count != len(tt.tables) || len(got.QRCodes) != len(tt.tables) {
				t.Fatalf("unexpected response %+v", got)
			}
			for i, table := range tt.tables {
				if got.QRCodes[i].TableNumber != table {
					t.Fatalf("code %d: expected table %q, got %q", i, table, got.QRCodes[i].TableNumber)
				}
			}
		})
	}

	failing := NewQRHandler(testhelpers.QRFacadeStub{TablesFn: func(_ context.Context, _ string, tables []string) ([]model.TableCode, error) {
		if len(tables) == 0 {
			return nil, domainErrors.Validation("Provide either table_numbers or table_count")
		}
		return nil, nil
	}})
	resp := performRequest(t, http.MethodPost, "/generate-multiple", failing.GenerateMultiple, nil, []byte(`{}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest || errorBody(t, resp) != "Provide either table_numbers or table_count" {
		t.Fatalf("unexpected failure %d %s", resp.Code, resp.Body.String())
	}

	called := false
	counting := NewQRHandler(testhelpers.QRFacadeStub{TablesFn: func(context.Context, string, []string) ([]model.TableCode, error) {
		called = true
		return nil, nil
	}})
	resp = performRequest(t, http.MethodPost, "/generate-multiple", counting.GenerateMultiple, nil, []byte(`{"table_count":9223372036854775807}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest || called {
		t.Fatalf("expected oversized count to be rejected before rendering, got %d called=%v", resp.Code, called)
	}
	if !strings.Contains(errorBody(t, resp), "tables per request") {
		t.Fatalf("unexpected error body %s", resp.Body.String())
	}
}

func TestSystemHandler(t *testing.T) {
	handler := NewSystemHandler(testhelpers.HealthFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/", handler.Root, nil, nil, nil)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "QR-Based Canteen Management System API") {
		t.Fatalf("unexpected root response %d %s", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodGet, "/health", handler.Health, nil, nil, nil)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health response %d %s", resp.Code, resp.Body.String())
	}

	down := NewSystemHandler(testhelpers.HealthFacadeStub{Err: errors.New("no db")})
	resp = performRequest(t, http.MethodGet, "/health", down.Health, nil, nil, nil)
	if resp.Code != http.StatusServiceUnavailable || !strings.Contains(resp.Body.String(), "no db") {
		t.Fatalf("unexpected degraded response %d %s", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodGet, "/nowhere", NotFound, nil, nil, nil)
	if resp.Code != http.StatusNotFound || errorBody(t, resp) != "Route not found" {
		t.Fatalf("unexpected not found response %d %s", resp.Code, resp.Body.String())
	}
}

var _ CanteenFacade = testhelpers.CanteenFacadeStub{}
