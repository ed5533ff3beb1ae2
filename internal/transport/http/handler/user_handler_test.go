package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-order-board/internal/repo"
	"go-order-board/internal/transport/http/router"
)

func newTestServer(t *testing.T) (*gin.Engine, *repo.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	st := repo.New(db)
	if err := st.Init(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	log := zap.NewNop()
	e := router.NewEngine(log,
		NewUserHandler(st.Users, nil, log),
		NewOrderHandler(st.Orders, nil, log),
		NewOfferHandler(st.Offers, nil, log),
	)
	return e, st
}

func do(t *testing.T, e *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestUserLifecycle(t *testing.T) {
	e, _ := newTestServer(t)

	w := do(t, e, http.MethodPost, "/users",
		`{"id":1,"first_name":"A","last_name":"B","age":30,"email":"a@b.com","role":"customer","phone":"123"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if w.Body.String() != "User created" {
		t.Errorf("create body: got %q", w.Body.String())
	}

	w = do(t, e, http.MethodGet, "/user/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["first_name"] != "A" || got["email"] != "a@b.com" || got["age"] != float64(30) {
		t.Errorf("unexpected user doc: %v", got)
	}

	w = do(t, e, http.MethodPut, "/user/1",
		`{"first_name":"A","last_name":"B","age":31,"email":"a@b.com","role":"customer","phone":"123"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("update: expected 204, got %d (%s)", w.Code, w.Body.String())
	}

	w = do(t, e, http.MethodGet, "/user/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get after update: expected 200, got %d", w.Code)
	}
	got = nil
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["age"] != float64(31) {
		t.Errorf("expected age 31 after update, got %v", got["age"])
	}

	w = do(t, e, http.MethodDelete, "/user/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}

	w = do(t, e, http.MethodGet, "/user/1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", w.Code)
	}
}

func TestUserCreateDuplicate(t *testing.T) {
	e, _ := newTestServer(t)

	body := `{"id":5,"first_name":"A","last_name":"B","age":30,"email":"a@b.com","role":"customer","phone":"123"}`
	if w := do(t, e, http.MethodPost, "/users", body); w.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d", w.Code)
	}
	if w := do(t, e, http.MethodPost, "/users", body); w.Code != http.StatusConflict {
		t.Errorf("second create: expected 409, got %d", w.Code)
	}
}

func TestUserCreateMissingFields(t *testing.T) {
	e, _ := newTestServer(t)

	// 缺 first_name
	w := do(t, e, http.MethodPost, "/users",
		`{"id":2,"last_name":"B","age":30,"email":"a@b.com","role":"customer","phone":"123"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing field, got %d", w.Code)
	}

	// 缺 id
	w = do(t, e, http.MethodPost, "/users",
		`{"first_name":"A","last_name":"B","age":30,"email":"a@b.com","role":"customer","phone":"123"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing id, got %d", w.Code)
	}
}

func TestUserBadID(t *testing.T) {
	e, _ := newTestServer(t)
	if w := do(t, e, http.MethodGet, "/user/abc", ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-integer id, got %d", w.Code)
	}
}

func TestUserUpdateMissing(t *testing.T) {
	e, _ := newTestServer(t)
	w := do(t, e, http.MethodPut, "/user/99",
		`{"first_name":"A","last_name":"B","age":30,"email":"a@b.com","role":"customer","phone":"123"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
