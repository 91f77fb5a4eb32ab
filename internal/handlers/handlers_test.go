package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"crmbackend/internal/middleware"
	"crmbackend/internal/models"
	"crmbackend/internal/store"
	"crmbackend/internal/users"
)

const testSecret = "test-secret"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	directory := users.NewStaticDirectory()
	productStore := store.NewMemoryStore()

	r := gin.New()
	r.POST("/api/auth/login", Login(directory, testSecret, 7*24*time.Hour))

	api := r.Group("/api")
	api.Use(middleware.Auth(testSecret))
	{
		api.GET("/auth/me", Me(directory))
		api.GET("/products", GetProducts(productStore))
		api.GET("/products/:id", GetProduct(productStore))
		api.POST("/products", CreateProduct(productStore))
		api.PUT("/products/:id", UpdateProduct(productStore))
		api.DELETE("/products/:id", DeleteProduct(productStore))
		api.POST("/products/bulk-delete", BulkDeleteProducts(productStore))
		api.GET("/statistics", GetStatistics(productStore))
		api.GET("/customers", GetCustomers(false))
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected non-empty token in login response")
	}
	return resp.Token
}

func TestLoginIssuesTokenThatAuthorizesProducts(t *testing.T) {
	r := newTestRouter()
	token := loginToken(t, r, "admin@crm.com", "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/products", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /api/products with valid token, got %d: %s", w.Code, w.Body.String())
	}

	var products []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty collection for fresh user, got %d", len(products))
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@crm.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("\"token\"")) {
		t.Fatalf("expected no token in response, got %s", w.Body.String())
	}
}

func TestProductsRejectMissingToken(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/products", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestProductsRejectGarbageToken(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/products", "not-a-jwt", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for invalid token, got %d", w.Code)
	}
}

func TestMe(t *testing.T) {
	r := newTestRouter()
	token := loginToken(t, r, "manager@crm.com", "manager789")

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var me struct {
		ID    int    `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode me response: %v", err)
	}
	if me.ID != 4 || me.Email != "manager@crm.com" || me.Name != "Manager" {
		t.Fatalf("unexpected identity: %+v", me)
	}
}

func sampleProductBody(stock int) gin.H {
	return gin.H{
		"name":     "Wireless Mouse",
		"sku":      "WM-100",
		"barcode":  "4006381333931",
		"category": "Electronics",
		"brand":    "Logi",
		"price":    24.99,
		"stock":    stock,
		"color":    "black",
		"size":     "M",
		"image":    "mouse.png",
	}
}

func TestCreateProductDerivesStatusAndID(t *testing.T) {
	r := newTestRouter()
	token := loginToken(t, r, "admin@crm.com", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/products", token, sampleProductBody(20))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created product: %v", err)
	}
	if created.Status != models.StatusInStock {
		t.Fatalf("expected derived status %q, got %q", models.StatusInStock, created.Status)
	}
	if len(created.ID) < 6 || created.ID[:5] != "PROD-" {
		t.Fatalf("expected PROD- prefixed id, got %q", created.ID)
	}
	if created.CreatedAt == "" || created.UpdatedAt == "" || created.LastRestocked == "" {
		t.Fatalf("expected timestamps to be stamped, got %+v", created)
	}

	// The list now contains exactly this record.
	w = doJSON(t, r, http.MethodGet, "/api/products", token, nil)
	var products []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) != 1 || products[0].ID != created.ID || products[0].Name != "Wireless Mouse" {
		t.Fatalf("expected list to contain the created product, got %+v", products)
	}
}

func TestCreateProductIgnoresClientStatus(t *testing.T) {
	r := newTestRouter()
	token := loginToken(t, r, "admin@crm.com", "admin123")

	body := sampleProductBody(0)
	body["status"] = "in stock"

	w := doJSON(t, r, http.MethodPost, "/api/products", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.Product
	json.Unmarshal(w.Body.Bytes(), &created)
	if created.Status != models.StatusOutOfStock {
		t.Fatalf("expected server-derived %q, got %q", models.StatusOutOfStock, created.Status)
	}
}

func TestCreateProductValidation(t *testing.T) {
	r := newTestRouter()
	token := loginToken(t, r, "admin@crm.com", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/products", token, gin.H{"price": 5.0, "stock": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/products", token, gin.H{"name": "X", "price": 5.0, "stock": -1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative stock, got %d", w.Code)
	}
}

func TestUpdateProductStockToZero(t *testing.T) {
	r := newTestRouter()
	token := loginToken(t, r, "admin@crm.com", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/products", token, sampleProductBody(20))
	var created models.Product
	json.Unmarshal(w.Body.Bytes(), &created)

	w = doJSON(t, r, http.MethodPut, "/api/products/"+created.ID, token, sampleProductBody(0))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/products/"+created.ID, token, nil)
	var fetched models.Product
	json.Unmarshal(w.Body.Bytes(), &fetched)
	if fetched.Status != models.StatusOutOfStock {
		t.Fatalf("expected %q after update to zero stock, got %q", models.StatusOutOfStock, fetched.Status)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	r := newTestRouter()
	token := loginToken(t, r, "admin@crm.com", "admin123")

	w := doJSON(t, r, http.MethodPut, "/api/products/PROD-missing", token, sampleProductBody(5))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteMissingProductLeavesCollection(t *testing.T) {
	r := newTestRouter()
	token := loginToken(t, r, "admin@crm.com", "admin123")

	doJSON(t, r, http.MethodPost, "/api/products", token, sampleProductBody(5))

	w := doJSON(t, r, http.MethodDelete, "/api/products/PROD-missing", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/products", token, nil)
	var products []models.Product
	json.Unmarshal(w.Body.Bytes(), &products)
	if len(products) != 1 {
		t.Fatalf("expected collection unchanged, got %d products", len(products))
	}
}

func TestBulkDeleteReportsActualCount(t *testing.T) {
	r := newTestRouter()
	token := loginToken(t, r, "admin@crm.com", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/products", token, sampleProductBody(5))
	var created models.Product
	json.Unmarshal(w.Body.Bytes(), &created)

	w = doJSON(t, r, http.MethodPost, "/api/products/bulk-delete", token, gin.H{
		"ids": []string{created.ID, "PROD-missing"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		DeletedCount int `json:"deletedCount"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.DeletedCount != 1 {
		t.Fatalf("expected deletedCount=1 (actual removals), got %d", resp.DeletedCount)
	}

	w = doJSON(t, r, http.MethodGet, "/api/products", token, nil)
	var products []models.Product
	json.Unmarshal(w.Body.Bytes(), &products)
	if len(products) != 0 {
		t.Fatalf("expected empty collection, got %d products", len(products))
	}
}

func TestStatisticsEndToEnd(t *testing.T) {
	r := newTestRouter()
	token := loginToken(t, r, "admin@crm.com", "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/statistics", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var stats models.Statistics
	json.Unmarshal(w.Body.Bytes(), &stats)
	if stats.TotalProducts != 0 || stats.TotalValue != 0 {
		t.Fatalf("expected zero statistics, got %+v", stats)
	}

	doJSON(t, r, http.MethodPost, "/api/products", token, sampleProductBody(10))

	w = doJSON(t, r, http.MethodGet, "/api/statistics", token, nil)
	json.Unmarshal(w.Body.Bytes(), &stats)
	if stats.TotalProducts != 1 || stats.LowStock != 1 {
		t.Fatalf("expected one low-stock product, got %+v", stats)
	}
	if stats.TotalValue != 249.9 {
		t.Fatalf("expected total value 249.9, got %v", stats.TotalValue)
	}
}

func TestUsersSeeOnlyTheirProducts(t *testing.T) {
	r := newTestRouter()
	adminToken := loginToken(t, r, "admin@crm.com", "admin123")
	userToken := loginToken(t, r, "user1@crm.com", "user123")

	doJSON(t, r, http.MethodPost, "/api/products", adminToken, sampleProductBody(5))

	w := doJSON(t, r, http.MethodGet, "/api/products", userToken, nil)
	var products []models.Product
	json.Unmarshal(w.Body.Bytes(), &products)
	if len(products) != 0 {
		t.Fatalf("expected user1 to see no products, got %d", len(products))
	}
}

func TestCustomersEmptyOutsideDemoMode(t *testing.T) {
	r := newTestRouter()
	token := loginToken(t, r, "admin@crm.com", "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/customers", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var customers []models.Customer
	if err := json.Unmarshal(w.Body.Bytes(), &customers); err != nil {
		t.Fatalf("decode customers: %v", err)
	}
	if len(customers) != 0 {
		t.Fatalf("expected empty customers outside demo mode, got %d", len(customers))
	}
}
