package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ocallan/figureshelf/internal/domain"
	"github.com/ocallan/figureshelf/internal/handler"
	"github.com/ocallan/figureshelf/internal/repository/sqlite"
)

type apiClient struct {
	t       *testing.T
	baseURL string
	cookie  *http.Cookie
}

func (c *apiClient) do(method, path string, body any) *http.Response {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		c.t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func seedCatalog(t *testing.T, db *sqlite.DB, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := range n {
		id := fmt.Sprintf("%08x", i+1)
		item := &domain.Item{
			ID:        id,
			Name:      fmt.Sprintf("Figure %d", i+1),
			Character: fmt.Sprintf("Character %d", i+1),
			Series:    "Test Series",
			SubSeries: "Wave 1",
			Kind:      "Figure",
		}
		if err := db.Items().Upsert(context.Background(), item); err != nil {
			t.Fatalf("failed to seed item %s: %v", id, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// TestAPIFlow walks the whole surface the way a browser session would:
// sign up, browse, wishlist an item, acquire it, check the dashboard,
// publish a share link, view it anonymously, then disable it.
func TestAPIFlow(t *testing.T) {
	svc, db := newTestServices(t)
	ids := seedCatalog(t, db, 5)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, svc)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := &apiClient{t: t, baseURL: srv.URL}

	// Register.
	resp := client.do(http.MethodPost, "/api/auth/register", map[string]string{
		"email":       "flow@example.com",
		"displayName": "Flow Tester",
		"password":    "password123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Protected routes reject the anonymous client.
	resp = client.do(http.MethodGet, "/api/collection", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated list: expected 401, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Login and capture the session cookie.
	resp = client.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "flow@example.com",
		"password": "password123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "auth_token" {
			client.cookie = cookie
		}
	}
	resp.Body.Close()
	if client.cookie == nil {
		t.Fatal("login did not set the auth_token cookie")
	}

	// Browse the catalog.
	var itemsBody struct {
		Items []handler.ItemDTO `json:"items"`
	}
	resp = client.do(http.MethodGet, "/api/items", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list items: expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &itemsBody)
	if len(itemsBody.Items) != 5 {
		t.Fatalf("expected 5 catalog items, got %d", len(itemsBody.Items))
	}

	// Wishlist the first item.
	resp = client.do(http.MethodPost, "/api/wishlist/"+ids[0], map[string]any{"priority": 1})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("wishlist add: expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Acquire it; the wishlist record must disappear.
	resp = client.do(http.MethodPost, "/api/collection/"+ids[0], nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("collection add: expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var wishlistBody struct {
		Wishlist []handler.WishlistEntryDTO `json:"wishlist"`
	}
	resp = client.do(http.MethodGet, "/api/wishlist", nil)
	decodeBody(t, resp, &wishlistBody)
	if len(wishlistBody.Wishlist) != 0 {
		t.Fatalf("expected empty wishlist after acquiring the item, got %d entries", len(wishlistBody.Wishlist))
	}

	// Adding the same item again conflicts.
	resp = client.do(http.MethodPost, "/api/collection/"+ids[0], nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate collection add: expected 409, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Dashboard stats: 1 of 5 owned is 20%.
	var statsBody struct {
		Stats handler.StatsDTO `json:"stats"`
	}
	resp = client.do(http.MethodGet, "/api/stats", nil)
	decodeBody(t, resp, &statsBody)
	if statsBody.Stats.OwnedCount != 1 || statsBody.Stats.TotalItems != 5 {
		t.Fatalf("unexpected stats: %+v", statsBody.Stats)
	}
	if statsBody.Stats.CompletionPercentage != 20 {
		t.Fatalf("expected 20%% completion, got %d", statsBody.Stats.CompletionPercentage)
	}

	// Recommendations exclude the owned item.
	resp = client.do(http.MethodGet, "/api/recommendations?limit=10", nil)
	decodeBody(t, resp, &itemsBody)
	if len(itemsBody.Items) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(itemsBody.Items))
	}
	for _, item := range itemsBody.Items {
		if item.ID == ids[0] {
			t.Fatal("owned item appeared in recommendations")
		}
	}

	// Publish a collection share link.
	var shareBody struct {
		Share handler.ShareLinkDTO `json:"share"`
	}
	resp = client.do(http.MethodPost, "/api/shares/collection", map[string]string{
		"title":       "My shelf",
		"description": "Everything I own",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create share: expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &shareBody)
	if shareBody.Share.Token == "" {
		t.Fatal("expected share token in response")
	}
	token := shareBody.Share.Token

	// Anonymous view works without the session cookie.
	anon := &apiClient{t: t, baseURL: srv.URL}
	var viewBody struct {
		OwnerName  string                       `json:"ownerName"`
		ViewCount  int64                        `json:"viewCount"`
		Collection []handler.CollectionEntryDTO `json:"collection"`
	}
	resp = anon.do(http.MethodGet, "/shared/collection/"+token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public view: expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &viewBody)
	if viewBody.OwnerName != "Flow Tester" {
		t.Fatalf("expected owner display name, got %q", viewBody.OwnerName)
	}
	if len(viewBody.Collection) != 1 {
		t.Fatalf("expected 1 shared collection entry, got %d", len(viewBody.Collection))
	}
	if viewBody.ViewCount != 1 {
		t.Fatalf("expected view count 1, got %d", viewBody.ViewCount)
	}

	// The wrong kind for this token is not available.
	resp = anon.do(http.MethodGet, "/shared/wishlist/"+token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("wrong-kind view: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Disable the link; the public view goes away but the owner keeps it.
	resp = client.do(http.MethodPatch, "/api/shares/collection", map[string]bool{"active": false})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("disable share: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = anon.do(http.MethodGet, "/shared/collection/"+token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("disabled view: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = client.do(http.MethodGet, "/api/shares/collection", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner get share: expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &shareBody)
	if shareBody.Share.Token != token {
		t.Fatal("token changed after disabling the link")
	}
	if shareBody.Share.ViewCount != 1 {
		t.Fatalf("expected view count 1 to survive, got %d", shareBody.Share.ViewCount)
	}

	// Remove the item; X-Removed reports what happened.
	resp = client.do(http.MethodDelete, "/api/collection/"+ids[0], nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("collection remove: expected 204, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Removed"); got != "true" {
		t.Fatalf("expected X-Removed true, got %q", got)
	}
	resp.Body.Close()

	resp = client.do(http.MethodDelete, "/api/collection/"+ids[0], nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("second remove: expected 204, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Removed"); got != "false" {
		t.Fatalf("expected X-Removed false, got %q", got)
	}
	resp.Body.Close()

	// Logout clears the cookie.
	resp = client.do(http.MethodPost, "/api/auth/logout", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestSearchEndpoint(t *testing.T) {
	svc, db := newTestServices(t)
	seedCatalog(t, db, 3)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, svc)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := &apiClient{t: t, baseURL: srv.URL}
	client.cookie = registerAndLogin(t, svc, "search@example.com")

	var body struct {
		Items []handler.ItemDTO `json:"items"`
	}
	resp := client.do(http.MethodGet, "/api/items/search?q=Character+2&field=character", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search: expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &body)
	if len(body.Items) != 1 {
		t.Fatalf("expected 1 match, got %d", len(body.Items))
	}

	resp = client.do(http.MethodGet, "/api/items/search?q=x&field=bogus", nil)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("bad field: expected 422, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRecommendationsEndpoint_InvalidLimit(t *testing.T) {
	svc, _ := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, svc)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := &apiClient{t: t, baseURL: srv.URL}
	client.cookie = registerAndLogin(t, svc, "limit@example.com")

	for _, limit := range []string{"0", "-1", "abc"} {
		resp := client.do(http.MethodGet, "/api/recommendations?limit="+limit, nil)
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("limit %q: expected 422, got %d", limit, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestShareEndpoints_UnknownKind(t *testing.T) {
	svc, _ := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, svc)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := &apiClient{t: t, baseURL: srv.URL}
	client.cookie = registerAndLogin(t, svc, "kind@example.com")

	resp := client.do(http.MethodGet, "/api/shares/everything", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown kind: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	anon := &apiClient{t: t, baseURL: srv.URL}
	resp = anon.do(http.MethodGet, "/shared/everything/some-token", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown public kind: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
