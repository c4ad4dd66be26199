package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Adarsh-736/CurioKart/models"
	"github.com/Adarsh-736/CurioKart/utils"
	"github.com/stretchr/testify/assert"
)

// docStoreStub is an in-memory document store speaking the client's protocol
type docStoreStub struct {
	mu   sync.Mutex
	docs map[string]map[string]interface{}
}

func newStoreStub(t *testing.T) (*docStoreStub, *Client) {
	t.Helper()

	stub := &docStoreStub{docs: map[string]map[string]interface{}{}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer store-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		uid := r.URL.Path[len("/v1/documents/users/"):]
		stub.mu.Lock()
		defer stub.mu.Unlock()

		switch r.Method {
		case http.MethodPut:
			var doc map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&doc)
			stub.docs[uid] = doc
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			doc, exists := stub.docs[uid]
			if !exists {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_ = json.NewEncoder(w).Encode(doc)
		case http.MethodPatch:
			doc, exists := stub.docs[uid]
			if !exists {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			var patch map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&patch)
			for k, v := range patch {
				doc[k] = v
			}
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(server.Close)

	return stub, NewClient(server.URL, "store-key")
}

func testProfile() *models.Profile {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.Profile{
		UID:       "uid-1",
		Email:     "a@x.com",
		FirstName: "A",
		LastName:  "B",
		CreatedAt: now,
		LastLogin: now,
	}
}

func TestCreateAndGetProfile(t *testing.T) {
	_, client := newStoreStub(t)
	ctx := context.Background()

	err := client.CreateProfile(ctx, testProfile())
	assert.NoError(t, err)

	profile, err := client.GetProfile(ctx, "uid-1")
	assert.NoError(t, err)
	assert.Equal(t, "uid-1", profile.UID)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, "A", profile.FirstName)
	assert.True(t, profile.CreatedAt.Equal(testProfile().CreatedAt))
}

func TestGetProfileNotFound(t *testing.T) {
	_, client := newStoreStub(t)

	_, err := client.GetProfile(context.Background(), "missing")

	assert.True(t, utils.IsNotFoundError(err), "expected not found, got %v", err)
}

func TestTouchLastLogin(t *testing.T) {
	stub, client := newStoreStub(t)
	ctx := context.Background()

	assert.NoError(t, client.CreateProfile(ctx, testProfile()))

	later := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	assert.NoError(t, client.TouchLastLogin(ctx, "uid-1", later))

	profile, err := client.GetProfile(ctx, "uid-1")
	assert.NoError(t, err)
	assert.True(t, profile.LastLogin.Equal(later), "lastLogin = %v", profile.LastLogin)

	// Only lastLogin changed
	doc := stub.docs["uid-1"]
	assert.Equal(t, "A", doc["firstName"])
}

func TestTouchLastLoginMissingProfile(t *testing.T) {
	_, client := newStoreStub(t)

	err := client.TouchLastLogin(context.Background(), "missing", time.Now())

	assert.True(t, utils.IsNotFoundError(err), "expected not found, got %v", err)
}

func TestStoreUnreachable(t *testing.T) {
	_, client := newStoreStub(t)
	broken := NewClient("http://127.0.0.1:1", client.apiKey)

	_, err := broken.GetProfile(context.Background(), "uid-1")

	appErr := utils.AsAppError(err)
	if appErr == nil {
		t.Fatalf("expected AppError, got %v", err)
	}
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}
