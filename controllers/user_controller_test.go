package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUser(t *testing.T) {
	env := newTestEnv()
	body := env.signup(t, "a@x.com", "pw", "A", "B")
	uid := data(t, body)["user"].(map[string]interface{})["uid"].(string)

	status, resp := env.request(t, http.MethodGet, "/api/user/"+uid, nil)

	assert.Equal(t, http.StatusOK, status)
	user := data(t, resp)["user"].(map[string]interface{})
	assert.Equal(t, uid, user["uid"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "A", user["firstName"])
	assert.Equal(t, "B", user["lastName"])
	assert.NotEmpty(t, user["createdAt"])
	assert.NotEmpty(t, user["lastLogin"])
}

func TestGetUserNotFound(t *testing.T) {
	env := newTestEnv()

	status, resp := env.request(t, http.MethodGet, "/api/user/unknown", nil)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", resp["message"])
}
