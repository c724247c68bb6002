package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,password_strength"`
}

type shelfForm struct {
	Name string `json:"name" validate:"required,shelf_name"`
}

func TestValidateStruct(t *testing.T) {
	assert.Empty(t, ValidateStruct(signup{Username: "alice", Password: "Secret123!"}))

	details := ValidateStruct(signup{Username: "al", Password: "weak"})
	require.Len(t, details, 2)
	assert.Equal(t, "username", details[0].Field)
	assert.Equal(t, "username must be at least 3 characters", details[0].Message)
	assert.Equal(t, "password", details[1].Field)
}

func TestValidateShelfName(t *testing.T) {
	assert.Empty(t, ValidateStruct(shelfForm{Name: "積読"}))
	assert.Empty(t, ValidateStruct(shelfForm{Name: strings.Repeat("本", 50)}))
	assert.NotEmpty(t, ValidateStruct(shelfForm{Name: strings.Repeat("本", 51)}))
	assert.NotEmpty(t, ValidateStruct(shelfForm{Name: "bad\nname"}))
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst signup
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"a","admin":true}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"a"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "a", dst.Username)
}
