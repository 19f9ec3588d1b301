package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/ruposhibhojon/ruposhi-backend/pkg/errors"
)

type sessionBody struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

func TestDecodeJSONBodyValidates(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com","name":"A"}`))
	var body sessionBody
	require.NoError(t, DecodeJSONBody(req, &body))
	assert.Equal(t, "a@x.com", body.Email)

	req = httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"nope"}`))
	err := DecodeJSONBody(req, &sessionBody{})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, map[string]string{"email": "must be a valid email"}, typed.Details())
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com","role":"admin"}`))
	assert.True(t, pkgerrors.HasCode(DecodeJSONBody(req, &sessionBody{}), pkgerrors.CodeValidation))

	req = httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com","role":"admin"}`))
	assert.NoError(t, DecodeJSON(req, &sessionBody{}))
}

func TestReadRawObject(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"email":"a@x.com"}`))
	raw, err := ReadRawObject(req, 1024)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@x.com"}`, string(raw))

	req = httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"email":`))
	_, err = ReadRawObject(req, 1024)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	req = httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"email":"a@x.com"}`))
	_, err = ReadRawObject(req, 4)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	req = httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`["a@x.com"]`))
	_, err = ReadRawObject(req, 1024)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/foods?page=2&size=abc&neg=-1", nil)

	v, err := ParseQueryInt(req, "page", 0, 0, NoMax)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = ParseQueryInt(req, "missing", 7, 0, NoMax)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = ParseQueryInt(req, "size", 10, 1, NoMax)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = ParseQueryInt(req, "neg", 0, 0, NoMax)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestParseQueryFlag(t *testing.T) {
	cases := map[string]bool{
		"/update-food":                    false,
		"/update-food?statusUpdate":       true,
		"/update-food?statusUpdate=true":  true,
		"/update-food?statusUpdate=1":     true,
		"/update-food?statusUpdate=false": false,
		"/update-food?statusUpdate=0":     false,
	}
	for target, want := range cases {
		req := httptest.NewRequest(http.MethodPatch, target, nil)
		assert.Equal(t, want, ParseQueryFlag(req, "statusUpdate"), target)
	}
}

func TestFirstQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/search?search=&searchText=dal", nil)
	assert.Equal(t, "dal", FirstQuery(req, "search", "searchText"))
}

func TestParseID(t *testing.T) {
	id := uuid.New()
	got, err := ParseID(" "+id.String()+" ", "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("64b7f0c2e1d3", "id")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = ParseID("", "id")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "abc", SanitizeString("  abcdef ", 3))
	assert.Equal(t, "abcdef", SanitizeString("abcdef", 0))
	assert.Equal(t, "rice and dal", SanitizeString(" rice \t and\n dal ", 0))
	assert.Equal(t, "ভাত", SanitizeString("ভাত ডাল", 3))
	assert.Equal(t, "ab", SanitizeString("ab cd", 3))
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"} {"email":"b@x.com"}`))
	err := DecodeJSON(req, &sessionBody{})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}
