package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"storerating/internal/delivery/api/middleware"
	"storerating/internal/delivery/api/response"
	"storerating/internal/delivery/api/validator"
	"storerating/internal/domain/entity"
	"storerating/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	requestValidator, err := validator.New()
	if err != nil {
		panic(err)
	}

	e := echo.New()
	e.Validator = requestValidator

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withActor(c echo.Context, role entity.Role) *policy.Actor {
	actor := &policy.Actor{ID: uuid.New(), Email: string(role) + "@example.com", Role: role}
	middleware.SetActor(c, actor)

	return actor
}

func withIDParam(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}
