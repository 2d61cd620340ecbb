package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var echoParam = regexp.MustCompile(`:(\w+)`)

func Test_DocsDescribeEveryAPIRoute(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var v2 openapi2.T
	require.NoError(t, json.Unmarshal([]byte(raw), &v2))
	v3, err := openapi2conv.ToV3(&v2)
	require.NoError(t, err)
	require.NoError(t, v3.Validate(t.Context()))

	f := newFixture(t)
	for _, route := range f.e.Routes() {
		if route.Method == echo.RouteNotFound || strings.Contains(route.Path, "*") {
			continue
		}
		if !strings.HasPrefix(route.Path, "/api/") && route.Path != "/health" {
			continue
		}
		path := echoParam.ReplaceAllString(route.Path, "{$1}")
		item := v3.Paths.Value(path)
		if !assert.NotNil(t, item, "undocumented path %s", path) {
			continue
		}
		assert.NotNil(t, item.GetOperation(route.Method), "undocumented operation %s %s", route.Method, path)
	}
}

func Test_SwaggerUIIsServed(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()

	f.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/orders/{order}/update-actual-weight"`)
}
