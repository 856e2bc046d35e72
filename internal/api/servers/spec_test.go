package servers_test

import (
	"context"
	"testing"

	"logistics/internal/api/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	for _, path := range []string{"/health", "/trucks", "/packages", "/updates", "/ws/packages", "/ws/updates"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	assert.NotNil(t, doc.Paths.Find("/trucks").Post.RequestBody)
}

func TestRegisterHandlers_RoutesEveryDocumentedOperation(t *testing.T) {
	// Given
	doc, err := servers.GetSwagger()
	require.NoError(t, err)
	e := echo.New()

	// When
	servers.RegisterHandlers(e, nil)

	// Then
	routed := make(map[string]bool)
	for _, r := range e.Routes() {
		routed[r.Method+" "+r.Path] = true
	}
	documented := 0
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			documented++
			assert.True(t, routed[method+" "+path], "%s %s is documented but not routed", method, path)
		}
	}
	assert.Len(t, routed, documented, "every route is documented")
}
