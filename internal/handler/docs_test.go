package handler

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	_ "messageboard/docs"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var pathParam = regexp.MustCompile(`:(\w+)`)

func TestSwaggerDocCoversRoutes(t *testing.T) {
	req := require.New(t)
	router, _ := setupRouter(t, &fakeAPI{})

	raw, err := swag.ReadDoc()
	req.NoError(err)
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	req.NoError(json.Unmarshal([]byte(raw), &doc))

	seen := make(map[string]bool)
	for _, route := range router.Routes() {
		path, ok := strings.CutPrefix(route.Path, "/api/v1")
		if !ok {
			continue
		}
		path = pathParam.ReplaceAllString(path, "{$1}")
		ops, ok := doc.Paths[path]
		req.True(ok, "undocumented path %s", path)
		req.Contains(ops, strings.ToLower(route.Method), "undocumented %s %s", route.Method, path)
		seen[path] = true
	}
	req.Len(seen, len(doc.Paths))
}
