package httpserver

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/swaggo/swag"
)

var routePattern = regexp.MustCompile(`s\.mux\.HandleFunc\("(\w+) ([^"]+)"`)

func registeredRoutes(t *testing.T) map[string]struct{} {
	t.Helper()
	routes := make(map[string]struct{})
	for _, file := range []string{"server.go", "server_election.go", "server_live.go"} {
		src, err := os.ReadFile(file)
		if err != nil {
			t.Fatalf("read %s: %v", file, err)
		}
		for _, match := range routePattern.FindAllStringSubmatch(string(src), -1) {
			routes[strings.ToLower(match[1])+" "+match[2]] = struct{}{}
		}
	}
	return routes
}

func TestSwaggerDocumentCoversEveryRoute(t *testing.T) {
	routes := registeredRoutes(t)
	if len(routes) < 30 {
		t.Fatalf("expected the full route table, found %d routes", len(routes))
	}

	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read swagger doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]struct{ Summary string } `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode swagger doc: %v", err)
	}

	documented := make(map[string]struct{})
	for path, ops := range doc.Paths {
		for method, op := range ops {
			if op.Summary == "" {
				t.Fatalf("%s %s has no summary", method, path)
			}
			documented[method+" "+path] = struct{}{}
		}
	}
	for route := range routes {
		if _, ok := documented[route]; !ok {
			t.Fatalf("route %q is missing from the swagger document", route)
		}
	}
	for route := range documented {
		if _, ok := routes[route]; !ok {
			t.Fatalf("swagger documents %q but no handler is registered", route)
		}
	}
}

func TestSwaggerDocumentResolvesReferences(t *testing.T) {
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read swagger doc: %v", err)
	}
	var doc struct {
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode swagger doc: %v", err)
	}
	refs := regexp.MustCompile(`"#/definitions/([^"]+)"`).FindAllStringSubmatch(raw, -1)
	if len(refs) == 0 {
		t.Fatal("expected schema references in the swagger document")
	}
	for _, ref := range refs {
		if _, ok := doc.Definitions[ref[1]]; !ok {
			t.Fatalf("reference %q has no definition", ref[1])
		}
	}
}
