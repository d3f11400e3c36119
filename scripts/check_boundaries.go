package main

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const modulePath = "wahlfang"

type violation struct {
	File   string
	Line   int
	Import string
	Rule   string
}

// layerRule lists what one hexagonal layer may import besides the standard
// library. Prefixes are relative to the owning service.
type layerRule struct {
	ownPrefixes   []string
	sharedAllowed []string
}

var layerRules = map[string]layerRule{
	"domain": {
		ownPrefixes: []string{"/domain"},
	},
	"ports": {
		ownPrefixes:   []string{"/domain"},
		sharedAllowed: []string{modulePath + "/contracts"},
	},
	"application": {
		ownPrefixes:   []string{"/application", "/domain", "/ports"},
		sharedAllowed: []string{modulePath + "/contracts"},
	},
}

func main() {
	root := "contexts"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	violations := collectViolations(root)
	if len(violations) == 0 {
		fmt.Println("boundary checks passed")
		return
	}

	fmt.Println("boundary violations found:")
	for _, v := range violations {
		fmt.Printf("- %s:%d imports %q (%s)\n", v.File, v.Line, v.Import, v.Rule)
	}
	os.Exit(1)
}

// collectViolations walks root, laid out as <context>/<service>/<layer>/...,
// and returns every forbidden import sorted by file and line.
func collectViolations(root string) []violation {
	var violations []violation

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) < 3 {
			return nil
		}

		servicePrefix := fmt.Sprintf("%s/contexts/%s/%s", modulePath, parts[0], parts[1])
		layer := ""
		if len(parts) > 3 {
			layer = parts[2]
		}
		violations = append(violations, validateFile(path, layer, servicePrefix)...)
		return nil
	})

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].File == violations[j].File {
			if violations[i].Line == violations[j].Line {
				return violations[i].Import < violations[j].Import
			}
			return violations[i].Line < violations[j].Line
		}
		return violations[i].File < violations[j].File
	})
	return violations
}

func validateFile(path string, layer string, servicePrefix string) []violation {
	file := filepath.ToSlash(path)
	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return []violation{{File: file, Line: 1, Rule: "file must parse"}}
	}

	var violations []violation
	for _, imp := range parsed.Imports {
		importPath := strings.Trim(imp.Path.Value, "\"")
		line := fset.Position(imp.Pos()).Line
		add := func(rule string) {
			violations = append(violations, violation{File: file, Line: line, Import: importPath, Rule: rule})
		}

		if hasPrefix(importPath, modulePath+"/contexts") && !hasPrefix(importPath, servicePrefix) {
			add("cross-module imports are forbidden")
		}

		rule, ok := layerRules[layer]
		if !ok {
			continue
		}
		if strings.Contains(importPath, "/adapters/") {
			add(layer + " must not import adapters")
		}
		if hasPrefix(importPath, modulePath+"/internal") || hasPrefix(importPath, modulePath+"/cmd") {
			add(layer + " must not import runtime infrastructure")
		}
		if !isStdlib(importPath) && !isAllowed(importPath, allowedFor(rule, servicePrefix)) {
			add(layer + " import is outside explicit allowlist")
		}
	}
	return violations
}

func allowedFor(rule layerRule, servicePrefix string) []string {
	allowed := make([]string, 0, len(rule.ownPrefixes)+len(rule.sharedAllowed))
	for _, p := range rule.ownPrefixes {
		allowed = append(allowed, servicePrefix+p)
	}
	return append(allowed, rule.sharedAllowed...)
}

func hasPrefix(path string, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func isAllowed(importPath string, allowedPrefixes []string) bool {
	for _, p := range allowedPrefixes {
		if hasPrefix(importPath, p) {
			return true
		}
	}
	return false
}

func isStdlib(importPath string) bool {
	if hasPrefix(importPath, modulePath) {
		return false
	}
	first := importPath
	if idx := strings.Index(first, "/"); idx != -1 {
		first = first[:idx]
	}
	return !strings.Contains(first, ".")
}
