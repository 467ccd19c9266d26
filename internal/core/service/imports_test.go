package service

import (
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"
)

// The core must not reach into the transport layer.
func TestServiceDoesNotImportAPI(t *testing.T) {
	pkgs, err := parser.ParseDir(token.NewFileSet(), ".", nil, parser.ImportsOnly)
	if err != nil {
		t.Fatalf("parse package: %v", err)
	}

	for _, pkg := range pkgs {
		for name, file := range pkg.Files {
			for _, imp := range file.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				if strings.Contains(path, "/internal/api") {
					t.Errorf("%s imports %s", name, path)
				}
			}
		}
	}
}
