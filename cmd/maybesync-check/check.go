// AST traversal collecting misuse findings.
//
// The checker is deliberately syntactic: it parses single files, reads
// their build constraints and looks at go statements and selector
// references. It does not type-check, so it reports advisory findings with
// false positives rather than proofs, the same trade-off the facade makes
// by documenting the transfer obligation instead of enforcing it.

package main

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
)

// facadeModule is the import path of the facade this tool ships with.
const facadeModule = "github.com/zakarumych/maybe-sync"

// Finding codes.
const (
	// CodeSerialGoStmt flags a go statement in a file compiled only under
	// the singlethread tag.
	CodeSerialGoStmt = "serial-go-stmt"

	// CodeMarkerTransfer flags a go statement in a file that imports the
	// facade without referencing any real capability.
	CodeMarkerTransfer = "marker-transfer"
)

// Finding is one report produced by the checker.
type Finding struct {
	// Pos is the source position of the flagged node.
	Pos token.Position

	// Code identifies the check that fired.
	Code string

	// Message is the human-readable explanation.
	Message string
}

// String formats the finding as "file:line:col: code: message".
func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Pos, f.Code, f.Message)
}

// realCapabilities are the facade identifiers whose presence indicates the
// file works with real capabilities rather than markers alone.
var realCapabilities = map[string]bool{
	"Transferable":        true,
	"Shareable":           true,
	"Concurrent":          true,
	"RequireTransferable": true,
	"RequireShareable":    true,
	"RequireConcurrent":   true,
}

// Checker walks directories and accumulates findings.
type Checker struct {
	fset          *token.FileSet
	findings      []Finding
	importsFacade bool
}

// NewChecker returns an empty checker.
func NewChecker() *Checker {
	return &Checker{fset: token.NewFileSet()}
}

// Findings returns the findings accumulated so far, in traversal order.
func (c *Checker) Findings() []Finding {
	return c.findings
}

// ImportsFacade reports whether any checked file imports the facade.
func (c *Checker) ImportsFacade() bool {
	return c.importsFacade
}

// CheckDir checks every .go file under dir, skipping vendor, testdata and
// hidden or underscore-prefixed directories.
func (c *Checker) CheckDir(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "vendor" || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") {
			return nil
		}
		return c.checkFile(path)
	})
}

// checkFile parses one file and records its findings.
func (c *Checker) checkFile(path string) error {
	file, err := parser.ParseFile(c.fset, path, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	serialOnly := isSerialOnly(file)
	alias, imports := facadeImportName(file)
	if imports {
		c.importsFacade = true
	}
	if !serialOnly && !imports {
		return nil
	}

	usesReal := imports && referencesRealCapability(file, alias)

	ast.Inspect(file, func(n ast.Node) bool {
		stmt, ok := n.(*ast.GoStmt)
		if !ok {
			return true
		}
		pos := c.fset.Position(stmt.Pos())
		switch {
		case serialOnly:
			c.findings = append(c.findings, Finding{
				Pos:  pos,
				Code: CodeSerialGoStmt,
				Message: "go statement in a singlethread-only file; " +
					"serial-mode primitives must not be touched from a second goroutine",
			})
		case imports && !usesReal:
			c.findings = append(c.findings, Finding{
				Pos:  pos,
				Code: CodeMarkerTransfer,
				Message: "goroutine started in a file that uses only the Maybe* markers; " +
					"values actually transferred must require " + alias + ".Transferable",
			})
		}
		return true
	})
	return nil
}

// isSerialOnly reports whether the file's build constraint admits only
// builds with the singlethread tag set.
func isSerialOnly(file *ast.File) bool {
	expr := buildConstraintOf(file)
	if expr == nil {
		return false
	}
	with := expr.Eval(func(tag string) bool { return tag == "singlethread" })
	without := expr.Eval(func(tag string) bool { return false })
	return with && !without
}

// buildConstraintOf returns the //go:build expression of the file, or nil.
// Only comments above the package clause are considered, matching the
// toolchain's placement rule.
func buildConstraintOf(file *ast.File) constraint.Expr {
	for _, group := range file.Comments {
		if group.End() >= file.Package {
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}
			return expr
		}
	}
	return nil
}

// facadeImportName returns the local name under which the file imports the
// facade, and whether it imports it at all.
func facadeImportName(file *ast.File) (string, bool) {
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != facadeModule {
			continue
		}
		if spec.Name != nil {
			return spec.Name.Name, true
		}
		return "maybesync", true
	}
	return "", false
}

// referencesRealCapability reports whether the file mentions one of the
// real capability identifiers through the facade import.
func referencesRealCapability(file *ast.File, alias string) bool {
	found := false
	ast.Inspect(file, func(n ast.Node) bool {
		if found {
			return false
		}
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		ident, ok := sel.X.(*ast.Ident)
		if !ok || ident.Name != alias {
			return true
		}
		if realCapabilities[sel.Sel.Name] {
			found = true
			return false
		}
		return true
	})
	return found
}
