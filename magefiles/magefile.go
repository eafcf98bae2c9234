//go:build mage

// Package main provides build targets for the contacts module using Mage.
//
// Usage:
//
//	mage build          Compile every package
//	mage vet            Run go vet
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Write a coverage report to coverage/
//	mage lint           Run golangci-lint
//	mage clean          Remove coverage output
//	mage stats          Print per-package line counts and package doc words
package main

import (
	"bufio"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// statsRoots are the source trees Stats reports on.
var statsRoots = []string{"pkg", "internal"}

// pkgStats is the line and package-doc tally for one package directory.
type pkgStats struct {
	prod, test, docWords int
}

// Stats prints production and test line counts for every package under pkg/
// and internal/, and the number of words in each package's doc comment.
func Stats() error {
	byPkg := map[string]*pkgStats{}
	for _, root := range statsRoots {
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") {
				return err
			}
			dir := filepath.Dir(path)
			st := byPkg[dir]
			if st == nil {
				st = &pkgStats{}
				byPkg[dir] = st
			}
			n, err := countLines(path)
			if err != nil {
				return err
			}
			if strings.HasSuffix(path, "_test.go") {
				st.test += n
				return nil
			}
			st.prod += n
			words, err := packageDocWords(path)
			if err != nil {
				return err
			}
			st.docWords += words
			return nil
		})
		if err != nil {
			return err
		}
	}

	dirs := make([]string, 0, len(byPkg))
	for dir := range byPkg {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)

	var total pkgStats
	fmt.Printf("%-20s %8s %8s %10s\n", "package", "prod", "test", "doc words")
	for _, dir := range dirs {
		st := byPkg[dir]
		fmt.Printf("%-20s %8d %8d %10d\n", dir, st.prod, st.test, st.docWords)
		total.prod += st.prod
		total.test += st.test
		total.docWords += st.docWords
	}
	fmt.Printf("%-20s %8d %8d %10d\n", "total", total.prod, total.test, total.docWords)
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}

// packageDocWords counts the words of the package doc comment in path, if
// the file carries one.
func packageDocWords(path string) (int, error) {
	f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.PackageClauseOnly|parser.ParseComments)
	if err != nil {
		return 0, err
	}
	if f.Doc == nil {
		return 0, nil
	}
	return len(strings.Fields(f.Doc.Text())), nil
}
