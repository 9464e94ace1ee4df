package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var names []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			names = append(names, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return names
}

func TestTopics(t *testing.T) {
	// The readme is the index: every topic it lists must load, and every
	// topic file must be listed.
	listed := readmeTopics(t)

	for _, name := range listed {
		t.Run("load_"+name, func(t *testing.T) {
			if _, err := Topic(name); err != nil {
				t.Errorf("failed to get topic %q: %v", name, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		found := false
		for _, name := range listed {
			if name == base {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestTopicStar(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) == 0 {
		t.Fatal("All() returned no topics")
	}

	content, err := Topic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range all {
		single, err := Topic(name)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(content, single) {
			t.Errorf("Topic(\"*\") does not contain topic %q", name)
		}
	}

	if _, err := Topic("no-such-topic"); err == nil {
		t.Error("Topic() on an unknown name should fail")
	}
}

func TestTopicsAreWellFormed(t *testing.T) {
	// Every topic must parse as markdown and open with an H1 so the
	// terminal renderer produces a titled page.
	all, err := All()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range append(all, "readme") {
		t.Run(name, func(t *testing.T) {
			content, err := Topic(name)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var firstHeading *ast.Heading
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && firstHeading == nil {
					firstHeading = h
					return ast.WalkStop, nil
				}
				return ast.WalkContinue, nil
			})
			if firstHeading == nil || firstHeading.Level != 1 {
				t.Errorf("topic %q does not start with a level 1 heading", name)
			}
		})
	}
}
