package docs

import (
	"bufio"
	"regexp"
	"strings"
	"testing"
)

func TestTopicsMatchReadme(t *testing.T) {
	// The readme lists every topic; every listed topic must load, and every
	// embedded topic must be listed.
	readme, err := Topic("readme")
	if err != nil {
		t.Fatalf("cannot load readme: %v", err)
	}

	listed := make(map[string]bool)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(strings.NewReader(readme))
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			name := strings.TrimSpace(m[1])
			listed[name] = true
			if _, err := Topic(name); err != nil {
				t.Errorf("readme lists %q but it does not load: %v", name, err)
			}
		}
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() error = %v", err)
	}
	for _, name := range all {
		if !listed[name] {
			t.Errorf("topic %q is not listed in the readme", name)
		}
	}
}

func TestTopicsStar(t *testing.T) {
	doc, err := Topics("*")
	if err != nil {
		t.Fatalf("Topics(*) error = %v", err)
	}
	all, _ := AllTopics()
	for _, name := range all {
		content, _ := Topic(name)
		title := strings.SplitN(content, "\n", 2)[0]
		if !strings.Contains(doc, title) {
			t.Errorf("Topics(*) is missing topic %q", name)
		}
	}
}

func TestTopicNotFound(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Errorf("Topic() for an unknown name expected an error")
	}
}
