package curriculum

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	reg, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	if len(reg.Topics()) == 0 {
		t.Fatal("embedded canon has no topics")
	}

	// Every subject should be represented in the shipped canon.
	seen := make(map[Subject]bool)
	for _, topic := range reg.Topics() {
		seen[topic.Subject] = true
	}
	for _, s := range AllSubjects() {
		if !seen[s] {
			t.Errorf("no topics for subject %s", s)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	canon := `topics:
  - name: Counting
    subject: math
    grade: 1
    chapter: Numbers
    subtopics: [counting]
    skill_tags: [count]
    slot_types: [recall, thinking]
    recipe:
      - {slot_type: recall, skill_tag: count, count: 8}
      - {slot_type: thinking, skill_tag: count, count: 2}
`
	if err := os.WriteFile(filepath.Join(dir, "math.yaml"), []byte(canon), 0o644); err != nil {
		t.Fatal(err)
	}
	// A malformed file is skipped, not fatal.
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("topics: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if got := len(reg.Topics()); got != 1 {
		t.Errorf("topics = %d, want 1", got)
	}

	if _, err := reg.Resolve("Counting", 1, SubjectMath); err != nil {
		t.Errorf("Resolve: %v", err)
	}
}

func TestLoadDir_Empty(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("LoadDir on empty dir should fail")
	}
}
