package curriculum

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrTopicNotFound is returned when a raw topic string cannot be
// resolved within the requested grade and subject.
var ErrTopicNotFound = errors.New("topic not found")

// Registry is an immutable index over the curriculum canon, built once
// at startup. Lookups are pure and safe for concurrent use.
type Registry struct {
	topics []Topic

	// byKey indexes canonical names and aliases, normalized, scoped
	// by subject and grade.
	byKey map[topicKey]int
}

type topicKey struct {
	subject Subject
	grade   int
	name    string
}

// NewRegistry builds a registry from authored topics. Topics that fail
// profile validation are rejected; the canon must be fixed, not
// silently trimmed.
func NewRegistry(topics []Topic) (*Registry, error) {
	r := &Registry{
		topics: topics,
		byKey:  make(map[topicKey]int),
	}

	for i, t := range topics {
		if err := validateTopic(t); err != nil {
			return nil, fmt.Errorf("topic %q (grade %d): %w", t.Name, t.Grade, err)
		}

		names := append([]string{t.Name}, t.Aliases...)
		for _, n := range names {
			k := topicKey{subject: t.Subject, grade: t.Grade, name: normalizeTopicName(n)}
			if prev, ok := r.byKey[k]; ok && prev != i {
				return nil, fmt.Errorf("topic %q (grade %d): name %q collides with %q",
					t.Name, t.Grade, n, topics[prev].Name)
			}
			r.byKey[k] = i
		}
	}

	return r, nil
}

// validateTopic enforces the profile invariants: a recipe summing to
// RecipeTotal, and every recipe skill tag and slot type declared.
func validateTopic(t Topic) error {
	if t.Name == "" {
		return errors.New("empty name")
	}
	if t.Grade < 1 || t.Grade > 5 {
		return fmt.Errorf("grade %d out of range 1-5", t.Grade)
	}

	p := t.Profile()
	sum := 0
	for _, item := range t.Recipe {
		sum += item.Count
		if !p.AllowsSkillTag(item.SkillTag) {
			return fmt.Errorf("recipe skill tag %q not in skill_tags", item.SkillTag)
		}
		if !p.AllowsSlotType(item.SlotType) {
			return fmt.Errorf("recipe slot type %q not in slot_types", item.SlotType)
		}
	}
	if sum != RecipeTotal {
		return fmt.Errorf("recipe counts sum to %d, want %d", sum, RecipeTotal)
	}
	return nil
}

// Resolve maps a raw topic string to its canonical topic within the
// given grade and subject. Resolution order: exact canonical match,
// alias match, then case/whitespace-normalized match. A raw string
// carrying an explicit grade marker that contradicts the requested
// grade never resolves.
func (r *Registry) Resolve(raw string, grade int, subject Subject) (CanonicalTopic, error) {
	if marker, ok := extractGradeMarker(raw); ok && marker != grade {
		return CanonicalTopic{}, fmt.Errorf("%w: %q names grade %d but grade %d was requested",
			ErrTopicNotFound, raw, marker, grade)
	}

	// Exact canonical name.
	for i, t := range r.topics {
		if t.Subject == subject && t.Grade == grade && t.Name == raw {
			return r.topics[i].Canonical(), nil
		}
	}

	// Alias and normalized matches share the index.
	k := topicKey{subject: subject, grade: grade, name: normalizeTopicName(raw)}
	if i, ok := r.byKey[k]; ok {
		return r.topics[i].Canonical(), nil
	}

	return CanonicalTopic{}, fmt.Errorf("%w: %q (grade %d, %s)", ErrTopicNotFound, raw, grade, subject)
}

// ProfileOf returns the generation constraints for a resolved topic.
func (r *Registry) ProfileOf(ct CanonicalTopic) (TopicProfile, bool) {
	k := topicKey{subject: ct.Subject, grade: ct.Grade, name: normalizeTopicName(ct.Name)}
	if i, ok := r.byKey[k]; ok {
		return r.topics[i].Profile(), true
	}
	return TopicProfile{}, false
}

// TopicOf returns the full canon entry for a resolved topic.
func (r *Registry) TopicOf(ct CanonicalTopic) (Topic, bool) {
	k := topicKey{subject: ct.Subject, grade: ct.Grade, name: normalizeTopicName(ct.Name)}
	if i, ok := r.byKey[k]; ok {
		return r.topics[i], true
	}
	return Topic{}, false
}

// Topics returns all canon entries, in authored order.
func (r *Registry) Topics() []Topic {
	out := make([]Topic, len(r.topics))
	copy(out, r.topics)
	return out
}

var gradeMarkerRe = regexp.MustCompile(`(?i)\b(?:grade|class|g)\s*-?\s*([1-9])\b`)

// extractGradeMarker finds an explicit grade reference in a raw topic
// string, e.g. "grade 3 fractions", "g2 addition", "class-4 time".
func extractGradeMarker(raw string) (int, bool) {
	m := gradeMarkerRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

var topicSeparatorRe = regexp.MustCompile(`[\s_\-]+`)

// normalizeTopicName lowercases, strips grade markers, and collapses
// separators so "Two-Digit  Addition" and "two digit addition" index
// identically.
func normalizeTopicName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = gradeMarkerRe.ReplaceAllString(s, " ")
	s = topicSeparatorRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
