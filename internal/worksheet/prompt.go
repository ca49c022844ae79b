package worksheet

import (
	"fmt"
	"strings"

	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
	"github.com/nirajyt2022-source/edTech-sub001/internal/planner"
)

const systemPrompt = `You are an experienced primary-school teacher writing practice worksheet questions for children in grades 1-5.

Rules:
- Generate a single question for the given topic, grade, and slot role.
- The question text must be clear, self-contained, and age-appropriate.
- The answer must be correct. For mcq, provide exactly 4 options where exactly one is correct; distractors should reflect common mistakes, not random values.
- Use plain text for all math. No LaTeX, no Unicode math symbols. Use / for fractions and standard operators.
- Stay strictly inside the topic and skill tag you are given. Never drift into other topics or subjects.
- Vary story settings, names, and numbers. Never reuse anything from the "avoid" lists.
- Respond only with the requested JSON.`

// bloomDirectives are the cognitive-level instructions selected by the
// context's bloom level.
var bloomDirectives = map[string]string{
	BloomRecall:      "Cognitive level: RECALL. Ask for a remembered fact, definition, or single direct computation. One step only.",
	BloomApplication: "Cognitive level: APPLICATION. Ask the child to apply the concept to a small concrete situation. One or two steps.",
	BloomReasoning:   "Cognitive level: REASONING. Ask a question that requires connecting ideas or working through multiple steps. The path to the answer should not be obvious from the first sentence.",
}

// slotDirectives instruct the generator on each pedagogical role.
var slotDirectives = map[planner.SlotType]string{
	planner.SlotRecall:         "Slot role: recall a core fact or definition from this topic.",
	planner.SlotApplication:    "Slot role: apply the concept to a short, concrete situation.",
	planner.SlotRepresentation: "Slot role: present the concept in a different representation (table, pattern, picture described in words, number line) than plain symbols.",
	planner.SlotErrorDetection: "Slot role: show a short worked attempt that contains exactly one planted mistake and ask the child to find it. Set error_id to a short label for the mistake type.",
	planner.SlotThinking:       "Slot role: a multi-step thinking question requiring at least two operations or a comparison before answering. Set thinking_style to a short label for the reasoning pattern.",
}

// hindiVocabulary is example vocabulary included with the script
// directive so the generator anchors on real Devanagari text.
var hindiVocabulary = []string{"किताब", "पानी", "स्कूल", "मित्र", "सुबह"}

// BuildContextBlock renders the compact curriculum summary that opens
// every slot instruction. Pure string assembly.
func BuildContextBlock(gc GenerationContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", gc.Topic)
	if gc.Chapter != "" {
		fmt.Fprintf(&b, "Chapter: %s\n", gc.Chapter)
	}
	fmt.Fprintf(&b, "Grade: %d\n", gc.Grade)
	fmt.Fprintf(&b, "Subject: %s\n", gc.Subject)

	if len(gc.Subtopics) > 0 {
		fmt.Fprintf(&b, "Subtopics: %s\n", strings.Join(capList(gc.Subtopics, 3), ", "))
	}
	if len(gc.Objectives) > 0 {
		b.WriteString("Objectives:\n")
		for _, o := range capList(gc.Objectives, 3) {
			fmt.Fprintf(&b, "- %s\n", o)
		}
	}
	if len(gc.ValidSkillTags) > 0 {
		fmt.Fprintf(&b, "Skill tags: %s\n", strings.Join(capList(gc.ValidSkillTags, 8), ", "))
	}

	fmt.Fprintf(&b, "Bloom level: %s\n", gc.BloomLevel)
	if len(gc.FormatMix) > 0 {
		parts := make([]string, 0, len(mastery.FormatOrder))
		for _, f := range mastery.FormatOrder {
			if w, ok := gc.FormatMix[f]; ok {
				parts = append(parts, fmt.Sprintf("%s %d%%", f, w))
			}
		}
		fmt.Fprintf(&b, "Target format mix: %s\n", strings.Join(parts, ", "))
	}
	fmt.Fprintf(&b, "Scaffolding: %t\n", gc.Scaffolding)
	fmt.Fprintf(&b, "Challenge mode: %t\n", gc.Challenge)

	if gc.ChildContext != "" {
		fmt.Fprintf(&b, "About this child: %s\n", gc.ChildContext)
	}

	return strings.TrimRight(b.String(), "\n")
}

// BuildSlotInstruction renders the full generation instruction for one
// slot: context block, role and cognitive directives, scope
// constraint, avoid lists, and the script directive where the subject
// needs one.
func BuildSlotInstruction(slot planner.SlotSpec, gc GenerationContext) string {
	var b strings.Builder

	b.WriteString(BuildContextBlock(gc))
	b.WriteString("\n\n")

	if d, ok := slotDirectives[slot.Type]; ok {
		b.WriteString(d)
		b.WriteString("\n")
	}
	if d, ok := bloomDirectives[gc.BloomLevel]; ok {
		b.WriteString(d)
		b.WriteString("\n")
	}

	if gc.Scaffolding {
		b.WriteString("Scaffolding: keep the wording short and include a gentle hint in the hint field.\n")
	}
	if gc.Challenge {
		b.WriteString("Challenge mode: the question may stretch slightly beyond routine difficulty, but stay within the grade.\n")
	}

	fmt.Fprintf(&b, "Target skill tag: %s. The question must test this tag and no other.\n", slot.SkillTag)
	if slot.FormatHint != "" {
		fmt.Fprintf(&b, "Preferred format: %s\n", slot.FormatHint)
	}

	writeAvoidBlock(&b, gc)

	if gc.Subject.RequiresScript() {
		fmt.Fprintf(&b, "Write the question entirely in the %s script. Example vocabulary: %s. Do not transliterate into Latin letters.\n",
			gc.Subject.ScriptName(), strings.Join(hindiVocabulary, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// writeAvoidBlock renders the anti-repetition lists. Only non-empty
// signals are included to keep the instruction compact.
func writeAvoidBlock(b *strings.Builder, gc GenerationContext) {
	lists := []struct {
		label  string
		values []string
	}{
		{"story settings", gc.Avoid.UsedContexts},
		{"planted-mistake types", gc.Avoid.UsedErrorIDs},
		{"reasoning patterns", gc.Avoid.UsedThinkingStyles},
		{"number pairs", gc.Avoid.UsedNumberPairs},
	}

	wrote := false
	for _, l := range lists {
		if len(l.values) == 0 {
			continue
		}
		if !wrote {
			b.WriteString("Avoid reusing any of the following from recent worksheets:\n")
			wrote = true
		}
		fmt.Fprintf(b, "- %s: %s\n", l.label, strings.Join(capList(l.values, 12), ", "))
	}
}

// capList returns at most max elements of list.
func capList(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}
