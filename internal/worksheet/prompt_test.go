package worksheet

import (
	"strings"
	"testing"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
	"github.com/nirajyt2022-source/edTech-sub001/internal/history"
	"github.com/nirajyt2022-source/edTech-sub001/internal/planner"
)

func mathContext() GenerationContext {
	return GenerationContext{
		Topic:          "Addition within 100",
		Subject:        curriculum.SubjectMath,
		Grade:          2,
		Chapter:        "Addition and Subtraction",
		Subtopics:      []string{"two-digit addition", "carrying", "sums in stories", "estimation"},
		Objectives:     []string{"add two-digit numbers", "carry across tens", "solve story sums", "estimate sums"},
		BloomLevel:     BloomRecall,
		FormatMix:      defaultFormatMix(),
		Scaffolding:    true,
		ValidSkillTags: []string{"add-2digit", "carrying", "story-sums"},
	}
}

func TestBuildContextBlock_Contents(t *testing.T) {
	block := BuildContextBlock(mathContext())

	for _, want := range []string{
		"Topic: Addition within 100",
		"Chapter: Addition and Subtraction",
		"Grade: 2",
		"Subject: math",
		"Bloom level: recall",
		"Target format mix: mcq 40%, fill_blank 30%, word_problem 30%",
		"Scaffolding: true",
		"Challenge mode: false",
	} {
		if !strings.Contains(block, want) {
			t.Errorf("context block missing %q:\n%s", want, block)
		}
	}
}

func TestBuildContextBlock_CapsObjectivesAndTags(t *testing.T) {
	gc := mathContext()
	gc.Objectives = []string{"o1", "o2", "o3", "o4", "o5"}
	gc.ValidSkillTags = []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9"}

	block := BuildContextBlock(gc)

	if strings.Contains(block, "o4") {
		t.Error("more than 3 objectives rendered")
	}
	if strings.Contains(block, "t9") {
		t.Error("more than 8 skill tags rendered")
	}
	if !strings.Contains(block, "o3") || !strings.Contains(block, "t8") {
		t.Error("capped lists truncated too aggressively")
	}
}

func TestBuildSlotInstruction_Directives(t *testing.T) {
	tests := []struct {
		name  string
		slot  planner.SlotSpec
		bloom string
		want  []string
	}{
		{
			name:  "recall slot at recall bloom",
			slot:  planner.SlotSpec{Type: planner.SlotRecall, SkillTag: "add-2digit"},
			bloom: BloomRecall,
			want:  []string{"Slot role: recall", "Cognitive level: RECALL", "Target skill tag: add-2digit"},
		},
		{
			name:  "error detection slot",
			slot:  planner.SlotSpec{Type: planner.SlotErrorDetection, SkillTag: "carrying"},
			bloom: BloomApplication,
			want:  []string{"planted mistake", "error_id", "Cognitive level: APPLICATION"},
		},
		{
			name:  "thinking slot at reasoning bloom",
			slot:  planner.SlotSpec{Type: planner.SlotThinking, SkillTag: "story-sums"},
			bloom: BloomReasoning,
			want:  []string{"multi-step", "thinking_style", "Cognitive level: REASONING"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gc := mathContext()
			gc.BloomLevel = tt.bloom
			out := BuildSlotInstruction(tt.slot, gc)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("instruction missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestBuildSlotInstruction_ScaffoldingAndChallenge(t *testing.T) {
	gc := mathContext()
	gc.Scaffolding = true
	gc.Challenge = false
	out := BuildSlotInstruction(planner.SlotSpec{Type: planner.SlotRecall, SkillTag: "add-2digit"}, gc)
	if !strings.Contains(out, "Scaffolding:") || !strings.Contains(out, "gentle hint") {
		t.Error("scaffolding directive missing")
	}
	if strings.Contains(out, "Challenge mode: the question") {
		t.Error("challenge directive present when challenge is off")
	}

	gc.Scaffolding = false
	gc.Challenge = true
	out = BuildSlotInstruction(planner.SlotSpec{Type: planner.SlotRecall, SkillTag: "add-2digit"}, gc)
	if strings.Contains(out, "gentle hint") {
		t.Error("scaffolding directive present when scaffolding is off")
	}
	if !strings.Contains(out, "Challenge mode: the question") {
		t.Error("challenge directive missing")
	}
}

func TestBuildSlotInstruction_FormatHint(t *testing.T) {
	gc := mathContext()

	slot := planner.SlotSpec{Type: planner.SlotRecall, SkillTag: "add-2digit", FormatHint: "fill_blank"}
	out := BuildSlotInstruction(slot, gc)
	if !strings.Contains(out, "Preferred format: fill_blank") {
		t.Error("format hint not rendered")
	}

	slot.FormatHint = ""
	out = BuildSlotInstruction(slot, gc)
	if strings.Contains(out, "Preferred format:") {
		t.Error("format line rendered with no hint set")
	}
}

func TestBuildSlotInstruction_ScriptDirective(t *testing.T) {
	gc := GenerationContext{
		Topic:      "Matras",
		Subject:    curriculum.SubjectHindi,
		Grade:      2,
		BloomLevel: BloomRecall,
	}

	out := BuildSlotInstruction(planner.SlotSpec{Type: planner.SlotRecall, SkillTag: "matra-identify"}, gc)

	if !strings.Contains(out, "Devanagari") {
		t.Error("script directive missing for hindi")
	}
	if !strings.Contains(out, "किताब") {
		t.Error("example vocabulary missing from script directive")
	}

	mathOut := BuildSlotInstruction(planner.SlotSpec{Type: planner.SlotRecall, SkillTag: "add-2digit"}, mathContext())
	if strings.Contains(mathOut, "Devanagari") {
		t.Error("script directive present for a Latin-script subject")
	}
}

func TestBuildSlotInstruction_AvoidLists(t *testing.T) {
	gc := mathContext()
	gc.Avoid = history.AvoidState{
		UsedContexts:    []string{"fruit shop", "cricket match"},
		UsedNumberPairs: []string{"23,45"},
	}

	out := BuildSlotInstruction(planner.SlotSpec{Type: planner.SlotApplication, SkillTag: "add-2digit"}, gc)

	for _, want := range []string{"Avoid reusing", "fruit shop", "cricket match", "23,45"} {
		if !strings.Contains(out, want) {
			t.Errorf("avoid block missing %q", want)
		}
	}

	gc.Avoid = history.AvoidState{}
	out = BuildSlotInstruction(planner.SlotSpec{Type: planner.SlotApplication, SkillTag: "add-2digit"}, gc)
	if strings.Contains(out, "Avoid reusing") {
		t.Error("avoid block rendered with no signals")
	}
}
