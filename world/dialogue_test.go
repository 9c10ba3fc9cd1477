package world

import (
	"math/rand"
	"strings"
	"testing"
)

func testDialogue(t *testing.T, mood string) *Dialogue {
	t.Helper()
	d, err := NewDialogue(
		rand.New(rand.NewSource(1)),
		func() string { return "Pip" },
		func() string { return mood },
		func() string { return "rain" },
	)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDialogue_RemarkMentionsName(t *testing.T) {
	for _, mood := range []string{"happy", "content", "grumpy", "miserable"} {
		d := testDialogue(t, mood)
		remark, err := d.Remark()
		if err != nil {
			t.Fatalf("mood %s: %v", mood, err)
		}
		if remark == "" {
			t.Fatalf("mood %s: empty remark", mood)
		}
		if !strings.Contains(strings.ToLower(remark), "pip") {
			t.Errorf("mood %s: remark %q does not mention the duck", mood, remark)
		}
	}
}

func TestDialogue_SprigFunctionsRender(t *testing.T) {
	d := testDialogue(t, "happy")

	// Draw remarks until the upper-cased template comes up
	var found bool
	for i := 0; i < 50 && !found; i++ {
		remark, err := d.Remark()
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(remark, "PIP") {
			found = true
		}
	}
	if !found {
		t.Error("upper-cased name template never rendered")
	}
}

func TestDialogue_UnknownMoodIsSilent(t *testing.T) {
	d := testDialogue(t, "transcendent")
	remark, err := d.Remark()
	if err != nil {
		t.Fatal(err)
	}
	if remark != "" {
		t.Errorf("unknown mood produced %q", remark)
	}
}

func TestDialogue_CountsPersist(t *testing.T) {
	d := testDialogue(t, "content")
	d.Remark()
	d.Remark()

	data, err := d.Serialize()
	if err != nil {
		t.Fatal(err)
	}

	restored := testDialogue(t, "content")
	if err := restored.Deserialize(data); err != nil {
		t.Fatal(err)
	}
	if restored.RemarkCount() != 2 {
		t.Errorf("remark count = %d, want 2", restored.RemarkCount())
	}
}
