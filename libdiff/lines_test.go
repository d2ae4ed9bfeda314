package libdiff

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	before := []string{"a", "b", "c", "d"}
	after := []string{"a", "B", "c", "d", "e"}
	got := Lines(before, after)
	want := []Line{
		{Op: Equal, Text: "a", From: 1, To: 1},
		{Op: Delete, Text: "b", From: 2},
		{Op: Insert, Text: "B", To: 2},
		{Op: Equal, Text: "c", From: 3, To: 3},
		{Op: Equal, Text: "d", From: 4, To: 4},
		{Op: Insert, Text: "e", To: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("expected a change")
	}
	if Changed(Lines(before, before)) {
		t.Error("identical input reported as changed")
	}
}

func TestWrite(t *testing.T) {
	before := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	after := []string{"1", "two", "3", "4", "5", "6", "7", "8", "9"}
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, Lines(before, after), Context(1)); err != nil {
		t.Fatal(err)
	}
	want := "@@ -1,3 +1,3 @@\n" +
		"  1\n" +
		"- 2\n" +
		"+ two\n" +
		"  3\n" +
		"@@ -8,1 +8,2 @@\n" +
		"  8\n" +
		"+ 9\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestManyDistinctLines(t *testing.T) {
	var before []string
	for i := range 0xE000 {
		before = append(before, strconv.Itoa(i))
	}
	after := append([]string{"new"}, before...)
	got := Lines(before, after)
	n := 0
	for _, ln := range got {
		if ln.Op != Equal {
			n++
		}
	}
	if n != 1 {
		t.Errorf("%d changed lines, want 1", n)
	}
}
