package wordcount

import "testing"

func TestNewCounter(t *testing.T) {
	counter := NewCounter()
	if counter == nil {
		t.Fatal("NewCounter() returned nil")
	}
}

func TestCounter_Count(t *testing.T) {
	counter := NewCounter()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "empty content",
			content: "",
			want:    0,
		},
		{
			name:    "whitespace only",
			content: "  \n\t  ",
			want:    0,
		},
		{
			name:    "plain sentence",
			content: "The rain had not stopped for three days.",
			want:    8,
		},
		{
			name:    "formatting marks do not count",
			content: "She was **absolutely** certain, _almost_ certain.",
			want:    6,
		},
		{
			name:    "heading and paragraph",
			content: "# Chapter One\n\nIt began at sea.",
			want:    6,
		},
		{
			name:    "link label counts, target does not",
			content: "See [the appendix](https://example.com/appendix) for maps.",
			want:    5,
		},
		{
			name:    "list items",
			content: "- first clue\n- second clue\n- third clue",
			want:    6,
		},
		{
			name:    "table cells count, pipes do not",
			content: "| Name | Role |\n|---|---|\n| Mara | Captain |",
			want:    4,
		},
		{
			name:    "fenced code block counts its words",
			content: "An inscription read:\n\n```\nhic sunt dracones\n```\n",
			want:    6,
		},
		{
			name:    "multiple paragraphs",
			content: "First paragraph here.\n\nSecond paragraph follows on.",
			want:    7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := counter.Count(tt.content)
			if got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCounter_Count_SoftWraps(t *testing.T) {
	counter := NewCounter()

	// A paragraph wrapped across source lines is still one run of prose.
	content := "The ship rolled\nand the lantern swung\nwith it."
	if got := counter.Count(content); got != 9 {
		t.Errorf("Count() = %d, want 9", got)
	}
}
