package classifier

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "basic enders",
			input: "First sentence. Second one! Third?",
			want:  []string{"First sentence.", "Second one!", "Third?"},
		},
		{
			name:  "trailing text without ender",
			input: "Complete sentence. trailing fragment",
			want:  []string{"Complete sentence.", "trailing fragment"},
		},
		{
			name:  "newlines split too",
			input: "line one\nline two",
			want:  []string{"line one", "line two"},
		},
		{
			name:  "devanagari danda",
			input: "पहला वाक्य। दूसरा वाक्य।",
			want:  []string{"पहला वाक्य।", "दूसरा वाक्य।"},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := splitSentences(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("splitSentences(%q) = %#v, want %#v", tc.input, got, tc.want)
			}
		})
	}
}
