package suttadown

import "testing"

func TestPostProcess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "indent and stanza break",
			in:   "> [INDENT][INDENT]a\n> \n> [VERSE-ADD][INDENT]b\n",
			want: "> 　　a  \n>\n> 　b  \n",
		},
		{
			name: "superscript",
			in:   "x[SUPERSCRIPT]3 y\n",
			want: "x^3 y  \n",
		},
		{
			name: "notes heading",
			in:   "text\nNotes\nNotes are important\n",
			want: "text  \n## Notes  \nNotes are important  \n",
		},
		{
			name: "note heading",
			in:   "a\nNote\n",
			want: "a  \n## Note  \n",
		},
		{
			name: "blank runs",
			in:   "\n\na\n\n\n\nb\n\n\n",
			want: "a  \n  \nb  \n",
		},
		{
			name: "empty quote lines",
			in:   "> a\n>\t\n> \n>   \n> b\n",
			want: "> a  \n> b  \n",
		},
		{
			name: "empty indented quote line",
			in:   "> a\n> [INDENT]\n> [INDENT][INDENT] \n> b\n",
			want: "> a  \n> b  \n",
		},
		{
			name: "stray verse break",
			in:   "[VERSE-ADD]orphan\n",
			want: "orphan  \n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := postProcess(tt.in); got != tt.want {
				t.Errorf("want:\n%q\ngot:\n%q", tt.want, got)
			}
		})
	}
}
