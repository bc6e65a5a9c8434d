package mdh

import (
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading",
			input: "# Header 1",
			want:  "<h1>Header 1</h1>\n",
		},
		{
			name:  "multiple headings",
			input: "## Header 2\n### Header 3",
			want:  "<h2>Header 2</h2>\n<h3>Header 3</h3>\n",
		},
		{
			name:  "invalid heading stays literal",
			input: "#Invalid",
			want:  "<p>#Invalid</p>\n",
		},
		{
			name:  "text and bold",
			input: "This is **bold** text.",
			want:  "<p>This is <strong>bold</strong> text.</p>\n",
		},
		{
			name:  "italic text",
			input: "This is *italic* text.",
			want:  "<p>This is <em>italic</em> text.</p>\n",
		},
		{
			name:  "link",
			input: "This is a [link](http://example.com).",
			want:  "<p>This is a <a href=\"http://example.com\">link</a>.</p>\n",
		},
		{
			name:  "image",
			input: "This is an image ![Alt text](image.png).",
			want:  "<p>This is an image <img src=\"image.png\" alt=\"Alt text\">.</p>\n",
		},
		{
			name:  "list",
			input: "- Item 1\n- Item 2",
			want:  "<ul>\n<li>Item 1</li>\n<li>Item 2</li>\n</ul>\n",
		},
		{
			name:  "unterminated link stays literal",
			input: "[invalid link](https://example.com",
			want:  "<p>[invalid link](https://example.com</p>\n",
		},
		{
			name:  "complex mixed content",
			input: "# Title\nSome **bold** and *italic* text with a [link](http://example.com).\n- List item 1\n- List item 2",
			want:  "<h1>Title</h1>\n<p>Some <strong>bold</strong> and <em>italic</em> text with a <a href=\"http://example.com\">link</a>.</p>\n<ul>\n<li>List item 1</li>\n<li>List item 2</li>\n</ul>\n",
		},
		{
			name:  "list interrupted by paragraph",
			input: "- a\ntext\n- b",
			want:  "<ul>\n<li>a</li>\n</ul>\n<p>text</p>\n<ul>\n<li>b</li>\n</ul>\n",
		},
		{
			name:  "adjacent text runs share a paragraph",
			input: "one\n\ntwo",
			want:  "<p>onetwo</p>\n",
		},
		{
			name:  "html specials escaped",
			input: "He said \"a & b <c>\"",
			want:  "<p>He said &quot;a &amp; b &lt;c&gt;&quot;</p>\n",
		},
		{
			name:  "url escaped like any payload",
			input: "[x](a?b=1&c=2)",
			want:  "<p><a href=\"a?b=1&amp;c=2\">x</a></p>\n",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Convert(tc.input)
			if got != tc.want {
				t.Fatalf("output mismatch\n---want---\n%s\n---got---\n%s", tc.want, got)
			}
		})
	}
}

func TestConvertBalancesWrappers(t *testing.T) {
	t.Parallel()
	src := strings.Join([]string{
		"# Title",
		"Intro with **bold** and a [link](https://example.com).",
		"- one",
		"- two",
		"## Next",
		"Tail paragraph.",
		"- three",
	}, "\n")
	out := Convert(src)
	pairs := map[string]string{
		"<p>":  "</p>",
		"<ul>": "</ul>",
		"<li>": "</li>",
		"<h1>": "</h1>",
		"<h2>": "</h2>",
	}
	for open, close := range pairs {
		if o, c := strings.Count(out, open), strings.Count(out, close); o != c {
			t.Fatalf("unbalanced %s: %d open, %d close in %q", open, o, c, out)
		}
	}
	if strings.Count(out, "<ul>") != 2 {
		t.Fatalf("expected two list wrappers in %q", out)
	}
}

func TestRenderTokensHeadingLevelClamped(t *testing.T) {
	t.Parallel()
	if got := RenderTokens([]Token{{Kind: KindHeading, Level: 0, Text: "x"}}); got != "<h1>x</h1>\n" {
		t.Fatalf("level 0 not clamped to h1: %q", got)
	}
	if got := RenderTokens([]Token{{Kind: KindHeading, Level: 9, Text: "x"}}); got != "<h6>x</h6>\n" {
		t.Fatalf("level 9 not clamped to h6: %q", got)
	}
}

func TestRenderTokensEmpty(t *testing.T) {
	t.Parallel()
	if got := RenderTokens(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestRenderTokensImageAltEscaped(t *testing.T) {
	t.Parallel()
	got := RenderTokens([]Token{{Kind: KindImage, Text: `"alt"`, URL: "a&b.png"}})
	want := "<p><img src=\"a&amp;b.png\" alt=\"&quot;alt&quot;\"></p>\n"
	if got != want {
		t.Fatalf("output mismatch\n---want---\n%s\n---got---\n%s", want, got)
	}
}
