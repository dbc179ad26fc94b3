package pdump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"plain":         {input: "foo", want: `"foo"`},
		"empty":         {input: "", want: `""`},
		"delimiter":     {input: `a"b`, want: `"a\"b"`},
		"escape char":   {input: `a\b`, want: `"a\\b"`},
		"newline":       {input: "a\nb", want: `"a\nb"`},
		"carriage ret":  {input: "a\rb", want: `"a\x{d}b"`},
		"tab":           {input: "a\tb", want: `"a\x{9}b"`},
		"bell":          {input: "a\ab", want: `"a\x{7}b"`},
		"high control":  {input: "a\x1fb", want: `"a\x{1f}b"`},
		"printable uni": {input: "héllo", want: `"héllo"`},
		"wide":          {input: "你好", want: `"你好"`},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, quote(tt.input))
		})
	}
}

func TestBareKey(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		key    any
		want   string
		wantOK bool
	}{
		"identifier":    {key: "foo", want: "foo", wantOK: true},
		"underscored":   {key: "foo_bar", want: "foo_bar", wantOK: true},
		"leading dash":  {key: "-flag", want: "-flag", wantOK: true},
		"integer":       {key: 5, want: "5", wantOK: true},
		"bool":          {key: true, want: "true", wantOK: true},
		"spaced":        {key: "a b", wantOK: false},
		"float":         {key: 1.5, wantOK: false},
		"empty":         {key: "", wantOK: false},
		"nil":           {key: nil, wantOK: false},
		"sequence":      {key: []int{1}, wantOK: false},
		"interior dash": {key: "a-b", wantOK: false},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := bareKey(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncateItems(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		items []string
		limit int
		want  []string
	}{
		"under limit": {items: []string{"a", "b"}, limit: 3, want: []string{"a", "b"}},
		"at limit":    {items: []string{"a", "b", "c"}, limit: 3, want: []string{"a", "b", "c"}},
		"over limit":  {items: []string{"a", "b", "c", "d"}, limit: 3, want: []string{"a", "b", "c", "..."}},
		"empty":       {items: nil, limit: 3, want: nil},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncateItems(tt.items, tt.limit))
		})
	}
}

func TestCapLength(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		limit int
		want  string
	}{
		"no limit":          {input: "abcdef", limit: 0, want: "abcdef"},
		"fits":              {input: "abc", limit: 5, want: "abc"},
		"exact fit":         {input: "abcde", limit: 5, want: "abcde"},
		"clipped":           {input: "abcdefghij", limit: 7, want: "abcd..."},
		"marker only":       {input: "abcdefghij", limit: 3, want: "..."},
		"marker clipped":    {input: "abcdefghij", limit: 2, want: ".."},
		"single char":       {input: "abcdefghij", limit: 1, want: "."},
		"just above marker": {input: "abcdefghij", limit: 4, want: "a..."},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := capLength(tt.input, tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatOpaqueWithoutIdentity(t *testing.T) {
	t.Parallel()
	// Arrays carry no pointer identity, so the token is omitted.
	d := New()
	d.MaxDepth = 0
	assert.Equal(t, "[3]int", d.Dump([3]int{1, 2, 3}))
}

func TestLooksLikePairs(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		values []any
		want   bool
	}{
		"text keys":      {values: []any{"a", 1, "b", 2}, want: true},
		"number keys":    {values: []any{1, "a", 2, "b"}, want: true},
		"odd count":      {values: []any{"a", 1, "b"}, want: false},
		"empty":          {values: nil, want: false},
		"sequence key":   {values: []any{[]int{1}, "v"}, want: false},
		"mapping key":    {values: []any{map[string]int{}, "v"}, want: false},
		"nil key":        {values: []any{nil, "v"}, want: false},
		"values ignored": {values: []any{"a", []int{1}}, want: true},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, looksLikePairs(tt.values))
		})
	}
}
