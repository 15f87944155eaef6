package pipeline

import (
	"testing"

	yaml "github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsillman2000/jsque/internal/ast"
	"github.com/dsillman2000/jsque/internal/parser"
)

func mustCompile(t *testing.T, query string) Pipeline {
	t.Helper()

	term, err := parser.Parse(query)
	require.NoError(t, err)
	compiled, err := Compile(term)
	require.NoError(t, err)
	return compiled
}

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  Pipeline
	}{
		{name: "root", query: "@", want: Pipeline{}},
		{name: "sub", query: "@.a", want: Pipeline{Sub{Key: "a"}}},
		{name: "index", query: "@[0]", want: Pipeline{Index{Number: 0}}},
		{name: "member_map", query: "@[*]", want: Pipeline{MemberMap{}}},
		{name: "child_map", query: "@.*", want: Pipeline{ChildMap{}}},
		{
			name:  "chain",
			query: "@.a[*].three",
			want:  Pipeline{Sub{Key: "a"}, MemberMap{}, Sub{Key: "three"}},
		},
		{
			name:  "negative_index_chain",
			query: "@.a[-1][0]",
			want:  Pipeline{Sub{Key: "a"}, Index{Number: -1}, Index{Number: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustCompile(t, tt.query)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileRejectsBareLeaves(t *testing.T) {
	t.Parallel()

	_, err := Compile(&ast.Identifier{Key: "a"})
	require.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "unexpected term identifier")

	_, err = Compile(&ast.Index{Number: 0})
	require.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "unexpected term index")
}

func TestEval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		subject any
		want    any
	}{
		{
			name:    "identity",
			query:   "@",
			subject: yaml.MapSlice{{Key: "a", Value: 1}},
			want:    yaml.MapSlice{{Key: "a", Value: 1}},
		},
		{
			name:    "sub_hit",
			query:   "@.a",
			subject: yaml.MapSlice{{Key: "a", Value: "value"}},
			want:    "value",
		},
		{
			name:    "negative_index",
			query:   "@[-1]",
			subject: []any{1, 2, 3},
			want:    3,
		},
		{
			name:  "deep_chain",
			query: "@.a[-1][0].three",
			subject: yaml.MapSlice{{
				Key: "a",
				Value: []any{[]any{
					yaml.MapSlice{{Key: "three", Value: 3}},
				}},
			}},
			want: 3,
		},
		{
			name:    "index_zero",
			query:   "@[0]",
			subject: []any{"first", "second"},
			want:    "first",
		},
		{
			name:    "string_index",
			query:   "@[1]",
			subject: "ab",
			want:    "b",
		},
		{
			name:    "string_negative_index",
			query:   "@[-1]",
			subject: "ab",
			want:    "b",
		},
		{
			name:    "integer_key_lookup",
			query:   "@[3]",
			subject: yaml.MapSlice{{Key: int64(3), Value: "x"}},
			want:    "x",
		},
		{
			name:    "sub_miss",
			query:   "@.missing",
			subject: yaml.MapSlice{{Key: "a", Value: 1}},
			want:    nil,
		},
		{
			name:    "index_out_of_range",
			query:   "@[9]",
			subject: []any{1},
			want:    nil,
		},
		{
			name:    "negative_index_out_of_range",
			query:   "@[-2]",
			subject: []any{1},
			want:    nil,
		},
		{
			name:    "sub_on_array_misses",
			query:   "@.a",
			subject: []any{1, 2},
			want:    nil,
		},
		{
			name:    "sub_on_string_misses",
			query:   "@.a",
			subject: "abc",
			want:    nil,
		},
		{
			name:  "child_map_preserves_order",
			query: "@.*",
			subject: yaml.MapSlice{
				{Key: "a", Value: "value"},
				{Key: "key", Value: "value"},
			},
			want: []any{"value", "value"},
		},
		{
			name:  "member_map_with_misses",
			query: "@.a[*].three",
			subject: yaml.MapSlice{{
				Key: "a",
				Value: []any{
					yaml.MapSlice{},
					yaml.MapSlice{{Key: "other", Value: 1}},
					yaml.MapSlice{{Key: "three", Value: 3}},
				},
			}},
			want: []any{nil, nil, 3},
		},
		{
			name:  "mixed_shapes_under_child_map",
			query: "@.*[1]",
			subject: yaml.MapSlice{
				{Key: "first", Value: []any{0, 1}},
				{Key: "second", Value: []any{2, 2}},
				{Key: "third", Value: "ab"},
				{Key: "fourth", Value: []any{}},
			},
			want: []any{1, 2, "b", nil},
		},
		{
			name:    "member_map_over_sequence",
			query:   "@[*]",
			subject: []any{1, "two", nil},
			want:    []any{1, "two", nil},
		},
		{
			name:    "member_map_over_string",
			query:   "@[*]",
			subject: "ab",
			want:    []any{"a", "b"},
		},
		{
			name:  "member_map_over_mapping_yields_keys",
			query: "@[*]",
			subject: yaml.MapSlice{
				{Key: "zebra", Value: 1},
				{Key: "apple", Value: 2},
			},
			want: []any{"zebra", "apple"},
		},
		{
			name:    "nested_surjections",
			query:   "@[*][*]",
			subject: []any{[]any{1, 2}, []any{3}},
			want:    []any{[]any{1, 2}, []any{3}},
		},
		{
			name:    "plain_map_sorts_keys",
			query:   "@.*",
			subject: map[string]any{"zebra": 1, "apple": 2},
			want:    []any{2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled := mustCompile(t, tt.query)
			got, err := compiled.Eval(tt.subject)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		subject any
		wantMsg string
	}{
		{
			name:    "sub_on_number",
			query:   "@.a",
			subject: 5,
			wantMsg: "cannot apply sub[a] to number value",
		},
		{
			name:    "index_on_boolean",
			query:   "@[0]",
			subject: true,
			wantMsg: "cannot apply index[0] to boolean value",
		},
		{
			name:    "index_on_null",
			query:   "@[0]",
			subject: nil,
			wantMsg: "cannot apply index[0] to null value",
		},
		{
			name:    "member_map_on_number",
			query:   "@[*]",
			subject: 42,
			wantMsg: "cannot apply member_map to number value",
		},
		{
			name:    "child_map_on_sequence",
			query:   "@.*",
			subject: []any{1, 2},
			wantMsg: "cannot apply child_map to array value",
		},
		{
			name:    "child_map_on_string",
			query:   "@.*",
			subject: "ab",
			wantMsg: "cannot apply child_map to string value",
		},
		{
			name:    "miss_then_injection",
			query:   "@.missing.x",
			subject: yaml.MapSlice{{Key: "a", Value: 1}},
			wantMsg: "cannot apply sub[x] to null value",
		},
		{
			name:    "failure_inside_surjection",
			query:   "@[*].x",
			subject: []any{1},
			wantMsg: "cannot apply sub[x] to number value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled := mustCompile(t, tt.query)
			_, err := compiled.Eval(tt.subject)
			require.ErrorIs(t, err, ErrEvaluation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestEvalIsRepeatable(t *testing.T) {
	t.Parallel()

	compiled := mustCompile(t, "@.*[1]")
	subject := yaml.MapSlice{
		{Key: "first", Value: []any{0, 1}},
		{Key: "second", Value: []any{2, 2}},
	}

	first, err := compiled.Eval(subject)
	require.NoError(t, err)
	second, err := compiled.Eval(subject)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPipelineString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "identity", Pipeline{}.String())
	assert.Equal(t,
		"sub[a] | member_map | index[-1] | child_map",
		Pipeline{Sub{Key: "a"}, MemberMap{}, Index{Number: -1}, ChildMap{}}.String(),
	)
}
