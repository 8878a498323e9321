package fediskema_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	fediskema "github.com/reoring/fediskema"
)

type color string

func (c color) Known() bool { return c == "red" || c == "blue" }

type node struct {
	Name  string
	Color color
	Tags  []string
	Next  *node
	Note  *string
	Extra map[string]any
}

var nodeSchema = fediskema.NewObject[node]("Node").WithExtra(func(n *node) *map[string]any { return &n.Extra })

func init() {
	nodeSchema.Define(
		fediskema.Req("name", fediskema.String(), func(n *node) *string { return &n.Name }),
		fediskema.Req("color", fediskema.Enum[color]("red", "blue"), func(n *node) *color { return &n.Color }),
		fediskema.Req("tags", fediskema.List(fediskema.String()), func(n *node) *[]string { return &n.Tags }),
		fediskema.Opt("next", fediskema.Self(nodeSchema), func(n *node) **node { return &n.Next }),
		fediskema.Opt("note", fediskema.String(), func(n *node) **string { return &n.Note }),
	)
}

func TestObject_DecodeEncode(t *testing.T) {
	ctx := context.Background()
	in := []byte(`{"name":"a","color":"red","tags":["x"],"next":{"name":"b","color":"green","tags":[]}}`)
	n, err := fediskema.ParseFrom(ctx, nodeSchema, fediskema.JSONBytes(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n.Name != "a" || n.Next == nil || n.Next.Color != "green" || n.Next.Color.Known() {
		t.Fatalf("unexpected node: %+v", n)
	}
	out, err := fediskema.Encode(ctx, nodeSchema, n)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(out), `"color":"green"`) || strings.Contains(string(out), `"note"`) {
		t.Fatalf("unexpected encoding: %s", out)
	}
	if got := strings.Join(nodeSchema.Keys(), ","); got != "name,color,tags,next,note" {
		t.Fatalf("keys: %s", got)
	}
	if got := strings.Join(nodeSchema.RequiredKeys(), ","); got != "name,color,tags" {
		t.Fatalf("required keys: %s", got)
	}
}

func TestObject_DefineDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate key")
		}
	}()
	fediskema.NewObject[node]("Dup").Define(
		fediskema.Req("name", fediskema.String(), func(n *node) *string { return &n.Name }),
		fediskema.Req("name", fediskema.String(), func(n *node) *string { return &n.Name }),
	)
}

func TestObject_NotAnObject(t *testing.T) {
	_, err := fediskema.Parse(context.Background(), nodeSchema, []any{})
	iss, _ := fediskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != fediskema.CodeTypeMismatch || iss[0].Entity != "Node" || iss[0].Found != "array" {
		t.Fatalf("expected type_mismatch, got %v", err)
	}
}

func TestList_RejectsNullElements(t *testing.T) {
	_, err := fediskema.Parse(context.Background(), nodeSchema, map[string]any{"name": "a", "color": "red", "tags": []any{"x", nil}})
	iss, _ := fediskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/tags/1" || iss[0].Code != fediskema.CodeTypeMismatch {
		t.Fatalf("expected type_mismatch at /tags/1, got %v", err)
	}
}

func nested(depth int) map[string]any {
	root := map[string]any{"name": "0", "color": "red", "tags": []any{}}
	cur := root
	for i := 0; i < depth; i++ {
		next := map[string]any{"name": "n", "color": "red", "tags": []any{}}
		cur["next"] = next
		cur = next
	}
	return root
}

func TestSelf_DepthGuard(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		max, depth int
		ok         bool
	}{
		{0, fediskema.DefaultMaxDepth, true},
		{0, fediskema.DefaultMaxDepth + 1, false},
		{1, 1, true},
		{1, 2, false},
		{20, 20, true},
	} {
		_, err := fediskema.Parse(ctx, nodeSchema, nested(tc.depth), fediskema.ParseOpt{MaxDepth: tc.max})
		if (err == nil) != tc.ok {
			t.Fatalf("max=%d depth=%d: err=%v", tc.max, tc.depth, err)
		}
		if err != nil && !fediskema.HasCode(err, fediskema.CodeRecursionLimit) {
			t.Fatalf("max=%d depth=%d: unexpected %v", tc.max, tc.depth, err)
		}
	}
}

func TestSelf_EncodeCycle(t *testing.T) {
	n := node{Name: "a", Color: "red"}
	n.Next = &n
	_, err := fediskema.EncodeValue(context.Background(), nodeSchema, n, fediskema.EncodeOpt{MaxDepth: 3})
	iss, _ := fediskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != fediskema.CodeRecursionLimit || iss[0].Depth != 4 {
		t.Fatalf("expected recursion_limit_exceeded at depth 4, got %v", err)
	}
}

func TestPresence(t *testing.T) {
	dm, err := fediskema.ParseFromWithMeta(context.Background(), nodeSchema,
		fediskema.JSONBytes([]byte(`{"name":"a","color":"red","tags":[],"note":null}`)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dm.Value.Note != nil {
		t.Fatalf("null should decode as absent")
	}
	if !dm.Presence.Seen("/note") || !dm.Presence.WasNull("/note") || dm.Presence.Seen("/next") || !dm.Presence.Seen("/name") {
		t.Fatalf("unexpected presence: %v", dm.Presence)
	}
}

func TestSources_Enforcement(t *testing.T) {
	ctx := context.Background()
	dup := []byte(`{"name":"a","name":"b","color":"red","tags":[]}`)

	if _, err := fediskema.ParseFrom(ctx, nodeSchema, fediskema.JSONBytes(dup)); err != nil {
		t.Fatalf("duplicates are ignored by default: %v", err)
	}

	dm, err := fediskema.ParseFromWithMeta(ctx, nodeSchema, fediskema.JSONBytes(dup),
		fediskema.ParseOpt{Strictness: fediskema.Strictness{OnDuplicateKey: fediskema.Warn}})
	if err != nil {
		t.Fatalf("warn mode: %v", err)
	}
	if w, ok := dm.Warnings.First(fediskema.CodeDuplicateKey); !ok || w.Path != "/name" {
		t.Fatalf("expected duplicate_key warning, got %v", dm.Warnings)
	}

	_, err = fediskema.ParseFrom(ctx, nodeSchema, fediskema.JSONBytes(dup),
		fediskema.ParseOpt{Strictness: fediskema.Strictness{OnDuplicateKey: fediskema.Error}})
	if !fediskema.HasCode(err, fediskema.CodeDuplicateKey) {
		t.Fatalf("expected duplicate_key error, got %v", err)
	}

	ok := []byte(`{"name":"a","color":"red","tags":[]}`)
	if _, err := fediskema.ParseFrom(ctx, nodeSchema, fediskema.JSONReader(bytes.NewReader(ok)), fediskema.ParseOpt{MaxBytes: 10}); !fediskema.HasCode(err, fediskema.CodeTruncated) {
		t.Fatalf("expected truncated, got %v", err)
	}
	if _, err := fediskema.ParseFrom(ctx, nodeSchema, fediskema.JSONBytes(ok), fediskema.ParseOpt{MaxBytes: int64(len(ok))}); err != nil {
		t.Fatalf("payload at the byte cap: %v", err)
	}
	if _, err := fediskema.ParseFrom(ctx, nodeSchema, fediskema.JSONBytes(append(ok, []byte(` {}`)...))); !fediskema.HasCode(err, fediskema.CodeParseError) {
		t.Fatalf("expected parse_error for trailing data, got %v", err)
	}
	if _, err := fediskema.ParseFrom(ctx, nodeSchema, fediskema.JSONBytes([]byte(`{"name":`))); !fediskema.HasCode(err, fediskema.CodeParseError) {
		t.Fatalf("expected parse_error for truncated JSON, got %v", err)
	}
	deep := []byte(`{"name":"a","color":"red","tags":[],"next":{"name":"b","color":"red","tags":[]}}`)
	if _, err := fediskema.ParseFrom(ctx, nodeSchema, fediskema.JSONBytes(deep), fediskema.ParseOpt{MaxNesting: 2}); !fediskema.HasCode(err, fediskema.CodeParseError) {
		t.Fatalf("expected nesting failure, got %v", err)
	}
}

func TestSources_DefaultNestingCap(t *testing.T) {
	ctx := context.Background()
	levels := fediskema.DefaultMaxNesting + 100

	arrays := strings.Repeat("[", levels) + strings.Repeat("]", levels)
	payload := `{"name":"a","color":"red","tags":` + arrays + `}`
	if _, err := fediskema.ParseFrom(ctx, nodeSchema, fediskema.JSONBytes([]byte(payload))); !fediskema.HasCode(err, fediskema.CodeParseError) {
		t.Fatalf("json: expected parse_error, got %v", err)
	}
	if _, err := fediskema.ParseFrom(ctx, nodeSchema, fediskema.YAMLBytes([]byte(payload))); !fediskema.HasCode(err, fediskema.CodeParseError) {
		t.Fatalf("yaml: expected parse_error, got %v", err)
	}

	y := []byte("name: a\ncolor: red\ntags: [[[x]]]\n")
	_, err := fediskema.ParseFrom(ctx, nodeSchema, fediskema.YAMLBytes(y), fediskema.ParseOpt{MaxNesting: 3})
	iss, _ := fediskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != fediskema.CodeParseError || iss[0].Path != "/tags/0/0" {
		t.Fatalf("expected parse_error at /tags/0/0, got %v", err)
	}
}

func TestYAMLBytes_MultipleDocuments(t *testing.T) {
	y := []byte("name: a\ncolor: red\ntags: []\n---\nname: b\n")
	if _, err := fediskema.ParseFrom(context.Background(), nodeSchema, fediskema.YAMLBytes(y)); !fediskema.HasCode(err, fediskema.CodeParseError) {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestWarnings_AreLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := fediskema.ParseFrom(context.Background(), nodeSchema,
		fediskema.JSONBytes([]byte(`{"name":"a","color":"green","tags":[]}`)), fediskema.ParseOpt{Logger: logger})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "fediskema.warning") || !strings.Contains(out, "code=unknown_variant") || !strings.Contains(out, "raw=green") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestNilArguments(t *testing.T) {
	ctx := context.Background()
	if _, err := fediskema.ParseFrom[node](ctx, nil, fediskema.JSONBytes([]byte(`{}`))); !fediskema.HasCode(err, fediskema.CodeParseError) {
		t.Fatalf("nil schema: %v", err)
	}
	if _, err := fediskema.ParseFrom(ctx, nodeSchema, nil); !fediskema.HasCode(err, fediskema.CodeParseError) {
		t.Fatalf("nil source: %v", err)
	}
}

func TestSafeParseAndIs(t *testing.T) {
	ctx := context.Background()
	good := []byte(`{"name":"a","color":"red","tags":[]}`)
	if n, ok := fediskema.SafeParse(ctx, nodeSchema, good); !ok || n.Name != "a" {
		t.Fatalf("SafeParse: %+v %v", n, ok)
	}
	if fediskema.Is(ctx, nodeSchema, []byte(`{"name":"a"}`)) {
		t.Fatalf("Is should reject missing fields")
	}
}

func TestIssues_Error(t *testing.T) {
	_, err := fediskema.Parse(context.Background(), nodeSchema, map[string]any{})
	if got := err.Error(); got != "missing_field at /name; missing_field at /color; missing_field at /tags" {
		t.Fatalf("unexpected summary: %q", got)
	}
	iss, _ := fediskema.AsIssues(err)
	if s := iss[0].String(); !strings.HasPrefix(s, "missing_field at /name (Node.name)") {
		t.Fatalf("unexpected issue string: %q", s)
	}
}

func TestJSONSchemaOf_SelfReference(t *testing.T) {
	doc := fediskema.JSONSchemaOf[node](nodeSchema)
	if doc.Ref != "#/$defs/Node" {
		t.Fatalf("root ref: %q", doc.Ref)
	}
	def := doc.Defs["Node"]
	if def == nil || def.Type != "object" {
		t.Fatalf("missing Node definition: %+v", doc.Defs)
	}
	next := def.Properties["next"]
	if next == nil || len(next.OneOf) != 2 || next.OneOf[0].Ref != "#/$defs/Node" || next.OneOf[1].Type != "null" {
		t.Fatalf("next should be a nullable $ref: %+v", next)
	}
	if strings.Join(def.Required, ",") != "name,color,tags" {
		t.Fatalf("required: %v", def.Required)
	}

	count := fediskema.JSONSchemaOf(fediskema.Count())
	if count.Type != "integer" || count.Minimum == nil || *count.Minimum != 0 {
		t.Fatalf("count schema: %+v", count)
	}
}

func TestSetOf(t *testing.T) {
	s := fediskema.SetOf(fediskema.Enum[color]("red", "blue"))
	v, err := fediskema.Parse(context.Background(), s, []any{"red", "blue", "red"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(v) != 2 || !v.Has("red") {
		t.Fatalf("unexpected set: %v", v)
	}
	raw, err := fediskema.EncodeValue(context.Background(), s, v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	arr := raw.([]any)
	if len(arr) != 2 || arr[0] != "blue" || arr[1] != "red" {
		t.Fatalf("unexpected encoding: %v", arr)
	}
}
