package source_test

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/zskema/source"
)

func TestJSON_Values(t *testing.T) {
	v, err := source.JSON([]byte(`{"a":[1,"two",true,null,{"b":2.5}]}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{"a": []any{1.0, "two", true, nil, map[string]any{"b": 2.5}}}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	v, err = source.JSON([]byte(`[]`))
	if err != nil || len(v.([]any)) != 0 {
		t.Fatalf("empty array: v=%v err=%v", v, err)
	}
}

func TestJSON_DuplicateKeys(t *testing.T) {
	_, err := source.JSON([]byte(`{"outer":{"k":1,"k":2}}`))
	var dup *source.DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateKeyError, got %v", err)
	}
	if dup.Pointer != "/outer/k" || dup.Key != "k" {
		t.Fatalf("unexpected error %+v", dup)
	}
	v, err := source.JSON([]byte(`{"k":1,"k":2}`), source.WithDuplicateKeys(source.DupIgnore))
	if err != nil || v.(map[string]any)["k"] != 2.0 {
		t.Fatalf("ignore: v=%v err=%v", v, err)
	}
}

func TestJSON_MaxDepth(t *testing.T) {
	if _, err := source.JSON([]byte(`{"a":{"b":1}}`), source.WithMaxDepth(2)); err != nil {
		t.Fatalf("depth 2 allowed: %v", err)
	}
	_, err := source.JSON([]byte(`{"a":[{"b":1}]}`), source.WithMaxDepth(2))
	var de *source.DepthError
	if !errors.As(err, &de) || de.Pointer != "/a/0" || de.Max != 2 {
		t.Fatalf("want DepthError at /a/0, got %v", err)
	}
}

func TestJSON_Malformed(t *testing.T) {
	if _, err := source.JSON([]byte(`{"a":1} {"b":2}`)); !errors.Is(err, source.ErrTrailingData) {
		t.Fatalf("want ErrTrailingData, got %v", err)
	}
	if _, err := source.JSON(nil); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("empty input: %v", err)
	}
	if _, err := source.JSONReader(strings.NewReader(`[1,2`)); err == nil {
		t.Fatalf("truncated input must fail")
	}
}

func TestJSON_NumberMode(t *testing.T) {
	v, err := source.JSON([]byte(`{"n":0.1000}`), source.WithNumberMode(source.NumberJSON))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := v.(map[string]any)["n"]; got != json.Number("0.1000") {
		t.Fatalf("literal must be preserved, got %#v", got)
	}
}

func TestYAML(t *testing.T) {
	v, err := source.YAML([]byte("name: svc\nport: 80\nratio: 0.5\n1: one\nlist: [a, 2]\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{"name": "svc", "port": 80.0, "ratio": 0.5, "1": "one", "list": []any{"a", 2.0}}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	v, err = source.YAML([]byte("port: 80\n"), source.WithNumberMode(source.NumberJSON))
	if err != nil || v.(map[string]any)["port"] != json.Number("80") {
		t.Fatalf("json number mode: v=%v err=%v", v, err)
	}

	if v, err := source.YAML(nil); err != nil || v != nil {
		t.Fatalf("empty yaml: v=%v err=%v", v, err)
	}

	docs, err := source.YAMLDocuments([]byte("a: 1\n---\nb: 2\n"))
	if err != nil || len(docs) != 2 {
		t.Fatalf("documents: %v %v", docs, err)
	}
}
