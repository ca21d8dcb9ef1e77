package tools

import (
	"context"
	"errors"
	"testing"
)

func echo(ctx context.Context, input string) (string, error) {
	return input, nil
}

func TestNewSet(t *testing.T) {
	set, err := NewSet(
		ToolSpec{Name: "Web Search", Invoke: echo},
		ToolSpec{Name: "Calculator", Invoke: echo},
	)
	if err != nil {
		t.Fatal(err)
	}
	if names := set.Names(); len(names) != 2 || names[0] != "Web Search" || names[1] != "Calculator" {
		t.Errorf("unexpected names %v", names)
	}
	if _, ok := set.Lookup("Calculator"); !ok {
		t.Error("expect Calculator found")
	}
	if _, ok := set.Lookup("calculator"); ok {
		t.Error("lookup must be case-sensitive")
	}
	if _, err := NewSet(ToolSpec{Name: "A", Invoke: echo}, ToolSpec{Name: "A", Invoke: echo}); !errors.Is(err, ErrDuplicateTool) {
		t.Errorf("expect ErrDuplicateTool, but got %v", err)
	}
	if _, err := NewSet(ToolSpec{Name: "", Invoke: echo}); err == nil {
		t.Error("expect error for empty name")
	}
	if _, err := NewSet(ToolSpec{Name: "A"}); err == nil {
		t.Error("expect error for missing invoke")
	}
}

func TestSetSpecsIsCopy(t *testing.T) {
	set := MustNewSet(ToolSpec{Name: "A", Description: "a", Invoke: echo})
	specs := set.Specs()
	specs[0].Description = "mutated"
	if spec, _ := set.Lookup("A"); spec.Description != "a" {
		t.Errorf("expect registered spec untouched, got %s", spec.Description)
	}
}

func TestConfigSpecHooks(t *testing.T) {
	var (
		started, ended string
		failed         error
	)
	var cfg Config
	for _, opt := range []Option{
		WithTitle("Echo"),
		WithDescription("echoes input"),
		WithStartHook(func(ctx context.Context, tool string, input string) { started = tool + ":" + input }),
		WithEndHook(func(ctx context.Context, tool string, input string, output string) { ended = output }),
		WithErrorHook(func(ctx context.Context, tool string, input string, err error) { failed = err }),
	} {
		opt(&cfg)
	}
	spec := cfg.Spec(echo)
	if spec.Name != "Echo" || spec.Description != "echoes input" {
		t.Fatalf("unexpected spec %+v", spec)
	}
	out, err := spec.Invoke(context.Background(), "hi")
	if err != nil {
		t.Fatal(err)
	}
	if out != "hi" || started != "Echo:hi" || ended != "hi" {
		t.Errorf("unexpected hooks: out=%s started=%s ended=%s", out, started, ended)
	}
	boom := errors.New("boom")
	spec = cfg.Spec(func(ctx context.Context, input string) (string, error) { return "", boom })
	if _, err := spec.Invoke(context.Background(), "x"); !errors.Is(err, boom) || !errors.Is(failed, boom) {
		t.Errorf("expect boom, but got %v / %v", err, failed)
	}
}

func TestCounted(t *testing.T) {
	boom := errors.New("boom")
	spec, counter := Counted(ToolSpec{Name: "Flaky", Invoke: func(ctx context.Context, input string) (string, error) {
		if input == "fail" {
			return "", boom
		}
		return "ok", nil
	}})
	ctx := context.Background()
	spec.Invoke(ctx, "a")
	spec.Invoke(ctx, "fail")
	spec.Invoke(ctx, "b")
	if counter.Invocations() != 3 {
		t.Errorf("expect 3 invocations, but got %d", counter.Invocations())
	}
	if counter.Failures() != 1 {
		t.Errorf("expect 1 failure, but got %d", counter.Failures())
	}
}
