package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/literate/configs"
	"github.com/reusee/literate/modes"
	"go.starlark.net/starlark"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
	)
}

func TestCompile(t *testing.T) {
	testScope(t).Call(func(
		compile Compile,
	) {
		dir := t.TempDir()
		script := filepath.Join(dir, "hello.star")
		if err := os.WriteFile(script, []byte("\"# Hello\"\nprint(argv[1:])\n"), 0644); err != nil {
			t.Fatal(err)
		}

		woven, err := compile(context.Background(), script, []string{"a", "b"})
		if err != nil {
			t.Fatal(err)
		}
		argv := woven.Namespace.Globals["argv"].(*starlark.List)
		if argv.Index(0) != starlark.String(script) {
			t.Fatalf("got %v", argv)
		}

		out := filepath.Join(dir, "compiled_hello.star")
		md, err := os.ReadFile(filepath.Join(out, "hello.md"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(md), "```text\n[\"a\", \"b\"]\n```") {
			t.Fatalf("got %q", md)
		}
		for _, name := range []string{"hello.html", "hello.manifest.yaml"} {
			if _, err := os.Stat(filepath.Join(out, name)); err != nil {
				t.Fatal(err)
			}
		}
	})
}

func TestCompileErrors(t *testing.T) {
	testScope(t).Call(func(
		compile Compile,
	) {
		dir := t.TempDir()
		script := filepath.Join(dir, "bad.star")
		if err := os.WriteFile(script, []byte("x = 1\nfail('bad')\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := compile(context.Background(), script, nil); err == nil {
			t.Fatal("should fail")
		}
		if _, err := os.Stat(filepath.Join(dir, "compiled_bad.star")); !os.IsNotExist(err) {
			t.Fatalf("got %v", err)
		}

		if _, err := compile(context.Background(), filepath.Join(dir, "missing.star"), nil); err == nil {
			t.Fatal("should fail")
		}
	})
}

func TestCompileInterrupted(t *testing.T) {
	testScope(t).Call(func(
		compile Compile,
	) {
		dir := t.TempDir()
		script := filepath.Join(dir, "loop.star")
		if err := os.WriteFile(script, []byte("print('start')\nwhile True:\n    pass\n"), 0644); err != nil {
			t.Fatal(err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		woven, err := compile(ctx, script, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !woven.Summary.Interrupted || woven.Summary.InterruptedAt != 0 {
			t.Fatalf("got %+v", woven.Summary)
		}
		if _, err := os.Stat(filepath.Join(dir, "compiled_loop.star", "loop.md")); err != nil {
			t.Fatal(err)
		}
	})
}

func TestWatchRejectsStdin(t *testing.T) {
	testScope(t).Call(func(
		watch Watch,
	) {
		if err := watch(context.Background(), "-", nil); err != ErrNotWatchable {
			t.Fatalf("got %v", err)
		}
	})
}
