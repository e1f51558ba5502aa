package cmds

import (
	"errors"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var name string
	executor.Define("-name", Func(func(v string) {
		name = v
	}))

	var count int
	executor.Define("-count", Func(func(v int) {
		count = v
	}))

	var verbose bool
	executor.Define("-verbose", Func(func(v bool) {
		verbose = v
	}))

	if err := executor.Execute([]string{
		"-name", "foo",
		"-count", "42",
		"-verbose", "true",
	}); err != nil {
		t.Fatal(err)
	}

	if name != "foo" {
		t.Fatalf("expected foo, got %s", name)
	}
	if count != 42 {
		t.Fatalf("expected 42, got %d", count)
	}
	if !verbose {
		t.Fatal("expected true")
	}
}

func TestExecutorUnknownCommand(t *testing.T) {
	executor := NewExecutor()
	if err := executor.Execute([]string{"-nope"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestExecutorCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-fail", Func(func() error {
		return errors.New("failed")
	}))
	if err := executor.Execute([]string{"-fail"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestExecutorMissingArgument(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-value", Func(func(v int) {}))
	if err := executor.Execute([]string{"-value"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestExecutorOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var got *int
	executor.Define("-opt", Func(func(v *int) {
		got = v
	}))
	if err := executor.Execute([]string{"-opt"}); err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != 0 {
		t.Fatalf("expected zero value, got %v", got)
	}
}

func TestExecutorBadArgument(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-n", Func(func(v int) {}))
	if err := executor.Execute([]string{"-n", "not-a-number"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestExecutorDuplicatedCommand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	executor := NewExecutor()
	executor.Define("-dup", Func(func() {}))
	executor.Define("-dup", Func(func() {}))
}

func TestExecutorAliases(t *testing.T) {
	executor := NewExecutor()
	n := 0
	executor.Define("-inc", Func(func() {
		n++
	}).Alias("-i"))
	if err := executor.Execute([]string{"-inc", "-i"}); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
}
