// env_test.go
package minilisp

import "testing"

func Test_Env_DefineAndGet(t *testing.T) {
	env := NewEnv()
	env.Define("x", Num(5))
	v, err := env.Get("x")
	if err != nil {
		t.Fatalf("Get(x) error: %v", err)
	}
	if !equalValue(v, Num(5)) {
		t.Fatalf("Get(x) = %s, want 5", FormatValue(v))
	}
}

func Test_Env_GetMissing(t *testing.T) {
	env := NewEnv()
	_, err := env.Get("y")
	if err == nil {
		t.Fatal("expected error for unbound symbol")
	}
	ee, ok := err.(*EvalError)
	if !ok || ee.Kind != ErrUndefinedSymbol {
		t.Fatalf("got %T %v, want ErrUndefinedSymbol", err, err)
	}
	if ee.Msg != "undefined symbol: y" {
		t.Fatalf("msg = %q", ee.Msg)
	}
}

func Test_Env_RebindOverwrites(t *testing.T) {
	env := NewEnv()
	env.Define("x", Num(1))
	env.Define("x", Bool(true))
	v, _ := env.Get("x")
	if !equalValue(v, Bool(true)) {
		t.Fatalf("Get(x) = %s, want true", FormatValue(v))
	}
	if env.Len() != 1 {
		t.Fatalf("Len = %d, want 1", env.Len())
	}
}

func Test_Env_SnapshotIsIndependentBothWays(t *testing.T) {
	env := NewEnv()
	env.Define("x", Num(1))
	snap := env.Snapshot()

	env.Define("x", Num(2))
	env.Define("y", Num(3))
	if v, _ := snap.Get("x"); !equalValue(v, Num(1)) {
		t.Fatalf("snapshot saw later mutation: x = %s", FormatValue(v))
	}
	if _, err := snap.Get("y"); err == nil {
		t.Fatal("snapshot saw later define of y")
	}

	snap.Define("z", Num(9))
	if _, err := env.Get("z"); err == nil {
		t.Fatal("snapshot write leaked into original")
	}
}
