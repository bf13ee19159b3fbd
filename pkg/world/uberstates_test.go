package world

import "testing"

func TestGetMissingIdentifier(t *testing.T) {
	u := NewUberStates()
	if _, ok := u.Get("1:2"); ok {
		t.Fatal("expected missing identifier to report not-found")
	}
}

func TestSetAndGet(t *testing.T) {
	u := NewUberStates()
	u.Set("1:2", IntValue(3))
	v, ok := u.Get("1:2")
	if !ok || v.Int != 3 || v.Kind != UberInt {
		t.Fatalf("expected {Int:3}, got %+v ok=%v", v, ok)
	}
}

func TestTriggerFiresOnChange(t *testing.T) {
	u := NewUberStates()
	fired := 0
	var last UberValue
	u.OnChange("1:2", func(v UberValue) {
		fired++
		last = v
	})

	u.Set("1:2", BoolValue(true))
	if fired != 1 || !last.Bool {
		t.Fatalf("expected trigger to fire once with true, fired=%d last=%+v", fired, last)
	}

	u.Set("1:2", BoolValue(true))
	if fired != 1 {
		t.Errorf("expected no trigger fire for an unchanged value, fired=%d", fired)
	}

	u.Set("1:2", BoolValue(false))
	if fired != 2 || last.Bool {
		t.Fatalf("expected trigger to fire again on change, fired=%d last=%+v", fired, last)
	}
}

func TestCloneCopiesValuesNotTriggers(t *testing.T) {
	u := NewUberStates()
	fired := 0
	u.OnChange("1:2", func(UberValue) { fired++ })
	u.Set("1:2", FloatValue(1.5))

	clone := u.Clone()
	v, ok := clone.Get("1:2")
	if !ok || v.Float != 1.5 {
		t.Fatalf("expected clone to carry the value, got %+v ok=%v", v, ok)
	}

	clone.Set("1:2", FloatValue(2.5))
	if fired != 1 {
		t.Errorf("expected clone's triggers to be independent of the original, fired=%d", fired)
	}
}
