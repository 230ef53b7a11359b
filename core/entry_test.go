package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{CriticalLevel, "CRITICAL"},
		{NoneLevel, "NONE"},
		{Level(42), "UNKNOWN"},
		{Level(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevels_Ordered(t *testing.T) {
	levels := Levels()
	if len(levels) != 7 {
		t.Fatalf("Levels() returned %d levels, want 7", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("Levels() not ascending at %d: %v <= %v", i, levels[i], levels[i-1])
		}
	}
	for _, l := range levels {
		if !l.Valid() {
			t.Errorf("%v.Valid() = false", l)
		}
	}
	if Level(7).Valid() {
		t.Error("Level(7).Valid() = true")
	}
}

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}

	if len(e1.Fields) != 0 {
		t.Errorf("Expected empty fields, got %d", len(e1.Fields))
	}

	e1.Message = "test"
	e1.Category = "com.example.app"
	e1.Fields = append(e1.Fields, Field{Key: "test", Str: "value"})

	PutEntry(e1)

	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}

	if e2.Message != "" {
		t.Errorf("Expected empty message after pool reset, got %q", e2.Message)
	}
	if e2.Category != "" {
		t.Errorf("Expected empty category after pool reset, got %q", e2.Category)
	}
	if len(e2.Fields) != 0 {
		t.Errorf("Expected empty fields after pool reset, got %d", len(e2.Fields))
	}
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(1)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}

	if caller.ShortFile != "entry_test.go" {
		t.Errorf("ShortFile = %q, want entry_test.go", caller.ShortFile)
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if caller.Function == "" {
		t.Error("Expected non-empty function name")
	}
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}
