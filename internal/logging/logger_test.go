package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"chatty", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected nop logger when no level is configured")
	}
}

func TestLogDatagram(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogDatagram("encode", 33039, "SetAndGetLanguage", []byte{0x81, 0x0f, 0x01, 0x01})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["hex"] != "810f0101" {
		t.Errorf("hex = %v, want 810f0101", fields["hex"])
	}
	if fields["name"] != "SetAndGetLanguage" {
		t.Errorf("name = %v, want SetAndGetLanguage", fields["name"])
	}
}

func TestLogDatagram_SkippedAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogDatagram("decode", 271, "SetAndGetLanguageResponse", []byte{0x02, 0x01})

	if logs.Len() != 0 {
		t.Errorf("got %d log entries, want 0", logs.Len())
	}
}

func TestDumps(t *testing.T) {
	long := make([]byte, maxDumpBytes+10)
	if got := hexDump(long); !strings.HasSuffix(got, "...") || len(got) != maxDumpBytes*2+3 {
		t.Errorf("hexDump() length = %d, want truncated dump", len(got))
	}
	if got := asciiDump([]byte("ab\x00c")); got != "ab.c" {
		t.Errorf("asciiDump() = %q, want %q", got, "ab.c")
	}
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "debug")
	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	defer SetLogger(nil)

	if !GetLogger().Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug logging from " + LogLevelEnvVar)
	}
}

func TestLogRawBytes(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogRawBytes("Rejected frame", []byte{0x12, 0x34, 'o', 'k'})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["hex"] != "12346f6b" || fields["ascii"] != ".4ok" {
		t.Errorf("fields = %v, want hex 12346f6b and ascii .4ok", fields)
	}
}
