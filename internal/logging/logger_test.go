package logging

import (
	"sync"
	"testing"
	"time"
)

func TestLoggerEnabled(t *testing.T) {
	tests := []struct {
		name      string
		threshold Severity
		sev       Severity
		want      bool
	}{
		{"disabled suppresses critical", DisabledLevel, CriticalLevel, false},
		{"negative threshold suppresses critical", Severity(-5), CriticalLevel, false},
		{"disabled suppresses level 0", DisabledLevel, DisabledLevel, false},
		{"disabled suppresses negative levels", DisabledLevel, Severity(-5), false},
		{"negative threshold suppresses its own level", Severity(-5), Severity(-5), false},
		{"status threshold passes status", StatusLevel, StatusLevel, true},
		{"status threshold blocks level 8", StatusLevel, Severity(8), false},
		{"status threshold passes debug", StatusLevel, DebugLevel, true},
		{"debug threshold blocks status", DebugLevel, StatusLevel, false},
		{"warn threshold blocks info", WarnLevel, InfoLevel, false},
		{"warn threshold passes error", WarnLevel, ErrorLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLogger("test", NewLevelTable(), time.Now)
			l.SetThreshold(tt.threshold)
			if got := l.Enabled(tt.sev); got != tt.want {
				t.Errorf("Enabled(%d) with threshold %d = %t, want %t", tt.sev, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestLoggerRespectsSinkThreshold(t *testing.T) {
	loud := &memorySink{threshold: StatusLevel}
	quiet := &memorySink{threshold: ErrorLevel}

	l := newLogger("test", NewLevelTable(), time.Now)
	l.AddSink(loud)
	l.AddSink(quiet)
	l.SetThreshold(StatusLevel)

	l.Statusf("[GNUPG:] KEY_CONSIDERED ABCDEF 0")
	l.Warnf("careful")
	l.Errorf("failed: %s", "bad passphrase")

	if got := len(loud.Records()); got != 3 {
		t.Errorf("loud sink got %d records, want 3", got)
	}
	if got := len(quiet.Records()); got != 1 {
		t.Errorf("quiet sink got %d records, want 1", got)
	}
}

func TestLoggerLevelNamesComeFromTable(t *testing.T) {
	table := NewLevelTable()
	table.Register(StatusLevel, "GNUPG")
	sink := &memorySink{}

	l := newLogger("test", table, time.Now)
	l.AddSink(sink)
	l.SetThreshold(StatusLevel)
	l.Statusf("line")
	l.Logf(Severity(25), "between")

	records := sink.Records()
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].LevelName != "GNUPG" {
		t.Errorf("LevelName = %q, want GNUPG", records[0].LevelName)
	}
	if records[1].LevelName != "Level 25" {
		t.Errorf("LevelName = %q, want %q", records[1].LevelName, "Level 25")
	}
}

func TestLoggerElapsedFromStart(t *testing.T) {
	start := fixedClock()
	now := start
	sink := &memorySink{}

	l := newLogger("test", NewLevelTable(), func() time.Time { return now })
	l.AddSink(sink)
	l.SetThreshold(InfoLevel)

	now = start.Add(1500 * time.Millisecond)
	l.Infof("later")

	records := sink.Records()
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Elapsed != 1500*time.Millisecond {
		t.Errorf("Elapsed = %v, want 1.5s", records[0].Elapsed)
	}
}

func TestLoggerConcurrentDispatch(t *testing.T) {
	sink := &memorySink{}
	l := newLogger("test", NewLevelTable(), time.Now)
	l.AddSink(sink)
	l.SetThreshold(StatusLevel)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				l.Statusf("[GNUPG:] PROGRESS %d %d", n, j)
			}
		}(i)
	}
	wg.Wait()

	if got := len(sink.Records()); got != 200 {
		t.Errorf("Expected 200 records, got %d", got)
	}
}

func TestLoggerCloseDetachesSinks(t *testing.T) {
	sink := &memorySink{}
	l := newLogger("test", NewLevelTable(), time.Now)
	l.AddSink(sink)
	l.SetThreshold(InfoLevel)

	if err := l.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	l.Infof("after close")

	if got := len(sink.Records()); got != 0 {
		t.Errorf("Expected no records after Close, got %d", got)
	}
}
