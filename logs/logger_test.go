package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/mangrove/cmds"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestSourceAttr(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithSource(context.Background(), "main.mg")
		logger.InfoContext(ctx, "lexed", "tokens", 3)
		logger.With("k", "v").InfoContext(ctx, "again")
		logger.Info("no source")

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.source=main.mg") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.source=main.mg") ||
			!strings.Contains(lines[1], "k=v") {
			t.Fatalf("got %v", lines[1])
		}
		if strings.Contains(lines[2], "logs.source") {
			t.Fatalf("got %v", lines[2])
		}
	})
}

func TestWrapSource(t *testing.T) {
	base := errors.New("boom")
	if err := WrapSource(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	ctx := WithSource(context.Background(), "a.mg")
	err := WrapSource(ctx, base)
	if !errors.Is(err, base) {
		t.Fatal()
	}
	if !strings.Contains(err.Error(), "source: a.mg") {
		t.Fatalf("got %v", err)
	}
	if WrapSource(ctx, nil) != nil {
		t.Fatal()
	}
}

func TestToJournalKey(t *testing.T) {
	if str := toJournalKey("logs.source"); str != "LOGS_SOURCE" {
		t.Fatalf("got %s", str)
	}
}

func TestTestWriter(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() Writer {
			return TestWriter(t)
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("to test log")
	})
}

func TestLogLevelCommand(t *testing.T) {
	defer level.Set(slog.LevelInfo)
	cmds.GlobalExecutor.MustExecute([]string{"-log-level", "warn"})
	if level.Level() != slog.LevelWarn {
		t.Fatalf("got %v", level.Level())
	}
	cmds.GlobalExecutor.MustExecute([]string{"-log-debug"})
	if level.Level() != slog.LevelDebug {
		t.Fatalf("got %v", level.Level())
	}
}
