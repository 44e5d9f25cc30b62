package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/reusee/literate/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var (
	level    = new(slog.LevelVar)
	jsonFlag = cmds.Switch("-log-json")
)

func init() {
	for name, l := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cmds.Define("-log-"+name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+name))
	}
}

type Logger = *slog.Logger

// Logger writes to the terminal, and to the systemd journal when one is
// reachable. Under a systemd service only the journal is used. Tests never
// log to the journal.
func (Module) Logger(
	writer Writer,
	t *testing.T,
) Logger {
	var handlers []slog.Handler

	var terminal slog.Handler
	if !underSystemdService() {
		terminal = terminalHandler(writer)
		handlers = append(handlers, terminal)
	}

	if t == nil {
		journal, err := journalHandler()
		if err != nil {
			if terminal != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "systemd journal not available", 0)
				record.Add("error", err)
				_ = terminal.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journal)
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func terminalHandler(writer Writer) slog.Handler {
	options := &slog.HandlerOptions{
		Level: level,
	}
	if *jsonFlag {
		return slog.NewJSONHandler(writer, options)
	}
	return slog.NewTextHandler(writer, options)
}

func journalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		Level:        level,
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

// toJournalKey maps a key to the upper case alphanumeric form journald accepts.
func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(str))
}

func underSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	// hierarchy-ID:controllers:path
	parts := strings.SplitN(strings.TrimSpace(string(content)), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
