package logger

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/avikm/job-board/pkg/loki"
	log "github.com/sirupsen/logrus"
)

type logrusAdapter struct {
}

func (l *logrusAdapter) Error(msg string, args ...any) {
	log.WithFields(log.Fields{"args": args, "source": "loki"}).Error(msg)
}

type lokiHook struct {
	client   *loki.Client
	minLevel log.Level
}

func (h *lokiHook) Fire(entry *log.Entry) error {
	// the loki client reports its own failures through logrus; pushing those
	// back to loki would loop
	if entry.Data["source"] == "loki" {
		return nil
	}

	caller := ""
	if entry.Caller != nil {
		caller = filepath.Base(entry.Caller.Function) + ":" + strconv.Itoa(entry.Caller.Line)
	}

	h.client.Push(loki.Line{
		Level:   entry.Level.String(),
		Message: entry.Message,
		Caller:  caller,
	})
	return nil
}

func (h *lokiHook) Levels() []log.Level {
	var levels []log.Level
	for _, level := range log.AllLevels {
		if level <= h.minLevel {
			levels = append(levels, level)
		}
	}
	return levels
}

func addLokiHook(ctx context.Context, cfg loki.Config, minLevel log.Level) error {
	client, err := loki.New(ctx, cfg, &logrusAdapter{})
	if err != nil {
		return err
	}
	log.AddHook(&lokiHook{client: client, minLevel: minLevel})
	log.Info("Loki logging enabled")
	return nil
}
