package log

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options define nível, formato e destino dos logs
type Options struct {
	Level      string
	Format     string
	Output     string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

// Configure aplica as opções ao logger padrão do logrus e redefine L.
// Quando Output aponta para um arquivo, os logs também são rotacionados via lumberjack.
func Configure(opts Options) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logrus.SetOutput(newWriter(opts))

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func newWriter(opts Options) io.Writer {
	output := strings.TrimSpace(opts.Output)
	if output == "" || output == "stdout" {
		return os.Stdout
	}
	if output == "stderr" {
		return os.Stderr
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 100
	}

	fileWriter := &lumberjack.Logger{
		Filename:   output,
		MaxSize:    maxSize,
		MaxAge:     opts.MaxAgeDays,
		MaxBackups: opts.MaxBackups,
		Compress:   true,
	}

	return io.MultiWriter(os.Stdout, fileWriter)
}
