// Package logger configures the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// LogOptions controls Init.
type LogOptions struct {
	// Verbose switches to debug level.
	Verbose      bool
	DisableColor bool
	HideLogTime  bool
	HideLogPath  bool
	// OutputDir, when set, also writes a daily-rotated gridnav.log there.
	OutputDir string
	// Output replaces stderr; used by tests.
	Output io.Writer
}

// Init applies options to the standard logrus logger.
func Init(options LogOptions) error {
	if options.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.SetReportCaller(!options.HideLogPath)
	logrus.SetFormatter(&Formatter{
		DisableColor: options.DisableColor,
		HideLogTime:  options.HideLogTime,
		HideLogPath:  options.HideLogPath,
	})
	if options.Output != nil {
		logrus.SetOutput(options.Output)
	}

	if options.OutputDir != "" {
		fh, err := NewFileHook(options.OutputDir)
		if err != nil {
			return errors.Errorf("failed to init log file hook: %v", err)
		}
		logrus.AddHook(fh)
	}

	return nil
}

// NewFileHook returns a hook writing every level to dir/gridnav.log,
// rotated daily.
func NewFileHook(dir string) (logrus.Hook, error) {
	path := filepath.Join(dir, "gridnav.log")
	writer, err := rotatelogs.New(
		path+".%Y%m%d",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, errors.Wrap(err, "open rotating log")
	}

	return lfshook.NewHook(lfshook.WriterMap{
		logrus.InfoLevel:  writer,
		logrus.DebugLevel: writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, &logrus.TextFormatter{
		DisableColors: true,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			return "", fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		},
	}), nil
}
