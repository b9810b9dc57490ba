// Package wirecc implements a minimal binary wire-format codec: a
// cursor-based byte buffer that serializes and deserializes primitive
// values, strings, nested buffers and resource-id sets using a fixed
// big-endian encoding.
//
// The codec is the foundation layer for a message-passing protocol: a
// producer writes typed fields into a bytebuffer.ByteBuffer in an agreed
// order, hands the raw bytes to a transport, and the consumer loads the
// same bytes and reads the fields back in the identical order. The
// buffer itself carries no schema, so field ordering is the caller's
// contract.
//
// The root package holds the resource-id model and its set encoding, a
// fixed-width Bitmap for flag tracking, and generic combination/random
// draw generators. The wire-level layers live in the endian and
// bytebuffer subpackages.
package wirecc

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

// EnableLogging enables logging if true is passed and disables it if
// false is passed. Logging is disabled by default.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.InfoLevel,
	))
}

func init() {
	logging = false
	initializeLogger()
}
