package bridge_test

import (
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/unifiedlog/bridge"
	"github.com/philipp01105/unifiedlog/core"
	"github.com/philipp01105/unifiedlog/oslog"
	"github.com/philipp01105/unifiedlog/oslog/oslogtest"
)

func newTarget(t *testing.T) (*oslog.Logger, *oslogtest.Recorder) {
	t.Helper()
	rec := oslogtest.NewRecorder()
	l, err := oslog.New(rec, "com.example.bridge", "test")
	require.NoError(t, err)
	return l, rec
}

func TestZapCore(t *testing.T) {
	target, rec := newTarget(t)
	log := zap.New(bridge.NewZapCore(target, zapcore.DebugLevel))

	log.Debug("starting")
	log.Info("hello", zap.Int("n", 1))
	log.With(zap.String("svc", "api")).Warn("slow")
	log.Error("boom", zap.Error(errors.New("disk full")))
	log.DPanic("bad state")

	assert.Equal(t, []oslog.Type{
		oslog.TypeDebug, oslog.TypeInfo, oslog.TypeError, oslog.TypeError, oslog.TypeFault,
	}, rec.Types())
	assert.Equal(t, []string{
		"starting",
		`hello {"n": 1}`,
		`slow {"svc": "api"}`,
		`boom {"error": "disk full"}`,
		"bad state",
	}, rec.Messages())
}

func TestZapCore_LevelEnabler(t *testing.T) {
	target, rec := newTarget(t)
	log := zap.New(bridge.NewZapCore(target, zapcore.WarnLevel))

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept")

	assert.Equal(t, []string{"kept"}, rec.Messages())
}

func TestZapCore_NilEnablerDefaultsToDebug(t *testing.T) {
	target, rec := newTarget(t)
	c := bridge.NewZapCore(target, nil)

	assert.False(t, c.Enabled(zapcore.DebugLevel-1))
	assert.True(t, c.Enabled(zapcore.DebugLevel))

	zap.New(c).Info("no panic")
	assert.Equal(t, []string{"no panic"}, rec.Messages())
}

func TestZapLevelToCore(t *testing.T) {
	tests := []struct {
		in   zapcore.Level
		want core.Level
	}{
		{zapcore.DebugLevel - 1, core.TraceLevel},
		{zapcore.DebugLevel, core.DebugLevel},
		{zapcore.InfoLevel, core.InfoLevel},
		{zapcore.WarnLevel, core.WarnLevel},
		{zapcore.ErrorLevel, core.ErrorLevel},
		{zapcore.DPanicLevel, core.CriticalLevel},
		{zapcore.PanicLevel, core.CriticalLevel},
		{zapcore.FatalLevel, core.CriticalLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bridge.ZapLevelToCore(tt.in), tt.in.String())
	}
}

func TestLogrusHook(t *testing.T) {
	target, rec := newTarget(t)
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.TraceLevel)
	log.AddHook(bridge.NewLogrusHook(target))

	log.Trace("tick")
	log.WithField("user", "ann").WithField("attempt", 2).Warn("retrying")
	log.WithError(errors.New("timeout")).Error("request failed")

	assert.Equal(t, []oslog.Type{oslog.TypeDefault, oslog.TypeError, oslog.TypeError}, rec.Types())
	assert.Equal(t, []string{
		"tick",
		"retrying attempt=2 user=ann",
		"request failed error=timeout",
	}, rec.Messages())
}

func TestLogrusHook_Levels(t *testing.T) {
	target, rec := newTarget(t)
	hook := bridge.NewLogrusHook(target, logrus.ErrorLevel)
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())
	assert.Equal(t, logrus.AllLevels, bridge.NewLogrusHook(target).Levels())

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.AddHook(hook)

	log.Info("not forwarded")
	log.Error("forwarded")

	assert.Equal(t, []string{"forwarded"}, rec.Messages())
}

func TestLogrusLevelToCore(t *testing.T) {
	tests := map[logrus.Level]core.Level{
		logrus.TraceLevel: core.TraceLevel,
		logrus.DebugLevel: core.DebugLevel,
		logrus.InfoLevel:  core.InfoLevel,
		logrus.WarnLevel:  core.WarnLevel,
		logrus.ErrorLevel: core.ErrorLevel,
		logrus.FatalLevel: core.CriticalLevel,
		logrus.PanicLevel: core.CriticalLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, bridge.LogrusLevelToCore(in), in.String())
	}
}

func TestZerologWriter(t *testing.T) {
	target, rec := newTarget(t)
	log := zerolog.New(bridge.NewZerologWriter(target))

	log.Info().Str("user", "ann").Int("n", 3).Msg("hi")
	log.Warn().Msg("careful")
	log.Log().Msg("plain")

	assert.Equal(t, []oslog.Type{oslog.TypeInfo, oslog.TypeError, oslog.TypeDefault}, rec.Types())
	assert.Equal(t, []string{"hi n=3 user=ann", "careful", "plain"}, rec.Messages())
}

func TestZerologWriter_RawWrite(t *testing.T) {
	target, rec := newTarget(t)
	w := bridge.NewZerologWriter(target)

	n, err := w.Write([]byte("not json\n"))
	require.NoError(t, err)
	assert.Equal(t, len("not json\n"), n)

	assert.Equal(t, []string{"not json"}, rec.Messages())
	assert.Equal(t, []oslog.Type{oslog.TypeDefault}, rec.Types())
}

func TestZerologLevelToCore(t *testing.T) {
	tests := map[zerolog.Level]core.Level{
		zerolog.TraceLevel: core.TraceLevel,
		zerolog.DebugLevel: core.DebugLevel,
		zerolog.InfoLevel:  core.InfoLevel,
		zerolog.WarnLevel:  core.WarnLevel,
		zerolog.ErrorLevel: core.ErrorLevel,
		zerolog.FatalLevel: core.CriticalLevel,
		zerolog.PanicLevel: core.CriticalLevel,
		zerolog.NoLevel:    core.NoneLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, bridge.ZerologLevelToCore(in), in.String())
	}
}
