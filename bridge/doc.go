// Package bridge connects the common Go logging libraries to an
// oslog.Logger, so code already written against zap, logrus or zerolog
// can write to Apple's unified logging system.
//
//   - NewZapCore returns a zapcore.Core.
//   - NewLogrusHook returns a logrus.Hook.
//   - NewZerologWriter returns a zerolog.LevelWriter.
//
// Each library's level is first mapped to a core.Level and then to a
// native type with oslog.TypeFor, so a warning is stored the same way
// whichever library produced it.
package bridge
