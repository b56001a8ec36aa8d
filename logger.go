package learninglogs

// Logger is the diagnostic side-channel used by the connection provider and
// the journal. Failures that are not returned to a caller (a connection that
// fails to close) and failures worth recording on top of being returned
// (an insert or fetch that did not succeed) are written here.
//
// adapters/zlog provides an implementation backed by zerolog:
//
//	logger := zlog.New(log.Logger)
//	provider, err := learninglogs.NewConnectionProvider(cfg,
//	    learninglogs.WithProviderLogger(logger),
//	)
type Logger interface {
	// Debugf logs debug-level messages with printf-style formatting.
	Debugf(format string, args ...interface{})

	// Infof logs info-level messages with printf-style formatting.
	Infof(format string, args ...interface{})

	// Warnf logs warning-level messages with printf-style formatting.
	Warnf(format string, args ...interface{})

	// Errorf logs error-level messages with printf-style formatting.
	Errorf(format string, args ...interface{})
}

// NoopLogger discards everything. It is the default for the connection
// provider when no logger is configured.
type NoopLogger struct{}

// Debugf implements Logger.Debugf as a no-op.
func (l *NoopLogger) Debugf(_ string, _ ...interface{}) {}

// Infof implements Logger.Infof as a no-op.
func (l *NoopLogger) Infof(_ string, _ ...interface{}) {}

// Warnf implements Logger.Warnf as a no-op.
func (l *NoopLogger) Warnf(_ string, _ ...interface{}) {}

// Errorf implements Logger.Errorf as a no-op.
func (l *NoopLogger) Errorf(_ string, _ ...interface{}) {}
