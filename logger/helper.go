package logger

// Helper adds leveled shorthands to a Logger.
type Helper struct {
	Logger
}

func NewHelper(l Logger) *Helper {
	return &Helper{l}
}

func (h *Helper) Tracef(format string, v ...interface{}) { h.Logf(TraceLevel, format, v...) }
func (h *Helper) Debugf(format string, v ...interface{}) { h.Logf(DebugLevel, format, v...) }
func (h *Helper) Info(v ...interface{})                  { h.Log(InfoLevel, v...) }
func (h *Helper) Infof(format string, v ...interface{})  { h.Logf(InfoLevel, format, v...) }
func (h *Helper) Warnf(format string, v ...interface{})  { h.Logf(WarnLevel, format, v...) }
func (h *Helper) Error(v ...interface{})                 { h.Log(ErrorLevel, v...) }
func (h *Helper) Errorf(format string, v ...interface{}) { h.Logf(ErrorLevel, format, v...) }

// WithError returns a Helper logging err under "error". A nil err returns h.
func (h *Helper) WithError(err error) *Helper {
	if err == nil {
		return h
	}
	return h.WithFields(map[string]interface{}{"error": err.Error()})
}

// WithFields returns a Helper whose entries carry fields on top of h's.
func (h *Helper) WithFields(fields map[string]interface{}) *Helper {
	return &Helper{h.Fields(fields)}
}
