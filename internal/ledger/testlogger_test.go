package ledger

// testLogger satisfies domain.Logger and discards everything.
type testLogger struct{}

func (testLogger) Debug(msg string, fields ...interface{})            {}
func (testLogger) Info(msg string, fields ...interface{})             {}
func (testLogger) Warn(msg string, fields ...interface{})             {}
func (testLogger) Error(msg string, err error, fields ...interface{}) {}
