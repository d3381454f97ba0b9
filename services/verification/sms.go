package verification

import "go.uber.org/zap"

// LogSMSSender logs outgoing messages instead of delivering them. Replace
// with a real gateway integration for production deployments.
type LogSMSSender struct{}

func (LogSMSSender) Send(phoneNumber, message string) error {
	zap.L().Sugar().Infof("Sending SMS to %s: %s", phoneNumber, message)
	return nil
}
