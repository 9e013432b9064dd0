package logging

import "github.com/sirupsen/logrus"

var (
	logger *logrus.Entry
)

func SetLevel(l logrus.Level) {
	logger.Logger.SetLevel(l)
}

func init() {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
}

func Entry() *logrus.Entry {
	return logger
}
