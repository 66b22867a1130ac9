//go:build dev
// +build dev

package logger

import "github.com/sirupsen/logrus"

const defaultLevel = logrus.DebugLevel

func HandleError(err error) {
	log.WithError(err).Error("Dev Mode - Error")
}

func HandleLog(message string) {
	log.Info(message)
}
