//go:build !dev
// +build !dev

package logger

import "github.com/sirupsen/logrus"

const defaultLevel = logrus.InfoLevel

func HandleError(err error) {
	log.WithError(err).Warn("request failed")
}

func HandleLog(message string) {
	log.Debug(message)
}
