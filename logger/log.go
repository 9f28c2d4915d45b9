package logger

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.New()
var level string = "info"

func init() {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

func GetLevel() string {
	return level
}

func SetLevel(lvl string) {
	if lvl == "" {
		lvl = "info"
	}
	parsed, err := logrus.ParseLevel(lvl)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	level = lvl
	log.SetLevel(parsed)
}

func SetLogger(logger *logrus.Logger) {
	log = logger
}

func Log(args ...interface{}) {
	if level == "error" {
		Error(args...)
	} else if level == "debug" {
		Debug(args...)
	} else {
		Info(args...)
	}
}

func Debug(args ...interface{}) {
	log.Debug(args...)
}

func Info(args ...interface{}) {
	log.Info(args...)
}

func Error(args ...interface{}) {
	log.Error(args...)
}

func Logf(template string, args ...interface{}) {
	if level == "error" {
		Errorf(template, args...)
	} else if level == "debug" {
		Debugf(template, args...)
	} else {
		Infof(template, args...)
	}
}

func Debugf(template string, args ...interface{}) {
	log.Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	log.Infof(template, args...)
}

func Errorf(template string, args ...interface{}) {
	log.Errorf(template, args...)
}
