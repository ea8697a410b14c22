package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type logConfig struct {
	Level       string `long:"level" env:"LEVEL" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Development bool   `long:"development" env:"DEVELOPMENT" description:"human readable development logging"`
	File        string `long:"file" env:"FILE" description:"also write logs to this file, rotated"`
	MaxSize     int    `long:"max-size" env:"MAX_SIZE" description:"megabytes per log file before rotation" default:"100"`
	MaxBackups  int    `long:"max-backups" env:"MAX_BACKUPS" description:"rotated log files to keep" default:"5"`
	MaxAge      int    `long:"max-age" env:"MAX_AGE" description:"days to keep rotated log files" default:"30"`
	Compress    bool   `long:"compress" env:"COMPRESS" description:"gzip rotated log files"`
}

func newLogger(cfg logConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	consoleEncoder := zapcore.NewJSONEncoder(encoderCfg)
	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		consoleEncoder = zapcore.NewConsoleEncoder(encoderCfg)
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level),
	}
	if cfg.File != "" {
		file := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), file, level))
	}
	return zap.New(zapcore.NewTee(cores...), opts...), nil
}
