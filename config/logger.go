package config

import "go.uber.org/zap"

var Log *zap.Logger = zap.NewNop()

// InitLogger memakai logger development saat mode debug supaya output
// enak dibaca, selain itu JSON production.
func InitLogger(mode string) error {
	var (
		l   *zap.Logger
		err error
	)
	if mode == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}
