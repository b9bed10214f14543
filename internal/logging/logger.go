package logging

import "go.uber.org/zap"

// New はprodならJSON、それ以外は開発用の読みやすいロガーを返す
func New(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
