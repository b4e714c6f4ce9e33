package mongo

import "errors"

var (
	ErrConnectFailed     = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)
