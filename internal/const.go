package internal

import "time"

const (
	DefaultTokenTTL = 24 * time.Hour
	SecTen          = 10 * time.Second
	SecFive         = 5 * time.Second
)
