package transport

import (
	"github.com/blockpulse/blockpulse-monitor/internal/monitor"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// StatusProvider reports the monitor session state served over HTTP.
type StatusProvider interface {
	Status() monitor.Status
}
