package natsrelay

import "github.com/nats-io/nats.go"

func SetNatsConnectFunc(f func(string, ...nats.Option) (*nats.Conn, error)) (restore func()) {
	prev := natsConnectFunc
	natsConnectFunc = f
	return func() { natsConnectFunc = prev }
}
