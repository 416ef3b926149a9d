package mocks

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o=metrics.client.mock.go ../telemetry/metrics/base Client

//counterfeiter:generate -o=storage.objectapi.mock.go ../storage ObjectAPI
//counterfeiter:generate -o=storage.store.mock.go ../storage Store
