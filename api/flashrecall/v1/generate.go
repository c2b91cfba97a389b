// Package flashrecallv1 holds the generated flashrecall.v1 Scheduler messages
// and gRPC stubs. Edit scheduler.proto and regenerate.
package flashrecallv1

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative flashrecall/v1/scheduler.proto
