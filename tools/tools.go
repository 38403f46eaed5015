//go:build tools

// Пакет tools фиксирует способ генерации кода API.
// Генераторы protoc устанавливаются вручную:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@v1.36.11
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@v1.6.0
//
// Генерация из корня репозитория:
//
//	protoc -I . --go_out=. --go_opt=paths=source_relative \
//		--go-grpc_out=. --go-grpc_opt=paths=source_relative \
//		proto/oms/v1/oms.proto
package tools
