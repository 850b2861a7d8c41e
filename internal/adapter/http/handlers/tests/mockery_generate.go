package tests

// Mock generation example for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskOps --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_ops_mock.go --with-expecter
