package tests

// mocks_test.go holds hand-written testify mocks of the service ports, in the
// shape mockery produces. The directives below generate the mockery versions
// into ./mocks for comparison when a port changes; nothing imports them.
//
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name CategoryService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename category_service_mock.go --with-expecter
