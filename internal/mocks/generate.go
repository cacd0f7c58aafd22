package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name DataBackend --dir ../usecase --output usecase --outpkg usecasemock --filename data_backend_mock.go
