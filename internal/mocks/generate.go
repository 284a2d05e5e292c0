package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Feed --dir ../interfaces/cli --output interfaces/cli --outpkg climock --filename feed_mock.go
