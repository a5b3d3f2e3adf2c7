// Package service holds the chat use cases: the backend facade over the
// relational store and push channel, conversation resolution, the send
// pipeline and background read tracking.
package service

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks gomarket/internal/chat/repository ChatRepository
//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks gomarket/internal/chat/realtime Publisher
//go:generate mockgen -destination=mocks/mock_uploader.go -package=mocks gomarket/internal/chat/service Uploader
