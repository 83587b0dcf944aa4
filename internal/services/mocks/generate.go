package mocks

//go:generate go run github.com/golang/mock/mockgen -destination=mock_scheduler.go -package=mocks github.com/jaronheard/soonlist-turbo-sub000/internal/services Scheduler
