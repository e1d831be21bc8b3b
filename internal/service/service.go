package service

import (
	"context"
)

type GreetingService interface {
	Greeting(ctx context.Context) string
}

type Service struct {
	GreetingService GreetingService
}

func NewService(greetingService GreetingService) *Service {
	return &Service{
		GreetingService: greetingService,
	}
}
