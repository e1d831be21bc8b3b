package service

import "context"

const Greeting = "Hallo World"

type greetingService struct{}

func NewGreetingService() GreetingService {
	return &greetingService{}
}

func (s *greetingService) Greeting(_ context.Context) string {
	return Greeting
}

func (s *Service) Greeting(ctx context.Context) string {
	return s.GreetingService.Greeting(ctx)
}
