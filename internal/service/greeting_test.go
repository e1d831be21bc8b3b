package service_test

import (
	"context"
	"sync"
	"testing"

	"hallo/internal/service"
)

func TestGreetingService_Constant(t *testing.T) {
	t.Parallel()

	svc := service.NewService(service.NewGreetingService())

	for i := 0; i < 3; i++ {
		if got := svc.Greeting(context.Background()); got != "Hallo World" {
			t.Fatalf("call %d: got %q want %q", i, got, "Hallo World")
		}
	}
}

func TestGreetingService_Concurrent(t *testing.T) {
	t.Parallel()

	svc := service.NewGreetingService()

	var wg sync.WaitGroup
	errs := make(chan string, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := svc.Greeting(context.Background()); got != service.Greeting {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Fatalf("unexpected greeting %q", got)
	}
}
