package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Embedder struct {
	mock.Mock
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	args := e.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (e *Embedder) Dimension() int {
	args := e.Called()
	return args.Int(0)
}
