package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ankaa-erp/backend/repositories"
)

type ExecutorFactory struct {
	mock.Mock
	TxMock *Transaction
}

func (f *ExecutorFactory) GetExecutor() repositories.Executor {
	args := f.Called()
	if exec := args.Get(0); exec != nil {
		return exec.(repositories.Executor)
	}
	return nil
}

func (f *ExecutorFactory) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	args := f.Called(ctx, fn)
	if err := fn(f.TxMock); err != nil {
		return err
	}
	return args.Error(0)
}
