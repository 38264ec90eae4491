package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"hr-management-api/internal/store"
)

type MockExecuteStore struct {
	mock.Mock
}

func (m *MockExecuteStore) Find(ctx context.Context, collection string, query bson.M) ([]bson.M, error) {
	args := m.Called(ctx, collection, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockExecuteStore) UpdateMany(ctx context.Context, collection string, query, update bson.M) (int64, error) {
	args := m.Called(ctx, collection, query, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExecuteStore) DeleteMany(ctx context.Context, collection string, query bson.M) (int64, error) {
	args := m.Called(ctx, collection, query)
	return args.Get(0).(int64), args.Error(1)
}

type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) GetAdminByEmail(ctx context.Context, email string) (*store.Credentials, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Credentials), args.Error(1)
}
