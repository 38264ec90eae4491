package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"hr-management-api/internal/resource"
)

type MockResourceStore struct {
	mock.Mock
}

func (m *MockResourceStore) List(ctx context.Context, def resource.Definition) ([]bson.M, error) {
	args := m.Called(ctx, def)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockResourceStore) Get(ctx context.Context, def resource.Definition, id string) (bson.M, error) {
	args := m.Called(ctx, def, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockResourceStore) Insert(ctx context.Context, def resource.Definition, doc bson.M) (bson.M, error) {
	args := m.Called(ctx, def, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockResourceStore) Replace(ctx context.Context, def resource.Definition, id string, fields bson.M) (bson.M, error) {
	args := m.Called(ctx, def, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockResourceStore) Delete(ctx context.Context, def resource.Definition, id string) error {
	args := m.Called(ctx, def, id)
	return args.Error(0)
}

func (m *MockResourceStore) ResolveReference(ctx context.Context, ref resource.Reference, id bson.ObjectID) (bson.M, error) {
	args := m.Called(ctx, ref, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}
