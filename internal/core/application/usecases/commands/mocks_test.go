package commands_test

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTruckRepository struct{ mock.Mock }

func (m *MockTruckRepository) Save(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTruckRepository) GetAll(ctx context.Context) ([]*truck.Truck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

type MockDeliveryRegistry struct{ mock.Mock }

func (m *MockDeliveryRegistry) Register(truckID string, travelTime time.Duration, packageCount int) (delivery.Delivery, error) {
	args := m.Called(truckID, travelTime, packageCount)
	return args.Get(0).(delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRegistry) DrainOverdue(now time.Time) []delivery.Delivery {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]delivery.Delivery)
}

type MockTravelTimeSampler struct{ mock.Mock }

func (m *MockTravelTimeSampler) Sample() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

type MockArrivalPublisher struct{ mock.Mock }

func (m *MockArrivalPublisher) PublishArrival(ctx context.Context, a delivery.Arrival) {
	m.Called(ctx, a)
}

type MockMetrics struct {
	ports.NopMetrics
	mock.Mock
}

func (m *MockMetrics) ObservePackagesPerTruck(count int) {
	m.Called(count)
}

func (m *MockMetrics) AddTrucksInDelivery(delta int) {
	m.Called(delta)
}

func (m *MockMetrics) AddPackagesWaiting(delta int) {
	m.Called(delta)
}

func (m *MockMetrics) ObserveDeliveryTime(d time.Duration) {
	m.Called(d)
}
