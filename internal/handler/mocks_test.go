package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gameworld/gameworld/internal/auth"
	"github.com/gameworld/gameworld/internal/domain"
	"github.com/gameworld/gameworld/internal/session"
)

// Mock services shared by the handler tests

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, credentialHash string) (*auth.LoginResult, error) {
	args := m.Called(ctx, username, credentialHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.LoginResult), args.Error(1)
}

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) GetInventory(ctx context.Context, playerID int) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) AddItem(ctx context.Context, playerID, itemID, quantity int) error {
	args := m.Called(ctx, playerID, itemID, quantity)
	return args.Error(0)
}

type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) GetQuests(ctx context.Context, playerID int) ([]domain.PlayerQuestView, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlayerQuestView), args.Error(1)
}

func (m *MockQuestService) UpdateStatus(ctx context.Context, playerID, questID int, rawStatus string) error {
	args := m.Called(ctx, playerID, questID, rawStatus)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) PostLogin(ctx context.Context, playerID int) (*session.State, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.State), args.Error(1)
}
