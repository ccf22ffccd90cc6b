package endpoints

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rolegate/pkg/discord"
)

// MockExchanger implements server.TokenExchanger for testing using testify/mock
type MockExchanger struct {
	mock.Mock
}

func NewMockExchanger() *MockExchanger {
	return &MockExchanger{}
}

func (m *MockExchanger) AuthCodeURL(redirectURI string) string {
	args := m.Called(redirectURI)
	return args.String(0)
}

func (m *MockExchanger) Exchange(ctx context.Context, code string) (*discord.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discord.Token), args.Error(1)
}

// MockMemberFetcher implements rolecheck.MemberFetcher for testing using testify/mock
type MockMemberFetcher struct {
	mock.Mock
}

func NewMockMemberFetcher() *MockMemberFetcher {
	return &MockMemberFetcher{}
}

func (m *MockMemberFetcher) GuildMember(ctx context.Context, accessToken, guildID string) (*discord.Member, error) {
	args := m.Called(ctx, accessToken, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discord.Member), args.Error(1)
}

// MockProfileFetcher implements server.ProfileFetcher for testing using testify/mock
type MockProfileFetcher struct {
	mock.Mock
}

func NewMockProfileFetcher() *MockProfileFetcher {
	return &MockProfileFetcher{}
}

func (m *MockProfileFetcher) Me(ctx context.Context, accessToken string) (*discord.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discord.User), args.Error(1)
}
