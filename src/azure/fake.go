package azure

import (
	"context"
	"fmt"
	"strings"
)

// FakeClient is an in-memory Client for unit tests. Calls record enough
// state to assert on the pipeline's behavior without a real control plane.
type FakeClient struct {
	LoggedIn      bool
	LoginErr      error
	Subscriptions []Subscription
	Groups        []ResourceGroup
	Accounts      map[string][]StorageAccount // keyed by group name
	Keys          map[string]string           // keyed by account name
	Containers    []Container
	SAS           string

	ActiveSubscription    string
	MintedRequests        []SASRequest
	ContainerLimit        int
	ListSubscriptionCalls int
}

func NewFake() *FakeClient {
	return &FakeClient{
		LoggedIn: true,
		Accounts: map[string][]StorageAccount{},
		Keys:     map[string]string{},
		SAS:      "sig=fake",
	}
}

func (f *FakeClient) CheckSession(ctx context.Context) error {
	if !f.LoggedIn {
		return ErrNoSession
	}
	return nil
}

func (f *FakeClient) Login(ctx context.Context) error {
	if f.LoginErr != nil {
		return f.LoginErr
	}
	f.LoggedIn = true
	return nil
}

func (f *FakeClient) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	f.ListSubscriptionCalls++
	return f.Subscriptions, nil
}

func (f *FakeClient) SetActiveSubscription(ctx context.Context, id string) error {
	f.ActiveSubscription = id
	return nil
}

func (f *FakeClient) ListResourceGroups(ctx context.Context, suffix string) ([]ResourceGroup, error) {
	var matched []ResourceGroup
	for _, g := range f.Groups {
		if suffix == "" || strings.HasSuffix(g.Name, suffix) {
			matched = append(matched, g)
		}
	}
	return matched, nil
}

func (f *FakeClient) ListStorageAccounts(ctx context.Context, group string) ([]StorageAccount, error) {
	return f.Accounts[group], nil
}

func (f *FakeClient) AccountKey(ctx context.Context, group, account string) (string, error) {
	key, ok := f.Keys[account]
	if !ok {
		return "", fmt.Errorf("storage account %q has no keys", account)
	}
	return key, nil
}

func (f *FakeClient) MintSAS(ctx context.Context, req SASRequest) (string, error) {
	f.MintedRequests = append(f.MintedRequests, req)
	return f.SAS, nil
}

func (f *FakeClient) ListContainers(ctx context.Context, account, sas string, limit int) ([]Container, error) {
	f.ContainerLimit = limit
	if limit > 0 && len(f.Containers) > limit {
		return f.Containers[:limit], nil
	}
	return f.Containers, nil
}
