// Package azure wraps the Azure control plane behind a narrow client
// interface so the fetch pipeline can run against the real az binary or
// an in-memory fake.
package azure

import (
	"context"
	"errors"
	"time"
)

// Subscription models an Azure subscription as returned by the control plane.
type Subscription struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// StateEnabled is the subscription state eligible for selection.
const StateEnabled = "Enabled"

// ResourceGroup is a named group of resources within a subscription.
type ResourceGroup struct {
	Name string `json:"name"`
}

// StorageAccount is a blob storage account within a resource group.
type StorageAccount struct {
	Name string `json:"name"`
}

// Container is a blob container within a storage account.
type Container struct {
	Name string `json:"name"`
}

// SASRequest describes the account SAS token to mint.
type SASRequest struct {
	Account     string
	Key         string
	Permissions string
	ExpiresAt   time.Time
	HTTPSOnly   bool
}

// SASPermissions is the capability set minted for a run: create, delete,
// list, read, write.
const SASPermissions = "cdlrw"

// SASLifetime bounds every minted token.
const SASLifetime = 24 * time.Hour

// NewSASRequest builds the standard least-privilege request for one run:
// read/write/list/delete/create on blob storage, HTTPS only, expiring
// exactly one day after now.
func NewSASRequest(account, key string, now time.Time) SASRequest {
	return SASRequest{
		Account:     account,
		Key:         key,
		Permissions: SASPermissions,
		ExpiresAt:   now.Add(SASLifetime),
		HTTPSOnly:   true,
	}
}

// ErrNoSession indicates the CLI is installed but no account is logged in.
var ErrNoSession = errors.New("no active azure session")

// Client is a narrow interface over the Azure control plane. Keep it
// small and focused on what the fetch pipeline actually needs so it
// stays mockable.
type Client interface {
	// Session
	CheckSession(ctx context.Context) error
	Login(ctx context.Context) error

	// Subscriptions
	ListSubscriptions(ctx context.Context) ([]Subscription, error)
	SetActiveSubscription(ctx context.Context, id string) error

	// Resources
	ListResourceGroups(ctx context.Context, suffix string) ([]ResourceGroup, error)
	ListStorageAccounts(ctx context.Context, group string) ([]StorageAccount, error)
	AccountKey(ctx context.Context, group, account string) (string, error)

	// Storage data-plane credentials and listing
	MintSAS(ctx context.Context, req SASRequest) (string, error)
	ListContainers(ctx context.Context, account, sas string, limit int) ([]Container, error)
}
