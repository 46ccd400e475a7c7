package picker

import (
	"context"
	"fmt"
	"io"

	"azpull/src/azure"
	"azpull/src/menu"
)

// LocateGroup resolves exactly one resource group matching the naming
// suffix. A preset hint short-circuits the lookup entirely. Zero matches
// is fatal; a single match auto-selects and is reported; multiple matches
// prompt for a choice.
func LocateGroup(ctx context.Context, c azure.Client, suffix, hint string, in io.Reader, out io.Writer) (azure.ResourceGroup, error) {
	if hint != "" {
		return azure.ResourceGroup{Name: hint}, nil
	}

	groups, err := c.ListResourceGroups(ctx, suffix)
	if err != nil {
		return azure.ResourceGroup{}, err
	}
	switch len(groups) {
	case 0:
		return azure.ResourceGroup{}, fmt.Errorf("no resource groups matching suffix %q", suffix)
	case 1:
		fmt.Fprintf(out, "Using resource group %s\n", groups[0].Name)
		return groups[0], nil
	}

	items := make([]string, len(groups))
	for i, g := range groups {
		items[i] = g.Name
	}
	idx, err := menu.Select(in, out, "Resource groups", items)
	if err != nil {
		return azure.ResourceGroup{}, err
	}
	return groups[idx], nil
}

// LocateAccount resolves exactly one storage account within the group,
// with the same zero/one/many handling as LocateGroup.
func LocateAccount(ctx context.Context, c azure.Client, group azure.ResourceGroup, in io.Reader, out io.Writer) (azure.StorageAccount, error) {
	accounts, err := c.ListStorageAccounts(ctx, group.Name)
	if err != nil {
		return azure.StorageAccount{}, err
	}
	switch len(accounts) {
	case 0:
		return azure.StorageAccount{}, fmt.Errorf("no storage accounts in resource group %q", group.Name)
	case 1:
		fmt.Fprintf(out, "Using storage account %s\n", accounts[0].Name)
		return accounts[0], nil
	}

	items := make([]string, len(accounts))
	for i, a := range accounts {
		items[i] = a.Name
	}
	idx, err := menu.Select(in, out, "Storage accounts", items)
	if err != nil {
		return azure.StorageAccount{}, err
	}
	return accounts[idx], nil
}
