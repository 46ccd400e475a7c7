package picker

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"azpull/src/azure"
)

func init() {
	color.NoColor = true
}

func TestSelectSubscription_FiltersAndSortsByName(t *testing.T) {
	fake := azure.NewFake()
	fake.Subscriptions = []azure.Subscription{
		{ID: "sub-z", Name: "Zeta", State: "Enabled"},
		{ID: "sub-d", Name: "Delta", State: "Disabled"},
		{ID: "sub-a", Name: "Alpha", State: "Enabled"},
	}

	var out bytes.Buffer
	got, err := SelectSubscription(context.Background(), fake, strings.NewReader("1\n"), &out)
	require.NoError(t, err)

	// Disabled subscriptions never appear; the first menu entry is the
	// lexically first display name.
	assert.Equal(t, "sub-a", got.ID)
	assert.NotContains(t, out.String(), "Delta")
	assert.Contains(t, out.String(), "1) Alpha (sub-a)")
	assert.Contains(t, out.String(), "2) Zeta (sub-z)")
}

func TestSelectSubscription_IndexMapsIntoSortedOrder(t *testing.T) {
	fake := azure.NewFake()
	fake.Subscriptions = []azure.Subscription{
		{ID: "sub-c", Name: "Charlie", State: "Enabled"},
		{ID: "sub-a", Name: "Alpha", State: "Enabled"},
		{ID: "sub-b", Name: "Bravo", State: "Enabled"},
	}

	var out bytes.Buffer
	got, err := SelectSubscription(context.Background(), fake, strings.NewReader("2\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "sub-b", got.ID)
}

func TestSelectSubscription_NoneEnabled(t *testing.T) {
	fake := azure.NewFake()
	fake.Subscriptions = []azure.Subscription{{ID: "s", Name: "Old", State: "Disabled"}}

	var out bytes.Buffer
	_, err := SelectSubscription(context.Background(), fake, strings.NewReader(""), &out)
	assert.ErrorContains(t, err, "no enabled subscriptions")
	assert.NotContains(t, out.String(), "Select")
}

func TestSelectSubscription_InvalidInput(t *testing.T) {
	fake := azure.NewFake()
	fake.Subscriptions = []azure.Subscription{{ID: "s", Name: "One", State: "Enabled"}}

	var out bytes.Buffer
	_, err := SelectSubscription(context.Background(), fake, strings.NewReader("7\n"), &out)
	assert.ErrorContains(t, err, "invalid selection")
}

func TestLocateGroup_ZeroMatchesFailsWithoutPrompt(t *testing.T) {
	fake := azure.NewFake()
	fake.Groups = []azure.ResourceGroup{{Name: "site-web"}}

	var out bytes.Buffer
	_, err := LocateGroup(context.Background(), fake, "-backups", "", strings.NewReader(""), &out)
	assert.ErrorContains(t, err, `no resource groups matching suffix "-backups"`)
	assert.NotContains(t, out.String(), "Select")
}

func TestLocateGroup_SingleMatchAutoSelects(t *testing.T) {
	fake := azure.NewFake()
	fake.Groups = []azure.ResourceGroup{{Name: "site-a-backups"}, {Name: "site-a-web"}}

	var out bytes.Buffer
	got, err := LocateGroup(context.Background(), fake, "-backups", "", strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "site-a-backups", got.Name)
	assert.Contains(t, out.String(), "Using resource group site-a-backups")
	assert.NotContains(t, out.String(), "Select")
}

func TestLocateGroup_MultipleMatchesPrompt(t *testing.T) {
	fake := azure.NewFake()
	fake.Groups = []azure.ResourceGroup{{Name: "a-backups"}, {Name: "b-backups"}, {Name: "c-backups"}}

	var out bytes.Buffer
	got, err := LocateGroup(context.Background(), fake, "-backups", "", strings.NewReader("3\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "c-backups", got.Name)
}

func TestLocateGroup_MultipleMatchesInvalidSelection(t *testing.T) {
	fake := azure.NewFake()
	fake.Groups = []azure.ResourceGroup{{Name: "a-backups"}, {Name: "b-backups"}}

	var out bytes.Buffer
	_, err := LocateGroup(context.Background(), fake, "-backups", "", strings.NewReader("\n"), &out)
	assert.ErrorContains(t, err, "invalid selection")
}

func TestLocateGroup_HintSkipsListing(t *testing.T) {
	fake := azure.NewFake() // no groups configured on purpose

	var out bytes.Buffer
	got, err := LocateGroup(context.Background(), fake, "-backups", "pinned-backups", strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "pinned-backups", got.Name)
}

func TestLocateAccount_ZeroFails(t *testing.T) {
	fake := azure.NewFake()
	var out bytes.Buffer
	_, err := LocateAccount(context.Background(), fake, azure.ResourceGroup{Name: "grp"}, strings.NewReader(""), &out)
	assert.ErrorContains(t, err, `no storage accounts in resource group "grp"`)
}

func TestLocateAccount_SingleAutoSelects(t *testing.T) {
	fake := azure.NewFake()
	fake.Accounts["grp"] = []azure.StorageAccount{{Name: "prodsite"}}

	var out bytes.Buffer
	got, err := LocateAccount(context.Background(), fake, azure.ResourceGroup{Name: "grp"}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "prodsite", got.Name)
}

func TestSelectContainer_EmptyFailsDistinctly(t *testing.T) {
	fake := azure.NewFake()

	var out bytes.Buffer
	_, err := SelectContainer(context.Background(), fake, "acct", "sig", 10, strings.NewReader(""), &out)
	assert.ErrorContains(t, err, `no containers found in storage account "acct"`)
}

func TestSelectContainer_SortsPageDescendingByName(t *testing.T) {
	fake := azure.NewFake()
	fake.Containers = []azure.Container{
		{Name: "backup-2024-03-01"},
		{Name: "backup-2024-05-14"},
		{Name: "backup-2024-01-20"},
	}

	var out bytes.Buffer
	got, err := SelectContainer(context.Background(), fake, "acct", "sig", 10, strings.NewReader("1\n"), &out)
	require.NoError(t, err)

	// Index 1 is the lexically last name of the fetched page.
	assert.Equal(t, "backup-2024-05-14", got.Name)
	assert.Equal(t, 10, fake.ContainerLimit)

	rendered := out.String()
	assert.Less(t, strings.Index(rendered, "backup-2024-05-14"), strings.Index(rendered, "backup-2024-03-01"))
	assert.Less(t, strings.Index(rendered, "backup-2024-03-01"), strings.Index(rendered, "backup-2024-01-20"))
}

func TestSelectContainer_OutOfRange(t *testing.T) {
	fake := azure.NewFake()
	fake.Containers = []azure.Container{{Name: "only"}}

	var out bytes.Buffer
	_, err := SelectContainer(context.Background(), fake, "acct", "sig", 10, strings.NewReader("2\n"), &out)
	assert.ErrorContains(t, err, "invalid selection")
}
