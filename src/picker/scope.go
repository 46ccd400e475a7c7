package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"azpull/src/azure"
	"azpull/src/menu"
)

// SelectSubscription lists the account's subscriptions, filters to the
// enabled ones, and prompts for a choice. The menu is ordered ascending
// by display name and selections are 1-based.
func SelectSubscription(ctx context.Context, c azure.Client, in io.Reader, out io.Writer) (azure.Subscription, error) {
	subs, err := c.ListSubscriptions(ctx)
	if err != nil {
		return azure.Subscription{}, err
	}

	var enabled []azure.Subscription
	for _, s := range subs {
		if s.State == azure.StateEnabled {
			enabled = append(enabled, s)
		}
	}
	if len(enabled) == 0 {
		return azure.Subscription{}, errors.New("no enabled subscriptions found")
	}
	sort.Slice(enabled, func(i, j int) bool { return enabled[i].Name < enabled[j].Name })

	items := make([]string, len(enabled))
	for i, s := range enabled {
		items[i] = fmt.Sprintf("%s (%s)", s.Name, s.ID)
	}
	idx, err := menu.Select(in, out, "Subscriptions", items)
	if err != nil {
		return azure.Subscription{}, err
	}
	return enabled[idx], nil
}
