package picker

import (
	"context"
	"fmt"
	"io"
	"sort"

	"azpull/src/azure"
	"azpull/src/menu"
)

// SelectContainer fetches the most recent containers (up to limit) and
// prompts for a choice. The fetched page is re-sorted descending by
// name; containers beyond the page are never shown.
func SelectContainer(ctx context.Context, c azure.Client, account, sas string, limit int, in io.Reader, out io.Writer) (azure.Container, error) {
	containers, err := c.ListContainers(ctx, account, sas, limit)
	if err != nil {
		return azure.Container{}, err
	}
	if len(containers) == 0 {
		return azure.Container{}, fmt.Errorf("no containers found in storage account %q", account)
	}
	sort.Slice(containers, func(i, j int) bool { return containers[i].Name > containers[j].Name })

	items := make([]string, len(containers))
	for i, ct := range containers {
		items[i] = ct.Name
	}
	idx, err := menu.Select(in, out, "Containers", items)
	if err != nil {
		return azure.Container{}, err
	}
	return containers[idx], nil
}
