package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// runner executes one az invocation and returns its stdout. Swappable in
// tests so parsing can be exercised against canned output.
type runner func(ctx context.Context, args ...string) ([]byte, error)

// CLIClient implements Client by shelling out to the `az` binary and
// parsing its JSON output. Every call blocks until az returns; no
// timeouts or retries are applied.
type CLIClient struct {
	run runner
	log *zap.Logger
}

// NewCLIClient returns a client backed by the az binary on PATH.
func NewCLIClient(log *zap.Logger) *CLIClient {
	if log == nil {
		log = zap.NewNop()
	}
	c := &CLIClient{log: log}
	c.run = c.execAz
	return c
}

func (c *CLIClient) execAz(ctx context.Context, args ...string) ([]byte, error) {
	c.log.Debug("az", zap.Strings("args", args))
	cmd := exec.CommandContext(ctx, "az", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("azure cli not found; install it and run 'az login' first: %w", err)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("az %s: %s", strings.Join(args, " "), msg)
	}
	return stdout.Bytes(), nil
}

func (c *CLIClient) CheckSession(ctx context.Context) error {
	_, err := c.run(ctx, "account", "show", "--output", "json")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return err
		}
		return ErrNoSession
	}
	return nil
}

func (c *CLIClient) Login(ctx context.Context) error {
	_, err := c.run(ctx, "login", "--output", "json")
	return err
}

func (c *CLIClient) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	out, err := c.run(ctx, "account", "list", "--all", "--output", "json")
	if err != nil {
		return nil, err
	}
	var subs []Subscription
	if err := json.Unmarshal(out, &subs); err != nil {
		return nil, fmt.Errorf("parse subscription list: %w", err)
	}
	return subs, nil
}

func (c *CLIClient) SetActiveSubscription(ctx context.Context, id string) error {
	_, err := c.run(ctx, "account", "set", "--subscription", id)
	return err
}

func (c *CLIClient) ListResourceGroups(ctx context.Context, suffix string) ([]ResourceGroup, error) {
	out, err := c.run(ctx, "group", "list", "--output", "json")
	if err != nil {
		return nil, err
	}
	var groups []ResourceGroup
	if err := json.Unmarshal(out, &groups); err != nil {
		return nil, fmt.Errorf("parse resource group list: %w", err)
	}
	if suffix == "" {
		return groups, nil
	}
	matched := groups[:0]
	for _, g := range groups {
		if strings.HasSuffix(g.Name, suffix) {
			matched = append(matched, g)
		}
	}
	return matched, nil
}

func (c *CLIClient) ListStorageAccounts(ctx context.Context, group string) ([]StorageAccount, error) {
	out, err := c.run(ctx, "storage", "account", "list", "--resource-group", group, "--output", "json")
	if err != nil {
		return nil, err
	}
	var accounts []StorageAccount
	if err := json.Unmarshal(out, &accounts); err != nil {
		return nil, fmt.Errorf("parse storage account list: %w", err)
	}
	return accounts, nil
}

func (c *CLIClient) AccountKey(ctx context.Context, group, account string) (string, error) {
	out, err := c.run(ctx, "storage", "account", "keys", "list",
		"--resource-group", group, "--account-name", account, "--output", "json")
	if err != nil {
		return "", err
	}
	var keys []struct {
		KeyName string `json:"keyName"`
		Value   string `json:"value"`
	}
	if err := json.Unmarshal(out, &keys); err != nil {
		return "", fmt.Errorf("parse account keys: %w", err)
	}
	if len(keys) == 0 {
		return "", fmt.Errorf("storage account %q has no keys", account)
	}
	return keys[0].Value, nil
}

func (c *CLIClient) MintSAS(ctx context.Context, req SASRequest) (string, error) {
	args := []string{
		"storage", "account", "generate-sas",
		"--account-name", req.Account,
		"--account-key", req.Key,
		"--services", "b",
		"--resource-types", "sco",
		"--permissions", req.Permissions,
		"--expiry", req.ExpiresAt.UTC().Format(time.RFC3339),
		"--output", "json",
	}
	if req.HTTPSOnly {
		args = append(args, "--https-only")
	}
	out, err := c.run(ctx, args...)
	if err != nil {
		return "", err
	}
	var sas string
	if err := json.Unmarshal(out, &sas); err != nil {
		return "", fmt.Errorf("parse sas token: %w", err)
	}
	return sas, nil
}

func (c *CLIClient) ListContainers(ctx context.Context, account, sas string, limit int) ([]Container, error) {
	out, err := c.run(ctx, "storage", "container", "list",
		"--account-name", account,
		"--sas-token", sas,
		"--num-results", strconv.Itoa(limit),
		"--output", "json")
	if err != nil {
		return nil, err
	}
	var containers []Container
	if err := json.Unmarshal(out, &containers); err != nil {
		return nil, fmt.Errorf("parse container list: %w", err)
	}
	return containers, nil
}
