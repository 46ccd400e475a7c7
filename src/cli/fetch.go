package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gocloud.dev/blob"

	"azpull/src/azure"
	"azpull/src/blobstore"
	"azpull/src/menu"
	"azpull/src/picker"
	"azpull/src/transfer"
)

// fetchDeps holds the pipeline's external collaborators so tests can
// substitute fakes.
type fetchDeps struct {
	newClient  func(log *zap.Logger) azure.Client
	openBucket func(ctx context.Context, account, container, sas string) (*blob.Bucket, error)
	now        func() time.Time
}

func defaultFetchDeps() fetchDeps {
	return fetchDeps{
		newClient:  func(log *zap.Logger) azure.Client { return azure.NewCLIClient(log) },
		openBucket: blobstore.Open,
		now:        time.Now,
	}
}

func newFetchCmd(stdin io.Reader, stdout io.Writer, deps fetchDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [preset]",
		Short: "Pick a subscription, resource group, and container, then download blobs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset := ""
			if len(args) == 1 {
				preset = args[0]
			}
			return runFetch(cmd, stdin, stdout, deps, preset)
		},
	}
	return cmd
}

// runFetch walks the six pipeline stages top to bottom. Each stage hands
// an immutable value to the next; any failure terminates the run.
func runFetch(cmd *cobra.Command, stdin io.Reader, stdout io.Writer, deps fetchDeps, preset string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := getLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	dest, _ := cmd.Root().PersistentFlags().GetString("dest")
	yes, _ := cmd.Root().PersistentFlags().GetBool("yes")
	dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

	client := deps.newClient(log)
	// Prompts share one buffered reader so input queued behind a
	// selection is not lost between stages.
	in := bufio.NewReader(stdin)

	// Session bootstrap
	if err := client.CheckSession(ctx); err != nil {
		if !errors.Is(err, azure.ErrNoSession) {
			return err
		}
		fmt.Fprintln(stdout, "No active session, logging in...")
		if err := client.Login(ctx); err != nil {
			return fmt.Errorf("azure login failed: %w", err)
		}
	}

	// Scope selection
	var sub azure.Subscription
	groupHint := ""
	if preset != "" {
		p, err := cfg.Resolve(preset)
		if err != nil {
			return err
		}
		sub = azure.Subscription{ID: p.Subscription, Name: preset}
		groupHint = p.ResourceGroup
		fmt.Fprintf(stdout, "Using preset %s (subscription %s)\n", preset, p.Subscription)
	} else {
		sub, err = picker.SelectSubscription(ctx, client, in, stdout)
		if err != nil {
			return err
		}
	}
	if err := client.SetActiveSubscription(ctx, sub.ID); err != nil {
		return err
	}

	// Resource group and storage account
	group, err := picker.LocateGroup(ctx, client, cfg.GroupSuffix, groupHint, in, stdout)
	if err != nil {
		return err
	}
	account, err := picker.LocateAccount(ctx, client, group, in, stdout)
	if err != nil {
		return err
	}

	// Credential minting
	key, err := client.AccountKey(ctx, group.Name, account.Name)
	if err != nil {
		return err
	}
	sas, err := client.MintSAS(ctx, azure.NewSASRequest(account.Name, key, deps.now()))
	if err != nil {
		return err
	}

	// Container and mode selection
	container, err := picker.SelectContainer(ctx, client, account.Name, sas, cfg.ContainerLimit, in, stdout)
	if err != nil {
		return err
	}
	idx, err := menu.Select(in, stdout, "Download mode", transfer.ModeLabels())
	if err != nil {
		return err
	}
	mode, err := transfer.ParseMode(idx)
	if err != nil {
		return err
	}

	// Transfer
	folder := filepath.Join(dest, container.Name)
	if !dryRun {
		if _, err := os.Stat(folder); err == nil {
			ok, err := menu.Confirm(in, stdout, fmt.Sprintf("Folder %s exists, download into it anyway?", folder), yes)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("aborted: destination folder already exists")
			}
		}
	}
	bkt, err := deps.openBucket(ctx, account.Name, container.Name, sas)
	if err != nil {
		return err
	}
	defer bkt.Close()

	return transfer.Run(ctx, bkt, container.Name, dest, mode, transfer.Options{DryRun: dryRun, Out: stdout})
}
