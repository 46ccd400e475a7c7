package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"gocloud.dev/blob"
	"gocloud.dev/blob/azureblob"

	"azpull/src/progress"
)

// Open opens the given container as a blob.Bucket using the minted SAS
// token. The caller owns the returned bucket and must Close it.
func Open(ctx context.Context, account, containerName, sas string) (*blob.Bucket, error) {
	url := fmt.Sprintf("https://%s.blob.core.windows.net/%s?%s", account, containerName, sas)
	client, err := container.NewClientWithNoCredential(url, nil)
	if err != nil {
		return nil, fmt.Errorf("open container %q: %w", containerName, err)
	}
	bkt, err := azureblob.OpenBucket(ctx, client, nil)
	if err != nil {
		return nil, fmt.Errorf("open container %q: %w", containerName, err)
	}
	return bkt, nil
}

// DownloadObject copies a single object from the bucket to destPath,
// creating parent directories as needed. Progress is written to out when
// it is non-nil.
func DownloadObject(ctx context.Context, bkt *blob.Bucket, key, destPath string, out io.Writer) error {
	r, err := bkt.NewReader(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("open object %q: %w", key, err)
	}
	defer r.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var src io.Reader = r
	if out != nil {
		src = progress.NewReader(r, r.Size(), key, out)
	}
	if _, err := io.Copy(f, src); err != nil {
		return fmt.Errorf("copy object %q: %w", key, err)
	}
	return f.Close()
}

// DownloadBatch copies every object under prefix into destDir, preserving
// each object's path relative to the container root. It returns the
// number of objects copied. A prefix with no objects copies nothing and
// is not an error.
func DownloadBatch(ctx context.Context, bkt *blob.Bucket, prefix, destDir string, out io.Writer) (int, error) {
	iter := bkt.List(&blob.ListOptions{Prefix: prefix})
	copied := 0
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return copied, fmt.Errorf("list objects under %q: %w", prefix, err)
		}
		if obj.IsDir {
			continue
		}
		dest := filepath.Join(destDir, filepath.FromSlash(obj.Key))
		if err := DownloadObject(ctx, bkt, obj.Key, dest, out); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

// ListKeys returns the keys under prefix without copying anything. Used
// by dry runs to report what a batch download would fetch.
func ListKeys(ctx context.Context, bkt *blob.Bucket, prefix string) ([]string, error) {
	iter := bkt.List(&blob.ListOptions{Prefix: prefix})
	var keys []string
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects under %q: %w", prefix, err)
		}
		if obj.IsDir {
			continue
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}
