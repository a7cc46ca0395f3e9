package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calyx-ui/calyx/internal/config"
	"github.com/calyx-ui/calyx/internal/deploy"
	"github.com/calyx-ui/calyx/internal/errors"
)

func deployCmd() *cobra.Command {
	var (
		bucket string
		prune  bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Publish the render output to object storage",
		Long: `Upload the render output directory to the configured S3 bucket.

Credentials come from the standard AWS environment variables
(AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY). The bucket, key prefix
and region come from the [deploy] section of calyx.toml.

Examples:
  calyx deploy
  calyx deploy --bucket=my-site --prune`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(bucket, prune)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Bucket to publish to (default from calyx.toml)")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete remote objects missing locally")

	return cmd
}

func runDeploy(bucket string, prune bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}
	if bucket != "" {
		cfg.Deploy.Bucket = bucket
	}
	if prune {
		cfg.Deploy.Prune = true
	}
	if cfg.Deploy.Bucket == "" {
		return errors.New("C100")
	}

	outDir := filepath.Join(wd, cfg.Build.Output)
	client := deploy.NewClientFromEnv(cfg.Deploy.Region)
	pub := deploy.New(client, cfg.Deploy.Bucket, cfg.Deploy.Prefix)

	ctx := context.Background()
	uploaded, err := pub.Publish(ctx, outDir)
	if err != nil {
		return err
	}
	success("uploaded %d files to %s", len(uploaded), cfg.Deploy.Bucket)

	if cfg.Deploy.Prune {
		deleted, err := pub.Prune(ctx, uploaded)
		if err != nil {
			return err
		}
		if deleted > 0 {
			success("pruned %d stale objects", deleted)
		}
	}

	return nil
}
