// Package deploy publishes rendered output to S3-compatible object storage.
package deploy
