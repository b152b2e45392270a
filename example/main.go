// Command example walks the Capture workflow end to end: register a file
// (generated when none is configured), fetch it back, update its metadata,
// read its commit history, then wait for the merged asset tree and the
// verify-engine search results, which lag registration while the backend
// indexes the new asset.
//
// Usage:
//
//	CAPTURE_TOKEN=your-token go run ./example [config.yml]
//
// Or with signing:
//
//	CAPTURE_TOKEN=your-token PRIVATE_KEY=0x... go run ./example
package main

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/numbersprotocol/capture-go/capture"
	"github.com/numbersprotocol/capture-go/pkg/log"
	"github.com/numbersprotocol/capture-go/pkg/poll"
)

func main() {
	cfgFile := "config.yml"
	if len(os.Args) > 1 {
		cfgFile = os.Args[1]
	}

	config, err := loadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: CAPTURE_TOKEN=your-token example [config.yml]")
		os.Exit(1)
	}

	logger, err := log.NewZapLogger("info", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build logger: %v\n", err)
		os.Exit(1)
	}

	client, err := capture.New(capture.Config{
		Token:   config.Token,
		Testnet: config.Testnet,
		BaseURL: config.BaseURL,
	}, capture.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	if err := run(context.Background(), client, logger, config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *capture.Client, logger log.Logger, config *Config) error {
	fmt.Println("Capture Go SDK Example")
	fmt.Println("======================")

	// 1. Register.
	fmt.Println("\n1. Registering asset...")
	file, opts, err := registrationInput(config)
	if err != nil {
		return err
	}
	if config.PrivateKey != "" {
		opts.Sign = &capture.SignOptions{PrivateKey: config.PrivateKey}
		fmt.Println("   (with EIP-191 signing)")
	}

	asset, err := client.Register(ctx, file, opts)
	if err != nil {
		return err
	}
	fmt.Printf("   NID:       %s\n", asset.NID)
	fmt.Printf("   Filename:  %s\n", asset.Filename)
	fmt.Printf("   MIME type: %s\n", asset.MimeType)
	fmt.Printf("   Caption:   %s\n", asset.Caption)
	fmt.Printf("   Headline:  %s\n", asset.Headline)

	// 2. Retrieve it back.
	fmt.Println("\n2. Retrieving asset...")
	retrieved, err := client.Get(ctx, asset.NID)
	if err != nil {
		return err
	}
	fmt.Printf("   NID:      %s\n", retrieved.NID)
	fmt.Printf("   Filename: %s\n", retrieved.Filename)

	// 3. Update metadata.
	fmt.Println("\n3. Updating metadata...")
	caption := "Updated caption from the Capture Go SDK"
	updated, err := client.Update(ctx, asset.NID, capture.UpdateOptions{
		Caption:       &caption,
		CommitMessage: "Updated via Go example",
	})
	if err != nil {
		return err
	}
	fmt.Printf("   New caption: %s\n", updated.Caption)

	// 4. Commit history.
	fmt.Println("\n4. Getting commit history...")
	history, err := client.GetHistory(ctx, asset.NID)
	if err != nil {
		return err
	}
	fmt.Printf("   Found %d commit(s)\n", len(history))
	for i, commit := range history {
		txHash := commit.TxHash
		if len(txHash) > 16 {
			txHash = txHash[:16] + "..."
		}
		fmt.Printf("   [%d] %s\n", i+1, commit.Action)
		fmt.Printf("       Author: %s\n", commit.Author)
		fmt.Printf("       Time:   %s\n", time.Unix(commit.Timestamp, 0).Format(time.RFC3339))
		fmt.Printf("       TX:     %s\n", txHash)
	}

	// 5. Availability checks. The merged tree and the verify-engine index
	// both lag registration, so poll for them concurrently and degrade to
	// a skip when they stay unavailable within the budget.
	fmt.Println("\n5. Waiting for asset tree and verify-engine results...")
	var (
		tree         *capture.AssetTree
		searchResult *capture.AssetSearchResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := poll.Do(gctx, logger, func(ctx context.Context) (*capture.AssetTree, error) {
			return client.GetAssetTree(ctx, asset.NID)
		})
		if err != nil {
			if poll.Retryable(err) {
				logger.Warn(gctx, "Asset tree not available within budget, skipping", "nid", asset.NID, "error", err)
				return nil
			}
			return fmt.Errorf("asset tree retrieval failed: %w", err)
		}
		tree = result
		return nil
	})
	g.Go(func() error {
		result, err := poll.Do(gctx, logger, func(ctx context.Context) (*capture.AssetSearchResult, error) {
			return client.SearchAsset(ctx, capture.AssetSearchOptions{NID: asset.NID})
		})
		if err != nil {
			if poll.Retryable(err) {
				logger.Warn(gctx, "Verify-engine search unavailable within budget, skipping", "nid", asset.NID, "error", err)
				return nil
			}
			return fmt.Errorf("verify-engine search failed: %w", err)
		}
		searchResult = result
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if tree != nil {
		fmt.Println("\n   Asset tree:")
		fmt.Printf("     Asset CID:      %s\n", orPending(tree.AssetCID))
		fmt.Printf("     Creator wallet: %s\n", orPending(tree.CreatorWallet))
		fmt.Printf("     MIME type:      %s\n", orPending(tree.MimeType))
		fmt.Printf("     Caption:        %s\n", orPending(tree.Caption))
		if tree.License != nil {
			fmt.Printf("     License:        %s\n", tree.License.Name)
		}
		if tree.CreatedAt > 0 {
			fmt.Printf("     Created:        %s\n", time.UnixMilli(tree.CreatedAt).Format(time.RFC3339))
		}
		if len(tree.Extra) > 0 {
			fmt.Printf("     Extra fields:   %d\n", len(tree.Extra))
		}
	}

	if searchResult != nil {
		fmt.Println("\n   Verify-engine search:")
		fmt.Printf("     Precise match:   %s\n", orPending(searchResult.PreciseMatch))
		fmt.Printf("     Input MIME type: %s\n", searchResult.InputFileMimeType)
		fmt.Printf("     Order ID:        %s\n", searchResult.OrderID)
		fmt.Printf("     Similar matches: %d\n", len(searchResult.SimilarMatches))
		for i, match := range searchResult.SimilarMatches {
			if i >= 3 {
				break
			}
			fmt.Printf("       %d. %s (distance: %.4f)\n", i+1, match.NID, match.Distance)
		}
	}

	// 6. Hand the user a browser link.
	fmt.Printf("\n6. View the asset: %s\n", capture.AssetProfileURL(asset.NID))
	fmt.Println("\nExample completed successfully!")
	return nil
}

// registrationInput picks the configured file, or generates a test image
// when none is set.
func registrationInput(config *Config) (capture.FileInput, capture.RegisterOptions, error) {
	opts := capture.RegisterOptions{
		Caption:  "Test asset from the Capture Go SDK",
		Headline: "Go SDK Demo",
	}

	if config.File != "" {
		return capture.FromPath(config.File), opts, nil
	}

	data, err := generateTestImage(config.Output)
	if err != nil {
		return capture.FileInput{}, opts, err
	}
	opts.Filename = "capture-go-example.png"
	fmt.Printf("   Generated test image (%d bytes, saved to %s)\n", len(data), config.Output)
	return capture.FromBytes(data), opts, nil
}

// generateTestImage renders a small gradient PNG, saves a copy for
// inspection, and returns the encoded bytes.
func generateTestImage(outputPath string) ([]byte, error) {
	img := imaging.New(256, 256, color.NRGBA{A: 255})
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8((x + y) / 2), A: 255})
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode test image: %w", err)
	}
	if outputPath != "" {
		if err := imaging.Save(img, outputPath); err != nil {
			return nil, fmt.Errorf("failed to save test image: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func orPending(s string) string {
	if s == "" {
		return "(pending)"
	}
	return s
}
