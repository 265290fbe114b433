package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tournevent/dhlexpress/internal/requestfile"
	"github.com/tournevent/dhlexpress/pkg/express/response"
	"github.com/tournevent/dhlexpress/pkg/express/schema"
)

var version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type options struct {
	envFile     string
	format      string
	labelDir    string
	metricsFile string
	parallel    int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "dhlexpress",
		Short:        "DHL Express shipping client - create, delete and track shipments",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the environment")
	root.PersistentFlags().StringVarP(&opts.format, "output", "o", formatJSON, "output format: json, xml or yaml")
	root.PersistentFlags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics of this run to a textfile")

	validate := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate request files and print the documents they map to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args)
		},
	}
	validate.Flags().IntVar(&opts.parallel, "parallel", 4, "files validated concurrently")

	create := &cobra.Command{
		Use:   "create FILE",
		Short: "Create a shipment from a shipment request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, opts, args[0])
		},
	}
	create.Flags().StringVar(&opts.labelDir, "label-dir", "", "directory label images are written to")

	del := &cobra.Command{
		Use:   "delete FILE",
		Short: "Cancel the pickup described by a delete request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, opts, args[0])
		},
	}

	track := &cobra.Command{
		Use:   "track FILE",
		Short: "Track the waybills of a tracking request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrack(cmd, opts, args[0])
		},
	}

	root.AddCommand(validate, create, del, track)
	return root
}

type validated struct {
	path string
	doc  any
	err  error
}

func runValidate(cmd *cobra.Command, opts *options, paths []string) error {
	results := make([]validated, len(paths))

	var g errgroup.Group
	g.SetLimit(max(opts.parallel, 1))
	for i, path := range paths {
		g.Go(func() error {
			doc, err := mapFile(path)
			results[i] = validated{path: path, doc: doc, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var invalid int
	for _, r := range results {
		if r.err != nil {
			invalid++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: invalid\n  %s\n", r.path,
				strings.ReplaceAll(r.err.Error(), "\n", "\n  "))
			continue
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: ok\n", r.path)
		if err := encode(out, opts.format, r.doc); err != nil {
			return err
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d request files invalid", invalid, len(paths))
	}
	return nil
}

// mapFile builds the envelope a request file describes and returns the wire document it maps to.
func mapFile(path string) (any, error) {
	f, err := requestfile.Load(path)
	if err != nil {
		return nil, err
	}
	switch f.Kind {
	case requestfile.KindShipment:
		req, err := f.ShipmentRequest()
		if err != nil {
			return nil, err
		}
		return schema.FromShipmentRequest(req), nil
	case requestfile.KindDelete:
		req, err := f.DeleteRequest()
		if err != nil {
			return nil, err
		}
		return schema.FromDeleteRequest(req), nil
	default:
		req, err := f.TrackingRequest(time.Now())
		if err != nil {
			return nil, err
		}
		return schema.FromTrackingRequest(req), nil
	}
}

func runCreate(cmd *cobra.Command, opts *options, path string) error {
	f, err := requestfile.Load(path)
	if err != nil {
		return err
	}
	req, err := f.ShipmentRequest()
	if err != nil {
		return err
	}

	return withApp(cmd.Context(), opts, func(ctx context.Context, a *app) error {
		resp, err := a.transport.CreateShipment(ctx, req)
		if err != nil {
			a.logger.Ctx(ctx).Error("Shipment creation failed", zap.Error(err))
			return err
		}
		if opts.labelDir != "" {
			if err := writeLabels(opts.labelDir, resp.ShipmentIdentificationNumber, resp.LabelImages); err != nil {
				return err
			}
		}
		return encode(cmd.OutOrStdout(), opts.format, schema.FromShipmentResponse(resp))
	})
}

func runDelete(cmd *cobra.Command, opts *options, path string) error {
	f, err := requestfile.Load(path)
	if err != nil {
		return err
	}
	req, err := f.DeleteRequest()
	if err != nil {
		return err
	}

	return withApp(cmd.Context(), opts, func(ctx context.Context, a *app) error {
		resp, err := a.transport.DeleteShipment(ctx, req)
		if err != nil {
			a.logger.Ctx(ctx).Error("Shipment deletion failed", zap.Error(err))
			return err
		}
		return encode(cmd.OutOrStdout(), opts.format, schema.FromDeleteResponse(resp))
	})
}

func runTrack(cmd *cobra.Command, opts *options, path string) error {
	f, err := requestfile.Load(path)
	if err != nil {
		return err
	}
	req, err := f.TrackingRequest(time.Now())
	if err != nil {
		return err
	}

	return withApp(cmd.Context(), opts, func(ctx context.Context, a *app) error {
		resp, err := a.transport.GetTrackingInformation(ctx, req)
		if err != nil {
			a.logger.Ctx(ctx).Error("Tracking failed", zap.Error(err))
			return err
		}
		return encode(cmd.OutOrStdout(), opts.format, schema.FromTrackingResponse(resp))
	})
}

// writeLabels stores each label image as <awb>-<n>.<format> under dir.
func writeLabels(dir, awb string, labels []response.LabelImage) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, l := range labels {
		ext := strings.ToLower(l.Format)
		if ext == "" {
			ext = "bin"
		}
		name := filepath.Join(dir, fmt.Sprintf("%s-%d.%s", awb, i+1, ext))
		if err := os.WriteFile(name, l.Data, 0o644); err != nil {
			return fmt.Errorf("writing label: %w", err)
		}
	}
	return nil
}
