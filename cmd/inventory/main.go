package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"k8s-resource-inventory/internal/collect"
	"k8s-resource-inventory/internal/kube"
	"k8s-resource-inventory/internal/model"
	"k8s-resource-inventory/internal/output"
)

type options struct {
	namespace   string
	filter      string
	output      string
	kubeconfig  string
	kubeContext string
	timeoutSec  int
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "inventory",
		Short:         "Export per-pod CPU/memory requests and limits of Deployments and StatefulSets to CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "", "Limit to a specific namespace (default: all namespaces)")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "Only include workloads whose name or namespace contains this string")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "resources.csv", "Output CSV file")
	cmd.Flags().StringVar(&opts.kubeconfig, "kubeconfig", "", "Path to kubeconfig (default: $KUBECONFIG or ~/.kube/config, else in-cluster)")
	cmd.Flags().StringVar(&opts.kubeContext, "context", "", "Kubeconfig context to use (default: current context)")
	cmd.Flags().IntVar(&opts.timeoutSec, "timeout", 60, "Timeout in seconds for Kubernetes API calls")

	return cmd
}

func run(opts options) error {
	cs, err := kube.NewClient(opts.kubeconfig, opts.kubeContext)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(opts.timeoutSec)*time.Second)
	defer cancel()

	rows, err := collect.Workloads(ctx, cs, opts.namespace)
	if err != nil {
		return err
	}

	rows = model.Filter(rows, opts.filter)
	model.Sort(rows)

	return output.WriteCSV(opts.output, rows)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
