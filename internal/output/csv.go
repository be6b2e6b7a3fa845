package output

import (
	"encoding/csv"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"k8s-resource-inventory/internal/model"
)

// header column order matches the model.WorkloadRow field order.
var header = []string{
	"kind",
	"namespace",
	"name",
	"replicas",
	"req_cpu_per_pod_m",
	"req_mem_per_pod_mi",
	"lim_cpu_per_pod_m",
	"lim_mem_per_pod_mi",
}

// WriteCSV writes one CSV row per workload to path. An empty row list is
// not an error: no file is created and a diagnostic is logged instead.
func WriteCSV(path string, rows []model.WorkloadRow) error {
	if len(rows) == 0 {
		log.Info("no workloads found")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write(header)
	for _, r := range rows {
		_ = w.Write([]string{
			r.Kind,
			r.Namespace,
			r.Name,
			fmt.Sprintf("%d", r.Replicas),
			fmt.Sprintf("%.1f", r.ReqCPUMilli),
			fmt.Sprintf("%.1f", r.ReqMemMiB),
			fmt.Sprintf("%.1f", r.LimCPUMilli),
			fmt.Sprintf("%.1f", r.LimMemMiB),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("csv: close %s: %w", path, err)
	}

	log.Infof("written %d rows to %s", len(rows), path)
	return nil
}
