package model

import (
	"sort"
	"strings"
)

// Workload kinds inventoried by this tool.
const (
	KindDeployment  = "Deployment"
	KindStatefulSet = "StatefulSet"
)

// WorkloadRow is one exported row: the declared per-pod resource totals
// of a single Deployment or StatefulSet. Values are summed over the
// containers of one pod template and are NOT multiplied by Replicas.
type WorkloadRow struct {
	Kind        string
	Namespace   string
	Name        string
	Replicas    int32
	ReqCPUMilli float64 // requested CPU per pod, millicores
	ReqMemMiB   float64 // requested memory per pod, MiB
	LimCPUMilli float64 // CPU limit per pod, millicores
	LimMemMiB   float64 // memory limit per pod, MiB
}

// Filter returns the rows whose name or namespace contains term,
// compared case-insensitively. An empty term returns rows unchanged.
func Filter(rows []WorkloadRow, term string) []WorkloadRow {
	if term == "" {
		return rows
	}
	t := strings.ToLower(term)
	var out []WorkloadRow
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Name), t) || strings.Contains(strings.ToLower(r.Namespace), t) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders rows ascending by (namespace, kind, name) so output is
// deterministic regardless of API list order.
func Sort(rows []WorkloadRow) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Namespace != b.Namespace {
			return a.Namespace < b.Namespace
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Name < b.Name
	})
}
