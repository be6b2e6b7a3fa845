// Package collect lists workloads from the cluster and reduces each one
// to a single per-pod resource summary row.
package collect

import (
	"context"
	"fmt"
	"math"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"k8s-resource-inventory/internal/model"
)

// Workloads lists Deployments and StatefulSets and returns one row per
// object, in API order. An empty namespace means all namespaces.
func Workloads(ctx context.Context, cs kubernetes.Interface, namespace string) ([]model.WorkloadRow, error) {
	rows, err := Deployments(ctx, cs, namespace)
	if err != nil {
		return nil, err
	}
	sts, err := StatefulSets(ctx, cs, namespace)
	if err != nil {
		return nil, err
	}
	return append(rows, sts...), nil
}

func Deployments(ctx context.Context, cs kubernetes.Interface, namespace string) ([]model.WorkloadRow, error) {
	list, err := cs.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list deployments: %w", err)
	}
	rows := make([]model.WorkloadRow, 0, len(list.Items))
	for _, d := range list.Items {
		row, err := workloadRow(model.KindDeployment, d.Namespace, d.Name, d.Spec.Replicas, d.Spec.Template.Spec.Containers)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func StatefulSets(ctx context.Context, cs kubernetes.Interface, namespace string) ([]model.WorkloadRow, error) {
	list, err := cs.AppsV1().StatefulSets(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list statefulsets: %w", err)
	}
	rows := make([]model.WorkloadRow, 0, len(list.Items))
	for _, sts := range list.Items {
		row, err := workloadRow(model.KindStatefulSet, sts.Namespace, sts.Name, sts.Spec.Replicas, sts.Spec.Template.Spec.Containers)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func workloadRow(kind, namespace, name string, replicas *int32, containers []corev1.Container) (model.WorkloadRow, error) {
	reqCPU, reqMem, limCPU, limMem, err := PodResources(containers)
	if err != nil {
		return model.WorkloadRow{}, fmt.Errorf("%s %s/%s: %w", kind, namespace, name, err)
	}
	desired := int32(0)
	if replicas != nil {
		desired = *replicas
	}
	return model.WorkloadRow{
		Kind:        kind,
		Namespace:   namespace,
		Name:        name,
		Replicas:    desired,
		ReqCPUMilli: round1(reqCPU),
		ReqMemMiB:   round1(reqMem),
		LimCPUMilli: round1(limCPU),
		LimMemMiB:   round1(limMem),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
