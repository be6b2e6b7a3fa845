package collect

import (
	corev1 "k8s.io/api/core/v1"

	"k8s-resource-inventory/internal/quantity"
)

// PodResources sums declared CPU and memory requests and limits across
// the containers of one pod template. Missing resources, requests or
// limits contribute zero; malformed quantity strings are an error.
func PodResources(containers []corev1.Container) (reqCPU, reqMem, limCPU, limMem float64, err error) {
	for _, c := range containers {
		rc, rm, err := resourcePair(c.Resources.Requests)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		lc, lm, err := resourcePair(c.Resources.Limits)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		reqCPU += rc
		reqMem += rm
		limCPU += lc
		limMem += lm
	}
	return reqCPU, reqMem, limCPU, limMem, nil
}

func resourcePair(rl corev1.ResourceList) (cpu, mem float64, err error) {
	cpu, err = quantity.ParseCPU(quantityString(rl, corev1.ResourceCPU))
	if err != nil {
		return 0, 0, err
	}
	mem, err = quantity.ParseMemory(quantityString(rl, corev1.ResourceMemory))
	if err != nil {
		return 0, 0, err
	}
	return cpu, mem, nil
}

// quantityString returns the textual form of a declared quantity, or ""
// when the resource list or the entry is absent.
func quantityString(rl corev1.ResourceList, name corev1.ResourceName) string {
	if rl == nil {
		return ""
	}
	q, ok := rl[name]
	if !ok {
		return ""
	}
	return q.String()
}
