package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

func container(reqCPU, reqMem, limCPU, limMem string) corev1.Container {
	c := corev1.Container{Name: "c"}
	if reqCPU != "" || reqMem != "" {
		c.Resources.Requests = corev1.ResourceList{}
		if reqCPU != "" {
			c.Resources.Requests[corev1.ResourceCPU] = resource.MustParse(reqCPU)
		}
		if reqMem != "" {
			c.Resources.Requests[corev1.ResourceMemory] = resource.MustParse(reqMem)
		}
	}
	if limCPU != "" || limMem != "" {
		c.Resources.Limits = corev1.ResourceList{}
		if limCPU != "" {
			c.Resources.Limits[corev1.ResourceCPU] = resource.MustParse(limCPU)
		}
		if limMem != "" {
			c.Resources.Limits[corev1.ResourceMemory] = resource.MustParse(limMem)
		}
	}
	return c
}

func TestPodResourcesEmpty(t *testing.T) {
	reqCPU, reqMem, limCPU, limMem, err := PodResources(nil)
	require.NoError(t, err)
	assert.Zero(t, reqCPU)
	assert.Zero(t, reqMem)
	assert.Zero(t, limCPU)
	assert.Zero(t, limMem)
}

func TestPodResourcesMissingFieldsContributeZero(t *testing.T) {
	containers := []corev1.Container{
		{Name: "bare"}, // no resources at all
		container("250m", "", "", ""),
		container("", "64Mi", "", "128Mi"),
	}
	reqCPU, reqMem, limCPU, limMem, err := PodResources(containers)
	require.NoError(t, err)
	assert.InDelta(t, 250.0, reqCPU, 1e-9)
	assert.InDelta(t, 64.0, reqMem, 1e-9)
	assert.InDelta(t, 0.0, limCPU, 1e-9)
	assert.InDelta(t, 128.0, limMem, 1e-9)
}

func TestPodResourcesSumsAcrossContainers(t *testing.T) {
	containers := []corev1.Container{
		container("250m", "64Mi", "500m", "128Mi"),
		container("2", "1Gi", "2", "2Gi"),
	}
	reqCPU, reqMem, limCPU, limMem, err := PodResources(containers)
	require.NoError(t, err)
	assert.InDelta(t, 2250.0, reqCPU, 1e-9)
	assert.InDelta(t, 1088.0, reqMem, 1e-9)
	assert.InDelta(t, 2500.0, limCPU, 1e-9)
	assert.InDelta(t, 2176.0, limMem, 1e-9)
}

func TestPodResourcesOrderIndependent(t *testing.T) {
	a := container("100m", "32Mi", "200m", "64Mi")
	b := container("1", "1Gi", "", "")
	c := container("", "", "300m", "256Mi")

	perms := [][]corev1.Container{
		{a, b, c},
		{c, b, a},
		{b, a, c},
	}
	var first [4]float64
	for i, p := range perms {
		reqCPU, reqMem, limCPU, limMem, err := PodResources(p)
		require.NoError(t, err)
		got := [4]float64{reqCPU, reqMem, limCPU, limMem}
		if i == 0 {
			first = got
			continue
		}
		assert.Equal(t, first, got, "permutation %d", i)
	}
}
