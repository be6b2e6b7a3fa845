package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	rows := []WorkloadRow{
		{Kind: KindDeployment, Namespace: "a", Name: "web-frontend"},
		{Kind: KindStatefulSet, Namespace: "other", Name: "cache"},
		{Kind: KindDeployment, Namespace: "webspace", Name: "api"},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term is identity", "", []string{"web-frontend", "cache", "api"}},
		{"matches name substring", "web", []string{"web-frontend", "api"}},
		{"matches namespace substring", "other", []string{"cache"}},
		{"case-insensitive", "WEB", []string{"web-frontend", "api"}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(rows, tt.term)
			var names []string
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilterEmptyTermReturnsSameSlice(t *testing.T) {
	rows := []WorkloadRow{{Name: "x"}}
	assert.Equal(t, rows, Filter(rows, ""))
}

func TestSort(t *testing.T) {
	rows := []WorkloadRow{
		{Kind: KindStatefulSet, Namespace: "b", Name: "db"},
		{Kind: KindDeployment, Namespace: "a", Name: "web"},
		{Kind: KindStatefulSet, Namespace: "a", Name: "cache"},
		{Kind: KindDeployment, Namespace: "a", Name: "api"},
	}
	Sort(rows)

	want := []WorkloadRow{
		{Kind: KindDeployment, Namespace: "a", Name: "api"},
		{Kind: KindDeployment, Namespace: "a", Name: "web"},
		{Kind: KindStatefulSet, Namespace: "a", Name: "cache"},
		{Kind: KindStatefulSet, Namespace: "b", Name: "db"},
	}
	assert.Equal(t, want, rows)
}
