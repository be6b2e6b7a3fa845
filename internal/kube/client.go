package kube

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// pickKubeconfigPath chooses the kubeconfig file to load: the explicit
// flag value if set, otherwise the first existing entry of KUBECONFIG.
// Returns "" when neither is set, leaving the fallback chain to the caller.
func pickKubeconfigPath(explicitPath string) string {
	if strings.TrimSpace(explicitPath) != "" {
		return explicitPath
	}
	env := strings.TrimSpace(os.Getenv("KUBECONFIG"))
	if env == "" {
		return ""
	}
	for _, p := range filepath.SplitList(env) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	// No entry exists on disk; return the raw value so the load error names it.
	return env
}

// LoadConfig returns a Kubernetes rest.Config.
// Priority: explicit kubeconfig path (or KUBECONFIG env), then the
// default ~/.kube/config loading rules, then in-cluster credentials.
func LoadConfig(kubeconfigPath, contextName string) (*rest.Config, error) {
	overrides := &clientcmd.ConfigOverrides{}
	if strings.TrimSpace(contextName) != "" {
		overrides.CurrentContext = contextName
	}

	if chosen := pickKubeconfigPath(kubeconfigPath); chosen != "" {
		// Load the file explicitly so failures produce real parse errors
		// instead of "no configuration provided".
		rawCfg, err := clientcmd.LoadFromFile(chosen)
		if err != nil {
			return nil, fmt.Errorf("load kube config: read kubeconfig file (path=%q): %w", chosen, err)
		}
		cfg, err := clientcmd.NewDefaultClientConfig(*rawCfg, overrides).ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("load kube config: kubeconfig (path=%q currentContext=%q): %w",
				chosen, rawCfg.CurrentContext, err)
		}
		return cfg, nil
	}

	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if cfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides).ClientConfig(); err == nil {
		return cfg, nil
	}

	cfg, err := rest.InClusterConfig()
	if err != nil {
		return nil, fmt.Errorf("load kube config: no local kubeconfig and in-cluster config unavailable: %w", err)
	}
	return cfg, nil
}

// NewClient builds a clientset from the resolved config.
func NewClient(kubeconfigPath, contextName string) (*kubernetes.Clientset, error) {
	cfg, err := LoadConfig(kubeconfigPath, contextName)
	if err != nil {
		return nil, err
	}
	cs, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("create kube client: %w", err)
	}
	return cs, nil
}
