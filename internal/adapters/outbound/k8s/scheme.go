package k8s

import (
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"

	codesandboxv1alpha1 "github.com/skillcoder/vmkube-controller/pkg/apis/codesandbox/v1alpha1"
	pokemonv1 "github.com/skillcoder/vmkube-controller/pkg/apis/pokemon/v1"
)

// NewScheme returns a scheme with the built-in types and both managed APIs.
func NewScheme() (*runtime.Scheme, error) {
	scheme := runtime.NewScheme()

	for _, add := range []func(*runtime.Scheme) error{
		clientgoscheme.AddToScheme,
		pokemonv1.AddToScheme,
		codesandboxv1alpha1.AddToScheme,
	} {
		err := add(scheme)
		if err != nil {
			return nil, fmt.Errorf("build scheme: %w", err)
		}
	}

	return scheme, nil
}
