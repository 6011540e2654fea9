package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/descilaunch/launchpad-web/internal/services/web/module"
)

// ComposeInput carries the feature modules in mount order.
type ComposeInput struct {
	Modules []module.Module
}

// Compose builds a mux with every module mounted under its own prefix.
func Compose(input ComposeInput) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	mounts := make(map[string]http.Handler)
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if err := mountModule(root, feature, mount, prefix, seen); err != nil {
			return nil, err
		}
		mounts[prefix] = mount.Handler
	}
	mountSlashlessAliases(root, mounts)
	return root, nil
}

// mountSlashlessAliases keeps bare subtree paths such as /launches with the
// module mounted at /. Without it the mux would redirect them into the
// subtree.
func mountSlashlessAliases(root *http.ServeMux, mounts map[string]http.Handler) {
	fallback, ok := mounts["/"]
	if !ok {
		return
	}
	for prefix := range mounts {
		if alias := slashlessPrefixAlias(prefix); alias != "" {
			root.Handle(alias, fallback)
		}
	}
}

func slashlessPrefixAlias(prefix string) string {
	if prefix == "/" || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}

func mountModule(root *http.ServeMux, feature module.Module, mount module.Mount, prefix string, seen map[string]string) error {
	if root == nil || feature == nil {
		return nil
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()
	root.Handle(prefix, mount.Handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if isReservedPrefix(prefix) {
		return module.Mount{}, "", fmt.Errorf("mount module %q: prefix %q is reserved", feature.ID(), prefix)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}
