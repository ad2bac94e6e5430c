package lazyconf

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lazyconf/lazyconf-go/internal/errors"
	"github.com/lazyconf/lazyconf-go/value"
)

// ManifestYAML forces v completely and renders it as a YAML document.
// Object keys are sorted. Evaluation failures are returned unchanged.
func ManifestYAML(v value.Value) (string, error) {
	native, err := ToNative(v)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(native); err != nil {
		return "", errors.NewError(errors.ErrInvalidOperation, "cannot render yaml").WithCause(err)
	}
	if err := enc.Close(); err != nil {
		return "", errors.NewError(errors.ErrInvalidOperation, "cannot render yaml").WithCause(err)
	}
	return b.String(), nil
}
