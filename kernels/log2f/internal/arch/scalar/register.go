package scalar

import (
	"github.com/arntercon/volk/internal/cpu"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:             "scalar",
		SIMDLevel:        cpu.SIMDNone,
		Priority:         0,
		Width:            1,
		Saturation:       registry.SignPreserving,
		Transform:        transform,
		TransformAligned: transform,
	})
}

// transform is the registered entry point; it binds the sign-preserving
// policy the vector variants share.
func transform(dst, src []float32) {
	Transform(dst, src, registry.SignPreserving)
}
