package quad

import (
	"github.com/arntercon/volk/internal/cpu"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:             "quad",
		SIMDLevel:        cpu.SIMDSSE2,
		Priority:         10,
		Width:            4,
		Saturation:       registry.SignPreserving,
		Transform:        Transform,
		TransformAligned: TransformAligned,
	})
}
