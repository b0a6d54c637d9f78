package oct

import (
	"github.com/arntercon/volk/internal/cpu"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:             "oct",
		SIMDLevel:        cpu.SIMDAVX2,
		Priority:         20,
		Width:            8,
		Saturation:       registry.SignPreserving,
		Transform:        Transform,
		TransformAligned: TransformAligned,
	})
}
