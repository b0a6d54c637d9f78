package octfused

import (
	"github.com/arntercon/volk/internal/cpu"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:             "octfused",
		SIMDLevel:        cpu.SIMDAVX2FMA,
		Priority:         25,
		Width:            8,
		Fused:            true,
		Saturation:       registry.SignPreserving,
		Transform:        Transform,
		TransformAligned: TransformAligned,
	})
}
