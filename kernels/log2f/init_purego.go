//go:build purego

package log2f

import (
	_ "github.com/arntercon/volk/kernels/log2f/internal/arch/scalar" // register scalar fallback
)
