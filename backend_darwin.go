//go:build darwin && !nogpu

package gpuinfo

import (
	"github.com/gogpu/gpuinfo/hal"
	"github.com/gogpu/gpuinfo/metal"
)

func init() {
	Register(BackendMetal, func() hal.Backend { return metal.Backend{} })
}
