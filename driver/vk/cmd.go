// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"

	"github.com/gviegas/transit/driver"
	"github.com/gviegas/transit/internal/logger"
)

// CmdBuffer implements driver.CmdBuffer.
// Its pool is exclusive, so distinct command buffers can
// be recorded concurrently.
type CmdBuffer struct {
	d     *Driver
	pool  vk.CommandPool
	cb    vk.CommandBuffer
	begun bool
}

// NewCmdBuffer creates a new command buffer.
// It must only be submitted to the driver's queue.
func (d *Driver) NewCmdBuffer() (*CmdBuffer, error) {
	var pool vk.CommandPool
	poolInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: d.qfam,
	}
	if err := checkResult(vk.CreateCommandPool(d.dev, &poolInfo, nil, &pool)); err != nil {
		return nil, errors.Wrap(err, "vk: create command pool")
	}
	cbs := make([]vk.CommandBuffer, 1)
	cbInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        pool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}
	if err := checkResult(vk.AllocateCommandBuffers(d.dev, &cbInfo, cbs)); err != nil {
		vk.DestroyCommandPool(d.dev, pool, nil)
		return nil, errors.Wrap(err, "vk: allocate command buffer")
	}
	return &CmdBuffer{d: d, pool: pool, cb: cbs[0]}, nil
}

// Begin prepares the command buffer for recording.
func (cb *CmdBuffer) Begin() error {
	if cb.begun {
		return errors.New("vk: command buffer already begun")
	}
	info := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit),
	}
	if err := checkResult(vk.BeginCommandBuffer(cb.cb, &info)); err != nil {
		return err
	}
	cb.begun = true
	return nil
}

// End ends command recording.
func (cb *CmdBuffer) End() error {
	if !cb.begun {
		return errors.New("vk: command buffer not begun")
	}
	cb.begun = false
	return checkResult(vk.EndCommandBuffer(cb.cb))
}

// Reset discards all recorded commands.
func (cb *CmdBuffer) Reset() error {
	cb.begun = false
	return checkResult(vk.ResetCommandBuffer(cb.cb, 0))
}

// IsRecording returns whether Begin was called without a
// matching End.
func (cb *CmdBuffer) IsRecording() bool { return cb.begun }

// VK returns the VkCommandBuffer handle.
func (cb *CmdBuffer) VK() vk.CommandBuffer { return cb.cb }

// imageBarrier converts t to a same-queue image memory
// barrier.
func imageBarrier(t *driver.Transition) vk.ImageMemoryBarrier {
	img := t.Img.(*Image)
	return vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       convAccess(t.AccessBefore),
		DstAccessMask:       convAccess(t.AccessAfter),
		OldLayout:           convLayout(t.LayoutBefore),
		NewLayout:           convLayout(t.LayoutAfter),
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               img.img,
		SubresourceRange:    convImageRange(img.fmt, t.Range),
	}
}

// Transition records a single vkCmdPipelineBarrier call
// containing one image memory barrier per element of t.
// Elements that use driver.LShadingRate are skipped, since
// the device does not enable shading rate images.
// Every Img must be an *Image.
func (cb *CmdBuffer) Transition(t []driver.Transition) {
	var stg1, stg2 driver.Sync
	imbs := make([]vk.ImageMemoryBarrier, 0, len(t))
	for i := range t {
		if t[i].LayoutBefore == driver.LShadingRate || t[i].LayoutAfter == driver.LShadingRate {
			logger.Get().Debug("vk: transition skipped", "before", t[i].LayoutBefore, "after", t[i].LayoutAfter)
			continue
		}
		stg1 |= t[i].SyncBefore
		stg2 |= t[i].SyncAfter
		imbs = append(imbs, imageBarrier(&t[i]))
	}
	if len(imbs) == 0 {
		return
	}
	// Zero scopes are not valid without the
	// synchronization2 feature.
	if stg1 == driver.SNone {
		stg1 = driver.STopOfPipe
	}
	if stg2 == driver.SNone {
		stg2 = driver.SBottomOfPipe
	}
	vk.CmdPipelineBarrier(cb.cb, convSync(stg1), convSync(stg2), 0, 0, nil, 0, nil, uint32(len(imbs)), imbs)
}

// Destroy destroys the command buffer.
func (cb *CmdBuffer) Destroy() {
	if cb == nil {
		return
	}
	if cb.d != nil {
		vk.FreeCommandBuffers(cb.d.dev, cb.pool, 1, []vk.CommandBuffer{cb.cb})
		vk.DestroyCommandPool(cb.d.dev, cb.pool, nil)
	}
	*cb = CmdBuffer{}
}
