// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package vk implements driver interfaces using the Vulkan API.
package vk

import (
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"

	"github.com/gviegas/transit/caps"
	"github.com/gviegas/transit/driver"
	"github.com/gviegas/transit/internal/logger"
)

const driverName = "vulkan"

// Driver implements driver.Driver and driver.GPU.
type Driver struct {
	inst  vk.Instance
	pdev  vk.PhysicalDevice
	dname string
	dev   vk.Device
	que   vk.Queue
	qfam  uint32
	fams  []driver.QueueFlag
}

func init() {
	driver.Register(&Driver{})
}

// initInstance initializes the Vulkan instance.
func (d *Driver) initInstance() error {
	if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
		return errors.Wrap(driver.ErrNotInstalled, err.Error())
	}
	if err := vk.Init(); err != nil {
		return errors.Wrap(driver.ErrNotInstalled, err.Error())
	}
	info := vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:         vk.StructureTypeApplicationInfo,
			PEngineName:   "transit\x00",
			EngineVersion: vk.MakeVersion(0, 1, 0),
			ApiVersion:    vk.MakeVersion(1, 1, 0),
		},
	}
	var inst vk.Instance
	if err := checkResult(vk.CreateInstance(&info, nil, &inst)); err != nil {
		return errors.Wrap(err, "vk: create instance")
	}
	d.inst = inst
	if err := vk.InitInstance(inst); err != nil {
		return errors.Wrap(err, "vk: init instance")
	}
	return nil
}

// initDevice initializes the Vulkan device.
func (d *Driver) initDevice() error {
	var n uint32
	if err := checkResult(vk.EnumeratePhysicalDevices(d.inst, &n, nil)); err != nil {
		return err
	}
	// The instance need not expose any devices at all.
	if n == 0 {
		return driver.ErrNoDevice
	}
	devs := make([]vk.PhysicalDevice, n)
	if err := checkResult(vk.EnumeratePhysicalDevices(d.inst, &n, devs)); err != nil {
		return err
	}

	// Select a suitable physical device to use. The bare minimum is a
	// device with a queue family supporting graphics operations.
	// Ideally, the device will be hardware-accelerated.
	weight := 0
	for _, dev := range devs[:n] {
		var props vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(dev, &props)
		props.Deref()
		fams := queueFamilies(dev)
		fam, err := caps.QueueFamily(fams, driver.QGraphics)
		if err != nil {
			// Device does not support graphics operations.
			continue
		}
		wgt := 1
		switch props.DeviceType {
		case vk.PhysicalDeviceTypeDiscreteGpu:
			wgt += 2
		case vk.PhysicalDeviceTypeIntegratedGpu:
			wgt++
		}
		if wgt > weight {
			d.pdev = dev
			d.dname = vk.ToString(props.DeviceName[:])
			d.qfam = uint32(fam)
			d.fams = fams
			weight = wgt
		}
	}
	if weight == 0 {
		// None of the exposed devices will suffice.
		return driver.ErrNoDevice
	}

	info := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 1,
		PQueueCreateInfos: []vk.DeviceQueueCreateInfo{{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: d.qfam,
			QueueCount:       1,
			PQueuePriorities: []float32{1},
		}},
	}
	var dev vk.Device
	if err := checkResult(vk.CreateDevice(d.pdev, &info, nil, &dev)); err != nil {
		return errors.Wrap(err, "vk: create device")
	}
	d.dev = dev
	var que vk.Queue
	vk.GetDeviceQueue(d.dev, d.qfam, 0, &que)
	d.que = que
	logger.Get().Info("vk: device selected", "name", d.dname, "queue family", d.qfam)
	return nil
}

// queueFamilies returns the capabilities of every queue
// family of dev.
func queueFamilies(dev vk.PhysicalDevice) []driver.QueueFlag {
	var n uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &n, nil)
	props := make([]vk.QueueFamilyProperties, n)
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &n, props)
	fams := make([]driver.QueueFlag, n)
	for i := range fams {
		props[i].Deref()
		fams[i] = driver.QueueFlag(props[i].QueueFlags)
	}
	return fams
}

// Open initializes the driver.
// It creates a headless instance and a device with a
// single graphics queue.
func (d *Driver) Open() (gpu driver.GPU, err error) {
	if d.dev != nil {
		return d, nil
	}
	if err = d.initInstance(); err != nil {
		goto fail
	}
	if err = d.initDevice(); err != nil {
		goto fail
	}
	return d, nil
fail:
	d.Close()
	return nil, err
}

// Name returns the driver name.
func (d *Driver) Name() string { return driverName }

// Close deinitializes the driver.
func (d *Driver) Close() {
	if d == nil {
		return
	}
	if d.inst != nil {
		if d.dev != nil {
			vk.DeviceWaitIdle(d.dev)
			vk.DestroyDevice(d.dev, nil)
		}
		vk.DestroyInstance(d.inst, nil)
	}
	*d = Driver{}
}

// Driver returns the receiver (for driver.GPU conformance).
func (d *Driver) Driver() driver.Driver { return d }

// FormatProps returns the features supported by pf.
func (d *Driver) FormatProps(pf driver.PixelFmt) driver.FormatProps {
	var props vk.FormatProperties
	vk.GetPhysicalDeviceFormatProperties(d.pdev, convPixelFmt(pf), &props)
	props.Deref()
	return driver.FormatProps{
		Linear:  driver.FormatFeature(props.LinearTilingFeatures),
		Optimal: driver.FormatFeature(props.OptimalTilingFeatures),
		Buffer:  driver.FormatFeature(props.BufferFeatures),
	}
}

// QueueFamilies returns the capabilities of every queue
// family of the physical device.
func (d *Driver) QueueFamilies() []driver.QueueFlag {
	fams := make([]driver.QueueFlag, len(d.fams))
	copy(fams, d.fams)
	return fams
}

// SurfaceFormats returns the formats supported for
// presentation to sf, which must be a *Surface.
// Formats that have no driver.PixelFmt equivalent are
// omitted.
func (d *Driver) SurfaceFormats(sf driver.Surface) ([]driver.SurfaceFormat, error) {
	surf := sf.(*Surface).sf
	var n uint32
	if err := checkResult(vk.GetPhysicalDeviceSurfaceFormats(d.pdev, surf, &n, nil)); err != nil {
		return nil, errors.Wrap(err, "vk: surface formats")
	}
	vfs := make([]vk.SurfaceFormat, n)
	if err := checkResult(vk.GetPhysicalDeviceSurfaceFormats(d.pdev, surf, &n, vfs)); err != nil {
		return nil, errors.Wrap(err, "vk: surface formats")
	}
	sfs := make([]driver.SurfaceFormat, 0, n)
	for i := range vfs[:n] {
		vfs[i].Deref()
		pf := driver.PixelFmt(vfs[i].Format)
		if pf.BitsPerPixel() < 0 {
			continue
		}
		sfs = append(sfs, driver.SurfaceFormat{
			Format:     pf,
			ColorSpace: driver.ColorSpace(vfs[i].ColorSpace),
		})
	}
	return sfs, nil
}

// DeviceName returns the name of the physical device that
// the driver is using.
func (d *Driver) DeviceName() string { return d.dname }

// QueueFamily returns the index of the queue family used
// by the driver's queue.
func (d *Driver) QueueFamily() int { return int(d.qfam) }

// VK returns the Vulkan handles that the driver is using.
func (d *Driver) VK() (vk.Instance, vk.PhysicalDevice, vk.Device, vk.Queue) {
	return d.inst, d.pdev, d.dev, d.que
}

// checkResult returns an error derived from a VkResult value.
// If such value does not indicate an error, it returns nil instead.
func checkResult(res vk.Result) error {
	if res >= 0 {
		// Not an error: VK_ERROR_* values are all negative.
		return nil
	}
	switch res {
	case vk.ErrorOutOfHostMemory:
		return errNoHostMemory
	case vk.ErrorOutOfDeviceMemory:
		return errNoDeviceMemory
	case vk.ErrorInitializationFailed:
		return errInitFailed
	case vk.ErrorDeviceLost:
		return errDeviceLost
	case vk.ErrorLayerNotPresent:
		return errNoLayer
	case vk.ErrorExtensionNotPresent:
		return errNoExtension
	case vk.ErrorFeatureNotPresent:
		return errNoFeature
	case vk.ErrorIncompatibleDriver:
		return errDriverCompat
	case vk.ErrorFormatNotSupported:
		return errUnsupportedFormat
	case vk.ErrorSurfaceLost:
		return errSurfaceLost
	}
	return errors.Wrap(errUnknown, vk.Error(res).Error())
}

// Common Vulkan errors (VK_ERROR_*).
var (
	errNoHostMemory      = driver.ErrNoHostMemory
	errNoDeviceMemory    = driver.ErrNoDeviceMemory
	errInitFailed        = errors.New("vk: initialization failed")
	errDeviceLost        = driver.ErrFatal
	errNoLayer           = errors.New("vk: layer not present")
	errNoExtension       = errors.New("vk: extension not present")
	errNoFeature         = errors.New("vk: feature not present")
	errDriverCompat      = errors.Wrap(driver.ErrNoDevice, "vk: incompatible driver")
	errUnsupportedFormat = errors.New("vk: format not supported")
	errSurfaceLost       = errors.New("vk: surface lost")
	errUnknown           = errors.New("vk: unknown error")
)
