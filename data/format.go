package data

import (
	"strconv"
	"strings"
)

// Encoding describes how the channel bits of a format map to numeric
// values.
type Encoding uint8

const (
	//EncodingUndefined is an undefined Encoding
	EncodingUndefined Encoding = iota
	//UNorm channels hold unsigned integers mapped to [0,1]
	UNorm
	//SNorm channels hold signed integers mapped to [-1,1]
	SNorm
	//UInt channels hold unsigned integers
	UInt
	//SInt channels hold signed integers
	SInt
	//SFloat channels hold signed floating point values
	SFloat
)

// String implements Stringer
func (e Encoding) String() string {
	switch e {
	case UNorm:
		return "UNorm"
	case SNorm:
		return "SNorm"
	case UInt:
		return "UInt"
	case SInt:
		return "SInt"
	case SFloat:
		return "SFloat"
	default:
		return "Undefined"
	}
}

// Format identifies the in-memory layout of one image element, following
// Vulkan's format naming.
type Format uint32

const (
	FormatUndefined Format = iota

	FormatR8UNorm
	FormatR8G8UNorm
	FormatR8G8B8UNorm
	FormatR8G8B8A8UNorm

	FormatR16UNorm
	FormatR16G16UNorm
	FormatR16G16B16UNorm
	FormatR16G16B16A16UNorm

	FormatR16SNorm
	FormatR16G16SNorm
	FormatR16G16B16SNorm
	FormatR16G16B16A16SNorm

	FormatR32UInt
	FormatR32G32UInt
	FormatR32G32B32UInt
	FormatR32G32B32A32UInt

	FormatR32SInt
	FormatR32G32SInt
	FormatR32G32B32SInt
	FormatR32G32B32A32SInt

	FormatR32SFloat
	FormatR32G32SFloat
	FormatR32G32B32SFloat
	FormatR32G32B32A32SFloat

	FormatR64SFloat
	FormatR64G64SFloat
	FormatR64G64B64SFloat
	FormatR64G64B64A64SFloat

	formatCount
)

// FormatInfo describes the channel layout of a Format.
type FormatInfo struct {
	// Channels is the number of channels per element.
	Channels int
	// BitsPerChannel is the number of bits per channel.
	BitsPerChannel int
	// Encoding is the numeric encoding shared by all channels.
	Encoding Encoding
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatUndefined: {},

	FormatR8UNorm:       {1, 8, UNorm},
	FormatR8G8UNorm:     {2, 8, UNorm},
	FormatR8G8B8UNorm:   {3, 8, UNorm},
	FormatR8G8B8A8UNorm: {4, 8, UNorm},

	FormatR16UNorm:          {1, 16, UNorm},
	FormatR16G16UNorm:       {2, 16, UNorm},
	FormatR16G16B16UNorm:    {3, 16, UNorm},
	FormatR16G16B16A16UNorm: {4, 16, UNorm},

	FormatR16SNorm:          {1, 16, SNorm},
	FormatR16G16SNorm:       {2, 16, SNorm},
	FormatR16G16B16SNorm:    {3, 16, SNorm},
	FormatR16G16B16A16SNorm: {4, 16, SNorm},

	FormatR32UInt:          {1, 32, UInt},
	FormatR32G32UInt:       {2, 32, UInt},
	FormatR32G32B32UInt:    {3, 32, UInt},
	FormatR32G32B32A32UInt: {4, 32, UInt},

	FormatR32SInt:          {1, 32, SInt},
	FormatR32G32SInt:       {2, 32, SInt},
	FormatR32G32B32SInt:    {3, 32, SInt},
	FormatR32G32B32A32SInt: {4, 32, SInt},

	FormatR32SFloat:          {1, 32, SFloat},
	FormatR32G32SFloat:       {2, 32, SFloat},
	FormatR32G32B32SFloat:    {3, 32, SFloat},
	FormatR32G32B32A32SFloat: {4, 32, SFloat},

	FormatR64SFloat:          {1, 64, SFloat},
	FormatR64G64SFloat:       {2, 64, SFloat},
	FormatR64G64B64SFloat:    {3, 64, SFloat},
	FormatR64G64B64A64SFloat: {4, 64, SFloat},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the number of channels per element.
func (f Format) Channels() int {
	return f.Info().Channels
}

// BitsPerChannel returns the number of bits per channel.
func (f Format) BitsPerChannel() int {
	return f.Info().BitsPerChannel
}

// Encoding returns the numeric encoding of the format's channels.
func (f Format) Encoding() Encoding {
	return f.Info().Encoding
}

// BytesPerElement returns the number of bytes per image element.
func (f Format) BytesPerElement() int {
	info := f.Info()
	return info.Channels * info.BitsPerChannel / 8
}

// RowBytes returns the number of bytes needed for a row of the given
// width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerElement()
}

// ImageBytes returns the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// Valid reports whether f is a defined format.
func (f Format) Valid() bool {
	return f > FormatUndefined && f < formatCount
}

var channelNames = [4]string{"R", "G", "B", "A"}

// String implements Stringer
func (f Format) String() string {
	info := f.Info()
	if info.Channels == 0 {
		return "Undefined"
	}
	var sb strings.Builder
	for i := 0; i < info.Channels; i++ {
		sb.WriteString(channelNames[i])
		sb.WriteString(strconv.Itoa(info.BitsPerChannel))
	}
	sb.WriteString(info.Encoding.String())
	return sb.String()
}
